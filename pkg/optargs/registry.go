// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optargs

import (
	"fmt"
	"strings"
)

// registry holds one scope's option descriptors in registration order
// plus the mutable value store for the current parse pass.
type registry struct {
	order  []*Option
	index  map[string]*Option
	values map[string]any
	// explicit marks options whose value was supplied during the
	// current parse, as opposed to settling on a default.
	explicit map[string]bool
}

func newRegistry() *registry {
	r := &registry{
		index:    make(map[string]*Option),
		values:   make(map[string]any),
		explicit: make(map[string]bool),
	}
	r.add(helpOption())
	return r
}

func (r *registry) add(opt Option) {
	opt.validate()
	if _, dup := r.index[opt.Name]; dup {
		panic(fmt.Sprintf("optargs: option %q already registered in this scope", opt.Name))
	}
	o := &opt
	r.order = append(r.order, o)
	r.index[o.Name] = o
	r.values[o.Name] = o.defaultValue()
}

// resolveFlag resolves a flag body (leading dashes stripped) to a
// descriptor. Negated "no-" forms match only boolean descriptors that
// allow negation; everything else falls through to not-found.
func (r *registry) resolveFlag(body string) (opt *Option, negated bool, ok bool) {
	if o, ok := r.index[body]; ok {
		return o, false, true
	}
	if rest, found := strings.CutPrefix(body, "no-"); found {
		if o, ok := r.index[rest]; ok && o.kind() == TypeBoolean && !o.NoNegate {
			return o, true, true
		}
	}
	return nil, false, false
}

// reset reinitializes the value store from descriptor defaults. Called
// at the start of every parse so values never leak between calls.
func (r *registry) reset() {
	r.values = make(map[string]any, len(r.order))
	r.explicit = make(map[string]bool)
	for _, o := range r.order {
		r.values[o.Name] = o.defaultValue()
	}
}

// setValue records a parsed value and fires the descriptor's callback
// at this exact step; callers rely on the resulting token-order firing.
func (r *registry) setValue(opt *Option, v any) {
	r.values[opt.Name] = v
	r.explicit[opt.Name] = true
	if opt.Callback != nil {
		opt.Callback(opt.info())
	}
}

func (r *registry) value(name string) (any, error) {
	if _, ok := r.index[name]; !ok {
		return nil, fmt.Errorf("unknown option %q", name)
	}
	return r.values[name], nil
}

// missingRequired returns the names of required options that have
// neither a declared default nor an explicitly parsed value, in
// registration order.
func (r *registry) missingRequired() []string {
	var missing []string
	for _, o := range r.order {
		if o.Required && o.Default == nil && !r.explicit[o.Name] {
			missing = append(missing, o.Name)
		}
	}
	return missing
}

// options returns descriptor copies in registration order.
func (r *registry) options() []Option {
	out := make([]Option, len(r.order))
	for i, o := range r.order {
		out[i] = *o
	}
	return out
}

// FlattenOpts configures Flatten output.
type FlattenOpts struct {
	// Camelize transforms kebab-case names into camelCase keys.
	Camelize bool
	// IncludeHelp includes the built-in help option, excluded by
	// default.
	IncludeHelp bool
}

// flatten snapshots the scope's current values as a name-to-value map.
func (r *registry) flatten(opts FlattenOpts) map[string]any {
	out := make(map[string]any, len(r.order))
	for _, o := range r.order {
		if o.Name == helpOptionName && !opts.IncludeHelp {
			continue
		}
		key := o.Name
		if opts.Camelize {
			key = camelize(key)
		}
		out[key] = r.values[o.Name]
	}
	return out
}

// camelize converts a kebab-case flag name to camelCase, e.g.
// "log-level" becomes "logLevel".
func camelize(name string) string {
	parts := strings.Split(name, "-")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
