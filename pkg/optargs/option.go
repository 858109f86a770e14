// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optargs

import "fmt"

// Type identifies how an option's value is coerced.
type Type string

const (
	// TypeString options take exactly one value token. This is the
	// default when an Option declares no Type.
	TypeString Type = "string"
	// TypeBoolean options are presence toggles with an optional
	// --no-<name> negated form and =-attached literal values.
	TypeBoolean Type = "boolean"
	// TypeChoice options take one value token that must be a member of
	// the declared Choices.
	TypeChoice Type = "choice"
)

// Info is the lightweight descriptor view passed to option callbacks.
type Info struct {
	Name     string
	Type     Type
	Required bool
}

// Callback is invoked when an option's value is set during a parse
// pass. It receives the owning descriptor's Info view as an explicit
// parameter; there is no implicit binding.
type Callback func(Info)

// Option describes one flag. Descriptors are immutable once registered;
// the current value lives in the owning scope's value store.
type Option struct {
	// Name is the public flag name (kebab-case, e.g. "log-level") and
	// the lookup key. Unique within its scope.
	Name string

	// Type selects the coercion rules. Empty means TypeString.
	Type Type

	// Default is the value used when the flag is absent. When nil,
	// booleans default to false, strings to "", and choice options to
	// their first choice.
	Default any

	// Choices is the allowed value set for TypeChoice, in order.
	Choices []string

	// NoNegate disables the --no-<name> form. Only meaningful for
	// boolean options; the zero value accepts negation.
	NoNegate bool

	// Required makes the parse fail when the option has neither a
	// Default nor an explicitly supplied value.
	Required bool

	// Callback, if set, fires at the token step that sets this
	// option's value.
	Callback Callback
}

// helpOptionName is the built-in boolean option present in every scope.
const helpOptionName = "help"

func helpOption() Option {
	return Option{Name: helpOptionName, Type: TypeBoolean}
}

func (o Option) kind() Type {
	if o.Type == "" {
		return TypeString
	}
	return o.Type
}

func (o Option) info() Info {
	return Info{Name: o.Name, Type: o.kind(), Required: o.Required}
}

// defaultValue resolves the value an absent flag settles on.
func (o Option) defaultValue() any {
	if o.Default != nil {
		return o.Default
	}
	switch o.kind() {
	case TypeBoolean:
		return false
	case TypeChoice:
		if len(o.Choices) > 0 {
			return o.Choices[0]
		}
		return ""
	default:
		return ""
	}
}

// validate panics on declarations that can never work. Registration
// mistakes are programmer errors, same policy as duplicate names.
func (o Option) validate() {
	if o.Name == "" {
		panic("optargs: option with empty name")
	}
	switch o.kind() {
	case TypeString, TypeBoolean, TypeChoice:
	default:
		panic(fmt.Sprintf("optargs: option %q: unknown type %q", o.Name, o.Type))
	}
	if o.NoNegate && o.kind() != TypeBoolean {
		panic(fmt.Sprintf("optargs: option %q: NoNegate only applies to boolean options", o.Name))
	}
	if len(o.Choices) > 0 && o.kind() != TypeChoice {
		panic(fmt.Sprintf("optargs: option %q: Choices require TypeChoice", o.Name))
	}
}
