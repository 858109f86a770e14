// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optargs

import (
	"fmt"
	"os"
)

// Config carries collaborator wiring. Both fields are forwarded to help
// rendering (pkg/usage); the parsing engine itself never consults them.
type Config struct {
	// Printer receives rendered help text. Defaults to printing on
	// stdout.
	Printer func(string)

	// AllowProcessExit permits the help collaborator to exit the
	// process after printing.
	AllowProcessExit bool
}

// Parser owns the root option scope and the registered commands.
// Construct once with New; Parse may be invoked repeatedly, and each
// invocation fully resets option values to defaults before scanning. A
// Parser must not run concurrent Parse calls: it mutates shared
// registry state in place.
type Parser struct {
	cfg      Config
	reg      *registry
	commands map[string]*Command
	order    []*Command

	// ExtraArgs captures root-scope positional tokens. The root scope
	// declares no named arguments, so the first positional that is not
	// a command name lands here and the remaining tokens are captured
	// verbatim.
	ExtraArgs []string

	matched *Command
}

// New returns a Parser with the built-in help option registered in the
// root scope.
func New(cfg Config) *Parser {
	if cfg.Printer == nil {
		cfg.Printer = func(s string) { fmt.Fprint(os.Stdout, s) }
	}
	return &Parser{
		cfg:      cfg,
		reg:      newRegistry(),
		commands: make(map[string]*Command),
	}
}

// Config returns the collaborator configuration the parser was built
// with.
func (p *Parser) Config() Config { return p.cfg }

// AddOption registers one option in the root scope.
func (p *Parser) AddOption(opt Option) *Parser {
	p.reg.add(opt)
	return p
}

// AddOptions registers options in the root scope, in order.
func (p *Parser) AddOptions(opts ...Option) *Parser {
	for _, opt := range opts {
		p.reg.add(opt)
	}
	return p
}

// AddCommand registers a command and returns it for further option
// registration and result inspection. Initial options may be supplied
// here; they go through the same path as a later AddOptions call.
func (p *Parser) AddCommand(spec CommandSpec, opts ...Option) *Command {
	if spec.Name == "" {
		panic("optargs: command with empty name")
	}
	if _, dup := p.commands[spec.Name]; dup {
		panic(fmt.Sprintf("optargs: command %q already registered", spec.Name))
	}
	c := newCommand(spec)
	c.AddOptions(opts...)
	p.commands[spec.Name] = c
	p.order = append(p.order, c)
	return c
}

// Command returns the registered command by name.
func (p *Parser) Command(name string) (*Command, bool) {
	c, ok := p.commands[name]
	return c, ok
}

// Commands returns registered commands in registration order.
func (p *Parser) Commands() []*Command {
	out := make([]*Command, len(p.order))
	copy(out, p.order)
	return out
}

// Options returns the root scope's descriptors in registration order,
// including the built-in help option.
func (p *Parser) Options() []Option { return p.reg.options() }

// Matched returns the command selected by the most recent Parse call.
func (p *Parser) Matched() (*Command, bool) {
	return p.matched, p.matched != nil
}

// OptionValue returns the current value of a root-scope option. It
// fails if the name is unknown in the root scope.
func (p *Parser) OptionValue(name string) (any, error) { return p.reg.value(name) }

// Bool returns a boolean option's current value, or false when the name
// is unknown or not boolean.
func (p *Parser) Bool(name string) bool {
	v, _ := p.reg.value(name)
	b, _ := v.(bool)
	return b
}

// String returns a string or choice option's current value, or "" when
// the name is unknown.
func (p *Parser) String(name string) string {
	v, _ := p.reg.value(name)
	s, _ := v.(string)
	return s
}

// Flatten snapshots the root scope's current option values.
func (p *Parser) Flatten(opts FlattenOpts) map[string]any { return p.reg.flatten(opts) }

func (p *Parser) reset() {
	p.reg.reset()
	p.ExtraArgs = nil
	p.matched = nil
	for _, c := range p.order {
		c.reset()
	}
}

// Parse walks the argument vector left to right. Flags resolve against
// the root scope until the first positional token; if that token names
// a registered command, everything after it is scanned in the command's
// scope, otherwise the remainder is captured verbatim in ExtraArgs.
// Option callbacks fire inline as their values are set; a matched
// command's callback fires last, after the aggregated required-option
// check. Any failure aborts immediately, leaving already-fired
// callbacks in place.
func (p *Parser) Parse(args []string) error {
	p.reset()

	capture := false
	for i := 0; i < len(args); {
		tok := args[i]
		if capture {
			p.ExtraArgs = append(p.ExtraArgs, tok)
			i++
			continue
		}
		if isFlag(tok) {
			n, err := applyFlag(p.reg, args, i)
			if err != nil {
				return err
			}
			i += n
			continue
		}
		// First positional: command dispatch. Root scanning ends at
		// the command boundary.
		if c, ok := p.commands[tok]; ok {
			if err := c.run(args[i+1:]); err != nil {
				return err
			}
			p.matched = c
			break
		}
		capture = true
		p.ExtraArgs = append(p.ExtraArgs, tok)
		i++
	}

	missing := p.reg.missingRequired()
	if p.matched != nil {
		missing = append(missing, p.matched.reg.missingRequired()...)
	}
	if len(missing) > 0 {
		return &MissingRequiredError{Names: missing}
	}

	if p.matched != nil && p.matched.spec.Callback != nil {
		p.matched.spec.Callback(p.matched)
	}
	return nil
}
