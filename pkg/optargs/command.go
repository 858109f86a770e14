// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optargs

// CommandSpec declares a command at setup time.
type CommandSpec struct {
	// Name is matched verbatim (case-sensitive) against the first root
	// positional token. Unique among sibling commands.
	Name string

	// MinArgs is the minimum count of positional arguments, enforced
	// at the end of the command's scan.
	MinArgs int

	// MaxArgs caps how many positionals bind as provided arguments.
	// Zero means unset: the budget is len(NamedArgs) and overflow goes
	// to ExtraArgs.
	MaxArgs int

	// NamedArgs are the slot names positionals bind to, in order.
	NamedArgs []string

	// Callback fires once the whole parse succeeds, strictly after all
	// of this command's own option callbacks and its required check.
	Callback func(*Command)
}

// Command is a registered command and, after a parse, its bound
// arguments. Commands are created once via Parser.AddCommand; the
// argument fields below are overwritten on every Parse call, not
// recreated.
type Command struct {
	spec CommandSpec
	reg  *registry

	// ProvidedArgs are the positional tokens bound within the arity
	// budget, in input order.
	ProvidedArgs []string

	// Arguments maps NamedArgs entries to their bound values.
	Arguments map[string]string

	// ExtraArgs are tokens beyond the arity budget, captured verbatim.
	// Once the first token lands here, scanning stops treating the
	// remainder as flags, so flag-looking tokens arrive unparsed.
	ExtraArgs []string
}

func newCommand(spec CommandSpec) *Command {
	return &Command{
		spec:      spec,
		reg:       newRegistry(),
		Arguments: make(map[string]string),
	}
}

// Name returns the command's registered name.
func (c *Command) Name() string { return c.spec.Name }

// Spec returns a copy of the declaration the command was created with.
func (c *Command) Spec() CommandSpec { return c.spec }

// AddOption registers one option in the command's scope.
func (c *Command) AddOption(opt Option) *Command {
	c.reg.add(opt)
	return c
}

// AddOptions registers options in the command's scope, in order.
func (c *Command) AddOptions(opts ...Option) *Command {
	for _, opt := range opts {
		c.reg.add(opt)
	}
	return c
}

// Options returns the command scope's descriptors in registration
// order, including the built-in help option.
func (c *Command) Options() []Option { return c.reg.options() }

// OptionValue returns the current value of a command-scoped option. It
// fails if the name is unknown in this scope.
func (c *Command) OptionValue(name string) (any, error) { return c.reg.value(name) }

// Bool returns a boolean option's current value, or false when the name
// is unknown or not boolean.
func (c *Command) Bool(name string) bool {
	v, _ := c.reg.value(name)
	b, _ := v.(bool)
	return b
}

// String returns a string or choice option's current value, or "" when
// the name is unknown.
func (c *Command) String(name string) string {
	v, _ := c.reg.value(name)
	s, _ := v.(string)
	return s
}

// Flatten snapshots the command scope's current option values.
func (c *Command) Flatten(opts FlattenOpts) map[string]any { return c.reg.flatten(opts) }

func (c *Command) reset() {
	c.reg.reset()
	c.ProvidedArgs = nil
	c.Arguments = make(map[string]string)
	c.ExtraArgs = nil
}

// run scans the tokens following the command name in this command's
// scope: flags resolve against the command registry, positionals bind
// through the arity budget, and overflow is captured verbatim.
func (c *Command) run(tokens []string) error {
	budget := len(c.spec.NamedArgs)
	if c.spec.MaxArgs > 0 {
		budget = c.spec.MaxArgs
	}

	capture := false
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if capture {
			c.ExtraArgs = append(c.ExtraArgs, tok)
			i++
			continue
		}
		if isFlag(tok) {
			n, err := applyFlag(c.reg, tokens, i)
			if err != nil {
				return err
			}
			i += n
			continue
		}
		if len(c.ProvidedArgs) < budget {
			if n := len(c.ProvidedArgs); n < len(c.spec.NamedArgs) {
				c.Arguments[c.spec.NamedArgs[n]] = tok
			}
			c.ProvidedArgs = append(c.ProvidedArgs, tok)
			i++
			continue
		}
		// First overflow token: stop parsing flags for good.
		capture = true
		c.ExtraArgs = append(c.ExtraArgs, tok)
		i++
	}

	if len(c.ProvidedArgs) < c.spec.MinArgs {
		return &ArityError{Command: c.spec.Name, MinArgs: c.spec.MinArgs, Got: len(c.ProvidedArgs)}
	}
	return nil
}
