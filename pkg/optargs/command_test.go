// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optargs

import (
	"reflect"
	"testing"
)

func TestCommandDispatch(t *testing.T) {
	p := New(Config{})
	p.AddOption(Option{Name: "verbose", Type: TypeBoolean})
	hello := p.AddCommand(CommandSpec{Name: "hello"},
		Option{Name: "shout", Type: TypeBoolean},
	)

	if err := p.Parse([]string{"--verbose", "hello", "--shout"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	matched, ok := p.Matched()
	if !ok || matched != hello {
		t.Fatalf("Matched() = %v, %v; want hello command", matched, ok)
	}
	if !p.Bool("verbose") {
		t.Error("root verbose = false, want true")
	}
	if !hello.Bool("shout") {
		t.Error("command shout = false, want true")
	}
}

func TestCommandScopeIsIndependent(t *testing.T) {
	// Root options are not visible inside a command scope.
	p := New(Config{})
	p.AddOption(Option{Name: "verbose", Type: TypeBoolean})
	p.AddCommand(CommandSpec{Name: "hello"})

	err := p.Parse([]string{"hello", "--verbose"})
	if err == nil || err.Error() != "Unknown flag: --verbose" {
		t.Fatalf("Parse() error = %v, want %q", err, "Unknown flag: --verbose")
	}
}

func TestNamedArgBinding(t *testing.T) {
	p := New(Config{})
	hello := p.AddCommand(CommandSpec{
		Name:      "hello",
		NamedArgs: []string{"former", "latter"},
		MinArgs:   1,
		MaxArgs:   2,
	}, Option{Name: "verbose", Type: TypeBoolean})

	if err := p.Parse([]string{"hello", "--verbose", "juanjo", "beltran"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	wantProvided := []string{"juanjo", "beltran"}
	if !reflect.DeepEqual(hello.ProvidedArgs, wantProvided) {
		t.Errorf("ProvidedArgs = %v, want %v", hello.ProvidedArgs, wantProvided)
	}
	wantArgs := map[string]string{"former": "juanjo", "latter": "beltran"}
	if !reflect.DeepEqual(hello.Arguments, wantArgs) {
		t.Errorf("Arguments = %v, want %v", hello.Arguments, wantArgs)
	}
	if !hello.Bool("verbose") {
		t.Error("verbose = false, want true")
	}
}

func TestExtraArgsCapturedVerbatim(t *testing.T) {
	// A command with no named args routes every positional to
	// ExtraArgs, and flag-looking tokens after the first one are not
	// reparsed.
	p := New(Config{})
	hello := p.AddCommand(CommandSpec{Name: "hello"},
		Option{Name: "who"},
	)

	if err := p.Parse([]string{"hello", "juanjo", "--who", "beltran"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"juanjo", "--who", "beltran"}
	if !reflect.DeepEqual(hello.ExtraArgs, want) {
		t.Errorf("ExtraArgs = %v, want %v", hello.ExtraArgs, want)
	}
	if got := hello.String("who"); got != "" {
		t.Errorf("who = %q, want empty (flag must not be parsed after overflow)", got)
	}
}

func TestOverflowBeyondNamedArgs(t *testing.T) {
	p := New(Config{})
	hello := p.AddCommand(CommandSpec{
		Name:      "hello",
		NamedArgs: []string{"only"},
	})

	if err := p.Parse([]string{"hello", "a", "b", "c"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if !reflect.DeepEqual(hello.ProvidedArgs, []string{"a"}) {
		t.Errorf("ProvidedArgs = %v, want [a]", hello.ProvidedArgs)
	}
	if !reflect.DeepEqual(hello.ExtraArgs, []string{"b", "c"}) {
		t.Errorf("ExtraArgs = %v, want [b c]", hello.ExtraArgs)
	}
}

func TestMaxArgsRaisesBudget(t *testing.T) {
	// MaxArgs above len(NamedArgs): extra provided args are recorded
	// but have no name to bind to.
	p := New(Config{})
	hello := p.AddCommand(CommandSpec{
		Name:      "hello",
		NamedArgs: []string{"first"},
		MaxArgs:   2,
	})

	if err := p.Parse([]string{"hello", "a", "b", "c"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if !reflect.DeepEqual(hello.ProvidedArgs, []string{"a", "b"}) {
		t.Errorf("ProvidedArgs = %v, want [a b]", hello.ProvidedArgs)
	}
	if !reflect.DeepEqual(hello.Arguments, map[string]string{"first": "a"}) {
		t.Errorf("Arguments = %v, want {first: a}", hello.Arguments)
	}
	if !reflect.DeepEqual(hello.ExtraArgs, []string{"c"}) {
		t.Errorf("ExtraArgs = %v, want [c]", hello.ExtraArgs)
	}
}

func TestMinArgsViolation(t *testing.T) {
	p := New(Config{})
	p.AddCommand(CommandSpec{
		Name:      "hello",
		NamedArgs: []string{"who"},
		MinArgs:   1,
	})

	err := p.Parse([]string{"hello"})
	want := "'hello' requires at least 1 argument(s), got 0"
	if err == nil || err.Error() != want {
		t.Fatalf("Parse() error = %v, want %q", err, want)
	}
}

func TestCommandCallbackFiresLast(t *testing.T) {
	var fired []string
	record := func(info Info) { fired = append(fired, info.Name) }

	p := New(Config{})
	p.AddOptions(
		Option{Name: "option1", Type: TypeBoolean, Callback: record},
		Option{Name: "option2", Type: TypeBoolean, Callback: record},
	)
	p.AddCommand(CommandSpec{
		Name:     "hello",
		Callback: func(c *Command) { fired = append(fired, c.Name()) },
	},
		Option{Name: "option3", Type: TypeBoolean, Callback: record},
		Option{Name: "option4", Type: TypeBoolean, Callback: record},
	)

	args := []string{"--option1", "--option2", "hello", "--option4", "--option3"}
	if err := p.Parse(args); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"option1", "option2", "option4", "option3", "hello"}
	if !reflect.DeepEqual(fired, want) {
		t.Errorf("firing order = %v, want %v", fired, want)
	}
}

func TestCommandCallbackSkippedOnRequiredFailure(t *testing.T) {
	var commandFired bool

	p := New(Config{})
	p.AddCommand(CommandSpec{
		Name:     "hello",
		Callback: func(*Command) { commandFired = true },
	}, Option{Name: "needed", Required: true})

	err := p.Parse([]string{"hello"})
	if err == nil || err.Error() != "The following options are required: needed" {
		t.Fatalf("Parse() error = %v, want required failure", err)
	}
	if commandFired {
		t.Error("command callback fired despite failed required check")
	}
}

func TestRequiredAggregatesAcrossScopes(t *testing.T) {
	p := New(Config{})
	p.AddOption(Option{Name: "root-opt", Required: true})
	p.AddCommand(CommandSpec{Name: "hello"},
		Option{Name: "cmd-opt", Required: true},
	)

	err := p.Parse([]string{"hello"})
	want := "The following options are required: root-opt, cmd-opt"
	if err == nil || err.Error() != want {
		t.Fatalf("Parse() error = %v, want %q", err, want)
	}
}

func TestAddCommandInitialOptionsEquivalence(t *testing.T) {
	// The two-argument construction path and chained AddOptions must
	// record identical option state.
	opts := []Option{
		{Name: "flag-a", Type: TypeBoolean},
		{Name: "flag-b", Default: "x"},
	}

	p1 := New(Config{})
	c1 := p1.AddCommand(CommandSpec{Name: "hello"}, opts...)

	p2 := New(Config{})
	c2 := p2.AddCommand(CommandSpec{Name: "hello"})
	c2.AddOptions(opts...)

	if err := p1.Parse([]string{"hello"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if err := p2.Parse([]string{"hello"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got1 := c1.Flatten(FlattenOpts{IncludeHelp: true})
	got2 := c2.Flatten(FlattenOpts{IncludeHelp: true})
	if !reflect.DeepEqual(got1, got2) {
		t.Errorf("flattened state diverges: %#v vs %#v", got1, got2)
	}
}

func TestCommandArgumentsOverwrittenAcrossParses(t *testing.T) {
	p := New(Config{})
	hello := p.AddCommand(CommandSpec{Name: "hello", NamedArgs: []string{"who"}})

	if err := p.Parse([]string{"hello", "first"}); err != nil {
		t.Fatalf("first Parse() error = %v", err)
	}
	if err := p.Parse([]string{"hello", "second"}); err != nil {
		t.Fatalf("second Parse() error = %v", err)
	}

	if got := hello.Arguments["who"]; got != "second" {
		t.Errorf("Arguments[who] = %q, want %q", got, "second")
	}
	if !reflect.DeepEqual(hello.ProvidedArgs, []string{"second"}) {
		t.Errorf("ProvidedArgs = %v, want [second]", hello.ProvidedArgs)
	}
}

func TestCommandHasBuiltinHelp(t *testing.T) {
	p := New(Config{})
	hello := p.AddCommand(CommandSpec{Name: "hello"})

	if err := p.Parse([]string{"hello", "--help"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !hello.Bool("help") {
		t.Error("command Bool(help) = false, want true")
	}
}

func TestFirstPositionalOnlyDispatches(t *testing.T) {
	// A command name appearing after a non-command positional is a
	// plain token, not a dispatch.
	p := New(Config{})
	hello := p.AddCommand(CommandSpec{Name: "hello"})

	if err := p.Parse([]string{"stray", "hello"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, ok := p.Matched(); ok {
		t.Error("Matched() reported a command, want none")
	}
	if !reflect.DeepEqual(p.ExtraArgs, []string{"stray", "hello"}) {
		t.Errorf("ExtraArgs = %v, want [stray hello]", p.ExtraArgs)
	}
	if len(hello.ProvidedArgs) != 0 {
		t.Errorf("hello.ProvidedArgs = %v, want empty", hello.ProvidedArgs)
	}
}

func TestDuplicateCommandPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("AddCommand did not panic on a duplicate name")
		}
	}()

	p := New(Config{})
	p.AddCommand(CommandSpec{Name: "dup"})
	p.AddCommand(CommandSpec{Name: "dup"})
}
