// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command greet is a small demo CLI for the optargs engine: root
// options, one built-in command, help rendering through pkg/usage, and
// extra definitions contributed by an optional greet.toml in the
// working directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/optargs/optargs/pkg/optargs"
	"github.com/optargs/optargs/pkg/optfile"
	"github.com/optargs/optargs/pkg/usage"
)

const (
	progName = "greet"
	defsFile = "greet.toml"
)

func newParser(cfg optargs.Config, out io.Writer) *optargs.Parser {
	p := optargs.New(cfg)
	p.AddOptions(
		optargs.Option{Name: "log-level", Type: optargs.TypeChoice,
			Choices: []string{"debug", "info", "warn"}, Default: "info"},
		optargs.Option{Name: "verbose", Type: optargs.TypeBoolean},
	)

	p.AddCommand(optargs.CommandSpec{
		Name:      "hello",
		NamedArgs: []string{"name"},
		MinArgs:   1,
		Callback: func(c *optargs.Command) {
			line := fmt.Sprintf("%s, %s!", c.String("greeting"), c.Arguments["name"])
			if c.Bool("shout") {
				line = strings.ToUpper(line)
			}
			fmt.Fprintln(out, line)
		},
	},
		optargs.Option{Name: "greeting", Default: "Hello"},
		optargs.Option{Name: "shout", Type: optargs.TypeBoolean},
	)

	p.AddCommand(optargs.CommandSpec{
		Name:      "wave",
		NamedArgs: []string{"name"},
		Callback: func(c *optargs.Command) {
			name := c.Arguments["name"]
			if name == "" {
				name = "everyone"
			}
			fmt.Fprintf(out, "*waves at %s*\n", name)
		},
	})

	return p
}

func run(cfg optargs.Config, args []string, out io.Writer) error {
	p := newParser(cfg, out)

	// A greet.toml in the working directory can contribute extra
	// options and commands, like a project config.
	if defs, err := optfile.Load(defsFile); err == nil {
		defs.Apply(p)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := p.Parse(args); err != nil {
		return err
	}

	if p.Bool("verbose") {
		fmt.Fprintf(out, "options: %v\n", p.Flatten(optargs.FlattenOpts{Camelize: true}))
	}

	if cmd, ok := p.Matched(); ok {
		if cmd.Bool("help") {
			usage.PrintCommand(p, cmd, progName)
		}
		return nil
	}

	// No command: show help, whether or not --help was given.
	usage.Print(p, progName)
	return nil
}

func main() {
	cfg := optargs.Config{AllowProcessExit: true}
	if err := run(cfg, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}
