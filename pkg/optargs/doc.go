// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optargs implements a declarative command-line argument parser:
// options and commands are registered up front, and Parse walks the raw
// argument vector, coercing values, binding positionals and firing
// callbacks in token order.
//
// The parser is registration-oriented rather than struct-tag-oriented.
// Each option is described by an Option descriptor; descriptors are
// immutable after registration while parsed values live in a per-scope
// value store that is fully reset on every Parse call.
//
// # Basic usage
//
//	p := optargs.New(optargs.Config{})
//	p.AddOptions(
//	    optargs.Option{Name: "verbose", Type: optargs.TypeBoolean},
//	    optargs.Option{Name: "log-level", Type: optargs.TypeChoice,
//	        Choices: []string{"debug", "info", "warn"}},
//	)
//	if err := p.Parse(os.Args[1:]); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.String("log-level"))
//
// # Commands
//
// A parser holds a single flat level of commands. The first positional
// token in the root scope selects a command; everything after it is
// scanned in that command's own scope, with its own options and named
// positional arguments.
//
//	hello := p.AddCommand(optargs.CommandSpec{
//	    Name:      "hello",
//	    NamedArgs: []string{"who"},
//	    MinArgs:   1,
//	}, optargs.Option{Name: "shout", Type: optargs.TypeBoolean})
//
//	if err := p.Parse(os.Args[1:]); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(hello.Arguments["who"], hello.Bool("shout"))
//
// # Flag syntax
//
// Options are long-form only:
//   - Boolean flags: --verbose, --no-verbose, --verbose=yes
//   - Flags with values (equals): --output=file.txt
//   - Flags with values (space): --output file.txt
//
// Boolean flags never consume the next token. Non-boolean flags consume
// the following token as their value unless it starts with "--".
//
// # Callbacks
//
// An Option may carry a Callback; it fires at the moment the option's
// value is set while scanning, so callback order matches the
// left-to-right order of flags in the input, not registration order. A
// command's Callback fires after the whole parse succeeds, strictly
// after all of that command's own option callbacks.
//
// # Errors
//
// Every validation failure aborts Parse immediately and is returned as a
// typed error (UnknownFlagError, MissingValueError, InvalidChoiceError,
// InvalidBoolError, MissingRequiredError, ArityError). Callbacks that
// fired before the failure point are not rolled back.
//
// Help and usage rendering is deliberately outside this package; see
// pkg/usage. The engine only records the built-in boolean "help" option
// present in every scope and exposes introspection accessors.
package optargs
