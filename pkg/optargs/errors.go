// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optargs

import (
	"fmt"
	"strings"
)

// UnknownFlagError is returned when a --prefixed token does not resolve
// to any descriptor in the active scope, including negated forms that
// match no negatable boolean.
type UnknownFlagError struct {
	// Flag is the flag token as it failed to resolve, e.g. "--no-bar".
	Flag string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("Unknown flag: %s", e.Flag)
}

// MissingValueError is returned when a non-boolean option has no value
// token available.
type MissingValueError struct {
	Option string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("Option '%s' requires a value", e.Option)
}

// InvalidChoiceError is returned when a choice option is given a value
// outside its allowed set, or when the option was declared with no
// allowed values at all.
type InvalidChoiceError struct {
	Option  string
	Value   string
	Allowed []string
	// NoChoices marks the declared-empty case, which fails regardless
	// of the supplied token.
	NoChoices bool
}

func (e *InvalidChoiceError) Error() string {
	if e.NoChoices {
		return fmt.Sprintf("Choice '%s' does not allow any valid value", e.Option)
	}
	return fmt.Sprintf("'%s' is not a valid value for '%s'. Allowed: %s",
		e.Value, e.Option, strings.Join(e.Allowed, ", "))
}

// InvalidBoolError is returned for an =-attached boolean value outside
// the recognized truthy/falsy literal sets.
type InvalidBoolError struct {
	Option string
	Value  string
}

func (e *InvalidBoolError) Error() string {
	return fmt.Sprintf("invalid boolean value '%s' for option '%s'", e.Value, e.Option)
}

// MissingRequiredError aggregates every required option left unresolved
// at the end of a parse.
type MissingRequiredError struct {
	// Names lists the missing options, root scope first, each in
	// registration order.
	Names []string
}

func (e *MissingRequiredError) Error() string {
	return "The following options are required: " + strings.Join(e.Names, ", ")
}

// ArityError is returned when a command received fewer positional
// arguments than its declared minimum.
type ArityError struct {
	Command string
	MinArgs int
	Got     int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("'%s' requires at least %d argument(s), got %d", e.Command, e.MinArgs, e.Got)
}
