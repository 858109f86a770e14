// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optargs

import (
	"slices"
	"strings"
)

// Literal sets accepted for =-attached boolean values, matched
// case-insensitively. strconv.ParseBool is deliberately not used here:
// it accepts "t"/"f" and rejects "yes"/"no".
var (
	truthyLiterals = []string{"1", "true", "yes"}
	falsyLiterals  = []string{"0", "false", "no"}
)

// coerceBool maps an =-attached literal to a boolean value.
func coerceBool(name, raw string) (bool, error) {
	lit := strings.ToLower(raw)
	if slices.Contains(truthyLiterals, lit) {
		return true, nil
	}
	if slices.Contains(falsyLiterals, lit) {
		return false, nil
	}
	return false, &InvalidBoolError{Option: name, Value: raw}
}

// coerceValue validates a raw value token against the descriptor and
// returns the typed value. The empty string is a valid string value.
func coerceValue(opt *Option, raw string) (any, error) {
	switch opt.kind() {
	case TypeBoolean:
		v, err := coerceBool(opt.Name, raw)
		if err != nil {
			return nil, err
		}
		return v, nil
	case TypeChoice:
		if len(opt.Choices) == 0 {
			return nil, &InvalidChoiceError{Option: opt.Name, NoChoices: true}
		}
		if !slices.Contains(opt.Choices, raw) {
			return nil, &InvalidChoiceError{Option: opt.Name, Value: raw, Allowed: opt.Choices}
		}
		return raw, nil
	default:
		return raw, nil
	}
}
