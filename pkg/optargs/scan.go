// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optargs

import "strings"

// isFlag reports whether a token introduces an option. Only long-form
// flags exist; a single-dash token is a positional.
func isFlag(tok string) bool {
	return strings.HasPrefix(tok, "--")
}

// applyFlag consumes the flag at tokens[i] (and possibly its value
// token) in the scope owning reg, updating the value store and firing
// the descriptor callback inline. It returns how many tokens were
// consumed.
func applyFlag(reg *registry, tokens []string, i int) (int, error) {
	body := strings.TrimPrefix(tokens[i], "--")

	var attached string
	hasAttached := false
	if eq := strings.Index(body, "="); eq >= 0 {
		attached, hasAttached = body[eq+1:], true
		body = body[:eq]
	}

	opt, negated, ok := reg.resolveFlag(body)
	// Negation is a bare presence toggle; --no-x=value resolves nothing.
	if !ok || (negated && hasAttached) {
		return 0, &UnknownFlagError{Flag: "--" + body}
	}

	if opt.kind() == TypeBoolean {
		if hasAttached {
			v, err := coerceBool(opt.Name, attached)
			if err != nil {
				return 0, err
			}
			reg.setValue(opt, v)
			return 1, nil
		}
		reg.setValue(opt, !negated)
		return 1, nil
	}

	// A choice option with an empty allowed set fails no matter what
	// token follows, even a missing one.
	if opt.kind() == TypeChoice && len(opt.Choices) == 0 {
		return 0, &InvalidChoiceError{Option: opt.Name, NoChoices: true}
	}

	raw, consumed, ok := flagValue(attached, hasAttached, tokens, i)
	if !ok {
		return 0, &MissingValueError{Option: opt.Name}
	}
	v, err := coerceValue(opt, raw)
	if err != nil {
		return 0, err
	}
	reg.setValue(opt, v)
	return consumed, nil
}

// flagValue returns the raw value for a non-boolean flag: the
// =-attached text (which may be empty), or the next token when one
// exists and does not itself look like a flag.
func flagValue(attached string, hasAttached bool, tokens []string, i int) (raw string, consumed int, ok bool) {
	if hasAttached {
		return attached, 1, true
	}
	if i+1 < len(tokens) && !isFlag(tokens[i+1]) {
		return tokens[i+1], 2, true
	}
	return "", 0, false
}
