// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optfile loads option and command definitions from TOML or
// YAML files and applies them to an optargs.Parser, so a tool's CLI
// surface can live in a versioned project file.
package optfile

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/optargs/optargs/pkg/optargs"
)

const fileVersion = 1

// File is the top-level definitions document.
type File struct {
	Version  int       `toml:"version,omitempty" yaml:"version,omitempty"`
	Options  []Option  `toml:"options,omitempty" yaml:"options,omitempty"`
	Commands []Command `toml:"commands,omitempty" yaml:"commands,omitempty"`
}

// Option mirrors optargs.Option minus the callback, which has no file
// representation.
type Option struct {
	Name     string   `toml:"name" yaml:"name"`
	Type     string   `toml:"type,omitempty" yaml:"type,omitempty"`
	Default  any      `toml:"default,omitempty" yaml:"default,omitempty"`
	Choices  []string `toml:"choices,omitempty" yaml:"choices,omitempty"`
	NoNegate bool     `toml:"no_negate,omitempty" yaml:"no_negate,omitempty"`
	Required bool     `toml:"required,omitempty" yaml:"required,omitempty"`
}

// Command mirrors optargs.CommandSpec.
type Command struct {
	Name      string   `toml:"name" yaml:"name"`
	MinArgs   int      `toml:"min_args,omitempty" yaml:"min_args,omitempty"`
	MaxArgs   int      `toml:"max_args,omitempty" yaml:"max_args,omitempty"`
	NamedArgs []string `toml:"named_args,omitempty" yaml:"named_args,omitempty"`
	Options   []Option `toml:"options,omitempty" yaml:"options,omitempty"`
}

// Load reads a definitions file, picking the decoder by extension
// (.toml, .yaml or .yml), and validates it.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported definitions format %q", ext)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

// Validate checks the document before it touches a parser, so Apply
// never trips the engine's registration panics.
func (f *File) Validate() error {
	if f.Version > fileVersion {
		return fmt.Errorf("unsupported definitions version %d (newest known is %d)", f.Version, fileVersion)
	}
	if err := validateOptions(f.Options, "root scope"); err != nil {
		return err
	}
	seen := make(map[string]bool)
	for _, c := range f.Commands {
		if c.Name == "" {
			return fmt.Errorf("command with empty name")
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate command %q", c.Name)
		}
		seen[c.Name] = true
		if c.MinArgs < 0 || c.MaxArgs < 0 {
			return fmt.Errorf("command %q: negative arity bound", c.Name)
		}
		if c.MaxArgs > 0 && c.MinArgs > c.MaxArgs {
			return fmt.Errorf("command %q: min_args %d exceeds max_args %d", c.Name, c.MinArgs, c.MaxArgs)
		}
		if err := validateOptions(c.Options, fmt.Sprintf("command %q", c.Name)); err != nil {
			return err
		}
	}
	return nil
}

func validateOptions(opts []Option, scope string) error {
	seen := make(map[string]bool)
	for _, o := range opts {
		if o.Name == "" {
			return fmt.Errorf("%s: option with empty name", scope)
		}
		if o.Name == "help" {
			return fmt.Errorf("%s: option %q is built in", scope, o.Name)
		}
		if seen[o.Name] {
			return fmt.Errorf("%s: duplicate option %q", scope, o.Name)
		}
		seen[o.Name] = true

		switch o.Type {
		case "", "string", "boolean", "choice":
		default:
			return fmt.Errorf("%s: option %q: unknown type %q", scope, o.Name, o.Type)
		}
		if o.Type == "choice" && len(o.Choices) == 0 {
			return fmt.Errorf("%s: option %q: choice options need choices", scope, o.Name)
		}
		if o.Type != "choice" && len(o.Choices) > 0 {
			return fmt.Errorf("%s: option %q: choices require type choice", scope, o.Name)
		}
		if o.NoNegate && o.Type != "boolean" {
			return fmt.Errorf("%s: option %q: no_negate only applies to boolean options", scope, o.Name)
		}
		if err := validateDefault(o); err != nil {
			return fmt.Errorf("%s: option %q: %w", scope, o.Name, err)
		}
	}
	return nil
}

func validateDefault(o Option) error {
	if o.Default == nil {
		return nil
	}
	switch o.Type {
	case "boolean":
		if _, ok := o.Default.(bool); !ok {
			return fmt.Errorf("default %v is not a boolean", o.Default)
		}
	case "choice":
		s, ok := o.Default.(string)
		if !ok {
			return fmt.Errorf("default %v is not a string", o.Default)
		}
		if !slices.Contains(o.Choices, s) {
			return fmt.Errorf("default %q is not among the choices", s)
		}
	default:
		if _, ok := o.Default.(string); !ok {
			return fmt.Errorf("default %v is not a string", o.Default)
		}
	}
	return nil
}

// Apply registers the document's options and commands on p, in file
// order. The document must have passed Validate; Load does this.
func (f *File) Apply(p *optargs.Parser) {
	for _, o := range f.Options {
		p.AddOption(o.descriptor())
	}
	for _, c := range f.Commands {
		cmd := p.AddCommand(optargs.CommandSpec{
			Name:      c.Name,
			MinArgs:   c.MinArgs,
			MaxArgs:   c.MaxArgs,
			NamedArgs: c.NamedArgs,
		})
		for _, o := range c.Options {
			cmd.AddOption(o.descriptor())
		}
	}
}

func (o Option) descriptor() optargs.Option {
	return optargs.Option{
		Name:     o.Name,
		Type:     optargs.Type(o.Type),
		Default:  o.Default,
		Choices:  o.Choices,
		NoNegate: o.NoNegate,
		Required: o.Required,
	}
}
