// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package usage renders help text for optargs parsers. The parsing
// engine exposes descriptors and never prints; this package owns text
// shaping, the printer, and optional process exit.
package usage

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/optargs/optargs/pkg/optargs"
)

// Seams for tests.
var (
	isTerminalFn = term.IsTerminal
	osExit       = os.Exit
)

// colorEnabled reports whether section headers should be colorized.
func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return false
	}
	return isTerminalFn(int(os.Stdout.Fd()))
}

func header(s string) string {
	if colorEnabled() {
		return color.New(color.Bold).Sprint(s)
	}
	return s
}

// Render generates the root help message for p. name is the program
// name shown in the usage line.
func Render(p *optargs.Parser, name string) string {
	var b strings.Builder

	b.WriteString(header("USAGE:") + "\n")
	if len(p.Commands()) > 0 {
		fmt.Fprintf(&b, "    %s [OPTIONS] COMMAND [ARGS...]\n\n", name)
	} else {
		fmt.Fprintf(&b, "    %s [OPTIONS] [ARGS...]\n\n", name)
	}

	if cmds := p.Commands(); len(cmds) > 0 {
		b.WriteString(header("COMMANDS:") + "\n")
		names := make([]string, 0, len(cmds))
		for _, c := range cmds {
			names = append(names, c.Name())
		}
		sort.Strings(names)
		for _, n := range names {
			c, _ := p.Command(n)
			fmt.Fprintf(&b, "    %-12s %s\n", n, commandUsage(c))
		}
		b.WriteString("\n")
	}

	writeOptions(&b, p.Options())

	if len(p.Commands()) > 0 {
		fmt.Fprintf(&b, "Run '%s COMMAND --help' for more information on a command.\n", name)
	}
	return b.String()
}

// RenderCommand generates help for one command of p.
func RenderCommand(p *optargs.Parser, c *optargs.Command, name string) string {
	var b strings.Builder

	b.WriteString(header("USAGE:") + "\n")
	fmt.Fprintf(&b, "    %s %s [OPTIONS]%s\n\n", name, c.Name(), argSuffix(c))

	spec := c.Spec()
	if len(spec.NamedArgs) > 0 {
		b.WriteString(header("ARGUMENTS:") + "\n")
		for i, arg := range spec.NamedArgs {
			marker := "optional"
			if i < spec.MinArgs {
				marker = "required"
			}
			fmt.Fprintf(&b, "    %-20s (%s)\n", strings.ToUpper(arg), marker)
		}
		b.WriteString("\n")
	}

	writeOptions(&b, c.Options())
	return b.String()
}

// commandUsage is the one-line argument summary shown in command lists.
func commandUsage(c *optargs.Command) string {
	suffix := strings.TrimSpace(argSuffix(c))
	if suffix == "" {
		return "[ARGS...]"
	}
	return suffix
}

func argSuffix(c *optargs.Command) string {
	spec := c.Spec()
	var parts []string
	for i, arg := range spec.NamedArgs {
		u := strings.ToUpper(arg)
		if i < spec.MinArgs {
			parts = append(parts, "<"+u+">")
		} else {
			parts = append(parts, "["+u+"]")
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

func writeOptions(b *strings.Builder, opts []optargs.Option) {
	b.WriteString(header("OPTIONS:") + "\n")
	for _, opt := range opts {
		if opt.Name == "help" {
			continue
		}
		flagStr := "    --" + opt.Name
		switch opt.Type {
		case optargs.TypeChoice:
			flagStr += " <" + strings.Join(opt.Choices, "|") + ">"
		case optargs.TypeBoolean:
		default:
			flagStr += " VALUE"
		}

		var notes []string
		if opt.Required {
			notes = append(notes, "required")
		}
		if opt.Default != nil {
			notes = append(notes, fmt.Sprintf("default: %v", opt.Default))
		}
		if len(notes) > 0 {
			fmt.Fprintf(b, "%-28s (%s)\n", flagStr, strings.Join(notes, ", "))
		} else {
			fmt.Fprintf(b, "%s\n", flagStr)
		}
	}
	fmt.Fprintf(b, "%-28s %s\n\n", "    --help", "Show help")
}

// Print renders the root help through the parser's configured printer
// and, when the parser allows it, exits the process.
func Print(p *optargs.Parser, name string) {
	p.Config().Printer(Render(p, name))
	maybeExit(p)
}

// PrintCommand renders one command's help through the parser's
// configured printer and, when the parser allows it, exits the process.
func PrintCommand(p *optargs.Parser, c *optargs.Command, name string) {
	p.Config().Printer(RenderCommand(p, c, name))
	maybeExit(p)
}

func maybeExit(p *optargs.Parser) {
	if p.Config().AllowProcessExit {
		osExit(0)
	}
}
