/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

// Package command interprets terse keyboard commands, producing one new
// record per command line. A command names a record type and a short
// positional argument list; fields not covered by the arguments are filled
// from command-level default rules and then from the record type itself.
package command

import (
	"regexp"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/fieldnote/fieldnote/pkg/grammar"
	"github.com/fieldnote/fieldnote/pkg/schema"
)

// IInterpreter interprets command lines against one document format.
type IInterpreter interface {
	// CommandNames returns the known command names, sorted.
	CommandNames() []string

	// Interpret creates a new record from command text. A blank line
	// yields (nil, nil). The ctx argument is handed to default-rule
	// providers and to record construction.
	Interpret(line string, ctx any) (schema.IRecord, error)
}

// CommandDef declares one command.
//
// Format is the command name followed by the field names of the positional
// arguments, all space-separated, e.g. «p id numWhales». Argument tokens
// are parsed with the field formats of the record format the document
// format declares for Type, in display mode.
type CommandDef struct {
	Format   string
	Type     schema.IRecordType
	Defaults []schema.DefaultRule
}

type boundArg struct {
	name   string
	format grammar.IFieldFormat
}

type boundCommand struct {
	name     string
	typ      schema.IRecordType
	args     []boundArg
	defaults []schema.DefaultRule
}

// # Implements:
//   - IInterpreter
type interpreter struct {
	commands map[string]*boundCommand
}

// compound command tokens glue a trailing number onto the command name, so
// «p1» means «p 1»
var compoundTokenRe = regexp.MustCompile(`^(\D+)(\d+)$`)

// NewInterpreter binds command definitions to a document format.
//
// # Panics:
//   - ErrInvalidError (schema) on an empty or duplicate command name or a
//     bad default rule,
//   - ErrNotFoundError (grammar) if an argument field has no placeholder in
//     the record format,
//   - whatever the document format panics with for an unknown record type.
func NewInterpreter(docFormat grammar.IDocumentFormat, defs []CommandDef) IInterpreter {
	i := &interpreter{commands: make(map[string]*boundCommand)}
	for _, def := range defs {
		parts := strings.Fields(def.Format)
		if len(parts) == 0 {
			panic(schema.ErrInvalid("command format is empty"))
		}
		name := parts[0]
		if _, ok := i.commands[name]; ok {
			panic(schema.ErrInvalid("command «%s» is declared twice", name))
		}

		rf := docFormat.RecordFormat(def.Type.Name())
		cmd := &boundCommand{name: name, typ: def.Type, defaults: def.Defaults}
		for _, argName := range parts[1:] {
			cmd.args = append(cmd.args, boundArg{
				name:   argName,
				format: rf.FieldFormat(argName),
			})
		}
		for _, rule := range cmd.defaults {
			if len(rule.Names) == 0 {
				panic(schema.ErrInvalid("default rule for command «%s» names no fields", name))
			}
			for _, fieldName := range rule.Names {
				if def.Type.Field(fieldName) == nil {
					panic(schema.ErrFieldNotFound(def.Type, fieldName))
				}
			}
		}
		i.commands[name] = cmd
	}
	return i
}

func (i *interpreter) CommandNames() []string {
	names := maps.Keys(i.commands)
	slices.Sort(names)
	return names
}

func (i *interpreter) Interpret(line string, ctx any) (schema.IRecord, error) {
	tokens, err := grammar.Tokenize(line)
	if err != nil {
		return nil, EnrichError(err, "could not parse command")
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	cmd, args, err := i.resolve(tokens)
	if err != nil {
		return nil, err
	}
	return cmd.run(args, ctx)
}

// resolve finds the command named by the first token. When the first token
// is no command name, its trailing digits are split off and retried as a
// separate first argument.
func (i *interpreter) resolve(tokens []string) (*boundCommand, []string, error) {
	if cmd, ok := i.commands[tokens[0]]; ok {
		return cmd, tokens[1:], nil
	}
	if m := compoundTokenRe.FindStringSubmatch(tokens[0]); m != nil {
		if cmd, ok := i.commands[m[1]]; ok {
			return cmd, append([]string{m[2]}, tokens[1:]...), nil
		}
	}
	return nil, nil, ErrUnrecognizedCommand(tokens[0])
}

func (c *boundCommand) run(args []string, ctx any) (schema.IRecord, error) {
	if len(args) > len(c.args) {
		if len(c.args) == 0 {
			return nil, EnrichError(ErrTooManyArgsError, "command «%s» takes no arguments", c.name)
		}
		return nil, EnrichError(ErrTooManyArgsError,
			"command «%s» takes at most %d arguments, but found %d", c.name, len(c.args), len(args))
	}

	values := make(map[string]any, len(args))
	for i, arg := range args {
		v, err := c.args[i].format.Parse(arg, false)
		if err != nil {
			return nil, EnrichError(err, "argument «%s» of command «%s»", c.args[i].name, c.name)
		}
		values[c.args[i].name] = v
	}

	// command defaults fill fields not covered by the arguments; providers
	// run lazily so stateful ones are not consumed needlessly
	for _, rule := range c.defaults {
		unset := false
		for _, name := range rule.Names {
			if _, ok := values[name]; !ok {
				unset = true
				break
			}
		}
		if !unset {
			continue
		}
		vv := rule.Values
		if rule.Provide != nil {
			vv = rule.Provide(ctx)
			if len(vv) != len(rule.Names) {
				return nil, schema.ErrInvalid(
					"default rule provider for %v returned %d values", rule.Names, len(vv))
			}
		}
		for i, name := range rule.Names {
			if _, ok := values[name]; !ok {
				values[name] = vv[i]
			}
		}
	}

	return c.typ.NewRecord(ctx, values)
}
