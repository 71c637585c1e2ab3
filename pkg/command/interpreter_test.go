/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fieldnote/fieldnote/pkg/grammar"
	"github.com/fieldnote/fieldnote/pkg/schema"
)

type testContext struct {
	serials *schema.SerialNumberGenerator
}

func newTestInterpreter() IInterpreter {
	pod := schema.NewRecordType(schema.RecordTypeDef{
		Name: "Pod",
		Fields: map[string]schema.IField{
			"id":        schema.NewInteger(schema.IntegerDef{}),
			"numWhales": schema.NewInteger(schema.IntegerDef{}),
		},
	})
	comment := schema.NewRecordType(schema.RecordTypeDef{
		Name: "Comment",
		Fields: map[string]schema.IField{
			"id":   schema.NewInteger(schema.IntegerDef{}),
			"text": schema.NewString(schema.StringDef{}),
		},
	})
	docFormat := grammar.NewDocumentFormat(grammar.DocumentFormatDef{
		Name: "Command Test Grammar",
		Formats: []grammar.FormatDef{
			{Type: pod, Spec: "Pod* {id} Whales {numWhales}"},
			{Type: comment, Spec: "Comment* {id} {text}"},
		},
	})
	return NewInterpreter(docFormat, []CommandDef{
		{
			Format: "p id numWhales",
			Type:   pod,
		},
		{
			Format: "c text",
			Type:   comment,
			Defaults: []schema.DefaultRule{
				schema.Provider("id", func(ctx any) any {
					return ctx.(*testContext).serials.Next()
				}),
			},
		},
	})
}

func TestInterpretCommand(t *testing.T) {
	require := require.New(t)
	i := newTestInterpreter()

	rec, err := i.Interpret("p 1 2", nil)
	require.NoError(err)
	require.Equal("Pod", rec.Type().Name())
	require.Equal(1, rec.Get("id"))
	require.Equal(2, rec.Get("numWhales"))
}

func TestInterpretCompoundCommand(t *testing.T) {
	require := require.New(t)
	i := newTestInterpreter()

	// trailing digits split off the command name as the first argument
	rec, err := i.Interpret("p1 2", nil)
	require.NoError(err)
	require.Equal(1, rec.Get("id"))
	require.Equal(2, rec.Get("numWhales"))
}

func TestInterpretBlankCommand(t *testing.T) {
	require := require.New(t)
	i := newTestInterpreter()

	rec, err := i.Interpret("  ", nil)
	require.NoError(err)
	require.Nil(rec)
}

func TestInterpretQuotedArgument(t *testing.T) {
	require := require.New(t)
	i := newTestInterpreter()
	ctx := &testContext{serials: schema.NewSerialNumberGenerator(1)}

	rec, err := i.Interpret(`c "whale breached twice"`, ctx)
	require.NoError(err)
	require.Equal("whale breached twice", rec.Get("text"))
}

func TestInterpretDefaultProviders(t *testing.T) {
	require := require.New(t)
	i := newTestInterpreter()
	ctx := &testContext{serials: schema.NewSerialNumberGenerator(10)}

	rec, err := i.Interpret("c hello", ctx)
	require.NoError(err)
	require.Equal(10, rec.Get("id"))

	rec, err = i.Interpret("c again", ctx)
	require.NoError(err)
	require.Equal(11, rec.Get("id"))

	// an explicit argument must not consume the provider
	rec, err = i.Interpret("c7 explicit", ctx)
	require.NoError(err)
	require.Equal(7, rec.Get("id"))
	require.Equal(12, ctx.serials.Peek())
}

func TestInterpretErrors(t *testing.T) {
	require := require.New(t)
	i := newTestInterpreter()

	_, err := i.Interpret("bobo", nil)
	require.ErrorIs(err, ErrUnrecognizedCommandError)

	// digits split off, but the rest is still no command name
	_, err = i.Interpret("bobo1", nil)
	require.ErrorIs(err, ErrUnrecognizedCommandError)

	_, err = i.Interpret("p 1 2 3", nil)
	require.ErrorIs(err, ErrTooManyArgsError)

	_, err = i.Interpret("p bobo", nil)
	require.ErrorIs(err, grammar.ErrBadFormatError)
	require.ErrorContains(err, "«id»")

	_, err = i.Interpret(`p "unterminated`, nil)
	require.ErrorIs(err, grammar.ErrBadFormatError)
}

func TestInterpreterCommandNames(t *testing.T) {
	require := require.New(t)
	i := newTestInterpreter()
	require.Equal([]string{"c", "p"}, i.CommandNames())
}

func TestNewInterpreterErrors(t *testing.T) {
	require := require.New(t)

	typ := schema.NewRecordType(schema.RecordTypeDef{
		Name: "Obs",
		Fields: map[string]schema.IField{
			"x": schema.NewInteger(schema.IntegerDef{}),
			"y": schema.NewInteger(schema.IntegerDef{}),
		},
	})
	docFormat := grammar.NewDocumentFormat(grammar.DocumentFormatDef{
		Name:    "g",
		Formats: []grammar.FormatDef{{Type: typ, Spec: "Obs* {x}"}},
	})

	// empty format
	require.Panics(func() {
		NewInterpreter(docFormat, []CommandDef{{Format: " ", Type: typ}})
	})

	// argument field without a placeholder in the record format
	require.Panics(func() {
		NewInterpreter(docFormat, []CommandDef{{Format: "o y", Type: typ}})
	})

	// duplicate command name
	require.Panics(func() {
		NewInterpreter(docFormat, []CommandDef{
			{Format: "o x", Type: typ},
			{Format: "o", Type: typ},
		})
	})

	// default rule naming an unknown field
	require.Panics(func() {
		NewInterpreter(docFormat, []CommandDef{{
			Format:   "o x",
			Type:     typ,
			Defaults: []schema.DefaultRule{schema.Constant("bobo", 1)},
		}})
	})
}
