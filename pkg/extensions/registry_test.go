/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package extensions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fieldnote/fieldnote/pkg/command"
	"github.com/fieldnote/fieldnote/pkg/grammar"
	"github.com/fieldnote/fieldnote/pkg/schema"
)

func newTestFormat(name string) grammar.IDocumentFormat {
	typ := schema.NewRecordType(schema.RecordTypeDef{
		Name: "Obs",
		Fields: map[string]schema.IField{
			"x": schema.NewInteger(schema.IntegerDef{}),
		},
	})
	return grammar.NewDocumentFormat(grammar.DocumentFormatDef{
		Name:    name,
		Formats: []grammar.FormatDef{{Type: typ, Spec: "Obs* {x}"}},
	})
}

func TestRegistryDocumentFormats(t *testing.T) {
	require := require.New(t)
	r := NewRegistry()

	_, ok := r.DocumentFormat("Grammar B")
	require.False(ok)
	require.Empty(r.DocumentFormatNames())

	b, a := newTestFormat("Grammar B"), newTestFormat("Grammar A")
	r.AddDocumentFormat(b)
	r.AddDocumentFormat(a)

	got, ok := r.DocumentFormat("Grammar B")
	require.True(ok)
	require.Same(b, got)
	require.Equal([]string{"Grammar A", "Grammar B"}, r.DocumentFormatNames())

	require.Panics(func() { r.AddDocumentFormat(newTestFormat("Grammar A")) })
}

func TestRegistryInterpreters(t *testing.T) {
	require := require.New(t)
	r := NewRegistry()

	f := newTestFormat("Grammar A")
	r.AddDocumentFormat(f)
	r.AddInterpreterFactory("Grammar A", func(docFormat grammar.IDocumentFormat) command.IInterpreter {
		return command.NewInterpreter(docFormat, []command.CommandDef{
			{Format: "o x", Type: docFormat.Type("Obs")},
		})
	})

	i, ok := r.NewInterpreter("Grammar A")
	require.True(ok)
	require.Equal([]string{"o"}, i.CommandNames())

	_, ok = r.NewInterpreter("Grammar B")
	require.False(ok)

	require.Panics(func() { r.AddInterpreterFactory("Grammar A", nil) })
}
