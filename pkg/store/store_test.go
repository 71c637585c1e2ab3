/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fieldnote/fieldnote/pkg/document"
	"github.com/fieldnote/fieldnote/pkg/extensions"
	"github.com/fieldnote/fieldnote/pkg/grammar"
	"github.com/fieldnote/fieldnote/pkg/schema"
)

func newTestRegistry() extensions.IRegistry {
	pod := schema.NewRecordType(schema.RecordTypeDef{
		Name: "Pod",
		Fields: map[string]schema.IField{
			"id":        schema.NewInteger(schema.IntegerDef{}),
			"numWhales": schema.NewInteger(schema.IntegerDef{}),
		},
	})
	reg := extensions.NewRegistry()
	reg.AddDocumentFormat(grammar.NewDocumentFormat(grammar.DocumentFormatDef{
		Name:    "Test Grammar 1.0",
		Formats: []grammar.FormatDef{{Type: pod, Spec: "Pod* {id} Whales {numWhales}"}},
	}))
	return reg
}

func newTestDocument(t *testing.T, reg extensions.IRegistry, ids ...int) (*document.Document, grammar.IDocumentFormat) {
	t.Helper()
	require := require.New(t)

	docFormat, ok := reg.DocumentFormat("Test Grammar 1.0")
	require.True(ok)

	records := make([]schema.IRecord, len(ids))
	for i, id := range ids {
		rec, err := docFormat.Type("Pod").NewRecord(nil, map[string]any{"id": id, "numWhales": id + 1})
		require.NoError(err)
		records[i] = rec
	}
	return document.New(document.Def{Records: records, Format: docFormat}), docFormat
}

func openTestStore(t *testing.T) IDocStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "docs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDocStorePutGet(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry()
	s := openTestStore(t)

	doc, docFormat := newTestDocument(t, reg, 1, 2)
	require.NoError(s.Put("february survey", doc, docFormat))

	got, err := s.Get("february survey", reg, nil)
	require.NoError(err)
	require.Equal(2, got.Len())
	require.True(doc.Record(0).Equal(got.Record(0)))
	require.True(doc.Record(1).Equal(got.Record(1)))
	require.Equal("Test Grammar 1.0", got.Format().Name())

	// overwrite
	doc2, _ := newTestDocument(t, reg, 7)
	require.NoError(s.Put("february survey", doc2, docFormat))
	got, err = s.Get("february survey", reg, nil)
	require.NoError(err)
	require.Equal(1, got.Len())
}

func TestDocStoreGetUnknown(t *testing.T) {
	require := require.New(t)
	s := openTestStore(t)

	_, err := s.Get("bobo", newTestRegistry(), nil)
	require.ErrorIs(err, ErrDocumentNotFoundError)
}

func TestDocStoreNamesAndDelete(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry()
	s := openTestStore(t)

	names, err := s.Names()
	require.NoError(err)
	require.Empty(names)

	doc, docFormat := newTestDocument(t, reg, 1)
	require.NoError(s.Put("b", doc, docFormat))
	require.NoError(s.Put("a", doc, docFormat))

	names, err = s.Names()
	require.NoError(err)
	require.Equal([]string{"a", "b"}, names)

	require.NoError(s.Delete("a"))
	require.NoError(s.Delete("bobo")) // unknown name is fine

	names, err = s.Names()
	require.NoError(err)
	require.Equal([]string{"b"}, names)
}

func TestDocStoreReopen(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry()
	path := filepath.Join(t.TempDir(), "docs.db")

	s, err := Open(path)
	require.NoError(err)
	doc, docFormat := newTestDocument(t, reg, 3)
	require.NoError(s.Put("survey", doc, docFormat))
	require.NoError(s.Close())

	s, err = Open(path)
	require.NoError(err)
	defer s.Close()

	got, err := s.Get("survey", reg, nil)
	require.NoError(err)
	require.Equal(3, got.Record(0).Get("id"))
}
