/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package docfile

import (
	"os"
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

func writeTestFile(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survey.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestReadDocument(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry()

	path := writeTestFile(t,
		"fieldnote data\n"+
			"grammar \"Test Grammar 1.0\"\n"+
			"\n"+
			"Pod 1 Whales 2\n"+
			"Pod 2 Whales 3\n")

	doc, err := ReadDocument(path, reg, nil)
	require.NoError(err)
	require.Equal(2, doc.Len())
	require.Equal(1, doc.Record(0).Get("id"))
	require.Equal(3, doc.Record(1).Get("numWhales"))
	require.Equal(path, doc.FilePath())
	require.Equal("Test Grammar 1.0", doc.Format().Name())
	require.True(doc.Saved())
}

func TestReadDocumentNewlineConventions(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry()

	for _, eol := range []string{"\n", "\r\n", "\r"} {
		path := writeTestFile(t,
			"fieldnote data"+eol+
				"format Test Grammar 1.0"+eol+
				eol+
				"Pod 1 Whales 2"+eol)

		doc, err := ReadDocument(path, reg, nil)
		require.NoError(err, "eol: %q", eol)
		require.Equal(1, doc.Len())
	}
}

func TestReadDocumentErrors(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry()

	_, err := ReadDocument(filepath.Join(t.TempDir(), "missing.txt"), reg, nil)
	require.Error(err)

	path := writeTestFile(t, "something else\n")
	_, err = ReadDocument(path, reg, nil)
	require.ErrorIs(err, ErrUnrecognizedFileError)

	path = writeTestFile(t, "fieldnote data\nbobo\n")
	_, err = ReadDocument(path, reg, nil)
	require.ErrorIs(err, ErrFileFormatError)

	path = writeTestFile(t, "fieldnote data\ngrammar \"\"\n")
	_, err = ReadDocument(path, reg, nil)
	require.ErrorIs(err, ErrFileFormatError)

	path = writeTestFile(t, "fieldnote data\ngrammar \"No Such Grammar\"\n")
	_, err = ReadDocument(path, reg, nil)
	require.ErrorIs(err, ErrFileFormatError)

	// a bad record line is reported with its file-absolute line number
	path = writeTestFile(t,
		"fieldnote data\n"+
			"grammar \"Test Grammar 1.0\"\n"+
			"\n"+
			"Pod 1 Whales 2\n"+
			"Vessel 1\n")
	_, err = ReadDocument(path, reg, nil)
	require.ErrorIs(err, grammar.ErrBadFormatError)
	var perr *grammar.ParseError
	require.ErrorAs(err, &perr)
	require.Equal(5, perr.Line)
}

func TestWriteAndReadDocumentRoundTrip(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry()
	docFormat, _ := reg.DocumentFormat("Test Grammar 1.0")

	rec, err := docFormat.Type("Pod").NewRecord(nil, map[string]any{"id": 1, "numWhales": 2})
	require.NoError(err)
	doc := document.New(document.Def{Records: []schema.IRecord{rec}, Format: docFormat})

	path := filepath.Join(t.TempDir(), "survey.txt")
	require.NoError(WriteDocument(doc, path, docFormat))

	text, err := os.ReadFile(path)
	require.NoError(err)
	require.Equal(
		"fieldnote data\n"+
			"grammar \"Test Grammar 1.0\"\n"+
			"\n"+
			"Pod 1 Whales 2\n",
		string(text))

	got, err := ReadDocument(path, reg, nil)
	require.NoError(err)
	require.Equal(1, got.Len())
	require.True(rec.Equal(got.Record(0)))
}

func TestIsFileRecognized(t *testing.T) {
	require := require.New(t)

	require.True(IsFileRecognized(writeTestFile(t, "fieldnote data\ngrammar \"g\"\n")))
	require.True(IsFileRecognized(writeTestFile(t, "  fieldnote data  \r\n")))
	require.False(IsFileRecognized(writeTestFile(t, "aardvark data\n")))
	require.False(IsFileRecognized(writeTestFile(t, "")))
	require.False(IsFileRecognized(filepath.Join(t.TempDir(), "missing.txt")))
}
