/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

// Package docfile reads and writes field-note data files.
//
// A data file carries two header lines, a fixed first line identifying the
// file family and a second line naming the grammar, then a blank line and
// one record per non-blank line:
//
//	fieldnote data
//	grammar "Shore Survey Grammar 1.0"
//
//	Pod 1 Whales 2 Calves 1 Singers 0
//
// The named grammar is resolved through the extension registry; the codec
// work itself is done entirely by the document format. Marshal and
// Unmarshal expose the encoding to other persistence layers, so a stored
// document reads back the same whether it came from a file or a store.
package docfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/fieldnote/fieldnote/pkg/document"
	"github.com/fieldnote/fieldnote/pkg/extensions"
	"github.com/fieldnote/fieldnote/pkg/grammar"
	"github.com/fieldnote/fieldnote/pkg/schema"
)

const (
	headerLine    = "fieldnote data"
	grammarPrefix = "grammar "
	formatPrefix  = "format "
)

// File whose first line is not the field-note data header.
var ErrUnrecognizedFileError = errors.New("unrecognized file")

// Malformed or unresolvable header.
var ErrFileFormatError = errors.New("bad file format")

// Marshal encodes records as data-file text: header, grammar line, blank
// line, one record per line.
func Marshal(records []schema.IRecord, docFormat grammar.IDocumentFormat) []byte {
	var b strings.Builder
	b.WriteString(headerLine)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s%q\n\n", grammarPrefix, docFormat.Name())
	b.WriteString(docFormat.FormatDocument(records))
	return []byte(b.String())
}

// Unmarshal decodes data-file text, resolving the named grammar through
// the registry. The ctx argument is handed to record construction. Errors
// mention the name argument as the text's origin.
func Unmarshal(text []byte, reg extensions.IRegistry, ctx any, name string) ([]schema.IRecord, grammar.IDocumentFormat, error) {
	lines := splitLines(string(text))

	if len(lines) == 0 || strings.TrimSpace(lines[0]) != headerLine {
		return nil, nil, fmt.Errorf("%w: «%s» does not start with «%s»",
			ErrUnrecognizedFileError, name, headerLine)
	}
	docFormat, err := resolveFormat(lines, reg, name)
	if err != nil {
		return nil, nil, err
	}

	// records follow the two header lines; the format reports
	// text-absolute line numbers on errors
	records, err := docFormat.ParseDocument(strings.Join(lines[2:], "\n"), 2, ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("«%s»: %w", name, err)
	}
	return records, docFormat, nil
}

// IsFileRecognized reports whether the file starts with the field-note
// data header. Unreadable files are simply not recognized.
func IsFileRecognized(path string) bool {
	text, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	lines := splitLines(string(text))
	return len(lines) > 0 && strings.TrimSpace(lines[0]) == headerLine
}

// ReadDocument reads a data file, resolving its grammar through the
// registry. The ctx argument is handed to record construction.
func ReadDocument(path string, reg extensions.IRegistry, ctx any) (*document.Document, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	records, docFormat, err := Unmarshal(text, reg, ctx, path)
	if err != nil {
		return nil, err
	}

	if logger.IsVerbose() {
		logger.Verbose("read", fmt.Sprint(len(records)), "records from", path)
	}
	return document.New(document.Def{
		Records:  records,
		Format:   docFormat,
		FilePath: path,
	}), nil
}

// WriteDocument writes the document to path with the given format.
func WriteDocument(doc *document.Document, path string, docFormat grammar.IDocumentFormat) error {
	if err := os.WriteFile(path, Marshal(doc.Records(), docFormat), 0644); err != nil {
		return err
	}
	if logger.IsVerbose() {
		logger.Verbose("wrote", fmt.Sprint(doc.Len()), "records to", path)
	}
	return nil
}

func resolveFormat(lines []string, reg extensions.IRegistry, name string) (grammar.IDocumentFormat, error) {
	if len(lines) < 2 {
		return nil, formatError("format specification", name)
	}
	line := strings.TrimSpace(lines[1])

	var formatName string
	switch {
	case strings.HasPrefix(line, grammarPrefix):
		formatName = strings.TrimSpace(strings.TrimPrefix(line, grammarPrefix))
		if len(formatName) >= 2 && formatName[0] == '"' && formatName[len(formatName)-1] == '"' {
			formatName = formatName[1 : len(formatName)-1]
		}
		if formatName == "" {
			return nil, formatError("grammar name", name)
		}
	case strings.HasPrefix(line, formatPrefix):
		formatName = strings.TrimSpace(strings.TrimPrefix(line, formatPrefix))
		if formatName == "" {
			return nil, formatError("format name", name)
		}
	default:
		return nil, formatError("format specification", name)
	}

	docFormat, ok := reg.DocumentFormat(formatName)
	if !ok {
		return nil, fmt.Errorf("%w: unknown document format «%s» at line 2 of «%s»",
			ErrFileFormatError, formatName, name)
	}
	return docFormat, nil
}

func formatError(what, name string) error {
	return fmt.Errorf("%w: %s missing at line 2 of «%s»", ErrFileFormatError, what, name)
}

// splitLines splits on any of the Unix, Windows and old Macintosh line
// ending conventions.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
