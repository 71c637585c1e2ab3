/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package grammar

import (
	"sort"
	"strings"

	"github.com/fieldnote/fieldnote/pkg/schema"
)

// IDocumentFormat renders and parses whole documents: one record per line,
// heterogeneous record types told apart by their keyword tokens.
type IDocumentFormat interface {
	// Name returns the grammar name, e.g. "Shore Survey Grammar 1.0".
	Name() string

	// Types returns the record types in declaration order.
	Types() []schema.IRecordType

	// Type returns the named record type, or nil if unknown.
	Type(name string) schema.IRecordType

	// RecordFormat returns the format of the named record type. Panics
	// (ErrNotFoundError) on an unknown name.
	RecordFormat(typeName string) IRecordFormat

	// Dispatch finds the record format whose keyword matches the
	// tokenized line. Returns an error wrapping ErrBadFormatError when no
	// keyword matches.
	Dispatch(tokens []string) (IRecordFormat, error)

	// ParseRecord parses one display-mode line into a new record,
	// dispatching on the keyword. Unset fields take their defaults, with
	// ctx handed to default providers.
	ParseRecord(line string, ctx any) (schema.IRecord, error)

	// FormatDocument renders records one per line, each line
	// newline-terminated.
	FormatDocument(records []schema.IRecord) string

	// ParseDocument parses text into records, skipping blank lines.
	// Errors are annotated with a line number counted from startLine+1, so
	// callers that consumed leading lines (a file header) pass the count
	// consumed and get file-absolute numbers.
	ParseDocument(text string, startLine int, ctx any) ([]schema.IRecord, error)
}

// FormatDef binds a record type to its format specification string.
type FormatDef struct {
	Type schema.IRecordType
	Spec string
}

// DocumentFormatDef declares a named document format.
type DocumentFormatDef struct {
	Name    string
	Formats []FormatDef
}

// keywordSet maps keyword token to record format for one token position.
type keywordSet struct {
	pos  int
	keys map[string]IRecordFormat
}

// # Implements:
//   - IDocumentFormat
type documentFormat struct {
	name    string
	types   []schema.IRecordType
	formats map[string]IRecordFormat // by record type name
	// dispatch order: keyword sets sorted by increasing cardinality, so a
	// position with few distinct keywords is tried before a crowded one
	dispatch []keywordSet
}

// NewDocumentFormat compiles a document format definition.
//
// # Panics:
//   - ErrBadFormatError on a duplicate record type name or on two formats
//     sharing a keyword at the same token position,
//   - whatever NewRecordFormat panics with for a bad format spec.
func NewDocumentFormat(def DocumentFormatDef) IDocumentFormat {
	f := &documentFormat{
		name:    def.Name,
		formats: make(map[string]IRecordFormat),
	}
	byPos := make(map[int]map[string]IRecordFormat)
	for _, fd := range def.Formats {
		name := fd.Type.Name()
		if _, ok := f.formats[name]; ok {
			panic(ErrBadFormat("record type «%s» is declared twice in document format «%s»", name, def.Name))
		}
		rf := NewRecordFormat(fd.Type, fd.Spec)
		f.types = append(f.types, fd.Type)
		f.formats[name] = rf

		key, pos := rf.Keyword()
		keys, ok := byPos[pos]
		if !ok {
			keys = make(map[string]IRecordFormat)
			byPos[pos] = keys
		}
		if other, ok := keys[key]; ok {
			panic(ErrBadFormat("keyword «%s» at token %d is claimed by both «%s» and «%s» in document format «%s»",
				key, pos, other.Type().Name(), name, def.Name))
		}
		keys[key] = rf
	}
	for pos, keys := range byPos {
		f.dispatch = append(f.dispatch, keywordSet{pos: pos, keys: keys})
	}
	sort.Slice(f.dispatch, func(i, j int) bool {
		if len(f.dispatch[i].keys) != len(f.dispatch[j].keys) {
			return len(f.dispatch[i].keys) < len(f.dispatch[j].keys)
		}
		return f.dispatch[i].pos < f.dispatch[j].pos
	})
	return f
}

func (f *documentFormat) Name() string { return f.name }

func (f *documentFormat) Types() []schema.IRecordType {
	types := make([]schema.IRecordType, len(f.types))
	copy(types, f.types)
	return types
}

func (f *documentFormat) Type(name string) schema.IRecordType {
	if rf, ok := f.formats[name]; ok {
		return rf.Type()
	}
	return nil
}

func (f *documentFormat) RecordFormat(typeName string) IRecordFormat {
	rf, ok := f.formats[typeName]
	if !ok {
		panic(ErrNotFound("document format «%s» has no record type «%s»", f.name, typeName))
	}
	return rf
}

func (f *documentFormat) Dispatch(tokens []string) (IRecordFormat, error) {
	for _, set := range f.dispatch {
		if set.pos >= len(tokens) {
			continue
		}
		if rf, ok := set.keys[tokens[set.pos]]; ok {
			return rf, nil
		}
	}
	return nil, ErrBadFormat("record type could not be determined")
}

func (f *documentFormat) ParseRecord(line string, ctx any) (schema.IRecord, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	rf, err := f.Dispatch(tokens)
	if err != nil {
		return nil, err
	}
	values, err := rf.ParseTokens(tokens, false)
	if err != nil {
		return nil, err
	}
	return rf.Type().NewRecord(ctx, values)
}

func (f *documentFormat) FormatDocument(records []schema.IRecord) string {
	var b strings.Builder
	for _, rec := range records {
		b.WriteString(f.RecordFormat(rec.Type().Name()).Format(rec, false))
		b.WriteByte('\n')
	}
	return b.String()
}

func (f *documentFormat) ParseDocument(text string, startLine int, ctx any) ([]schema.IRecord, error) {
	records := []schema.IRecord{}
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := f.ParseRecord(line, ctx)
		if err != nil {
			return nil, &ParseError{Line: startLine + i + 1, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}
