/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package grammar

import (
	"strings"

	"github.com/fieldnote/fieldnote/pkg/schema"
)

// IRecordFormat renders records of a single record type as a line of
// tokens and parses such lines back into field values.
//
// A record format is compiled from a specification string of
// whitespace-separated items. An item is either a literal token, which must
// appear verbatim in every formatted line, or a field placeholder «{name}»
// or «{name:extra}» naming a field of the record type; the extra text is
// handed to the field format factory. A literal ending with «*» is the
// keyword: the token a document format dispatches on to recognize lines of
// this type. The star is not part of the emitted token.
type IRecordFormat interface {
	// Type returns the record type this format renders.
	Type() schema.IRecordType

	// Keyword returns the dispatch keyword and its token position.
	Keyword() (string, int)

	// TokenCount returns the number of tokens in a formatted line.
	TokenCount() int

	// FieldOrder returns the field names in placeholder order.
	FieldOrder() []string

	// FieldFormat returns the format of the named field. Panics
	// (ErrNotFoundError) if the format has no placeholder for the name.
	FieldFormat(name string) IFieldFormat

	// FormatFieldValue renders a single field value with the field's
	// format in the given mode.
	FormatFieldValue(name string, value any, editing bool) string

	// Format renders a record as a line of space-separated tokens.
	Format(rec schema.IRecord, editing bool) string

	// ParseTokens parses a tokenized line into field values, keyed by
	// field name. The token count and every literal must match.
	ParseTokens(tokens []string, editing bool) (map[string]any, error)

	// Parse tokenizes a display-mode line and parses it.
	Parse(line string) (map[string]any, error)
}

type formatItem struct {
	literal string // literal token text; empty for a field item
	field   string // field name; empty for a literal item
	format  IFieldFormat
}

// # Implements:
//   - IRecordFormat
type recordFormat struct {
	typ        schema.IRecordType
	items      []formatItem
	fields     map[string]IFieldFormat
	order      []string
	keyword    string
	keywordPos int
}

// NewRecordFormat compiles a format specification for a record type.
//
// # Panics:
//   - ErrBadFormatError on a malformed placeholder, a duplicate field or a
//     missing keyword,
//   - ErrNotFoundError if a placeholder names an unknown field.
func NewRecordFormat(typ schema.IRecordType, spec string) IRecordFormat {
	f := &recordFormat{
		typ:        typ,
		fields:     make(map[string]IFieldFormat),
		keywordPos: -1,
	}
	for _, word := range strings.Fields(spec) {
		switch {
		case strings.HasPrefix(word, "{"):
			f.addField(word)
		default:
			f.addLiteral(word)
		}
	}
	if f.keywordPos < 0 {
		panic(ErrBadFormat("format for «%s» has no keyword item", typ.Name()))
	}
	return f
}

func (f *recordFormat) addField(word string) {
	if !strings.HasSuffix(word, "}") {
		panic(ErrBadFormat("unterminated replacement field «%s» in format for «%s»", word, f.typ.Name()))
	}
	name, extra, _ := strings.Cut(word[1:len(word)-1], ":")
	if name == "" {
		panic(ErrBadFormat("empty replacement field in format for «%s»", f.typ.Name()))
	}
	if _, ok := f.fields[name]; ok {
		panic(ErrBadFormat("duplicate replacement field «%s» in format for «%s»", name, f.typ.Name()))
	}
	fld := f.typ.Field(name)
	if fld == nil {
		panic(schema.ErrFieldNotFound(f.typ, name))
	}
	format := FieldFormatFor(fld.Kind(), extra)
	f.items = append(f.items, formatItem{field: name, format: format})
	f.fields[name] = format
	f.order = append(f.order, name)
}

func (f *recordFormat) addLiteral(word string) {
	if strings.ContainsAny(word, "{}") {
		panic(ErrBadFormat("stray brace in literal «%s» in format for «%s»", word, f.typ.Name()))
	}
	if len(word) > 1 && strings.HasSuffix(word, "*") {
		// the star marks a keyword candidate and is never part of the
		// literal text; only the first starred literal becomes the key
		word = word[:len(word)-1]
		if f.keywordPos < 0 {
			f.keyword = word
			f.keywordPos = len(f.items)
		}
	}
	f.items = append(f.items, formatItem{literal: word})
}

func (f *recordFormat) Type() schema.IRecordType { return f.typ }

func (f *recordFormat) Keyword() (string, int) { return f.keyword, f.keywordPos }

func (f *recordFormat) TokenCount() int { return len(f.items) }

func (f *recordFormat) FieldOrder() []string {
	order := make([]string, len(f.order))
	copy(order, f.order)
	return order
}

func (f *recordFormat) FieldFormat(name string) IFieldFormat {
	format, ok := f.fields[name]
	if !ok {
		panic(ErrNotFound("format for «%s» has no replacement field «%s»", f.typ.Name(), name))
	}
	return format
}

func (f *recordFormat) FormatFieldValue(name string, value any, editing bool) string {
	return f.FieldFormat(name).Format(value, editing)
}

func (f *recordFormat) Format(rec schema.IRecord, editing bool) string {
	tokens := make([]string, 0, len(f.items))
	for _, item := range f.items {
		if item.field == "" {
			tokens = append(tokens, item.literal)
			continue
		}
		tokens = append(tokens, item.format.Format(rec.Get(item.field), editing))
	}
	return strings.Join(tokens, " ")
}

func (f *recordFormat) ParseTokens(tokens []string, editing bool) (map[string]any, error) {
	if len(tokens) != len(f.items) {
		return nil, ErrBadFormat("«%s» record needs %d tokens, but found %d", f.typ.Name(), len(f.items), len(tokens))
	}
	values := make(map[string]any, len(f.fields))
	for i, item := range f.items {
		if item.field == "" {
			if tokens[i] != item.literal {
				return nil, ErrBadFormat("expected «%s», but found «%s»", item.literal, tokens[i])
			}
			continue
		}
		v, err := item.format.Parse(tokens[i], editing)
		if err != nil {
			return nil, EnrichError(err, "field «%s»", item.field)
		}
		values[item.field] = v
	}
	return values, nil
}

func (f *recordFormat) Parse(line string) (map[string]any, error) {
	return f.parse(line, false)
}

func (f *recordFormat) parse(line string, editing bool) (map[string]any, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	return f.ParseTokens(tokens, editing)
}
