/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package grammar

import (
	"github.com/fieldnote/fieldnote/pkg/schema"
)

// IFieldFormat converts between a field value and its token text.
//
// Every format supports two independent renderings. Display mode (editing
// false) is used for persistence and read-only presentation: strings are
// escaped and quoted when needed and a null value renders as NoneToken.
// Editing mode (editing true) is raw text for direct entry: strings are
// unescaped and unquoted and a null value renders as the empty string.
// Collaborators must parse with the same mode they formatted with.
type IFieldFormat interface {
	// Format renders a value as token text. A nil value renders as the
	// mode-specific null token. Panics on a value of the wrong runtime type;
	// values reach formats only through validated records.
	Format(value any, editing bool) string

	// Parse converts token text back to a value. The mode-specific null
	// token parses to nil. Returns an error wrapping ErrBadFormatError on
	// malformed text.
	Parse(token string, editing bool) (any, error)
}

// FieldFormatFactory creates a field format from the extra text of a
// field placeholder (empty when the placeholder has no extra).
type FieldFormatFactory func(extra string) IFieldFormat

// fieldFormatFactories is the format resolution table: one factory per field
// kind. The factory interprets the placeholder extra, so a float field may
// select the sexagesimal angle rendering with {name:angle} or a numeric
// template with {name:.3f}.
var fieldFormatFactories = map[schema.Kind]FieldFormatFactory{
	schema.Kind_String:  func(string) IFieldFormat { return NewStringFormat() },
	schema.Kind_Decimal: func(string) IFieldFormat { return NewDecimalFormat() },
	schema.Kind_Integer: NewIntegerFormat,
	schema.Kind_Float: func(extra string) IFieldFormat {
		if extra == "angle" {
			return NewAngleFormat()
		}
		return NewFloatFormat(extra)
	},
	schema.Kind_Date: func(string) IFieldFormat { return NewDateFormat() },
	schema.Kind_Time: func(string) IFieldFormat { return NewTimeFormat() },
}

// FieldFormatFor resolves the format for a field kind. Panics
// (ErrNotFoundError) if no format is registered for the kind.
func FieldFormatFor(kind schema.Kind, extra string) IFieldFormat {
	factory, ok := fieldFormatFactories[kind]
	if !ok {
		panic(ErrNotFound("no field format for field kind «%s»", kind))
	}
	return factory(extra)
}

func formatNone(editing bool) string {
	if editing {
		return ""
	}
	return NoneToken
}

func isNone(token string, editing bool) bool {
	if editing {
		return token == ""
	}
	return token == NoneToken
}
