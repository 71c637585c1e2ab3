/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package schema

// DateDef is the declaration of a date field. Date fields carry no numeric
// range checking: structural validity is enforced by the grammar parser.
type DateDef struct {
	Units   string
	Range   string
	Doc     string
	Default any
}

// # Implements:
//   - IField
type dateField struct {
	field
}

func NewDate(def DateDef) IField {
	f := &dateField{field: makeField(Kind_Date, def.Units, def.Range, def.Doc)}
	setDefault(f, &f.def, def.Default)
	return f
}

func (f *dateField) Validate(value any) error {
	if value == nil {
		return nil
	}
	if _, ok := value.(Date); !ok {
		return ErrWrongType("date field value must be schema.Date, but found %T", value)
	}
	return nil
}

// TimeDef is the declaration of a time field.
type TimeDef struct {
	Units   string
	Range   string
	Doc     string
	Default any
}

// # Implements:
//   - IField
type timeField struct {
	field
}

func NewTime(def TimeDef) IField {
	f := &timeField{field: makeField(Kind_Time, def.Units, def.Range, def.Doc)}
	setDefault(f, &f.def, def.Default)
	return f
}

func (f *timeField) Validate(value any) error {
	if value == nil {
		return nil
	}
	if _, ok := value.(Time); !ok {
		return ErrWrongType("time field value must be schema.Time, but found %T", value)
	}
	return nil
}
