/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package schema

import "strings"

// StringDef is the declaration of a string field.
type StringDef struct {
	Units string
	Range string
	Doc   string

	// Default value, nil if none
	Default any

	// Optional enumeration of allowed values
	Values []string

	// Optional alias → canonical value map, applied on every assignment
	// before validation. Translated values must pass the enumeration.
	Translations map[string]string
}

// # Implements:
//   - IField
type stringField struct {
	field
	values       []string
	valuesSet    map[string]bool
	translations map[string]string
}

// NewString creates a string field. Panics (ErrWrongTypeError or
// ErrOutOfRangeError) if the default or a translation target is not a valid
// field value.
func NewString(def StringDef) IField {
	f := &stringField{
		field:        makeField(Kind_String, def.Units, def.Range, def.Doc),
		translations: def.Translations,
	}
	if def.Values != nil {
		f.values = append(f.values, def.Values...)
		f.valuesSet = make(map[string]bool, len(f.values))
		for _, v := range f.values {
			f.valuesSet[v] = true
		}
		if f.rng == "" {
			f.rng = formatStringSet(f.values)
		}
	}
	for _, v := range def.Translations {
		if err := f.Validate(v); err != nil {
			panic(EnrichError(err, "translation value «%s»", v))
		}
	}
	setDefault(f, &f.def, def.Default)
	return f
}

func (f *stringField) Normalize(value any) any {
	if s, ok := value.(string); ok && f.translations != nil {
		if t, ok := f.translations[s]; ok {
			return t
		}
	}
	return value
}

func (f *stringField) Validate(value any) error {
	if value == nil {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return ErrWrongType("string field value must be string, but found %T", value)
	}
	if f.valuesSet != nil && !f.valuesSet[s] {
		return ErrOutOfRange("string field value %s must be in the set %s", quote(s), formatStringSet(f.values))
	}
	return nil
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

func formatStringSet(values []string) string {
	ss := make([]string, len(values))
	for i, v := range values {
		ss[i] = quote(v)
	}
	return "{" + strings.Join(ss, ", ") + "}"
}
