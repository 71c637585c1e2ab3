/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package schema

import "strconv"

// IntegerDef is the declaration of an integer field.
//
// Bounds are inclusive unless the corresponding Exclusive flag is set.
type IntegerDef struct {
	Units string
	Range string
	Doc   string

	Default any

	Min, Max                   *int
	MinExclusive, MaxExclusive bool
}

// # Implements:
//   - IField
type intField struct {
	field
	min, max         *int
	minExcl, maxExcl bool
}

// NewInteger creates an integer field. Panics if the default violates the
// declared bounds or is not an integer.
func NewInteger(def IntegerDef) IField {
	f := &intField{
		field:   makeField(Kind_Integer, def.Units, def.Range, def.Doc),
		min:     def.Min,
		max:     def.Max,
		minExcl: def.MinExclusive,
		maxExcl: def.MaxExclusive,
	}
	if f.rng == "" {
		f.rng = rangeString(f.min != nil, f.max != nil, !f.minExcl, !f.maxExcl,
			func() string { return strconv.Itoa(*f.min) },
			func() string { return strconv.Itoa(*f.max) })
	}
	setDefault(f, &f.def, def.Default)
	return f
}

func (f *intField) Validate(value any) error {
	if value == nil {
		return nil
	}
	v, ok := value.(int)
	if !ok {
		return ErrWrongType("integer field value must be int, but found %T", value)
	}
	return checkBounds(float64(v), strconv.Itoa(v),
		f.min != nil, f.max != nil, f.minExcl, f.maxExcl,
		func() (float64, string) { return float64(*f.min), strconv.Itoa(*f.min) },
		func() (float64, string) { return float64(*f.max), strconv.Itoa(*f.max) })
}

// FloatDef is the declaration of a float field.
type FloatDef struct {
	Units string
	Range string
	Doc   string

	Default any

	Min, Max                   *float64
	MinExclusive, MaxExclusive bool
}

// # Implements:
//   - IField
type floatField struct {
	field
	min, max         *float64
	minExcl, maxExcl bool
}

// NewFloat creates a float field. Float fields accept both int and float64
// values on assignment; int values are stored as float64.
func NewFloat(def FloatDef) IField {
	f := &floatField{
		field:   makeField(Kind_Float, def.Units, def.Range, def.Doc),
		min:     def.Min,
		max:     def.Max,
		minExcl: def.MinExclusive,
		maxExcl: def.MaxExclusive,
	}
	if f.rng == "" {
		f.rng = rangeString(f.min != nil, f.max != nil, !f.minExcl, !f.maxExcl,
			func() string { return formatFloat(*f.min) },
			func() string { return formatFloat(*f.max) })
	}
	setDefault(f, &f.def, def.Default)
	return f
}

func (f *floatField) Normalize(value any) any {
	if i, ok := value.(int); ok {
		return float64(i)
	}
	return value
}

func (f *floatField) Validate(value any) error {
	if value == nil {
		return nil
	}
	var v float64
	switch n := value.(type) {
	case float64:
		v = n
	case int:
		v = float64(n)
	default:
		return ErrWrongType("float field value must be float64 or int, but found %T", value)
	}
	return checkBounds(v, formatFloat(v),
		f.min != nil, f.max != nil, f.minExcl, f.maxExcl,
		func() (float64, string) { return *f.min, formatFloat(*f.min) },
		func() (float64, string) { return *f.max, formatFloat(*f.max) })
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

// checkBounds performs the shared numeric range check. Bound accessors are
// only invoked when the corresponding bound is declared.
func checkBounds(v float64, vs string, hasMin, hasMax, minExcl, maxExcl bool,
	min, max func() (float64, string)) error {

	if hasMin {
		b, bs := min()
		if minExcl {
			if v <= b {
				return ErrOutOfRange("field value %s is not greater than lower bound of %s", vs, bs)
			}
		} else if v < b {
			return ErrOutOfRange("field value %s is less than minimum allowed value of %s", vs, bs)
		}
	}
	if hasMax {
		b, bs := max()
		if maxExcl {
			if v >= b {
				return ErrOutOfRange("field value %s is not less than upper bound of %s", vs, bs)
			}
		} else if v > b {
			return ErrOutOfRange("field value %s is greater than maximum allowed value of %s", vs, bs)
		}
	}
	return nil
}

// rangeString derives the human-readable range description, e.g. "in [0, 360)"
// or "greater than or equal to 0". Returns "" when no bound is declared.
func rangeString(hasMin, hasMax, minIncl, maxIncl bool, min, max func() string) string {
	switch {
	case hasMin && hasMax:
		left, right := "(", ")"
		if minIncl {
			left = "["
		}
		if maxIncl {
			right = "]"
		}
		return "in " + left + min() + ", " + max() + right
	case hasMin:
		if minIncl {
			return "greater than or equal to " + min()
		}
		return "greater than " + min()
	case hasMax:
		if maxIncl {
			return "less than or equal to " + max()
		}
		return "less than " + max()
	}
	return ""
}
