/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package schema

import (
	"regexp"
	"strconv"
)

// Decimal field values are decimal number strings matching DecimalPattern,
// stored and compared verbatim. Range checking parses the string to a float;
// the stored text is never canonicalized, so formatting echoes the original
// literal exactly.
var decimalRe = regexp.MustCompile(`^-?(\d+\.?|\d*\.\d+)$`)

const DecimalPattern = `-?(\d+\.?|\d*\.\d+)`

// IsDecimal reports whether s is a well-formed decimal number string.
func IsDecimal(s string) bool {
	return decimalRe.MatchString(s)
}

// DecimalDef is the declaration of a decimal field. Min and Max are decimal
// number strings.
type DecimalDef struct {
	Units string
	Range string
	Doc   string

	Default any

	Min, Max                   *string
	MinExclusive, MaxExclusive bool
}

// # Implements:
//   - IField
type decimalField struct {
	field
	min, max         *string
	minF, maxF       float64
	minExcl, maxExcl bool
}

// NewDecimal creates a decimal field. Panics if a bound or the default is
// not a decimal number string, or if the default is out of range.
func NewDecimal(def DecimalDef) IField {
	f := &decimalField{
		field:   makeField(Kind_Decimal, def.Units, def.Range, def.Doc),
		min:     def.Min,
		max:     def.Max,
		minExcl: def.MinExclusive,
		maxExcl: def.MaxExclusive,
	}
	if f.min != nil {
		f.minF = parseDecimal(*f.min, "min bound")
	}
	if f.max != nil {
		f.maxF = parseDecimal(*f.max, "max bound")
	}
	if f.rng == "" {
		f.rng = rangeString(f.min != nil, f.max != nil, !f.minExcl, !f.maxExcl,
			func() string { return *f.min },
			func() string { return *f.max })
	}
	setDefault(f, &f.def, def.Default)
	return f
}

func parseDecimal(s, what string) float64 {
	if !IsDecimal(s) {
		panic(ErrWrongType("decimal field %s «%s» must be decimal number string", what, s))
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func (f *decimalField) Validate(value any) error {
	if value == nil {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return ErrWrongType("decimal field value must be string, but found %T", value)
	}
	if !IsDecimal(s) {
		return ErrWrongType("decimal field value «%s» must be decimal number string", s)
	}
	v, _ := strconv.ParseFloat(s, 64)
	return checkBounds(v, s,
		f.min != nil, f.max != nil, f.minExcl, f.maxExcl,
		func() (float64, string) { return f.minF, *f.min },
		func() (float64, string) { return f.maxF, *f.max })
}
