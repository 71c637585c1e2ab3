/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package grammar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/fieldnote/fieldnote/pkg/schema"
)

// ---- string

// quotable matches the token separators Tokenize recognizes, so any string
// containing one must be emitted quoted to survive re-tokenization.
func quotable(r rune) bool {
	return unicode.IsSpace(r) || r == '\\' || r == '"'
}

// # Implements:
//   - IFieldFormat
type stringFormat struct{}

func NewStringFormat() IFieldFormat { return stringFormat{} }

func (stringFormat) Format(value any, editing bool) string {
	if value == nil {
		return formatNone(editing)
	}
	s := value.(string)
	switch {
	case editing:
		return s
	case s == "":
		return `""`
	case strings.IndexFunc(s, quotable) < 0:
		// no whitespace, backslashes or quotes: no surrounding quotes needed
		return s
	default:
		return `"` + escapeString(s) + `"`
	}
}

func (stringFormat) Parse(token string, editing bool) (any, error) {
	if isNone(token, editing) {
		return nil, nil
	}
	if !editing && len(token) > 0 && token[0] == '"' {
		// token contents were checked during tokenization
		return unescapeString(token[1 : len(token)-1]), nil
	}
	return token, nil
}

func escapeString(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

func unescapeString(s string) string {
	return strings.NewReplacer(`\\`, `\`, `\"`, `"`).Replace(s)
}

// ---- decimal

// # Implements:
//   - IFieldFormat
type decimalFormat struct{}

func NewDecimalFormat() IFieldFormat { return decimalFormat{} }

func (decimalFormat) Format(value any, editing bool) string {
	if value == nil {
		return formatNone(editing)
	}
	// the validated literal string is echoed verbatim in both modes
	return value.(string)
}

func (decimalFormat) Parse(token string, editing bool) (any, error) {
	if isNone(token, editing) {
		return nil, nil
	}
	if !schema.IsDecimal(token) {
		return nil, ErrBadFormat("bad decimal number «%s»", token)
	}
	return token, nil
}

// ---- integer

var intTemplateRe = regexp.MustCompile(`^[-+ 0]*\d*d$`)

// # Implements:
//   - IFieldFormat
type integerFormat struct {
	verb string
}

// NewIntegerFormat creates an integer format with the given numeric
// template, e.g. "05d" for five zero-padded digits. An empty template means
// "d". Panics (ErrBadFormatError) on a malformed template.
func NewIntegerFormat(template string) IFieldFormat {
	if template == "" {
		template = "d"
	}
	if !intTemplateRe.MatchString(template) {
		panic(ErrBadFormat("bad integer replacement field «%s»", template))
	}
	return integerFormat{verb: "%" + template}
}

func (f integerFormat) Format(value any, editing bool) string {
	if value == nil {
		return formatNone(editing)
	}
	return fmt.Sprintf(f.verb, value.(int))
}

func (f integerFormat) Parse(token string, editing bool) (any, error) {
	if isNone(token, editing) {
		return nil, nil
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		return nil, ErrBadFormat("could not parse «%s» as an integer", token)
	}
	return v, nil
}

// ---- float

var floatTemplateRe = regexp.MustCompile(`^[-+ 0]*\d*(\.\d+)?[efgEFG]$`)

// # Implements:
//   - IFieldFormat
type floatFormat struct {
	verb string
}

// NewFloatFormat creates a float format with the given numeric template,
// e.g. ".3f". An empty template means ".16g". Panics (ErrBadFormatError) on
// a malformed template.
func NewFloatFormat(template string) IFieldFormat {
	if template == "" {
		template = ".16g"
	}
	if !floatTemplateRe.MatchString(template) {
		panic(ErrBadFormat("bad float replacement field «%s»", template))
	}
	return floatFormat{verb: "%" + template}
}

func (f floatFormat) Format(value any, editing bool) string {
	if value == nil {
		return formatNone(editing)
	}
	return fmt.Sprintf(f.verb, toFloat(value))
}

func (f floatFormat) Parse(token string, editing bool) (any, error) {
	if isNone(token, editing) {
		return nil, nil
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, ErrBadFormat("could not parse «%s» as a floating point number", token)
	}
	return v, nil
}

func toFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	panic(schema.ErrWrongType("float format value must be float64 or int, but found %T", value))
}

// ---- angle (sexagesimal degrees)

var angleRe = regexp.MustCompile(`^(-?)(\d{1,3}):(\d\d):(\d\d)$`)

// # Implements:
//   - IFieldFormat
type angleFormat struct{}

// NewAngleFormat creates a format rendering a floating degree value as
// [-]D:MM:SS, seconds rounded to the nearest integer with carry into
// minutes and degrees, so a seconds field of 60 is never emitted.
func NewAngleFormat() IFieldFormat { return angleFormat{} }

func (angleFormat) Format(value any, editing bool) string {
	if value == nil {
		return formatNone(editing)
	}
	v := toFloat(value)

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	totalSeconds := int(v*3600 + 0.5)
	seconds := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	minutes := totalMinutes % 60
	degrees := totalMinutes / 60

	return fmt.Sprintf("%s%d:%02d:%02d", sign, degrees, minutes, seconds)
}

func (angleFormat) Parse(token string, editing bool) (any, error) {
	if isNone(token, editing) {
		return nil, nil
	}
	m := angleRe.FindStringSubmatch(token)
	if m == nil {
		return nil, ErrBadFormat("bad angle «%s»", token)
	}
	degrees, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	seconds, _ := strconv.Atoi(m[4])
	v := float64(degrees) + float64(minutes)/60 + float64(seconds)/3600
	if m[1] == "-" {
		v = -v
	}
	return v, nil
}

// ---- date

var dateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d\d)$`)

// # Implements:
//   - IFieldFormat
type dateFormat struct{}

// NewDateFormat creates a format rendering a date as M/D/YY with a
// two-digit year. Parsing pivots two-digit years on 70: years below 70 are
// 2000s, the rest 1900s, so the representable window is 1970–2069.
func NewDateFormat() IFieldFormat { return dateFormat{} }

func (dateFormat) Format(value any, editing bool) string {
	if value == nil {
		return formatNone(editing)
	}
	d := value.(schema.Date)
	return fmt.Sprintf("%d/%d/%02d", d.Month, d.Day, d.Year%100)
}

func (dateFormat) Parse(token string, editing bool) (any, error) {
	if isNone(token, editing) {
		return nil, nil
	}
	m := dateRe.FindStringSubmatch(token)
	if m == nil {
		return nil, ErrBadFormat("bad date «%s»", token)
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if year < 70 {
		year += 2000
	} else {
		year += 1900
	}

	if month == 0 || month > 12 {
		return nil, ErrBadFormat("month must be in range [1, 12] in date «%s»", token)
	}
	numDays := daysInMonth(year, month)
	if day == 0 || day > numDays {
		return nil, ErrBadFormat("day must be in range [1, %d] for %s %d in date «%s»",
			numDays, time.Month(month), year, token)
	}
	return schema.Date{Year: year, Month: month, Day: day}, nil
}

func daysInMonth(year, month int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ---- time

var timeRe = regexp.MustCompile(`^(\d{1,2}):(\d\d):(\d\d)$`)

// # Implements:
//   - IFieldFormat
type timeFormat struct{}

// NewTimeFormat creates a format rendering a time of day as H:MM:SS.
func NewTimeFormat() IFieldFormat { return timeFormat{} }

func (timeFormat) Format(value any, editing bool) string {
	if value == nil {
		return formatNone(editing)
	}
	t := value.(schema.Time)
	return fmt.Sprintf("%d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func (timeFormat) Parse(token string, editing bool) (any, error) {
	if isNone(token, editing) {
		return nil, nil
	}
	m := timeRe.FindStringSubmatch(token)
	if m == nil {
		return nil, ErrBadFormat("bad time «%s»", token)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second, _ := strconv.Atoi(m[3])

	if hour > 23 {
		return nil, ErrBadFormat("hour must be in range [0, 23] in time «%s»", token)
	}
	if minute > 59 {
		return nil, ErrBadFormat("minute must be in range [0, 59] in time «%s»", token)
	}
	if second > 59 {
		return nil, ErrBadFormat("second must be in range [0, 59] in time «%s»", token)
	}
	return schema.Time{Hour: hour, Minute: minute, Second: second}, nil
}
