/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package schema

// Kind enumerates field value kinds.
//
// Ref. kind_test.go for constants tests
type Kind uint8

const (
	// null - no-value kind
	Kind_null Kind = iota

	Kind_String
	Kind_Integer
	Kind_Float
	Kind_Decimal
	Kind_Date
	Kind_Time

	Kind_Count
)

var kindNames = [Kind_Count]string{"null", "string", "integer", "float", "decimal", "date", "time"}

// Renders a Kind in human-readable form, suitable for error messages.
func (k Kind) String() string {
	if k < Kind_Count {
		return kindNames[k]
	}
	return "unknown"
}
