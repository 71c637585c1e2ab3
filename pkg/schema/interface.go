/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package schema

import "fmt"

// IField is the validation contract for one observation field: a value kind
// plus optional range restrictions and a default value.
//
// Fields are immutable once constructed. A field carries no name of its own;
// names are bound when the field is declared by a record type.
type IField interface {
	// Field value kind
	Kind() Kind

	// Optional units description, e.g. "meters"
	Units() string

	// Human-readable range description, e.g. "in [0, 360)". Derived from the
	// declared restrictions when not specified explicitly, empty if none.
	Range() string

	// Optional field documentation
	Doc() string

	// Default value, nil if none. The default always passes Validate.
	Default() any

	// Normalize translates value aliases to canonical form (string fields
	// with translation maps) and coerces accepted alternate runtime types
	// (int for float fields). Other values pass through unchanged.
	Normalize(value any) any

	// Validate checks value runtime type and range. A nil value is always
	// valid. Returns an error wrapping ErrWrongTypeError or
	// ErrOutOfRangeError.
	Validate(value any) error
}

// IRecordType is the named schema shared by all records of one kind: an
// ordered set of named fields plus default-value rules.
type IRecordType interface {
	Name() string

	// FieldCount returns the number of declared fields
	FieldCount() int

	// Field returns a declared field by name, nil if not found
	Field(name string) IField

	// FieldNames returns declared field names in field order
	FieldNames() []string

	// Fields enumerates declared fields in field order
	Fields(cb func(name string, f IField))

	// DefaultRules returns the accumulated default-value rules, ancestors
	// first
	DefaultRules() []DefaultRule

	// NewRecord creates a record of this type. Explicitly supplied values
	// are validated; fields left unset are filled from default rules (whose
	// providers receive ctx and are invoked lazily) and then from field
	// defaults. Returns an error wrapping ErrWrongTypeError,
	// ErrOutOfRangeError or ErrNotFoundError; on error no record is created.
	NewRecord(ctx any, values map[string]any) (IRecord, error)
}

// FieldChangeListener is notified after a record field value change.
type FieldChangeListener func(fieldName string, oldValue, newValue any)

// IRecord is a single typed observation: one value per field declared by its
// record type. Every stored value satisfies its field's validation or is nil.
type IRecord interface {
	// Record type this record is an instance of
	Type() IRecordType

	// Get returns the current value of the named field.
	// Panics if the field is not declared.
	Get(name string) any

	// Set assigns a value to the named field. The value is normalized first;
	// assigning a value equal to the current one is a no-op. Otherwise the
	// value is validated, stored, and change listeners are notified.
	// On error the record is unchanged.
	Set(name string, value any) error

	// AddChangeListener registers a listener invoked synchronously, in
	// registration order, after each effective field assignment.
	AddChangeListener(l FieldChangeListener)

	// Copy returns a new record of the same type with this record's values,
	// optionally overridden. Overrides are validated.
	Copy(overrides map[string]any) (IRecord, error)

	// Clone returns a copy with no overrides. Never fails: all stored
	// values are already valid.
	Clone() IRecord

	// Equal reports whether other is a record of the same record type with
	// equal values for every field.
	Equal(other IRecord) bool

	// Renders the record as «Type(field=value, …)» in field order
	fmt.Stringer
}
