/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package schema

import (
	"fmt"
	"strings"
)

// # Implements:
//   - IRecord
type record struct {
	typ       *recordType
	values    []any // indexed by field slot
	listeners []FieldChangeListener
}

func newRecord(t *recordType) *record {
	return &record{
		typ:    t,
		values: make([]any, len(t.names)),
	}
}

func (r *record) Type() IRecordType { return r.typ }

func (r *record) Get(name string) any {
	slot, ok := r.typ.slots[name]
	if !ok {
		panic(ErrFieldNotFound(r.typ, name))
	}
	return r.values[slot]
}

func (r *record) Set(name string, value any) error {
	slot, ok := r.typ.slots[name]
	if !ok {
		return ErrFieldNotFound(r.typ, name)
	}
	fld := r.typ.fields[name]

	value = fld.Normalize(value)
	old := r.values[slot]
	if value == old {
		return nil
	}
	if err := fld.Validate(value); err != nil {
		return EnrichError(err, "field «%s»", name)
	}
	r.values[slot] = value
	for _, l := range r.listeners {
		l(name, old, value)
	}
	return nil
}

// put validates and stores a value without change notification. Used during
// record construction and copying.
func (r *record) put(name string, value any) error {
	slot, ok := r.typ.slots[name]
	if !ok {
		return ErrFieldNotFound(r.typ, name)
	}
	fld := r.typ.fields[name]
	value = fld.Normalize(value)
	if err := fld.Validate(value); err != nil {
		return EnrichError(err, "field «%s»", name)
	}
	r.values[slot] = value
	return nil
}

func (r *record) AddChangeListener(l FieldChangeListener) {
	r.listeners = append(r.listeners, l)
}

func (r *record) Copy(overrides map[string]any) (IRecord, error) {
	c := newRecord(r.typ)
	copy(c.values, r.values)
	for name, v := range overrides {
		if err := c.put(name, v); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (r *record) Clone() IRecord {
	c := newRecord(r.typ)
	copy(c.values, r.values)
	return c
}

func (r *record) Equal(other IRecord) bool {
	o, ok := other.(*record)
	if !ok || o.typ != r.typ {
		return false
	}
	for i := range r.values {
		if r.values[i] != o.values[i] {
			return false
		}
	}
	return true
}

func (r *record) String() string {
	parts := make([]string, len(r.typ.names))
	for i, name := range r.typ.names {
		parts[i] = fmt.Sprintf("%s=%v", name, r.values[i])
	}
	return r.typ.name + "(" + strings.Join(parts, ", ") + ")"
}
