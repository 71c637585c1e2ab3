/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package schema

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// RecordTypeDef is the declaration of a record type.
//
// Fields are accumulated over the ancestor chain: ancestors are visited
// oldest-first and each subsequent declaration overwrites a same-named
// entry, so the most specific declaration wins; the local Fields map is
// applied last. The resulting field order is the lexicographic sort of the
// accumulated names. Default rules accumulate the same way, ancestors first.
type RecordTypeDef struct {
	Name      string
	Ancestors []IRecordType
	Fields    map[string]IField
	Defaults  []DefaultRule
}

// # Implements:
//   - IRecordType
type recordType struct {
	name     string
	names    []string       // sorted
	fields   map[string]IField
	slots    map[string]int // field name → value slot index
	defaults []DefaultRule
}

// NewRecordType builds a record type from its declaration. Panics
// (ErrInvalidError, ErrNotFoundError) on an empty name, a nil field, or a
// malformed default rule.
func NewRecordType(def RecordTypeDef) IRecordType {
	if def.Name == "" {
		panic(ErrInvalid("record type name is empty"))
	}

	t := &recordType{
		name:   def.Name,
		fields: make(map[string]IField),
	}

	for _, anc := range def.Ancestors {
		anc.Fields(func(name string, f IField) {
			t.fields[name] = f
		})
		t.defaults = append(t.defaults, anc.DefaultRules()...)
	}
	for name, f := range def.Fields {
		if f == nil {
			panic(ErrInvalid("record type «%s» field «%s» is nil", def.Name, name))
		}
		t.fields[name] = f
	}

	t.names = maps.Keys(t.fields)
	slices.Sort(t.names)
	t.slots = make(map[string]int, len(t.names))
	for i, name := range t.names {
		t.slots[name] = i
	}

	t.defaults = append(t.defaults, def.Defaults...)
	for _, r := range t.defaults {
		if err := r.validate(t); err != nil {
			panic(err)
		}
	}

	return t
}

func (t *recordType) Name() string { return t.name }

func (t *recordType) FieldCount() int { return len(t.names) }

func (t *recordType) Field(name string) IField { return t.fields[name] }

func (t *recordType) FieldNames() []string {
	return slices.Clone(t.names)
}

func (t *recordType) Fields(cb func(name string, f IField)) {
	for _, name := range t.names {
		cb(name, t.fields[name])
	}
}

func (t *recordType) DefaultRules() []DefaultRule {
	return slices.Clone(t.defaults)
}

func (t *recordType) NewRecord(ctx any, values map[string]any) (IRecord, error) {
	r := newRecord(t)

	set := make(map[string]bool, len(values))
	for name, v := range values {
		if err := r.put(name, v); err != nil {
			return nil, err
		}
		set[name] = true
	}

	// Default rules fill fields still unset. Providers run lazily.
	for _, rule := range t.defaults {
		unset := false
		for _, name := range rule.Names {
			if !set[name] {
				unset = true
				break
			}
		}
		if !unset {
			continue
		}
		vv := rule.Values
		if rule.Provide != nil {
			vv = rule.Provide(ctx)
			if len(vv) != len(rule.Names) {
				return nil, ErrInvalid("default rule provider for %v returned %d values", rule.Names, len(vv))
			}
		}
		for i, name := range rule.Names {
			if !set[name] {
				if err := r.put(name, vv[i]); err != nil {
					return nil, err
				}
				set[name] = true
			}
		}
	}

	// Remaining fields take their field-level defaults.
	for _, name := range t.names {
		if !set[name] {
			if d := t.fields[name].Default(); d != nil {
				if err := r.put(name, d); err != nil {
					return nil, err
				}
			}
		}
	}

	return r, nil
}
