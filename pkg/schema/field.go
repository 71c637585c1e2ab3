/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package schema

// # Implements:
//   - IField (partially; subtypes complete it)
type field struct {
	kind  Kind
	units string
	rng   string
	doc   string
	def   any
}

func makeField(kind Kind, units, rng, doc string) field {
	return field{kind: kind, units: units, rng: rng, doc: doc}
}

func (f *field) Kind() Kind { return f.kind }

func (f *field) Units() string { return f.units }

func (f *field) Range() string { return f.rng }

func (f *field) Doc() string { return f.doc }

func (f *field) Default() any { return f.def }

func (f *field) Normalize(value any) any { return value }

// setDefault validates and stores the construction-time default value.
// Called by subtype constructors after restrictions are in place; panics on
// a default of the wrong type or out of the declared range.
func setDefault(f IField, store *any, def any) {
	if def == nil {
		return
	}
	if err := f.Validate(f.Normalize(def)); err != nil {
		panic(EnrichError(err, "default value for %s field", f.Kind()))
	}
	*store = f.Normalize(def)
}
