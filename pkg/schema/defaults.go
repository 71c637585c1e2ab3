/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package schema

// DefaultRule supplies initial values for one or more fields that are still
// unset when a record is created.
//
// A rule is either constant (Values) or deferred (Provide); exactly one of
// the two must be given, and its length must match Names. Deferred rules
// are invoked lazily, only when at least one named field is still unset, so
// stateful providers such as serial-number generators are not consumed
// needlessly. The ctx argument is the record-construction context passed to
// IRecordType.NewRecord (e.g. a command interpreter), possibly nil.
type DefaultRule struct {
	Names   []string
	Values  []any
	Provide func(ctx any) []any
}

// Constant creates a single-field constant default rule.
func Constant(name string, value any) DefaultRule {
	return DefaultRule{Names: []string{name}, Values: []any{value}}
}

// Provider creates a single-field deferred default rule.
func Provider(name string, provide func(ctx any) any) DefaultRule {
	return DefaultRule{
		Names:   []string{name},
		Provide: func(ctx any) []any { return []any{provide(ctx)} },
	}
}

// JointProvider creates a deferred default rule keyed by several fields
// jointly. The provider returns one value per name.
func JointProvider(names []string, provide func(ctx any) []any) DefaultRule {
	return DefaultRule{Names: names, Provide: provide}
}

func (r DefaultRule) validate(t IRecordType) error {
	if len(r.Names) == 0 {
		return ErrInvalid("default rule for record type «%s» names no fields", t.Name())
	}
	if (r.Values == nil) == (r.Provide == nil) {
		return ErrInvalid("default rule for %v must have either values or a provider", r.Names)
	}
	if r.Values != nil && len(r.Values) != len(r.Names) {
		return ErrInvalid("default rule for %v has %d values for %d fields", r.Names, len(r.Values), len(r.Names))
	}
	for _, n := range r.Names {
		if t.Field(n) == nil {
			return ErrFieldNotFound(t, n)
		}
	}
	return nil
}
