package form

import "strings"

// Verdict is the validation outcome of one field for one state.
type Verdict struct {
	Valid    bool
	Pristine bool
	Errors   []string // messages of failing rules, in declaration order
}

// Invalid reports whether errors should be displayed.
func (v Verdict) Invalid() bool { return !v.Valid && !v.Pristine }

// Touched is the opposite of Pristine.
func (v Verdict) Touched() bool { return !v.Pristine }

// Message joins the error messages with single spaces.
func (v Verdict) Message() string { return strings.Join(v.Errors, " ") }

// Evaluate runs every rule of f against state.
//
// Valid is the conjunction of all rules. Pristine is computed by evaluating a
// lone NotEmpty rule in place of the declared ones: a field is pristine while
// its primary value is blank. Kinds without a primary value are always
// pristine.
func Evaluate[S, M any](state S, f *Field[S, M]) Verdict {
	if f == nil {
		return Verdict{Valid: true, Pristine: true}
	}
	reader := f.primary()

	v := Verdict{Valid: true}
	for _, r := range f.Rules {
		if !r.holds(state, f.Kind, reader) {
			v.Valid = false
			v.Errors = append(v.Errors, r.Message)
		}
	}

	v.Pristine = reader == nil || !NotEmpty[S]("").holds(state, f.Kind, reader)
	return v
}

// IsValid reports whether every rule of f holds.
func IsValid[S, M any](state S, f *Field[S, M]) bool {
	return Evaluate(state, f).Valid
}

// AllValid reports whether every field is valid.
func AllValid[S, M any](state S, fields ...*Field[S, M]) bool {
	for _, f := range fields {
		if !IsValid(state, f) {
			return false
		}
	}
	return true
}

// Errors returns the failing messages of every invalid field keyed by slug.
// Pristine fields are included; the map is nil when every field is valid.
func Errors[S, M any](state S, fields ...*Field[S, M]) map[string][]string {
	var out map[string][]string
	for _, f := range fields {
		v := Evaluate(state, f)
		if v.Valid {
			continue
		}
		if out == nil {
			out = make(map[string][]string)
		}
		out[f.Slug] = append(out[f.Slug], v.Errors...)
	}
	return out
}
