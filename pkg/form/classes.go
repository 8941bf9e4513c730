package form

import "github.com/vango-dev/forms/pkg/vdom"

// Classes names the CSS classes the renderer emits.
type Classes struct {
	Valid    string
	Invalid  string
	Pristine string
	Touched  string
	Error    string // error message element
	Field    string // Wrapper container
}

// DefaultClasses returns the class names used by Render.
func DefaultClasses() Classes {
	return Classes{
		Valid:    "valid",
		Invalid:  "invalid",
		Pristine: "pristine",
		Touched:  "touched",
		Error:    "form-error",
		Field:    "form-field",
	}
}

// Merge returns c with every empty name filled from DefaultClasses.
func (c Classes) Merge() Classes {
	d := DefaultClasses()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&c.Valid, d.Valid)
	fill(&c.Invalid, d.Invalid)
	fill(&c.Pristine, d.Pristine)
	fill(&c.Touched, d.Touched)
	fill(&c.Error, d.Error)
	fill(&c.Field, d.Field)
	return c
}

// State returns the state classes for a verdict: valid when valid, invalid
// when invalid and touched, and pristine or touched.
func (c Classes) State(v Verdict) vdom.Attr {
	return vdom.Classes(map[string]bool{
		c.Valid:    v.Valid,
		c.Invalid:  v.Invalid(),
		c.Pristine: v.Pristine,
		c.Touched:  v.Touched(),
	}, c.Valid, c.Invalid, c.Pristine, c.Touched)
}
