package form

import "github.com/vango-dev/forms/pkg/vdom"

func (v *view[S, M]) radio() []*vdom.VNode {
	f := v.field
	current := v.value()

	controls := make([]*vdom.VNode, 0, 2*len(f.Options))
	for _, opt := range f.Options {
		id := optionID(f.Slug, opt.Slug)
		var onChange func() M
		if f.OnInput != nil {
			slug := opt.Slug
			onChange = func() M { return f.OnInput(slug) }
		}
		controls = append(controls,
			vdom.Input(
				vdom.Type("radio"),
				vdom.ID(id),
				vdom.Name(f.Slug),
				vdom.Value(opt.Slug),
				vdom.Checked(current == opt.Slug),
				vdom.OnChange(onChange),
				v.common(),
			),
			vdom.Label(vdom.For(id), opt.Label),
		)
	}
	return []*vdom.VNode{v.legend(controls, vdom.Role("radiogroup"))}
}

func (v *view[S, M]) checkbox() []*vdom.VNode {
	f := v.field
	checked := f.Checked != nil && f.Checked(v.state)

	var onClick func() M
	if f.OnCheck != nil {
		onClick = func() M { return f.OnCheck(!checked) }
	}
	control := vdom.Input(
		vdom.Type("checkbox"),
		vdom.ID(f.Slug),
		vdom.Name(f.Slug),
		vdom.Checked(checked),
		vdom.OnClick(onClick),
		v.common(),
	)
	return []*vdom.VNode{control, v.label()}
}

func (v *view[S, M]) checkboxGroup() []*vdom.VNode {
	f := v.field
	var checks []Check
	if f.Checks != nil {
		checks = f.Checks(v.state)
	}

	controls := make([]*vdom.VNode, 0, 2*len(f.Options))
	for _, opt := range f.Options {
		id := optionID(f.Slug, opt.Slug)
		var onClick func() M
		if f.OnChecks != nil {
			slug := opt.Slug
			onClick = func() M { return f.OnChecks(Toggle(checks, slug)) }
		}
		controls = append(controls,
			vdom.Input(
				vdom.Type("checkbox"),
				vdom.ID(id),
				vdom.Name(f.Slug),
				vdom.Value(opt.Slug),
				vdom.Checked(IsChecked(checks, opt.Slug)),
				vdom.OnClick(onClick),
				v.common(),
			),
			vdom.Label(vdom.For(id), opt.Label),
		)
	}
	return []*vdom.VNode{v.legend(controls)}
}

// IsChecked reports whether slug is checked in checks.
func IsChecked(checks []Check, slug string) bool {
	for _, c := range checks {
		if c.Slug == slug {
			return c.Checked
		}
	}
	return false
}

// Toggle returns a copy of checks with slug flipped. A slug missing from the
// list is appended as checked.
func Toggle(checks []Check, slug string) []Check {
	out := make([]Check, len(checks), len(checks)+1)
	copy(out, checks)
	for i := range out {
		if out[i].Slug == slug {
			out[i].Checked = !out[i].Checked
			return out
		}
	}
	return append(out, Check{Slug: slug, Checked: true})
}

// CheckedSlugs returns the slugs of the checked entries, in order.
func CheckedSlugs(checks []Check) []string {
	var out []string
	for _, c := range checks {
		if c.Checked {
			out = append(out, c.Slug)
		}
	}
	return out
}
