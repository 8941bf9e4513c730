package form

import "github.com/vango-dev/forms/pkg/vdom"

func (v *view[S, M]) selectBox() []*vdom.VNode {
	f := v.field
	current := v.value()
	empty := f.EmptyOption && current == ""

	options := make([]*vdom.VNode, 0, len(f.Options)+1)
	if empty {
		options = append(options, vdom.Option(vdom.Value(""), vdom.Selected(true)))
	}
	for _, opt := range f.Options {
		options = append(options, vdom.Option(
			vdom.Value(opt.Slug),
			vdom.Selected(current == opt.Slug),
			opt.Label,
		))
	}

	native := vdom.Select(
		vdom.ID(f.Slug),
		vdom.Name(f.Slug),
		vdom.AttrIf(f.Dropdown, vdom.Hidden()),
		vdom.OnChange(f.OnInput),
		v.common(),
		options,
	)

	nodes := []*vdom.VNode{v.label(), native}
	if f.Dropdown {
		nodes = append(nodes, v.dropdown(current))
	}
	return nodes
}

// dropdown renders the styled list shown in place of a hidden native select.
// It reads and writes through the same value reader and tagger.
func (v *view[S, M]) dropdown(current string) *vdom.VNode {
	f := v.field

	toggle := ""
	for _, opt := range f.Options {
		if opt.Slug == current {
			toggle = opt.Label
		}
	}

	items := vdom.Range(f.Options, func(opt Option, _ int) *vdom.VNode {
		var onClick func() M
		if f.OnInput != nil {
			onClick = func() M { return f.OnInput(opt.Slug) }
		}
		selected := opt.Slug == current
		return vdom.Li(
			vdom.ID(optionID(f.Slug, opt.Slug)),
			vdom.Role("option"),
			vdom.ClassIf(selected, "selected"),
			vdom.AriaSelected(selected),
			vdom.Data("value", opt.Slug),
			vdom.OnClick(onClick),
			opt.Label,
		)
	})

	return vdom.Div(
		vdom.Class("dropdown"),
		v.classes.State(v.verdict),
		vdom.Button(
			vdom.Type("button"),
			vdom.Class("dropdown-toggle"),
			vdom.AriaLabel(f.Label),
			vdom.OnFocus(f.OnFocus),
			vdom.OnBlur(f.OnBlur),
			toggle,
		),
		vdom.Ul(vdom.Class("dropdown-menu"), vdom.Role("listbox"), items),
	)
}
