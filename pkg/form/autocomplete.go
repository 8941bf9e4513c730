package form

import (
	"strings"

	"github.com/vango-dev/forms/pkg/vdom"
)

// DefaultNoResults is shown when an autocomplete filter matches nothing.
const DefaultNoResults = "No results"

func (v *view[S, M]) autocomplete() []*vdom.VNode {
	f := v.field
	choice := read(f.Choice, v.state)

	nodes := []*vdom.VNode{
		v.label(),
		vdom.Input(vdom.Type("hidden"), vdom.Name(f.Slug), vdom.Value(choice)),
	}
	if strings.TrimSpace(choice) != "" {
		return append(nodes, v.chosen(choice))
	}
	return append(nodes, v.filtering()...)
}

// chosen shows the selected option. Clicking it clears the choice and
// returns the field to filtering.
func (v *view[S, M]) chosen(choice string) *vdom.VNode {
	f := v.field
	label := choice
	for _, opt := range f.Options {
		if opt.Slug == choice {
			label = opt.Label
			break
		}
	}
	var onClick func() M
	if f.OnChoice != nil {
		onClick = func() M { return f.OnChoice("") }
	}
	return vdom.Input(
		vdom.Type("text"),
		vdom.ID(f.Slug),
		vdom.Class("autocomplete-chosen"),
		vdom.Readonly(),
		vdom.Value(label),
		vdom.OnClick(onClick),
		v.common(),
	)
}

func (v *view[S, M]) filtering() []*vdom.VNode {
	f := v.field
	filter := read(f.Filter, v.state)
	listID := f.Slug + "-options"

	input := vdom.Input(
		vdom.Type("text"),
		vdom.ID(f.Slug),
		vdom.Name(f.Slug+"-filter"),
		vdom.Autocomplete("off"),
		vdom.Role("combobox"),
		vdom.AriaExpanded(true),
		vdom.Attr{Key: "aria-controls", Value: listID},
		vdom.Value(filter),
		vdom.OnInput(f.OnFilter),
		v.common(),
	)

	matches := FilterOptions(f.Options, filter)
	var items []*vdom.VNode
	if len(matches) == 0 {
		text := f.NoResults
		if text == "" {
			text = DefaultNoResults
		}
		items = []*vdom.VNode{vdom.Li(vdom.Class("no-results"), text)}
	} else {
		items = vdom.Range(matches, func(opt Option, _ int) *vdom.VNode {
			var onClick func() M
			if f.OnChoice != nil {
				onClick = func() M { return f.OnChoice(opt.Slug) }
			}
			return vdom.Li(
				vdom.ID(optionID(f.Slug, opt.Slug)),
				vdom.Role("option"),
				vdom.Data("value", opt.Slug),
				vdom.OnClick(onClick),
				opt.Label,
			)
		})
	}

	list := vdom.Ul(vdom.ID(listID), vdom.Class("autocomplete-options"), vdom.Role("listbox"), items)
	return []*vdom.VNode{input, list}
}

// FilterOptions returns the options whose label contains filter, ignoring
// case. An empty filter keeps every option.
func FilterOptions(options []Option, filter string) []Option {
	needle := strings.ToLower(filter)
	out := make([]Option, 0, len(options))
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt.Label), needle) {
			out = append(out, opt)
		}
	}
	return out
}
