package form

import (
	"github.com/vango-dev/forms/pkg/datepicker"
	"github.com/vango-dev/forms/pkg/vdom"
)

func (v *view[S, M]) dateInput() []*vdom.VNode {
	f := v.field

	var onInput func(string) M
	if f.OnInput != nil {
		onInput = func(typed string) M {
			return f.OnInput(ReformatDate(typed, DisplayLayout, DateLayout))
		}
	}
	var onClick func() M
	if f.OnPicker != nil {
		onClick = func() M { return f.OnPicker(datepicker.Toggle()) }
	}

	control := vdom.Input(
		vdom.Type("text"),
		vdom.ID(f.Slug),
		vdom.Name(f.Slug),
		vdom.Placeholder("dd/mm/yyyy"),
		vdom.Value(DisplayDate(v.value())),
		vdom.OnInput(onInput),
		vdom.OnClick(onClick),
		v.common(),
	)

	nodes := []*vdom.VNode{v.label(), control}
	if f.Picker != nil && f.OnPicker != nil {
		if cal := datepicker.View(f.Picker(v.state)); cal != nil {
			mapped := vdom.Map(cal, f.OnPicker)
			mapped.Props["id"] = f.Slug + "-calendar"
			nodes = append(nodes, mapped)
		}
	}
	return nodes
}

// ApplyPicker runs msg through the picker and returns the new model and, when
// a day was picked, its DateLayout value.
func ApplyPicker(msg datepicker.Msg, m datepicker.Model) (datepicker.Model, string, bool) {
	m, ev := datepicker.Update(msg, m)
	if !ev.Picked {
		return m, "", false
	}
	return m, FormatDate(ev.Date), true
}
