package form

import "github.com/vango-dev/forms/pkg/vdom"

// Render renders f with the default class names. The result is the field's
// label, its control or controls, and an error element when the field is
// invalid and touched. Nil entries are never returned.
func Render[S, M any](state S, f *Field[S, M]) []*vdom.VNode {
	return RenderWith(DefaultClasses(), state, f)
}

// RenderWith is Render with custom class names. Empty names fall back to the
// defaults.
func RenderWith[S, M any](classes Classes, state S, f *Field[S, M]) []*vdom.VNode {
	if f == nil {
		return nil
	}
	v := &view[S, M]{
		field:   f,
		state:   state,
		classes: classes.Merge(),
		verdict: Evaluate(state, f),
	}

	var nodes []*vdom.VNode
	switch f.Kind {
	case KindText, KindPassword:
		nodes = v.input()
	case KindTextarea:
		nodes = v.textarea()
	case KindRadio:
		nodes = v.radio()
	case KindCheckbox:
		nodes = v.checkbox()
	case KindCheckboxGroup:
		nodes = v.checkboxGroup()
	case KindSelect:
		nodes = v.selectBox()
	case KindAutocomplete:
		nodes = v.autocomplete()
	case KindDatepicker:
		nodes = v.dateInput()
	case KindStatic:
		return vdom.Compact([]*vdom.VNode{f.Markup})
	}

	return vdom.Compact(append(nodes, v.errorNode()))
}

// Wrapper groups nodes under one container element.
func Wrapper(nodes []*vdom.VNode, attrs ...vdom.Attr) *vdom.VNode {
	return WrapperWith(DefaultClasses(), nodes, attrs...)
}

// WrapperWith is Wrapper with custom class names.
func WrapperWith(classes Classes, nodes []*vdom.VNode, attrs ...vdom.Attr) *vdom.VNode {
	return vdom.Div(vdom.Class(classes.Merge().Field), attrs, nodes)
}

// view holds what every kind-specific renderer needs.
type view[S, M any] struct {
	field   *Field[S, M]
	state   S
	classes Classes
	verdict Verdict
}

func (v *view[S, M]) value() string {
	return read(v.field.Value, v.state)
}

func (v *view[S, M]) errorID() string {
	return v.field.Slug + "-error"
}

// common returns the attributes and handlers shared by every control:
// state classes, aria state, focus and blur, and the caller's attributes.
func (v *view[S, M]) common() []any {
	f := v.field
	out := []any{
		v.classes.State(v.verdict),
		vdom.AriaInvalid(v.verdict.Invalid()),
		vdom.AttrIf(v.verdict.Invalid(), vdom.AriaDescribedBy(v.errorID())),
		vdom.OnFocus(f.OnFocus),
		vdom.OnBlur(f.OnBlur),
	}
	return append(out, f.Attrs)
}

func (v *view[S, M]) label() *vdom.VNode {
	if v.field.Label == "" {
		return nil
	}
	return vdom.Label(vdom.For(v.field.Slug), v.field.Label)
}

// legend wraps option controls in a fieldset titled by the label.
func (v *view[S, M]) legend(children []*vdom.VNode, extra ...any) *vdom.VNode {
	var legend *vdom.VNode
	if v.field.Label != "" {
		legend = vdom.Legend(v.field.Label)
	}
	args := append([]any{vdom.ID(v.field.Slug), legend}, extra...)
	return vdom.Fieldset(append(args, children)...)
}

func (v *view[S, M]) errorNode() *vdom.VNode {
	if !v.verdict.Invalid() {
		return nil
	}
	return vdom.Div(
		vdom.ID(v.errorID()),
		vdom.Class(v.classes.Error),
		vdom.Role("alert"),
		v.verdict.Message(),
	)
}

func optionID(slug, option string) string {
	return slug + "-" + option
}
