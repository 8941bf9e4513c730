package form

import "github.com/vango-dev/forms/pkg/vdom"

func (v *view[S, M]) input() []*vdom.VNode {
	f := v.field
	typ := "text"
	if f.Kind == KindPassword {
		typ = "password"
	}
	control := vdom.Input(
		vdom.Type(typ),
		vdom.ID(f.Slug),
		vdom.Name(f.Slug),
		vdom.Value(v.value()),
		vdom.OnInput(f.OnInput),
		v.common(),
	)
	return []*vdom.VNode{v.label(), control}
}

func (v *view[S, M]) textarea() []*vdom.VNode {
	f := v.field
	control := vdom.Textarea(
		vdom.ID(f.Slug),
		vdom.Name(f.Slug),
		vdom.OnInput(f.OnInput),
		v.common(),
		vdom.Text(v.value()),
	)
	return []*vdom.VNode{v.label(), control}
}
