package schema

import (
	"github.com/vango-dev/forms/pkg/form"
	"github.com/vango-dev/forms/pkg/render"
	"github.com/vango-dev/forms/pkg/vdom"
)

// View renders the whole form for s. The submit button is disabled until
// every field is valid; after a valid submit a confirmation is shown.
func (d *Definition) View(s State, classes form.Classes) *vdom.VNode {
	fields := d.Compile()
	valid := form.AllValid(s, fields...)

	rows := make([]*vdom.VNode, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, form.WrapperWith(
			classes,
			form.RenderWith(classes, s, f),
			vdom.Data("kind", f.Kind.String()),
			vdom.ClassIf(f.Slug != "" && f.Slug == s.Focused, "focused"),
		))
	}

	return vdom.Form(
		vdom.ID("form"),
		vdom.Novalidate(),
		vdom.If(d.Title != "", vdom.H1(d.Title)),
		rows,
		vdom.Div(
			vdom.Class("form-actions"),
			vdom.Button(
				vdom.Type("button"),
				vdom.Key("submit"),
				vdom.Class("form-submit"),
				vdom.AttrIf(!valid, vdom.Disabled()),
				vdom.OnClick(func() Msg { return Msg{Kind: MsgSubmit} }),
				d.SubmitLabel(),
			),
			vdom.Button(
				vdom.Type("button"),
				vdom.Key("reset"),
				vdom.Class("form-reset"),
				vdom.OnClick(func() Msg { return Msg{Kind: MsgReset} }),
				"Reset",
			),
		),
		vdom.If(s.Submitted && valid, vdom.P(vdom.Class("form-submitted"), vdom.AriaLive("polite"), "Submitted.")),
	)
}

// Errors returns the failing messages of every invalid field keyed by slug.
func (d *Definition) Errors(s State) map[string][]string {
	return form.Errors(s, d.Compile()...)
}

// Stylesheet is a minimal default style for rendered forms.
const Stylesheet = `body{font-family:system-ui,sans-serif;max-width:40rem;margin:2rem auto;padding:0 1rem}
.form-field{margin:0 0 1rem}
.form-field label,.form-field legend{display:block;font-weight:600;margin-bottom:.25rem}
.form-field input[type=radio]+label,.form-field input[type=checkbox]+label{display:inline;font-weight:400;margin-right:1rem}
input.invalid,select.invalid,textarea.invalid{border-color:#c0392b}
input.valid.touched,select.valid.touched,textarea.valid.touched{border-color:#27ae60}
.form-error{color:#c0392b;font-size:.875rem;margin-top:.25rem}
.focused{background:#f7f9fc}
.autocomplete-options,.dropdown-menu{list-style:none;margin:0;padding:0;border:1px solid #ccc}
.autocomplete-options li,.dropdown-menu li{padding:.25rem .5rem;cursor:pointer}
.no-results{color:#888;cursor:default}
.dropdown-menu li.selected,.datepicker-day.selected{background:#dbe9ff}
.datepicker{border:1px solid #ccc;display:inline-block;padding:.5rem}
.datepicker-day.today{font-weight:700}
.form-submitted{color:#27ae60}`

// Page wraps the form view of s in a full document.
func (d *Definition) Page(s State, classes form.Classes) render.PageData {
	return render.PageData{
		Title:  d.PageTitle(),
		Body:   vdom.Main(d.View(s, classes)),
		Styles: []string{Stylesheet},
	}
}

// PageTitle is the document title for the form, "Form" when untitled.
func (d *Definition) PageTitle() string {
	if d.Title == "" {
		return "Form"
	}
	return d.Title
}
