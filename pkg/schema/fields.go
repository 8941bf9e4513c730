package schema

import (
	"regexp"
	"unicode/utf8"

	"github.com/vango-dev/forms/pkg/datepicker"
	"github.com/vango-dev/forms/pkg/form"
	"github.com/vango-dev/forms/pkg/vdom"
)

// Compile builds the form fields of d. Definitions that were not validated
// may panic on a bad pattern.
func (d *Definition) Compile() []*form.Field[State, Msg] {
	fields := make([]*form.Field[State, Msg], 0, len(d.Fields))
	for i := range d.Fields {
		if f := d.Fields[i].compile(); f != nil {
			fields = append(fields, f)
		}
	}
	return fields
}

func (fd *FieldDef) compile() *form.Field[State, Msg] {
	kind, ok := form.ParseKind(fd.Kind)
	if !ok {
		return nil
	}
	slug := fd.Slug
	value := func(s State) (string, bool) { return s.value(slug) }
	setValue := func(v string) Msg { return Msg{Kind: MsgSetValue, Slug: slug, Value: v} }
	options := fd.options()

	var f *form.Field[State, Msg]
	switch kind {
	case form.KindText:
		f = form.Text(slug, fd.Label, value, setValue)
	case form.KindPassword:
		f = form.Password(slug, fd.Label, value, setValue)
	case form.KindTextarea:
		f = form.Textarea(slug, fd.Label, value, setValue)
		if fd.Rows > 0 {
			f.WithAttrs(vdom.Rows(fd.Rows))
		}
	case form.KindRadio:
		f = form.Radio(slug, fd.Label, options, value, setValue)
	case form.KindSelect:
		f = form.Select(slug, fd.Label, options, value, setValue)
		f.EmptyOption = fd.EmptyOption
		f.Dropdown = fd.Dropdown
	case form.KindCheckbox:
		f = form.Checkbox(slug, fd.Label,
			func(s State) bool { return s.Flags[slug] },
			func(b bool) Msg { return Msg{Kind: MsgSetFlag, Slug: slug, Flag: b} })
	case form.KindCheckboxGroup:
		f = form.CheckboxGroup(slug, fd.Label, options,
			func(s State) []form.Check { return s.Checks[slug] },
			func(c []form.Check) Msg { return Msg{Kind: MsgSetChecks, Slug: slug, Checks: c} })
	case form.KindDatepicker:
		f = form.Datepicker(slug, fd.Label, value, setValue,
			func(s State) datepicker.Model { return s.Pickers[slug] },
			func(m datepicker.Msg) Msg { return Msg{Kind: MsgPicker, Slug: slug, Picker: m} })
	case form.KindAutocomplete:
		f = form.Autocomplete(slug, fd.Label, options,
			func(s State) (string, bool) { return s.filter(slug) },
			func(v string) Msg { return Msg{Kind: MsgSetFilter, Slug: slug, Value: v} },
			value, setValue)
		f.NoResults = fd.NoResults
	case form.KindStatic:
		return form.StaticHTML[State, Msg](fd.HTML)
	}

	if fd.Placeholder != "" {
		f.WithPlaceholder(fd.Placeholder)
	}
	f.WithFocus(func() Msg { return Msg{Kind: MsgFocus, Slug: slug} })
	f.WithBlur(func() Msg { return Msg{Kind: MsgBlur, Slug: slug} })

	for _, r := range fd.Rules {
		f.Validate(r.rule(slug))
	}
	return f
}

func (fd *FieldDef) options() []form.Option {
	if len(fd.Options) == 0 {
		return nil
	}
	out := make([]form.Option, len(fd.Options))
	for i, o := range fd.Options {
		out[i] = form.Opt(o.Label, o.Slug)
	}
	return out
}

func (r RuleDef) rule(slug string) form.Rule[State] {
	switch {
	case r.NotEmpty != "":
		return form.NotEmpty[State](r.NotEmpty)
	case r.Pattern != "":
		re := r.re
		if re == nil {
			re = regexp.MustCompile(r.Pattern)
		}
		return form.Matches[State](re, r.Message)
	case r.MinLength > 0:
		n := r.MinLength
		return form.Custom(func(s State) bool {
			return utf8.RuneCountInString(s.Values[slug]) >= n
		}, r.Message)
	case r.Equals != "":
		other := r.Equals
		return form.Custom(func(s State) bool {
			return s.Values[slug] == s.Values[other]
		}, r.Message)
	default:
		return form.Custom(func(State) bool { return true }, "")
	}
}
