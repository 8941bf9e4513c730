package form

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/vango-dev/forms/pkg/datepicker"
	"github.com/vango-dev/forms/pkg/vdom"
)

// Option is one choice of a radio, select, checkbox group or autocomplete.
type Option struct {
	Label string
	Slug  string
}

// Opt is shorthand for Option{Label: label, Slug: slug}.
func Opt(label, slug string) Option {
	return Option{Label: label, Slug: slug}
}

// Check is the state of one checkbox group option.
type Check struct {
	Slug    string
	Checked bool
}

// Field describes one form control over application state S producing
// messages M. Which reader and tagger fields are used depends on Kind.
type Field[S, M any] struct {
	Kind  Kind
	Slug  string
	Label string
	Attrs []vdom.Attr
	Rules []Rule[S]

	OnFocus func() M
	OnBlur  func() M

	// Text, Password, Textarea, Radio, Select, Datepicker.
	Value   func(S) (string, bool)
	OnInput func(string) M

	// Checkbox.
	Checked func(S) bool
	OnCheck func(bool) M

	// CheckboxGroup. OnChecks receives the full updated list.
	Checks   func(S) []Check
	OnChecks func([]Check) M

	// Autocomplete. Clearing a choice sends OnChoice("").
	Filter    func(S) (string, bool)
	OnFilter  func(string) M
	Choice    func(S) (string, bool)
	OnChoice  func(string) M
	NoResults string

	Options []Option

	// Select.
	EmptyOption bool
	Dropdown    bool

	// Datepicker. Value holds the date in DateLayout.
	Picker   func(S) datepicker.Model
	OnPicker func(datepicker.Msg) M

	// Static.
	Markup *vdom.VNode
}

// ----------------------------------------------------------------------------
// Constructors
// ----------------------------------------------------------------------------

func stringField[S, M any](kind Kind, slug, label string, value func(S) (string, bool), onInput func(string) M) *Field[S, M] {
	return &Field[S, M]{Kind: kind, Slug: slug, Label: label, Value: value, OnInput: onInput}
}

// Text creates a single-line text input.
func Text[S, M any](slug, label string, value func(S) (string, bool), onInput func(string) M) *Field[S, M] {
	return stringField(KindText, slug, label, value, onInput)
}

// Password creates a password input.
func Password[S, M any](slug, label string, value func(S) (string, bool), onInput func(string) M) *Field[S, M] {
	return stringField(KindPassword, slug, label, value, onInput)
}

// Textarea creates a multi-line text input.
func Textarea[S, M any](slug, label string, value func(S) (string, bool), onInput func(string) M) *Field[S, M] {
	return stringField(KindTextarea, slug, label, value, onInput)
}

// Radio creates one radio button per option. The value is the chosen option slug.
func Radio[S, M any](slug, label string, options []Option, value func(S) (string, bool), onInput func(string) M) *Field[S, M] {
	f := stringField(KindRadio, slug, label, value, onInput)
	f.Options = options
	return f
}

// Select creates a select box. The value is the chosen option slug.
func Select[S, M any](slug, label string, options []Option, value func(S) (string, bool), onInput func(string) M) *Field[S, M] {
	f := stringField(KindSelect, slug, label, value, onInput)
	f.Options = options
	return f
}

// Checkbox creates a single checkbox.
func Checkbox[S, M any](slug, label string, checked func(S) bool, onCheck func(bool) M) *Field[S, M] {
	return &Field[S, M]{Kind: KindCheckbox, Slug: slug, Label: label, Checked: checked, OnCheck: onCheck}
}

// CheckboxGroup creates one checkbox per option. The checked state is read
// from the caller's list on every render.
func CheckboxGroup[S, M any](slug, label string, options []Option, checks func(S) []Check, onChecks func([]Check) M) *Field[S, M] {
	return &Field[S, M]{
		Kind:     KindCheckboxGroup,
		Slug:     slug,
		Label:    label,
		Options:  options,
		Checks:   checks,
		OnChecks: onChecks,
	}
}

// Autocomplete creates a filterable option list. The filter reader holds the
// typed text; the choice reader holds the chosen option slug.
func Autocomplete[S, M any](
	slug, label string,
	options []Option,
	filter func(S) (string, bool), onFilter func(string) M,
	choice func(S) (string, bool), onChoice func(string) M,
) *Field[S, M] {
	return &Field[S, M]{
		Kind:     KindAutocomplete,
		Slug:     slug,
		Label:    label,
		Options:  options,
		Filter:   filter,
		OnFilter: onFilter,
		Choice:   choice,
		OnChoice: onChoice,
	}
}

// Datepicker creates a date input backed by a calendar picker. The value is
// the date in DateLayout; typed text in DisplayLayout is converted before it
// reaches onInput.
func Datepicker[S, M any](
	slug, label string,
	value func(S) (string, bool), onInput func(string) M,
	picker func(S) datepicker.Model, onPicker func(datepicker.Msg) M,
) *Field[S, M] {
	f := stringField(KindDatepicker, slug, label, value, onInput)
	f.Picker = picker
	f.OnPicker = onPicker
	return f
}

// Static wraps fixed markup. It has no value and is always valid.
func Static[S, M any](markup *vdom.VNode) *Field[S, M] {
	return &Field[S, M]{Kind: KindStatic, Markup: markup}
}

var staticPolicy = bluemonday.UGCPolicy()

// StaticHTML is Static for an HTML string, sanitized with a user-content policy.
func StaticHTML[S, M any](html string) *Field[S, M] {
	return Static[S, M](vdom.Raw(staticPolicy.Sanitize(html)))
}

// ----------------------------------------------------------------------------
// Setters
// ----------------------------------------------------------------------------

// WithAttrs appends attributes passed through to the control element.
func (f *Field[S, M]) WithAttrs(attrs ...vdom.Attr) *Field[S, M] {
	f.Attrs = append(f.Attrs, attrs...)
	return f
}

// WithPlaceholder sets the placeholder attribute.
func (f *Field[S, M]) WithPlaceholder(text string) *Field[S, M] {
	return f.WithAttrs(vdom.Placeholder(text))
}

// WithFocus sets the message sent when the control gains focus.
func (f *Field[S, M]) WithFocus(msg func() M) *Field[S, M] {
	f.OnFocus = msg
	return f
}

// WithBlur sets the message sent when the control loses focus.
func (f *Field[S, M]) WithBlur(msg func() M) *Field[S, M] {
	f.OnBlur = msg
	return f
}

// Validate appends rules.
func (f *Field[S, M]) Validate(rules ...Rule[S]) *Field[S, M] {
	f.Rules = append(f.Rules, rules...)
	return f
}

// Require appends a NotEmpty rule.
func (f *Field[S, M]) Require(msg string) *Field[S, M] {
	return f.Validate(NotEmpty[S](msg))
}

// Match appends a MatchesPattern rule. It panics if pattern does not compile.
func (f *Field[S, M]) Match(pattern, msg string) *Field[S, M] {
	return f.Validate(MatchesPattern[S](pattern, msg))
}

// Ensure appends a Custom rule.
func (f *Field[S, M]) Ensure(pred func(S) bool, msg string) *Field[S, M] {
	return f.Validate(Custom(pred, msg))
}

// WithEmptyOption makes a select show an empty option while nothing is chosen.
func (f *Field[S, M]) WithEmptyOption() *Field[S, M] {
	f.EmptyOption = true
	return f
}

// AsDropdown renders a select as a styled list in place of the native control.
func (f *Field[S, M]) AsDropdown() *Field[S, M] {
	f.Dropdown = true
	return f
}

// WithNoResults sets the text shown when an autocomplete filter matches nothing.
func (f *Field[S, M]) WithNoResults(text string) *Field[S, M] {
	f.NoResults = text
	return f
}

// primary returns the reader that NotEmpty and MatchesPattern inspect, or nil
// for kinds that have none.
func (f *Field[S, M]) primary() func(S) (string, bool) {
	switch f.Kind {
	case KindText, KindPassword, KindTextarea, KindRadio, KindSelect, KindDatepicker:
		return f.Value
	case KindAutocomplete:
		return f.Choice
	default:
		return nil
	}
}

func read[S any](reader func(S) (string, bool), state S) string {
	if reader == nil {
		return ""
	}
	v, ok := reader(state)
	if !ok {
		return ""
	}
	return v
}
