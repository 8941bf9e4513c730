package schema

import (
	"fmt"
	"maps"
	"time"

	"github.com/vango-dev/forms/pkg/datepicker"
	"github.com/vango-dev/forms/pkg/form"
)

// State holds the values of every field of a definition, keyed by slug.
type State struct {
	Values    map[string]string           `msgpack:"v"` // text-like kinds, radio, select, datepicker, autocomplete choice
	Filters   map[string]string           `msgpack:"f"` // autocomplete filter text
	Flags     map[string]bool             `msgpack:"b"` // checkbox
	Checks    map[string][]form.Check     `msgpack:"c"` // checkbox groups
	Pickers   map[string]datepicker.Model `msgpack:"p"`
	Focused   string                      `msgpack:"o"`
	Submitted bool                        `msgpack:"s"`
}

// NewState returns the initial state of d. Defaults are applied and every
// datepicker is initialised around today.
func NewState(d *Definition, today time.Time) State {
	s := State{
		Values:  make(map[string]string),
		Filters: make(map[string]string),
		Flags:   make(map[string]bool),
		Checks:  make(map[string][]form.Check),
		Pickers: make(map[string]datepicker.Model),
	}
	for _, f := range d.Fields {
		kind, _ := form.ParseKind(f.Kind)
		switch kind {
		case form.KindCheckbox:
			s.Flags[f.Slug] = f.Default == "true"
		case form.KindCheckboxGroup:
			checks := make([]form.Check, 0, len(f.Options))
			for _, opt := range f.Options {
				checks = append(checks, form.Check{Slug: opt.Slug})
			}
			s.Checks[f.Slug] = checks
		case form.KindDatepicker:
			if day, ok := form.ParseDate(f.Default); ok {
				s.Pickers[f.Slug] = datepicker.InitAt(today, day)
				s.Values[f.Slug] = f.Default
			} else {
				s.Pickers[f.Slug] = datepicker.Init(today)
			}
		case form.KindStatic:
		default:
			if f.Default != "" {
				s.Values[f.Slug] = f.Default
			}
		}
	}
	return s
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.Values = cloneMap(s.Values)
	out.Filters = cloneMap(s.Filters)
	out.Flags = cloneMap(s.Flags)
	out.Pickers = cloneMap(s.Pickers)
	out.Checks = make(map[string][]form.Check, len(s.Checks))
	for k, v := range s.Checks {
		out.Checks[k] = append([]form.Check(nil), v...)
	}
	return out
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	maps.Copy(out, m)
	return out
}

// value reads a string and reports whether it is present.
func (s State) value(slug string) (string, bool) {
	v, ok := s.Values[slug]
	return v, ok
}

func (s State) filter(slug string) (string, bool) {
	v, ok := s.Filters[slug]
	return v, ok
}

// MsgKind identifies what a Msg changes.
type MsgKind uint8

const (
	MsgSetValue MsgKind = iota
	MsgSetFilter
	MsgSetFlag
	MsgSetChecks
	MsgPicker
	MsgFocus
	MsgBlur
	MsgSubmit
	MsgReset
)

var msgNames = [...]string{
	MsgSetValue:  "SetValue",
	MsgSetFilter: "SetFilter",
	MsgSetFlag:   "SetFlag",
	MsgSetChecks: "SetChecks",
	MsgPicker:    "Picker",
	MsgFocus:     "Focus",
	MsgBlur:      "Blur",
	MsgSubmit:    "Submit",
	MsgReset:     "Reset",
}

// String returns the name of the kind.
func (k MsgKind) String() string {
	if int(k) < len(msgNames) {
		return msgNames[k]
	}
	return fmt.Sprintf("MsgKind(%d)", k)
}

// Msg is a change to State produced by a rendered field.
type Msg struct {
	Kind   MsgKind
	Slug   string
	Value  string
	Flag   bool
	Checks []form.Check
	Picker datepicker.Msg
}

// Update applies msg to a copy of s. MsgReset needs the definition and is
// handled by Definition.Apply.
func Update(s State, msg Msg) State {
	s = s.Clone()
	switch msg.Kind {
	case MsgSetValue:
		s.Values[msg.Slug] = msg.Value
		if m, ok := s.Pickers[msg.Slug]; ok {
			s.Pickers[msg.Slug] = syncPicker(m, msg.Value)
		}
	case MsgSetFilter:
		s.Filters[msg.Slug] = msg.Value
	case MsgSetFlag:
		s.Flags[msg.Slug] = msg.Flag
	case MsgSetChecks:
		s.Checks[msg.Slug] = msg.Checks
	case MsgPicker:
		model, value, picked := form.ApplyPicker(msg.Picker, s.Pickers[msg.Slug])
		s.Pickers[msg.Slug] = model
		if picked {
			s.Values[msg.Slug] = value
		}
	case MsgFocus:
		s.Focused = msg.Slug
	case MsgBlur:
		if s.Focused == msg.Slug {
			s.Focused = ""
		}
	case MsgSubmit:
		s.Submitted = true
	}
	return s
}

// syncPicker points m at a typed date so the open calendar highlights it.
// An empty value clears the selection; a partial one leaves m alone.
func syncPicker(m datepicker.Model, value string) datepicker.Model {
	if value == "" {
		m.Selected, m.HasSelection = time.Time{}, false
		return m
	}
	d, ok := form.ParseDate(value)
	if !ok {
		return m
	}
	next := datepicker.InitAt(m.Today, d)
	next.Open = m.Open
	return next
}

// Apply is Update that also handles MsgReset against d.
func (d *Definition) Apply(s State, msg Msg, today time.Time) State {
	if msg.Kind == MsgReset {
		return NewState(d, today)
	}
	return Update(s, msg)
}
