package schema

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/forms/pkg/datepicker"
	"github.com/vango-dev/forms/pkg/form"
	"github.com/vango-dev/forms/pkg/vdom"
)

var today = time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

func loadSignup(t *testing.T) *Definition {
	t.Helper()
	def, err := Load("testdata/signup.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return def
}

func TestNewState(t *testing.T) {
	s := NewState(loadSignup(t), today)

	if !s.Flags["terms"] {
		t.Error("checkbox default should apply")
	}
	if diff := cmp.Diff([]form.Check{{Slug: "news"}, {Slug: "offers"}}, s.Checks["topics"]); diff != "" {
		t.Errorf("checks mismatch (-want +got):\n%s", diff)
	}
	if s.Values["birthday"] != "1990-06-15" {
		t.Errorf("birthday = %q", s.Values["birthday"])
	}
	if d, ok := datepicker.SelectedDate(s.Pickers["birthday"]); !ok || d.Year() != 1990 {
		t.Errorf("picker selection = %v, %v", d, ok)
	}
	if _, ok := s.Values["email"]; ok {
		t.Error("fields without defaults should start absent")
	}
}

func TestUpdate(t *testing.T) {
	s := NewState(loadSignup(t), today)

	tests := []struct {
		name  string
		msg   Msg
		check func(State) bool
	}{
		{"set value", Msg{Kind: MsgSetValue, Slug: "email", Value: "a@b"}, func(s State) bool { return s.Values["email"] == "a@b" }},
		{"set filter", Msg{Kind: MsgSetFilter, Slug: "country", Value: "Ger"}, func(s State) bool { return s.Filters["country"] == "Ger" }},
		{"set flag", Msg{Kind: MsgSetFlag, Slug: "terms", Flag: false}, func(s State) bool { return !s.Flags["terms"] }},
		{"set checks", Msg{Kind: MsgSetChecks, Slug: "topics", Checks: []form.Check{{Slug: "news", Checked: true}}}, func(s State) bool {
			return form.IsChecked(s.Checks["topics"], "news")
		}},
		{"focus", Msg{Kind: MsgFocus, Slug: "email"}, func(s State) bool { return s.Focused == "email" }},
		{"blur other", Msg{Kind: MsgBlur, Slug: "password"}, func(s State) bool { return s.Focused == "email" }},
		{"blur", Msg{Kind: MsgBlur, Slug: "email"}, func(s State) bool { return s.Focused == "" }},
		{"submit", Msg{Kind: MsgSubmit}, func(s State) bool { return s.Submitted }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := s
			s = Update(s, tt.msg)
			if !tt.check(s) {
				t.Errorf("state after %s = %+v", tt.msg.Kind, s)
			}
			if tt.msg.Kind == MsgSetValue && before.Values["email"] == "a@b" {
				t.Error("Update must not modify its input")
			}
		})
	}
}

func TestUpdatePicker(t *testing.T) {
	s := NewState(loadSignup(t), today)
	s = Update(s, Msg{Kind: MsgPicker, Slug: "birthday", Picker: datepicker.Toggle()})
	if !s.Pickers["birthday"].Open {
		t.Fatal("toggle should open the picker")
	}
	s = Update(s, Msg{Kind: MsgPicker, Slug: "birthday", Picker: datepicker.Pick(time.Date(1990, time.June, 20, 0, 0, 0, 0, time.UTC))})
	if s.Values["birthday"] != "1990-06-20" || s.Pickers["birthday"].Open {
		t.Errorf("after pick: value %q, open %v", s.Values["birthday"], s.Pickers["birthday"].Open)
	}
}

func TestApplyReset(t *testing.T) {
	def := loadSignup(t)
	s := Update(NewState(def, today), Msg{Kind: MsgSetValue, Slug: "email", Value: "x"})
	s = def.Apply(s, Msg{Kind: MsgReset}, today)
	if _, ok := s.Values["email"]; ok {
		t.Error("reset should restore the initial state")
	}
	s = def.Apply(s, Msg{Kind: MsgSetValue, Slug: "email", Value: "y"}, today)
	if s.Values["email"] != "y" {
		t.Error("Apply should delegate to Update")
	}
}

func TestCloneNil(t *testing.T) {
	s := Update(State{}, Msg{Kind: MsgSetValue, Slug: "a", Value: "b"})
	if s.Values["a"] != "b" {
		t.Error("Update should work on a zero State")
	}
}

func TestCompiledRules(t *testing.T) {
	def := loadSignup(t)
	fields := def.Compile()
	if len(fields) != 9 {
		t.Fatalf("got %d fields, want 9", len(fields))
	}

	s := NewState(def, today)
	s.Values["email"] = "ada.example.com"
	s.Values["password"] = "short"
	s.Values["confirm"] = "shorter"
	s.Values["country"] = "fr"

	want := map[string][]string{
		"email":    {"Not an email address"},
		"password": {"At least 8 characters"},
		"confirm":  {"Passwords differ"},
	}
	if diff := cmp.Diff(want, def.Errors(s)); diff != "" {
		t.Errorf("Errors mismatch (-want +got):\n%s", diff)
	}

	s.Values["email"] = "ada@example.com"
	s.Values["password"] = "long enough"
	s.Values["confirm"] = "long enough"
	if errs := def.Errors(s); errs != nil {
		t.Errorf("Errors = %v, want none", errs)
	}
}

func TestView(t *testing.T) {
	def := loadSignup(t)
	s := NewState(def, today)
	view := def.View(s, form.DefaultClasses())
	roots := []*vdom.VNode{view}

	if h := vdom.FindByTag(roots, "h1"); len(h) != 1 || h[0].TextContent() != "Sign up" {
		t.Errorf("title = %v", h)
	}
	if got := len(vdom.FindByClass(roots, "form-field")); got != 9 {
		t.Errorf("got %d field wrappers, want 9", got)
	}
	submit := vdom.FindByClass(roots, "form-submit")[0]
	if !submit.HasAttr("disabled") || submit.TextContent() != "Create account" {
		t.Errorf("submit = %v", submit.Props)
	}

	email := vdom.FindByID(roots, "email")
	m, ok := vdom.Emit[Msg](email, "input", "ada@example.com")
	if !ok || !cmp.Equal(m, Msg{Kind: MsgSetValue, Slug: "email", Value: "ada@example.com"}) {
		t.Errorf("email input = %+v, %v", m, ok)
	}
	if m, _ := vdom.Emit[Msg](email, "focus"); m.Kind != MsgFocus || m.Slug != "email" {
		t.Errorf("focus = %+v", m)
	}

	var raw *vdom.VNode
	vdom.Walk(view, func(n *vdom.VNode) bool {
		if n.Kind == vdom.KindRaw {
			raw = n
		}
		return true
	})
	if raw == nil || !strings.Contains(raw.Text, "<strong>*</strong>") {
		t.Errorf("static markup = %v", raw)
	}

	for _, msg := range []Msg{
		{Kind: MsgSetValue, Slug: "email", Value: "ada@example.com"},
		{Kind: MsgSetValue, Slug: "password", Value: "correct horse"},
		{Kind: MsgSetValue, Slug: "confirm", Value: "correct horse"},
		{Kind: MsgSetValue, Slug: "country", Value: "de"},
		{Kind: MsgFocus, Slug: "email"},
		{Kind: MsgSubmit},
	} {
		s = Update(s, msg)
	}
	roots = []*vdom.VNode{def.View(s, form.DefaultClasses())}
	if vdom.FindByClass(roots, "form-submit")[0].HasAttr("disabled") {
		t.Error("submit should be enabled once every field is valid")
	}
	if len(vdom.FindByClass(roots, "form-submitted")) != 1 {
		t.Error("a valid submit should be confirmed")
	}
	if len(vdom.FindByClass(roots, "focused")) != 1 {
		t.Error("the focused field should be marked")
	}
}

func TestViewCustomClasses(t *testing.T) {
	def := loadSignup(t)
	roots := []*vdom.VNode{def.View(NewState(def, today), form.Classes{Field: "row"})}

	if got := len(vdom.FindByClass(roots, "row")); got != 9 {
		t.Errorf("got %d row wrappers, want 9", got)
	}
	if got := len(vdom.FindByClass(roots, "form-field")); got != 0 {
		t.Errorf("got %d default wrappers, want 0", got)
	}
	if got := len(vdom.FindByClass(roots, "pristine")); got == 0 {
		t.Error("unset class names should fall back to the defaults")
	}
}

func TestUpdateTypedDateSyncsPicker(t *testing.T) {
	s := NewState(loadSignup(t), today)
	s = Update(s, Msg{Kind: MsgPicker, Slug: "birthday", Picker: datepicker.Toggle()})

	s = Update(s, Msg{Kind: MsgSetValue, Slug: "birthday", Value: "1990-06-20"})
	m := s.Pickers["birthday"]
	if got, ok := datepicker.SelectedDate(m); !ok || !got.Equal(time.Date(1990, time.June, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("selected = %v, %v", got, ok)
	}
	if m.Month.Month() != time.June || m.Month.Year() != 1990 || !m.Open || !m.Today.Equal(today) {
		t.Errorf("picker = %+v", m)
	}

	s = Update(s, Msg{Kind: MsgSetValue, Slug: "birthday", Value: "20/06"})
	if _, ok := datepicker.SelectedDate(s.Pickers["birthday"]); !ok {
		t.Error("a partial date should keep the previous selection")
	}

	s = Update(s, Msg{Kind: MsgSetValue, Slug: "birthday", Value: ""})
	if _, ok := datepicker.SelectedDate(s.Pickers["birthday"]); ok {
		t.Error("clearing the input should clear the selection")
	}
}
