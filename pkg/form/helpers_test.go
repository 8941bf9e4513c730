package form

import (
	"github.com/vango-dev/forms/pkg/datepicker"
)

type state struct {
	Name     string
	Password string
	Bio      string
	Color    string
	Size     string
	Birthday string
	Filter   string
	Country  string
	Agree    bool
	Toppings []Check
	Picker   datepicker.Model
}

type msg struct {
	Field   string
	Value   string
	Checked bool
	Checks  []Check
	Picker  datepicker.Msg
}

// present reads a string that counts as absent when empty.
func present(get func(state) string) func(state) (string, bool) {
	return func(s state) (string, bool) {
		v := get(s)
		return v, v != ""
	}
}

func set(field string) func(string) msg {
	return func(v string) msg { return msg{Field: field, Value: v} }
}

var colors = []Option{Opt("Red", "red"), Opt("Green", "green"), Opt("Blue", "blue")}

var countries = []Option{
	Opt("France", "fr"),
	Opt("Germany", "de"),
	Opt("Greece", "gr"),
	Opt("Spain", "es"),
}

func nameField() *Field[state, msg] {
	return Text("name", "Name", present(func(s state) string { return s.Name }), set("name"))
}

func colorField() *Field[state, msg] {
	return Radio("color", "Color", colors, present(func(s state) string { return s.Color }), set("color"))
}

func sizeField() *Field[state, msg] {
	return Select("size", "Size", []Option{Opt("Small", "s"), Opt("Large", "l")},
		present(func(s state) string { return s.Size }), set("size"))
}

func agreeField() *Field[state, msg] {
	return Checkbox("agree", "I agree",
		func(s state) bool { return s.Agree },
		func(b bool) msg { return msg{Field: "agree", Checked: b} })
}

func toppingsField() *Field[state, msg] {
	return CheckboxGroup("toppings", "Toppings",
		[]Option{Opt("Cheese", "cheese"), Opt("Olives", "olives")},
		func(s state) []Check { return s.Toppings },
		func(c []Check) msg { return msg{Field: "toppings", Checks: c} })
}

func countryField() *Field[state, msg] {
	return Autocomplete("country", "Country", countries,
		present(func(s state) string { return s.Filter }), set("filter"),
		present(func(s state) string { return s.Country }), set("country"))
}

func birthdayField() *Field[state, msg] {
	return Datepicker("birthday", "Birthday",
		present(func(s state) string { return s.Birthday }), set("birthday"),
		func(s state) datepicker.Model { return s.Picker },
		func(m datepicker.Msg) msg { return msg{Field: "picker", Picker: m} })
}

func allFields() []*Field[state, msg] {
	return []*Field[state, msg]{
		nameField(),
		Password("password", "Password", present(func(s state) string { return s.Password }), set("password")),
		Textarea("bio", "Bio", present(func(s state) string { return s.Bio }), set("bio")),
		colorField(),
		agreeField(),
		toppingsField(),
		sizeField(),
		birthdayField(),
		countryField(),
	}
}

func never(state) bool { return false }
