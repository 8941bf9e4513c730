package form

import "fmt"

// Kind identifies the variant of a Field.
type Kind uint8

const (
	KindText Kind = iota
	KindPassword
	KindTextarea
	KindRadio
	KindCheckbox
	KindCheckboxGroup
	KindSelect
	KindDatepicker
	KindAutocomplete
	KindStatic
)

var kindNames = [...]string{
	KindText:          "text",
	KindPassword:      "password",
	KindTextarea:      "textarea",
	KindRadio:         "radio",
	KindCheckbox:      "checkbox",
	KindCheckboxGroup: "checkboxes",
	KindSelect:        "select",
	KindDatepicker:    "datepicker",
	KindAutocomplete:  "autocomplete",
	KindStatic:        "static",
}

// String returns the lower-case name of the kind, as used in definition files.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// HasOptions reports whether fields of this kind render an option list.
func (k Kind) HasOptions() bool {
	switch k {
	case KindRadio, KindCheckboxGroup, KindSelect, KindAutocomplete:
		return true
	}
	return false
}

// matchable reports whether pattern rules apply to this kind.
func (k Kind) matchable() bool {
	switch k {
	case KindText, KindTextarea, KindAutocomplete:
		return true
	}
	return false
}
