package form

import "time"

// Date layouts. Datepicker values are stored in DateLayout and shown in
// DisplayLayout.
const (
	DateLayout    = "2006-01-02"
	DisplayLayout = "02/01/2006"
)

// FormatDate formats t in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a DateLayout string.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ReformatDate moves the day, month and year of s from one layout to the
// other. Strings that do not parse are returned unchanged.
func ReformatDate(s, from, to string) string {
	t, err := time.Parse(from, s)
	if err != nil {
		return s
	}
	return t.Format(to)
}

// DisplayDate converts a DateLayout value to DisplayLayout.
func DisplayDate(s string) string {
	return ReformatDate(s, DateLayout, DisplayLayout)
}
