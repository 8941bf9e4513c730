package datepicker

import (
	"strconv"
	"time"

	"github.com/vango-dev/forms/pkg/vdom"
)

var weekdays = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// View renders the calendar, or nil when the picker is closed.
// Weeks start on Monday.
func View(m Model) *vdom.VNode {
	if !m.Open {
		return nil
	}
	month := firstOfMonth(m.Month)

	return vdom.Div(
		vdom.Class("datepicker"),
		vdom.Role("dialog"),
		vdom.Div(
			vdom.Class("datepicker-header"),
			vdom.Button(
				vdom.Type("button"),
				vdom.Key("prev"),
				vdom.Class("datepicker-prev"),
				vdom.AriaLabel("Previous month"),
				vdom.OnClick(PrevMonth),
				"‹",
			),
			vdom.Span(vdom.Class("datepicker-month"), month.Format("January 2006")),
			vdom.Button(
				vdom.Type("button"),
				vdom.Key("next"),
				vdom.Class("datepicker-next"),
				vdom.AriaLabel("Next month"),
				vdom.OnClick(NextMonth),
				"›",
			),
		),
		vdom.Table(
			vdom.Class("datepicker-grid"),
			vdom.Thead(vdom.Tr(vdom.Range(weekdays, func(name string, _ int) *vdom.VNode {
				return vdom.Th(name)
			}))),
			vdom.Tbody(vdom.Range(weeks(month), func(week []time.Time, _ int) *vdom.VNode {
				return vdom.Tr(vdom.Range(week, func(d time.Time, _ int) *vdom.VNode {
					return dayCell(m, d)
				}))
			})),
		),
	)
}

func dayCell(m Model, d time.Time) *vdom.VNode {
	if d.IsZero() {
		return vdom.Td(vdom.Class("datepicker-empty"))
	}
	selected := m.HasSelection && d.Equal(m.Selected)
	return vdom.Td(vdom.Button(
		vdom.Type("button"),
		vdom.Key(d.Format("2006-01-02")),
		vdom.Class("datepicker-day"),
		vdom.ClassIf(d.Equal(m.Today), "today"),
		vdom.ClassIf(selected, "selected"),
		vdom.AriaSelected(selected),
		vdom.Data("date", d.Format("2006-01-02")),
		vdom.OnClick(func() Msg { return Pick(d) }),
		strconv.Itoa(d.Day()),
	))
}

// weeks lays out the month as rows of seven days. Zero times pad the first
// and last rows.
func weeks(month time.Time) [][]time.Time {
	offset := (int(month.Weekday()) + 6) % 7
	days := month.AddDate(0, 1, -1).Day()

	cells := make([]time.Time, offset, offset+days+6)
	for i := 0; i < days; i++ {
		cells = append(cells, month.AddDate(0, 0, i))
	}
	for len(cells)%7 != 0 {
		cells = append(cells, time.Time{})
	}

	rows := make([][]time.Time, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		rows = append(rows, cells[i:i+7])
	}
	return rows
}
