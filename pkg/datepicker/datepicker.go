// Package datepicker is a minimal calendar widget with an Init, Update,
// View and SelectedDate contract.
//
// The widget owns no state. Hosts keep a Model in their own state, route the
// Msg values produced by View's handlers back through Update, and read the
// picked day from the returned Event or from SelectedDate.
package datepicker

import (
	"fmt"
	"time"
)

// MsgKind identifies a date-picker message.
type MsgKind uint8

const (
	MsgToggle MsgKind = iota
	MsgPrevMonth
	MsgNextMonth
	MsgPick
	MsgClose
)

// String returns a human-readable name for the kind.
func (k MsgKind) String() string {
	switch k {
	case MsgToggle:
		return "Toggle"
	case MsgPrevMonth:
		return "PrevMonth"
	case MsgNextMonth:
		return "NextMonth"
	case MsgPick:
		return "Pick"
	case MsgClose:
		return "Close"
	default:
		return fmt.Sprintf("MsgKind(%d)", k)
	}
}

// Msg is a message produced by the picker's markup.
type Msg struct {
	Kind MsgKind
	Date time.Time // set for MsgPick
}

// Toggle opens or closes the calendar.
func Toggle() Msg { return Msg{Kind: MsgToggle} }

// PrevMonth shows the previous month.
func PrevMonth() Msg { return Msg{Kind: MsgPrevMonth} }

// NextMonth shows the next month.
func NextMonth() Msg { return Msg{Kind: MsgNextMonth} }

// Pick selects a day.
func Pick(d time.Time) Msg { return Msg{Kind: MsgPick, Date: d} }

// Close hides the calendar.
func Close() Msg { return Msg{Kind: MsgClose} }

// Model is the picker state kept by the host.
type Model struct {
	Month        time.Time // first day of the displayed month
	Selected     time.Time
	HasSelection bool
	Open         bool
	Today        time.Time
}

// Event reports what an Update did that the host may care about.
type Event struct {
	Picked bool
	Date   time.Time
}

// Init returns a closed picker showing today's month with nothing selected.
func Init(today time.Time) Model {
	today = day(today)
	return Model{Month: firstOfMonth(today), Today: today}
}

// InitAt is Init with d already selected and its month displayed.
func InitAt(today, d time.Time) Model {
	m := Init(today)
	d = day(d)
	m.Selected = d
	m.HasSelection = true
	m.Month = firstOfMonth(d)
	return m
}

// Update applies msg and returns the new model.
func Update(msg Msg, m Model) (Model, Event) {
	switch msg.Kind {
	case MsgToggle:
		m.Open = !m.Open
	case MsgPrevMonth:
		m.Month = firstOfMonth(m.Month).AddDate(0, -1, 0)
	case MsgNextMonth:
		m.Month = firstOfMonth(m.Month).AddDate(0, 1, 0)
	case MsgPick:
		d := day(msg.Date)
		m.Selected = d
		m.HasSelection = true
		m.Month = firstOfMonth(d)
		m.Open = false
		return m, Event{Picked: true, Date: d}
	case MsgClose:
		m.Open = false
	}
	return m, Event{}
}

// SelectedDate returns the picked day, if any.
func SelectedDate(m Model) (time.Time, bool) {
	return m.Selected, m.HasSelection
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
