package schedule

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidWeekday  = errors.New("invalid weekday name")
	ErrInvalidDayHours = errors.New("day hours must close after they open")
)

// Weekday is the lowercase English day name used as the key of an outlet's
// operation-hours mapping.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

func NewWeekday(s string) (Weekday, error) {
	day := Weekday(strings.ToLower(strings.TrimSpace(s)))
	switch day {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return day, nil
	default:
		return "", ErrInvalidWeekday
	}
}

func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

func (d Weekday) String() string {
	return string(d)
}

// DayHours is one day's open/close window. A closed day carries no meaningful
// window.
type DayHours struct {
	open   TimeOfDay
	close  TimeOfDay
	closed bool
}

func NewDayHours(open, close TimeOfDay) (DayHours, error) {
	if !open.Before(close) {
		return DayHours{}, ErrInvalidDayHours
	}
	return DayHours{open: open, close: close}, nil
}

func ClosedDay() DayHours {
	return DayHours{closed: true}
}

func (d DayHours) Open() TimeOfDay {
	return d.open
}

func (d DayHours) Close() TimeOfDay {
	return d.close
}

func (d DayHours) IsClosed() bool {
	return d.closed
}

// Contains reports whether t falls within the open window, bounds inclusive.
func (d DayHours) Contains(t TimeOfDay) bool {
	return !d.closed && t.Between(d.open, d.close)
}

// WeekSchedule maps weekdays to operating windows. A day absent from the map
// is treated as closed.
type WeekSchedule struct {
	days map[Weekday]DayHours
}

func NewWeekSchedule(days map[Weekday]DayHours) WeekSchedule {
	copied := make(map[Weekday]DayHours, len(days))
	for day, hours := range days {
		copied[day] = hours
	}
	return WeekSchedule{days: copied}
}

func (w WeekSchedule) On(day Weekday) DayHours {
	hours, ok := w.days[day]
	if !ok {
		return ClosedDay()
	}
	return hours
}

func (w WeekSchedule) IsOpenOn(day Weekday) bool {
	return !w.On(day).IsClosed()
}

func (w WeekSchedule) Days() map[Weekday]DayHours {
	copied := make(map[Weekday]DayHours, len(w.days))
	for day, hours := range w.days {
		copied[day] = hours
	}
	return copied
}
