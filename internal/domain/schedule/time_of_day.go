package schedule

import (
	"errors"
	"fmt"
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day, expected zero-padded HH:MM")

// TimeOfDay is a clock time stored as minutes since midnight. The original data
// kept zero-padded "HH:MM" strings and compared them lexicographically; integer
// minutes make the ordering safe regardless of formatting.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay accepts only the zero-padded 24-hour "HH:MM" form stored on
// time slots and operation hours.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	hour, ok := twoDigits(s[0], s[1])
	if !ok {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	minute, ok := twoDigits(s[3], s[4])
	if !ok {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(hour, minute)
}

func twoDigits(hi, lo byte) (int, bool) {
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return 0, false
	}
	return int(hi-'0')*10 + int(lo-'0'), true
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) Hour() int {
	return t.minutes / 60
}

func (t TimeOfDay) Minute() int {
	return t.minutes % 60
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.minutes == other.minutes
}

// Between reports whether t lies in [start, end], inclusive of both bounds.
func (t TimeOfDay) Between(start, end TimeOfDay) bool {
	return !t.Before(start) && !t.After(end)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
