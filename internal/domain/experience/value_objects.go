package experience

import (
	"errors"

	"pourup/internal/domain/schedule"
)

var (
	ErrInvalidSlotWindow     = errors.New("time slot must end after it starts")
	ErrInvalidMaxParty       = errors.New("time slot capacity must be positive")
	ErrNoTimeSlots           = errors.New("experience must offer at least one time slot")
	ErrInvalidPricePerPerson = errors.New("price per person cannot be negative")
)

// TimeSlot is a recurring daily window an experience can be booked in, with a
// nominal capacity cap. Capacity is not decremented per booking; it bounds a
// single party's size.
type TimeSlot struct {
	start        schedule.TimeOfDay
	end          schedule.TimeOfDay
	maxPartySize int
	available    bool
}

func NewTimeSlot(start, end schedule.TimeOfDay, maxPartySize int, available bool) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidSlotWindow
	}
	if maxPartySize < 1 {
		return TimeSlot{}, ErrInvalidMaxParty
	}
	return TimeSlot{
		start:        start,
		end:          end,
		maxPartySize: maxPartySize,
		available:    available,
	}, nil
}

func (s TimeSlot) Start() schedule.TimeOfDay {
	return s.start
}

func (s TimeSlot) End() schedule.TimeOfDay {
	return s.end
}

func (s TimeSlot) MaxPartySize() int {
	return s.maxPartySize
}

func (s TimeSlot) IsAvailable() bool {
	return s.available
}

// Covers reports whether the slot window includes t, bounds inclusive.
func (s TimeSlot) Covers(t schedule.TimeOfDay) bool {
	return t.Between(s.start, s.end)
}

// Accommodates reports whether the slot can host a party of the given size.
func (s TimeSlot) Accommodates(partySize int) bool {
	return s.available && s.maxPartySize >= partySize
}
