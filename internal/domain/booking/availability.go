package booking

import (
	"errors"
	"time"

	"pourup/internal/domain/experience"
	"pourup/internal/domain/outlet"
	"pourup/internal/domain/schedule"
	"pourup/internal/pkg/clock"
)

var (
	ErrInvalidDate           = errors.New("booking date must be in the future")
	ErrInvalidPartySize      = errors.New("party size must be positive")
	ErrOutletClosed          = errors.New("outlet is closed on the requested day")
	ErrOutsideOperatingHours = errors.New("requested time is outside operating hours")
	ErrNoAvailableSlot       = errors.New("no available time slot matches the request")
)

// Approval carries the matched slot and the price computed for an accepted
// request.
type Approval struct {
	Slot       experience.TimeSlot
	TotalPrice Money
}

// AvailabilityEvaluator decides whether a booking request may be created. It
// is a pure decision function over already-loaded entities: no storage access,
// no side effects, and identical inputs always produce identical results.
type AvailabilityEvaluator struct {
	clock clock.Clock
}

func NewAvailabilityEvaluator(clock clock.Clock) *AvailabilityEvaluator {
	return &AvailabilityEvaluator{clock: clock}
}

// Evaluate checks the request against the outlet's weekly hours and the
// experience's configured slots. Outlet hours are checked before slot matching
// so a closed outlet yields the more actionable rejection. Both the operating
// window and the slot window include their bounds.
func (e *AvailabilityEvaluator) Evaluate(
	exp *experience.Experience,
	out *outlet.Outlet,
	date time.Time,
	at schedule.TimeOfDay,
	partySize int,
) (*Approval, error) {
	if partySize < 1 {
		return nil, ErrInvalidPartySize
	}
	if !e.isFutureDate(date) {
		return nil, ErrInvalidDate
	}

	hours := out.HoursOn(schedule.WeekdayOf(date))
	if hours.IsClosed() {
		return nil, ErrOutletClosed
	}
	if !hours.Contains(at) {
		return nil, ErrOutsideOperatingHours
	}

	for _, slot := range exp.TimeSlots() {
		if slot.Covers(at) && slot.Accommodates(partySize) {
			price, err := NewMoney(exp.PricePerPersonCents() * int64(partySize))
			if err != nil {
				return nil, err
			}
			return &Approval{Slot: slot, TotalPrice: price}, nil
		}
	}

	return nil, ErrNoAvailableSlot
}

// isFutureDate compares calendar dates: today never qualifies.
func (e *AvailabilityEvaluator) isFutureDate(date time.Time) bool {
	if date.IsZero() {
		return false
	}
	now := e.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	requested := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return requested.After(today)
}
