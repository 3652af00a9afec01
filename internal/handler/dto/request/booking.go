package request

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"pourup/internal/domain/booking"
	"pourup/internal/domain/schedule"
	"pourup/internal/pkg/errs"
)

const bookingDateLayout = "2006-01-02"

type CreateBookingRequest struct {
	ExperienceID    uuid.UUID `json:"experience_id" binding:"required"`
	BookingDate     string    `json:"booking_date" binding:"required"`
	BookingTime     string    `json:"booking_time" binding:"required"`
	PartySize       int       `json:"party_size" binding:"required,min=1"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
}

// ToDomain parses the wire date and time into domain values. Malformed input
// surfaces as the evaluator's rejection kinds so the handler maps one taxonomy.
func (r CreateBookingRequest) ToDomain() (time.Time, schedule.TimeOfDay, error) {
	date, err := time.Parse(bookingDateLayout, r.BookingDate)
	if err != nil {
		return time.Time{}, schedule.TimeOfDay{}, errs.Mark(err, booking.ErrInvalidDate)
	}

	at, err := schedule.ParseTimeOfDay(r.BookingTime)
	if err != nil {
		return time.Time{}, schedule.TimeOfDay{}, err
	}

	return date, at, nil
}

func (r CreateBookingRequest) TrimmedSpecialRequests() *string {
	if r.SpecialRequests == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.SpecialRequests)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type UpdateBookingStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes,omitempty"`
}

func (r UpdateBookingStatusRequest) TrimmedNotes() *string {
	if r.Notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type ListBookingsQuery struct {
	Status   *string    `form:"status"`
	OutletID *uuid.UUID `form:"outlet_id"`
	DateFrom *string    `form:"date_from"`
	DateTo   *string    `form:"date_to"`
}

func (q ListBookingsQuery) ParseDateRange() (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if q.DateFrom != nil {
		t, err := time.Parse(bookingDateLayout, *q.DateFrom)
		if err != nil {
			return nil, nil, errs.Mark(err, booking.ErrInvalidDate)
		}
		from = &t
	}
	if q.DateTo != nil {
		t, err := time.Parse(bookingDateLayout, *q.DateTo)
		if err != nil {
			return nil, nil, errs.Mark(err, booking.ErrInvalidDate)
		}
		to = &t
	}
	return from, to, nil
}
