//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	"pourup/internal/domain/booking"
	"pourup/internal/domain/schedule"
	reqdto "pourup/internal/handler/dto/request"
	"pourup/internal/usecase/queries"
)

type BookingBuilder struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ExperienceID    uuid.UUID
	OutletID        uuid.UUID
	Status          booking.Status
	Date            time.Time
	TimeOfDay       schedule.TimeOfDay
	PartySize       int
	TotalPriceCents int64
	Code            string
	SpecialRequests *string
	Notes           *string
	UpdatedBy       *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	at, _ := schedule.NewTimeOfDay(14, 0)
	return &BookingBuilder{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		ExperienceID:    uuid.New(),
		OutletID:        uuid.New(),
		Status:          booking.StatusPending,
		Date:            time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
		TimeOfDay:       at,
		PartySize:       2,
		TotalPriceCents: 10000,
		Code:            "BK-1A2B3C4D",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithOutletID(id uuid.UUID) *BookingBuilder {
	b.OutletID = id
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	price, _ := booking.NewMoney(b.TotalPriceCents)
	return booking.ReconstructBooking(
		b.ID, b.UserID, b.ExperienceID, b.OutletID,
		b.Status, b.Date, b.TimeOfDay, b.PartySize, price, b.Code,
		b.SpecialRequests, b.Notes, b.UpdatedBy,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:               b.ID,
		UserID:           b.UserID,
		UserEmail:        "guest@example.com",
		ExperienceID:     b.ExperienceID,
		ExperienceTitle:  "Estate Tasting",
		OutletID:         b.OutletID,
		OutletName:       "Cellar Door",
		Status:           b.Status.String(),
		BookingDate:      b.Date,
		BookingTime:      b.TimeOfDay.String(),
		PartySize:        int32(b.PartySize),
		TotalPriceCents:  b.TotalPriceCents,
		ConfirmationCode: b.Code,
		SpecialRequests:  b.SpecialRequests,
		Notes:            b.Notes,
		UpdatedBy:        b.UpdatedBy,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:               b.ID,
		ExperienceID:     b.ExperienceID,
		ExperienceTitle:  "Estate Tasting",
		OutletID:         b.OutletID,
		OutletName:       "Cellar Door",
		Status:           b.Status.String(),
		BookingDate:      b.Date,
		BookingTime:      b.TimeOfDay.String(),
		PartySize:        int32(b.PartySize),
		TotalPriceCents:  b.TotalPriceCents,
		ConfirmationCode: b.Code,
		CreatedAt:        b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ExperienceID:    b.ExperienceID,
		BookingDate:     b.Date.Format("2006-01-02"),
		BookingTime:     b.TimeOfDay.String(),
		PartySize:       b.PartySize,
		SpecialRequests: b.SpecialRequests,
	}
}
