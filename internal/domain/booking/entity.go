package booking

import (
	"time"

	"github.com/google/uuid"

	"pourup/internal/domain/schedule"
)

// Booking is a user's reservation against one experience at one date and time.
// Status moves only through StateMachine.Transition; the total price and the
// confirmation code are fixed at creation and never recomputed.
type Booking struct {
	id              uuid.UUID
	userID          uuid.UUID
	experienceID    uuid.UUID
	outletID        uuid.UUID
	status          Status
	date            time.Time
	timeOfDay       schedule.TimeOfDay
	partySize       int
	totalPrice      Money
	code            string
	specialRequests *string
	notes           *string
	updatedBy       *uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking creates a pending booking from an evaluator approval. The caller
// is responsible for having run the availability evaluation and for supplying
// a confirmation code verified unique against the store.
func NewBooking(
	userID, experienceID, outletID uuid.UUID,
	date time.Time,
	timeOfDay schedule.TimeOfDay,
	partySize int,
	totalPrice Money,
	code string,
	specialRequests *string,
	now time.Time,
) *Booking {
	return &Booking{
		id:              uuid.New(),
		userID:          userID,
		experienceID:    experienceID,
		outletID:        outletID,
		status:          StatusPending,
		date:            date,
		timeOfDay:       timeOfDay,
		partySize:       partySize,
		totalPrice:      totalPrice,
		code:            code,
		specialRequests: specialRequests,
		createdAt:       now,
		updatedAt:       now,
	}
}

func ReconstructBooking(
	id, userID, experienceID, outletID uuid.UUID,
	status Status,
	date time.Time,
	timeOfDay schedule.TimeOfDay,
	partySize int,
	totalPrice Money,
	code string,
	specialRequests, notes *string,
	updatedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		userID:          userID,
		experienceID:    experienceID,
		outletID:        outletID,
		status:          status,
		date:            date,
		timeOfDay:       timeOfDay,
		partySize:       partySize,
		totalPrice:      totalPrice,
		code:            code,
		specialRequests: specialRequests,
		notes:           notes,
		updatedBy:       updatedBy,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) UserID() uuid.UUID             { return b.userID }
func (b *Booking) ExperienceID() uuid.UUID       { return b.experienceID }
func (b *Booking) OutletID() uuid.UUID           { return b.outletID }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) Date() time.Time               { return b.date }
func (b *Booking) TimeOfDay() schedule.TimeOfDay { return b.timeOfDay }
func (b *Booking) PartySize() int                { return b.partySize }
func (b *Booking) TotalPrice() Money             { return b.totalPrice }
func (b *Booking) ConfirmationCode() string      { return b.code }
func (b *Booking) SpecialRequests() *string      { return b.specialRequests }
func (b *Booking) Notes() *string                { return b.notes }
func (b *Booking) UpdatedBy() *uuid.UUID         { return b.updatedBy }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time          { return b.updatedAt }

// CanBeCancelled is the user-facing cancellation precheck: only pending and
// confirmed bookings may still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.status == StatusPending || b.status == StatusConfirmed
}

// applyTransition is invoked by the state machine after validation.
func (b *Booking) applyTransition(to Status, actorID uuid.UUID, notes *string, now time.Time) {
	b.status = to
	updatedBy := actorID
	b.updatedBy = &updatedBy
	if notes != nil {
		b.notes = notes
	}
	b.updatedAt = now
}
