package experience

import (
	"github.com/google/uuid"
)

// Experience is a bookable offering (tasting, tour) tied to one outlet. The
// booking core treats it as read-only: slots and price are configured through
// the admin surface and only consulted here.
type Experience struct {
	id                  uuid.UUID
	outletID            uuid.UUID
	title               string
	pricePerPersonCents int64
	timeSlots           []TimeSlot
}

func NewExperience(id, outletID uuid.UUID, title string, pricePerPersonCents int64, timeSlots []TimeSlot) (*Experience, error) {
	if pricePerPersonCents < 0 {
		return nil, ErrInvalidPricePerPerson
	}
	if len(timeSlots) == 0 {
		return nil, ErrNoTimeSlots
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Experience{
		id:                  id,
		outletID:            outletID,
		title:               title,
		pricePerPersonCents: pricePerPersonCents,
		timeSlots:           append([]TimeSlot(nil), timeSlots...),
	}, nil
}

func (e *Experience) ID() uuid.UUID               { return e.id }
func (e *Experience) OutletID() uuid.UUID         { return e.outletID }
func (e *Experience) Title() string               { return e.title }
func (e *Experience) PricePerPersonCents() int64  { return e.pricePerPersonCents }

func (e *Experience) TimeSlots() []TimeSlot {
	return append([]TimeSlot(nil), e.timeSlots...)
}

func (e *Experience) AvailableSlots() []TimeSlot {
	var out []TimeSlot
	for _, slot := range e.timeSlots {
		if slot.IsAvailable() {
			out = append(out, slot)
		}
	}
	return out
}
