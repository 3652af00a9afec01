//go:build unit || e2e

package builder

import (
	"github.com/google/uuid"

	"pourup/internal/domain/experience"
	"pourup/internal/domain/schedule"
)

type SlotSpec struct {
	Start        string
	End          string
	MaxPartySize int
	Available    bool
}

type ExperienceBuilder struct {
	ID                  uuid.UUID
	OutletID            uuid.UUID
	Title               string
	PricePerPersonCents int64
	Slots               []SlotSpec
}

func NewExperienceBuilder() *ExperienceBuilder {
	return &ExperienceBuilder{
		ID:                  uuid.New(),
		OutletID:            uuid.New(),
		Title:               "Estate Tasting",
		PricePerPersonCents: 5000,
		Slots: []SlotSpec{
			{Start: "10:00", End: "12:00", MaxPartySize: 8, Available: true},
			{Start: "14:00", End: "16:00", MaxPartySize: 8, Available: true},
		},
	}
}

func (e *ExperienceBuilder) With(mutate func(*ExperienceBuilder)) *ExperienceBuilder {
	mutate(e)
	return e
}

func (e *ExperienceBuilder) WithSlots(slots ...SlotSpec) *ExperienceBuilder {
	e.Slots = slots
	return e
}

func (e *ExperienceBuilder) BuildDomain() (*experience.Experience, error) {
	slots := make([]experience.TimeSlot, 0, len(e.Slots))
	for _, spec := range e.Slots {
		start, err := schedule.ParseTimeOfDay(spec.Start)
		if err != nil {
			return nil, err
		}
		end, err := schedule.ParseTimeOfDay(spec.End)
		if err != nil {
			return nil, err
		}
		slot, err := experience.NewTimeSlot(start, end, spec.MaxPartySize, spec.Available)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return experience.NewExperience(e.ID, e.OutletID, e.Title, e.PricePerPersonCents, slots)
}
