package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"pourup/internal/domain/experience"
	"pourup/internal/domain/schedule"
	"pourup/internal/infra"
	"pourup/internal/pkg/pgconv"
)

type ExperienceRepository struct {
	db DB
}

func NewExperienceRepository(db DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

// timeSlotRow is the JSONB shape of one entry in experiences.time_slots.
type timeSlotRow struct {
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	MaxPartySize int    `json:"max_party_size"`
	Available    bool   `json:"available"`
}

func (r *ExperienceRepository) FindByID(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	query, args, err := qb.Select("id", "outlet_id", "title", "price_per_person_cents", "time_slots").
		From("experiences").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build experience select", err)
	}

	var (
		experienceID, outletID uuid.UUID
		title                  string
		pricePerPersonCents    int64
		slotsJSON              []byte
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(&experienceID, &outletID, &title, &pricePerPersonCents, &slotsJSON)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("experience not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find experience by ID", err)
	}

	slots, err := parseTimeSlots(slotsJSON)
	if err != nil {
		return nil, infra.WrapRepoErr("experience row has invalid time slots", err)
	}

	exp, err := experience.NewExperience(experienceID, outletID, title, pricePerPersonCents, slots)
	if err != nil {
		return nil, infra.WrapRepoErr("experience row is invalid", err)
	}
	return exp, nil
}

func parseTimeSlots(raw []byte) ([]experience.TimeSlot, error) {
	var rows []timeSlotRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}

	slots := make([]experience.TimeSlot, 0, len(rows))
	for _, row := range rows {
		start, err := schedule.ParseTimeOfDay(row.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := schedule.ParseTimeOfDay(row.EndTime)
		if err != nil {
			return nil, err
		}
		slot, err := experience.NewTimeSlot(start, end, row.MaxPartySize, row.Available)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
