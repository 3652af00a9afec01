package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"pourup/internal/domain/outlet"
	"pourup/internal/domain/schedule"
	"pourup/internal/infra"
	"pourup/internal/pkg/pgconv"
)

type OutletRepository struct {
	db DB
}

func NewOutletRepository(db DB) *OutletRepository {
	return &OutletRepository{db: db}
}

// dayHoursRow is the JSONB shape of one weekday entry in outlets.operation_hours.
// A missing weekday key or closed=true both mean the outlet does not open that day.
type dayHoursRow struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

func (r *OutletRepository) FindByID(ctx context.Context, id uuid.UUID) (*outlet.Outlet, error) {
	query, args, err := qb.Select("id", "business_id", "name", "location", "operation_hours").
		From("outlets").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build outlet select", err)
	}

	var (
		outletID, businessID uuid.UUID
		name, location       string
		hoursJSON            []byte
	)
	err = r.db.QueryRow(ctx, query, args...).Scan(&outletID, &businessID, &name, &location, &hoursJSON)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("outlet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find outlet by ID", err)
	}

	hours, err := parseOperationHours(hoursJSON)
	if err != nil {
		return nil, infra.WrapRepoErr("outlet row has invalid operation hours", err)
	}

	return outlet.NewOutlet(outletID, businessID, name, location, hours), nil
}

func parseOperationHours(raw []byte) (schedule.WeekSchedule, error) {
	var rows map[string]dayHoursRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return schedule.WeekSchedule{}, err
	}

	days := make(map[schedule.Weekday]schedule.DayHours, len(rows))
	for dayName, row := range rows {
		day, err := schedule.NewWeekday(dayName)
		if err != nil {
			return schedule.WeekSchedule{}, err
		}
		if row.Closed {
			days[day] = schedule.ClosedDay()
			continue
		}

		open, err := schedule.ParseTimeOfDay(row.Open)
		if err != nil {
			return schedule.WeekSchedule{}, err
		}
		closeAt, err := schedule.ParseTimeOfDay(row.Close)
		if err != nil {
			return schedule.WeekSchedule{}, err
		}
		hours, err := schedule.NewDayHours(open, closeAt)
		if err != nil {
			return schedule.WeekSchedule{}, err
		}
		days[day] = hours
	}

	return schedule.NewWeekSchedule(days), nil
}
