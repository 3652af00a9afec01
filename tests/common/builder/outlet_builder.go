//go:build unit || e2e

package builder

import (
	"github.com/google/uuid"

	"pourup/internal/domain/outlet"
	"pourup/internal/domain/schedule"
)

type OutletBuilder struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	Location   string
	Hours      map[schedule.Weekday]schedule.DayHours
}

// NewOutletBuilder defaults to a tasting room open 09:00-18:00 every day
// except Monday.
func NewOutletBuilder() *OutletBuilder {
	open, _ := schedule.NewTimeOfDay(9, 0)
	closeAt, _ := schedule.NewTimeOfDay(18, 0)
	hours, _ := schedule.NewDayHours(open, closeAt)

	days := map[schedule.Weekday]schedule.DayHours{}
	for _, day := range []schedule.Weekday{
		schedule.Tuesday, schedule.Wednesday, schedule.Thursday,
		schedule.Friday, schedule.Saturday, schedule.Sunday,
	} {
		days[day] = hours
	}
	days[schedule.Monday] = schedule.ClosedDay()

	return &OutletBuilder{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		Name:       "Cellar Door",
		Location:   "Napa Valley",
		Hours:      days,
	}
}

func (o *OutletBuilder) With(mutate func(*OutletBuilder)) *OutletBuilder {
	mutate(o)
	return o
}

func (o *OutletBuilder) WithHours(day schedule.Weekday, hours schedule.DayHours) *OutletBuilder {
	o.Hours[day] = hours
	return o
}

func (o *OutletBuilder) BuildDomain() *outlet.Outlet {
	return outlet.NewOutlet(o.ID, o.BusinessID, o.Name, o.Location, schedule.NewWeekSchedule(o.Hours))
}
