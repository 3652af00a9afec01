package outlet

import (
	"github.com/google/uuid"

	"pourup/internal/domain/schedule"
)

// Outlet is a physical winery location belonging to a business. The booking
// core only reads its weekly operation hours.
type Outlet struct {
	id             uuid.UUID
	businessID     uuid.UUID
	name           string
	location       string
	operationHours schedule.WeekSchedule
}

func NewOutlet(id, businessID uuid.UUID, name, location string, operationHours schedule.WeekSchedule) *Outlet {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Outlet{
		id:             id,
		businessID:     businessID,
		name:           name,
		location:       location,
		operationHours: operationHours,
	}
}

func (o *Outlet) ID() uuid.UUID         { return o.id }
func (o *Outlet) BusinessID() uuid.UUID { return o.businessID }
func (o *Outlet) Name() string          { return o.name }
func (o *Outlet) Location() string      { return o.location }

func (o *Outlet) OperationHours() schedule.WeekSchedule {
	return o.operationHours
}

func (o *Outlet) HoursOn(day schedule.Weekday) schedule.DayHours {
	return o.operationHours.On(day)
}

func (o *Outlet) IsOpenOn(day schedule.Weekday) bool {
	return o.operationHours.IsOpenOn(day)
}
