package commands

import (
	"context"

	"github.com/google/uuid"

	"pourup/internal/domain/booking"
	"pourup/internal/domain/experience"
	"pourup/internal/domain/outlet"
)

// Write-side ports. Implementations live in internal/infra/repository.

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// UpdateStatus persists a transition with a compare-and-swap on the
	// previous status; a stale expectation affects zero rows.
	UpdateStatus(ctx context.Context, b *booking.Booking, expected booking.Status) (bool, error)
	CodeExists(ctx context.Context, code string) (bool, error)
}

type ExperienceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*experience.Experience, error)
}

type OutletRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*outlet.Outlet, error)
}

type OutletAssignmentRepository interface {
	// ManagedOutletIDs returns the outlets the manager is actively assigned to.
	ManagedOutletIDs(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
