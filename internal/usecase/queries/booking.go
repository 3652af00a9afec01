package queries

import (
	"context"

	"github.com/google/uuid"

	"pourup/internal/infra"
	"pourup/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrOutletForbidden = errs.New("no access to this outlet")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, status *string) ([]*BookingListItem, error)
	FindByOutletIDs(ctx context.Context, outletIDs []uuid.UUID, filter BookingFilter) ([]*BookingListItem, error)
}

type OutletAssignmentReads interface {
	ManagedOutletIDs(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error)
}

type BookingQueries interface {
	// GetByIDSystem skips access checks; used for read-after-write inside commands.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	GetForManager(ctx context.Context, managerID, id uuid.UUID) (*BookingView, error)
	ListForManager(ctx context.Context, managerID uuid.UUID, filter BookingFilter) ([]*BookingListItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *string) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store       BookingReadStore
	assignments OutletAssignmentReads
}

func NewBookingQueries(store BookingReadStore, assignments OutletAssignmentReads) BookingQueries {
	return &bookingQueriesImpl{store: store, assignments: assignments}
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) GetForManager(ctx context.Context, managerID, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	managed, err := q.assignments.ManagedOutletIDs(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if !containsOutlet(managed, view.OutletID) {
		return nil, ErrOutletForbidden
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListForManager(ctx context.Context, managerID uuid.UUID, filter BookingFilter) ([]*BookingListItem, error) {
	managed, err := q.assignments.ManagedOutletIDs(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if len(managed) == 0 {
		return []*BookingListItem{}, nil
	}

	if filter.OutletID != nil {
		if !containsOutlet(managed, *filter.OutletID) {
			return nil, ErrOutletForbidden
		}
		managed = []uuid.UUID{*filter.OutletID}
	}

	return q.store.FindByOutletIDs(ctx, managed, filter)
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, status *string) ([]*BookingListItem, error) {
	return q.store.FindByUserID(ctx, userID, status)
}

func containsOutlet(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
