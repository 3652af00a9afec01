//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pourup/internal/usecase/queries"
	"pourup/tests/common/builder"
	queriesmock "pourup/tests/mock/queries"
)

type bookingQueriesFixture struct {
	store       *queriesmock.MockBookingReadStore
	assignments *queriesmock.MockOutletAssignmentReads
	queries     queries.BookingQueries
}

func newBookingQueriesFixture(t *testing.T) *bookingQueriesFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &bookingQueriesFixture{
		store:       queriesmock.NewMockBookingReadStore(ctrl),
		assignments: queriesmock.NewMockOutletAssignmentReads(ctrl),
	}
	f.queries = queries.NewBookingQueries(f.store, f.assignments)
	return f
}

func TestGetForManager(t *testing.T) {
	ctx := context.Background()

	t.Run("assigned manager sees the booking", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		managerID := uuid.New()
		view := builder.NewBookingBuilder().BuildView()

		f.store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		f.assignments.EXPECT().ManagedOutletIDs(ctx, managerID).Return([]uuid.UUID{view.OutletID}, nil)

		actual, err := f.queries.GetForManager(ctx, managerID, view.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(view, actual); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unassigned manager is forbidden", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		managerID := uuid.New()
		view := builder.NewBookingBuilder().BuildView()

		f.store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
		f.assignments.EXPECT().ManagedOutletIDs(ctx, managerID).Return([]uuid.UUID{uuid.New()}, nil)

		_, err := f.queries.GetForManager(ctx, managerID, view.ID)
		assert.ErrorIs(t, err, queries.ErrOutletForbidden)
	})
}

func TestListForManager(t *testing.T) {
	ctx := context.Background()

	t.Run("lists across all assigned outlets", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		managerID := uuid.New()
		outletA, outletB := uuid.New(), uuid.New()
		items := []*queries.BookingListItem{
			builder.NewBookingBuilder().WithOutletID(outletA).BuildListItem(),
			builder.NewBookingBuilder().WithOutletID(outletB).BuildListItem(),
		}

		f.assignments.EXPECT().ManagedOutletIDs(ctx, managerID).Return([]uuid.UUID{outletA, outletB}, nil)
		f.store.EXPECT().FindByOutletIDs(ctx, []uuid.UUID{outletA, outletB}, queries.BookingFilter{}).Return(items, nil)

		actual, err := f.queries.ListForManager(ctx, managerID, queries.BookingFilter{})
		require.NoError(t, err)
		if diff := cmp.Diff(items, actual); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no assignments yields an empty list without querying", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		managerID := uuid.New()

		f.assignments.EXPECT().ManagedOutletIDs(ctx, managerID).Return(nil, nil)

		actual, err := f.queries.ListForManager(ctx, managerID, queries.BookingFilter{})
		require.NoError(t, err)
		assert.Empty(t, actual)
	})

	t.Run("outlet filter must be an assigned outlet", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		managerID := uuid.New()
		foreign := uuid.New()

		f.assignments.EXPECT().ManagedOutletIDs(ctx, managerID).Return([]uuid.UUID{uuid.New()}, nil)

		_, err := f.queries.ListForManager(ctx, managerID, queries.BookingFilter{OutletID: &foreign})
		assert.ErrorIs(t, err, queries.ErrOutletForbidden)
	})

	t.Run("outlet filter narrows the scan to that outlet", func(t *testing.T) {
		f := newBookingQueriesFixture(t)
		managerID := uuid.New()
		outletA, outletB := uuid.New(), uuid.New()
		filter := queries.BookingFilter{OutletID: &outletA}

		f.assignments.EXPECT().ManagedOutletIDs(ctx, managerID).Return([]uuid.UUID{outletA, outletB}, nil)
		f.store.EXPECT().FindByOutletIDs(ctx, []uuid.UUID{outletA}, filter).Return([]*queries.BookingListItem{}, nil)

		actual, err := f.queries.ListForManager(ctx, managerID, filter)
		require.NoError(t, err)
		assert.Empty(t, actual)
	})
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()
	f := newBookingQueriesFixture(t)
	userID := uuid.New()
	status := "pending"
	items := []*queries.BookingListItem{builder.NewBookingBuilder().BuildListItem()}

	f.store.EXPECT().FindByUserID(ctx, userID, &status).Return(items, nil)

	actual, err := f.queries.ListByUser(ctx, userID, &status)
	require.NoError(t, err)
	assert.Equal(t, items, actual)
}
