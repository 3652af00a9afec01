//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pourup/internal/domain/booking"
	"pourup/internal/domain/user"
	"pourup/internal/pkg/clock"
	"pourup/tests/common/builder"
)

func newStateMachine() (*booking.StateMachine, *clock.MockClock) {
	mockClock := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	return booking.NewStateMachine(mockClock, booking.NewRolePolicy()), mockClock
}

func managerFor(b *booking.Booking) booking.Actor {
	return booking.Actor{
		ID:             uuid.New(),
		Role:           user.RoleOutletManager,
		ManagedOutlets: []uuid.UUID{b.OutletID()},
	}
}

func TestTransition(t *testing.T) {
	t.Run("manager confirms a pending booking", func(t *testing.T) {
		sm, mockClock := newStateMachine()
		b := builder.NewBookingBuilder().BuildDomain()
		actor := managerFor(b)

		err := sm.Transition(b, booking.StatusConfirmed, actor, nil)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusConfirmed, b.Status())
		require.NotNil(t, b.UpdatedBy())
		assert.Equal(t, actor.ID, *b.UpdatedBy())
		assert.Equal(t, mockClock.Now(), b.UpdatedAt())
	})

	t.Run("notes are recorded on rejection", func(t *testing.T) {
		sm, _ := newStateMachine()
		b := builder.NewBookingBuilder().BuildDomain()
		notes := "fully booked that afternoon"

		err := sm.Transition(b, booking.StatusRejected, managerFor(b), &notes)
		require.NoError(t, err)

		require.NotNil(t, b.Notes())
		assert.Equal(t, notes, *b.Notes())
	})

	t.Run("table violations are rejected", func(t *testing.T) {
		cases := []struct {
			from booking.Status
			to   booking.Status
		}{
			{booking.StatusPending, booking.StatusCompleted},
			{booking.StatusConfirmed, booking.StatusRejected},
			{booking.StatusRejected, booking.StatusConfirmed},
			{booking.StatusCompleted, booking.StatusCancelled},
			{booking.StatusCancelled, booking.StatusPending},
		}
		for _, tc := range cases {
			sm, _ := newStateMachine()
			b := builder.NewBookingBuilder().WithStatus(tc.from).BuildDomain()

			err := sm.Transition(b, tc.to, managerFor(b), nil)
			assert.ErrorIs(t, err, booking.ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, tc.from, b.Status(), "status must not change on rejection")
		}
	})

	t.Run("manager of another outlet cannot confirm", func(t *testing.T) {
		sm, _ := newStateMachine()
		b := builder.NewBookingBuilder().BuildDomain()
		actor := booking.Actor{
			ID:             uuid.New(),
			Role:           user.RoleOutletManager,
			ManagedOutlets: []uuid.UUID{uuid.New()},
		}

		err := sm.Transition(b, booking.StatusConfirmed, actor, nil)
		assert.ErrorIs(t, err, booking.ErrUnauthorizedTransition)
	})

	t.Run("plain user cannot confirm own booking", func(t *testing.T) {
		sm, _ := newStateMachine()
		b := builder.NewBookingBuilder().BuildDomain()
		actor := booking.Actor{ID: b.UserID(), Role: user.RoleUser}

		err := sm.Transition(b, booking.StatusConfirmed, actor, nil)
		assert.ErrorIs(t, err, booking.ErrUnauthorizedTransition)
	})

	t.Run("owner may cancel", func(t *testing.T) {
		sm, _ := newStateMachine()
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()
		actor := booking.Actor{ID: b.UserID(), Role: user.RoleUser}

		err := sm.Transition(b, booking.StatusCancelled, actor, nil)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("assigned manager may cancel", func(t *testing.T) {
		sm, _ := newStateMachine()
		b := builder.NewBookingBuilder().BuildDomain()

		err := sm.Transition(b, booking.StatusCancelled, managerFor(b), nil)
		require.NoError(t, err)
	})

	t.Run("stranger may not cancel", func(t *testing.T) {
		sm, _ := newStateMachine()
		b := builder.NewBookingBuilder().BuildDomain()
		actor := booking.Actor{ID: uuid.New(), Role: user.RoleUser}

		err := sm.Transition(b, booking.StatusCancelled, actor, nil)
		assert.ErrorIs(t, err, booking.ErrUnauthorizedTransition)
	})

	t.Run("unknown target status", func(t *testing.T) {
		sm, _ := newStateMachine()
		b := builder.NewBookingBuilder().BuildDomain()

		err := sm.Transition(b, booking.Status("archived"), managerFor(b), nil)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}
