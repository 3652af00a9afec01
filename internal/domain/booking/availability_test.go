//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pourup/internal/domain/booking"
	"pourup/internal/domain/experience"
	"pourup/internal/domain/outlet"
	"pourup/internal/domain/schedule"
	"pourup/internal/pkg/clock"
	"pourup/tests/common/builder"
)

func newEvaluator(t *testing.T) (*booking.AvailabilityEvaluator, *experience.Experience, *outlet.Outlet) {
	t.Helper()

	mockClock := clock.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	evaluator := booking.NewAvailabilityEvaluator(mockClock)

	out := builder.NewOutletBuilder().BuildDomain()
	exp, err := builder.NewExperienceBuilder().With(func(b *builder.ExperienceBuilder) {
		b.OutletID = out.ID()
	}).BuildDomain()
	require.NoError(t, err)

	return evaluator, exp, out
}

func at(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	parsed, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return parsed
}

func TestEvaluate(t *testing.T) {
	// 2026-03-07 is a Saturday; the builder outlet closes Mondays.
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	t.Run("approves a matching request and prices per person", func(t *testing.T) {
		evaluator, exp, out := newEvaluator(t)

		approval, err := evaluator.Evaluate(exp, out, saturday, at(t, "14:30"), 4)
		require.NoError(t, err)
		require.NotNil(t, approval)

		assert.Equal(t, int64(20000), approval.TotalPrice.Cents())
		assert.True(t, approval.Slot.Covers(at(t, "14:30")))
	})

	t.Run("slot bounds are inclusive", func(t *testing.T) {
		evaluator, exp, out := newEvaluator(t)

		for _, s := range []string{"14:00", "16:00"} {
			approval, err := evaluator.Evaluate(exp, out, saturday, at(t, s), 2)
			require.NoError(t, err, s)
			assert.NotNil(t, approval)
		}
	})

	t.Run("rejects non-positive party size", func(t *testing.T) {
		evaluator, exp, out := newEvaluator(t)

		_, err := evaluator.Evaluate(exp, out, saturday, at(t, "14:00"), 0)
		assert.ErrorIs(t, err, booking.ErrInvalidPartySize)
	})

	t.Run("rejects today and the past", func(t *testing.T) {
		evaluator, exp, out := newEvaluator(t)

		_, err := evaluator.Evaluate(exp, out, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), at(t, "14:00"), 2)
		assert.ErrorIs(t, err, booking.ErrInvalidDate)

		_, err = evaluator.Evaluate(exp, out, time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC), at(t, "14:00"), 2)
		assert.ErrorIs(t, err, booking.ErrInvalidDate)
	})

	t.Run("rejects a closed day", func(t *testing.T) {
		evaluator, exp, out := newEvaluator(t)

		_, err := evaluator.Evaluate(exp, out, monday, at(t, "14:00"), 2)
		assert.ErrorIs(t, err, booking.ErrOutletClosed)
	})

	t.Run("rejects a time outside operating hours", func(t *testing.T) {
		evaluator, exp, out := newEvaluator(t)

		_, err := evaluator.Evaluate(exp, out, saturday, at(t, "08:00"), 2)
		assert.ErrorIs(t, err, booking.ErrOutsideOperatingHours)

		_, err = evaluator.Evaluate(exp, out, saturday, at(t, "18:01"), 2)
		assert.ErrorIs(t, err, booking.ErrOutsideOperatingHours)
	})

	t.Run("rejects a time no slot covers", func(t *testing.T) {
		evaluator, exp, out := newEvaluator(t)

		_, err := evaluator.Evaluate(exp, out, saturday, at(t, "13:00"), 2)
		assert.ErrorIs(t, err, booking.ErrNoAvailableSlot)
	})

	t.Run("rejects when the covering slot is unavailable", func(t *testing.T) {
		evaluator, _, out := newEvaluator(t)
		exp, err := builder.NewExperienceBuilder().
			WithSlots(builder.SlotSpec{Start: "14:00", End: "16:00", MaxPartySize: 8, Available: false}).
			BuildDomain()
		require.NoError(t, err)

		_, err = evaluator.Evaluate(exp, out, saturday, at(t, "14:30"), 2)
		assert.ErrorIs(t, err, booking.ErrNoAvailableSlot)
	})

	t.Run("rejects when the party exceeds slot capacity", func(t *testing.T) {
		evaluator, exp, out := newEvaluator(t)

		_, err := evaluator.Evaluate(exp, out, saturday, at(t, "14:00"), 9)
		assert.ErrorIs(t, err, booking.ErrNoAvailableSlot)
	})

	t.Run("first matching slot wins when windows overlap", func(t *testing.T) {
		evaluator, _, out := newEvaluator(t)
		exp, err := builder.NewExperienceBuilder().
			WithSlots(
				builder.SlotSpec{Start: "10:00", End: "14:00", MaxPartySize: 4, Available: true},
				builder.SlotSpec{Start: "12:00", End: "16:00", MaxPartySize: 8, Available: true},
			).
			BuildDomain()
		require.NoError(t, err)

		approval, err := evaluator.Evaluate(exp, out, saturday, at(t, "13:00"), 2)
		require.NoError(t, err)
		assert.Equal(t, at(t, "10:00"), approval.Slot.Start())
	})
}
