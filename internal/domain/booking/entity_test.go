//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pourup/internal/domain/booking"
	"pourup/internal/domain/schedule"
	"pourup/tests/common/builder"
)

func TestNewBooking(t *testing.T) {
	userID := uuid.New()
	experienceID := uuid.New()
	outletID := uuid.New()
	date := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	at, err := schedule.NewTimeOfDay(14, 0)
	require.NoError(t, err)
	price, err := booking.NewMoney(10000)
	require.NoError(t, err)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	b := booking.NewBooking(userID, experienceID, outletID, date, at, 2, price, "BK-1A2B3C4D", nil, now)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.Equal(t, userID, b.UserID())
	assert.Equal(t, int64(10000), b.TotalPrice().Cents())
	assert.Equal(t, "BK-1A2B3C4D", b.ConfirmationCode())
	assert.Equal(t, now, b.CreatedAt())
	assert.Equal(t, now, b.UpdatedAt())
	assert.Nil(t, b.UpdatedBy())
}

func TestCanBeCancelled(t *testing.T) {
	cases := map[booking.Status]bool{
		booking.StatusPending:   true,
		booking.StatusConfirmed: true,
		booking.StatusRejected:  false,
		booking.StatusCompleted: false,
		booking.StatusCancelled: false,
	}

	for status, expected := range cases {
		b := builder.NewBookingBuilder().WithStatus(status).BuildDomain()
		assert.Equal(t, expected, b.CanBeCancelled(), status)
	}
}

func TestNewMoney(t *testing.T) {
	_, err := booking.NewMoney(-1)
	assert.ErrorIs(t, err, booking.ErrNegativePrice)

	money, err := booking.NewMoney(12550)
	require.NoError(t, err)
	assert.Equal(t, int64(12550), money.Cents())
	assert.InDelta(t, 125.50, money.Dollars(), 0.001)
}
