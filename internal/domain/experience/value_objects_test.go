//go:build unit

package experience_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pourup/internal/domain/experience"
	"pourup/internal/domain/schedule"
	"pourup/tests/common/builder"
)

func slotAt(t *testing.T, start, end string, maxParty int, available bool) experience.TimeSlot {
	t.Helper()
	s, err := schedule.ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := schedule.ParseTimeOfDay(end)
	require.NoError(t, err)
	slot, err := experience.NewTimeSlot(s, e, maxParty, available)
	require.NoError(t, err)
	return slot
}

func TestNewTimeSlot(t *testing.T) {
	start, err := schedule.ParseTimeOfDay("14:00")
	require.NoError(t, err)
	end, err := schedule.ParseTimeOfDay("16:00")
	require.NoError(t, err)

	t.Run("window must be ordered", func(t *testing.T) {
		_, err := experience.NewTimeSlot(end, start, 4, true)
		assert.ErrorIs(t, err, experience.ErrInvalidSlotWindow)

		_, err = experience.NewTimeSlot(start, start, 4, true)
		assert.ErrorIs(t, err, experience.ErrInvalidSlotWindow)
	})

	t.Run("capacity must be positive", func(t *testing.T) {
		_, err := experience.NewTimeSlot(start, end, 0, true)
		assert.ErrorIs(t, err, experience.ErrInvalidMaxParty)
	})
}

func TestTimeSlotCovers(t *testing.T) {
	slot := slotAt(t, "14:00", "16:00", 8, true)

	covered := []string{"14:00", "15:00", "16:00"}
	for _, s := range covered {
		at, err := schedule.ParseTimeOfDay(s)
		require.NoError(t, err)
		assert.True(t, slot.Covers(at), s)
	}

	outside := []string{"13:59", "16:01"}
	for _, s := range outside {
		at, err := schedule.ParseTimeOfDay(s)
		require.NoError(t, err)
		assert.False(t, slot.Covers(at), s)
	}
}

func TestTimeSlotAccommodates(t *testing.T) {
	slot := slotAt(t, "14:00", "16:00", 4, true)
	assert.True(t, slot.Accommodates(1))
	assert.True(t, slot.Accommodates(4))
	assert.False(t, slot.Accommodates(5))

	unavailable := slotAt(t, "14:00", "16:00", 4, false)
	assert.False(t, unavailable.Accommodates(1))
}

func TestNewExperience(t *testing.T) {
	t.Run("requires at least one slot", func(t *testing.T) {
		_, err := experience.NewExperience(uuid.New(), uuid.New(), "Tasting", 5000, nil)
		assert.ErrorIs(t, err, experience.ErrNoTimeSlots)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		slot := slotAt(t, "10:00", "12:00", 8, true)
		_, err := experience.NewExperience(uuid.New(), uuid.New(), "Tasting", -1, []experience.TimeSlot{slot})
		assert.ErrorIs(t, err, experience.ErrInvalidPricePerPerson)
	})

	t.Run("available slots filters disabled ones", func(t *testing.T) {
		exp, err := builder.NewExperienceBuilder().
			WithSlots(
				builder.SlotSpec{Start: "10:00", End: "12:00", MaxPartySize: 8, Available: true},
				builder.SlotSpec{Start: "14:00", End: "16:00", MaxPartySize: 8, Available: false},
			).
			BuildDomain()
		require.NoError(t, err)

		assert.Len(t, exp.TimeSlots(), 2)
		assert.Len(t, exp.AvailableSlots(), 1)
	})
}
