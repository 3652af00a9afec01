//go:build unit

package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pourup/internal/domain/schedule"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		cases := []struct {
			input  string
			hour   int
			minute int
		}{
			{"00:00", 0, 0},
			{"09:30", 9, 30},
			{"14:00", 14, 0},
			{"23:59", 23, 59},
		}
		for _, tc := range cases {
			t.Run(tc.input, func(t *testing.T) {
				actual, err := schedule.ParseTimeOfDay(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.hour, actual.Hour())
				assert.Equal(t, tc.minute, actual.Minute())
				assert.Equal(t, tc.input, actual.String())
			})
		}
	})

	t.Run("invalid times", func(t *testing.T) {
		cases := []string{
			"",
			"24:00",
			"12:60",
			"9:00",
			"12:5",
			"12-30",
			"noon",
			"12:30:00",
			"-1:00",
		}
		for _, input := range cases {
			t.Run(input, func(t *testing.T) {
				_, err := schedule.ParseTimeOfDay(input)
				assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)
			})
		}
	})
}

func TestTimeOfDayComparisons(t *testing.T) {
	nine, err := schedule.NewTimeOfDay(9, 0)
	require.NoError(t, err)
	noon, err := schedule.NewTimeOfDay(12, 0)
	require.NoError(t, err)
	five, err := schedule.NewTimeOfDay(17, 0)
	require.NoError(t, err)

	assert.True(t, nine.Before(noon))
	assert.True(t, five.After(noon))
	assert.True(t, noon.Equal(noon))

	t.Run("between includes both bounds", func(t *testing.T) {
		assert.True(t, nine.Between(nine, five))
		assert.True(t, five.Between(nine, five))
		assert.True(t, noon.Between(nine, five))
		assert.False(t, nine.Between(noon, five))
	})
}

func TestNewTimeOfDayRange(t *testing.T) {
	_, err := schedule.NewTimeOfDay(24, 0)
	assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)

	_, err = schedule.NewTimeOfDay(12, -1)
	assert.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)

	actual, err := schedule.NewTimeOfDay(23, 59)
	require.NoError(t, err)
	assert.Equal(t, 23*60+59, actual.Minutes())
}
