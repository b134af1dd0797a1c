package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partyrent-backend/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEstimateCost(t *testing.T) {
	t.Run("end before start is invalid", func(t *testing.T) {
		_, err := EstimateCost(domain.Pricing{DailyCents: 10000},
			date(2026, time.September, 9), date(2026, time.September, 7))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("weekday stay charges the daily rate", func(t *testing.T) {
		// Monday to Wednesday, two nights
		got, err := EstimateCost(domain.Pricing{DailyCents: 10000},
			date(2026, time.September, 7), date(2026, time.September, 9))
		require.NoError(t, err)

		assert.Equal(t, 2, got.WeekdayDays)
		assert.Equal(t, 0, got.WeekendDays)
		assert.Equal(t, int32(20000), got.TotalCents)
	})

	t.Run("weekend rate lands on actual saturdays and sundays", func(t *testing.T) {
		p := domain.Pricing{DailyCents: 10000, WeekendCents: i32(15000)}
		// Friday to Monday: Fri at daily, Sat and Sun at weekend
		got, err := EstimateCost(p, date(2026, time.September, 4), date(2026, time.September, 7))
		require.NoError(t, err)

		assert.Equal(t, 1, got.WeekdayDays)
		assert.Equal(t, 2, got.WeekendDays)
		assert.Equal(t, int32(10000), got.WeekdayCents)
		assert.Equal(t, int32(30000), got.WeekendCents)
		assert.Equal(t, int32(40000), got.TotalCents)
	})

	t.Run("weekend days charge daily rate when no weekend rate defined", func(t *testing.T) {
		got, err := EstimateCost(domain.Pricing{DailyCents: 10000},
			date(2026, time.September, 4), date(2026, time.September, 7))
		require.NoError(t, err)

		assert.Equal(t, 3, got.WeekdayDays)
		assert.Equal(t, int32(30000), got.TotalCents)
	})

	t.Run("full weeks use the weekly rate", func(t *testing.T) {
		p := domain.Pricing{DailyCents: 10000, WeeklyCents: i32(50000)}
		// Ten days: one full week plus Mon, Tue, Wed
		got, err := EstimateCost(p, date(2026, time.September, 7), date(2026, time.September, 17))
		require.NoError(t, err)

		assert.Equal(t, 1, got.Weeks)
		assert.Equal(t, int32(50000), got.WeeksCents)
		assert.Equal(t, 3, got.WeekdayDays)
		assert.Equal(t, int32(30000), got.WeekdayCents)
		assert.Equal(t, int32(80000), got.TotalCents)
	})

	t.Run("no weekly rate means no week bucketing", func(t *testing.T) {
		got, err := EstimateCost(domain.Pricing{DailyCents: 10000},
			date(2026, time.September, 7), date(2026, time.September, 14))
		require.NoError(t, err)

		assert.Equal(t, 0, got.Weeks)
		assert.Equal(t, 7, got.WeekdayDays)
		assert.Equal(t, int32(70000), got.TotalCents)
	})

	t.Run("partial days are charged in full", func(t *testing.T) {
		start := time.Date(2026, time.September, 7, 9, 0, 0, 0, time.UTC)
		end := time.Date(2026, time.September, 7, 17, 0, 0, 0, time.UTC)

		got, err := EstimateCost(domain.Pricing{DailyCents: 10000}, start, end)
		require.NoError(t, err)

		assert.Equal(t, 1, got.WeekdayDays)
		assert.Equal(t, int32(10000), got.TotalCents)
	})
}
