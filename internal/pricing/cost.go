package pricing

import (
	"fmt"
	"time"

	"partyrent-backend/internal/domain"
)

const daysPerWeek = 7

// CostBreakdown itemizes an estimated booking cost per billing tier.
type CostBreakdown struct {
	Weeks        int   `json:"weeks"`
	WeekdayDays  int   `json:"weekday_days"`
	WeekendDays  int   `json:"weekend_days"`
	WeeksCents   int32 `json:"weeks_cents"`
	WeekdayCents int32 `json:"weekday_cents"`
	WeekendCents int32 `json:"weekend_cents"`
	TotalCents   int32 `json:"total_cents"`
}

// EstimateCost computes the rental cost for a half-open [start, end) window
// against an effective rate card.
//
// Full weeks are charged at the weekly rate when the card defines one;
// remaining calendar days are charged at the weekend rate on Saturdays and
// Sundays (when defined) and the daily rate otherwise. Negative rates are
// not rejected here; the result simply carries them through.
func EstimateCost(p domain.Pricing, start, end time.Time) (CostBreakdown, error) {
	if !end.After(start) {
		return CostBreakdown{}, fmt.Errorf("%w: end date must be after start date", domain.ErrInvalidInput)
	}

	days := int(end.Sub(start).Hours() / 24)
	if end.Sub(start)%(24*time.Hour) != 0 {
		days++ // partial days are charged in full
	}
	if days < 1 {
		days = 1
	}

	var breakdown CostBreakdown

	remaining := days
	if p.WeeklyCents != nil {
		breakdown.Weeks = days / daysPerWeek
		remaining = days % daysPerWeek
		breakdown.WeeksCents = int32(breakdown.Weeks) * *p.WeeklyCents
	}

	// Walk the leftover calendar days so weekend pricing lands on the
	// actual Saturdays and Sundays of the stay.
	day := start.AddDate(0, 0, breakdown.Weeks*daysPerWeek)
	for i := 0; i < remaining; i++ {
		if isWeekend(day) && p.WeekendCents != nil {
			breakdown.WeekendDays++
			breakdown.WeekendCents += *p.WeekendCents
		} else {
			breakdown.WeekdayDays++
			breakdown.WeekdayCents += p.DailyCents
		}
		day = day.AddDate(0, 0, 1)
	}

	breakdown.TotalCents = breakdown.WeeksCents + breakdown.WeekdayCents + breakdown.WeekendCents
	return breakdown, nil
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
