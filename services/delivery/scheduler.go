// Package delivery computes recurring delivery dates for produce
// subscriptions. The engine is pure: callers supply the reference day and
// all schedule state, nothing here touches the clock or a store.
package delivery

import (
	"time"

	"farmstead/models"
	"farmstead/utils"
)

// LookaheadDays bounds the search for the next delivery date. A schedule
// that yields nothing inside the window is reported via the ok return.
const LookaheadDays = 30

// NextDelivery walks forward from the day after max(today, startDate) and
// returns the first date that is on an active weekday, not skipped, and not
// inside an active vacation range. The boolean is false when the lookahead
// window was exhausted; the returned date is then the last candidate tried
// and should not be treated as deliverable.
func NextDelivery(today, startDate time.Time, schedule models.DeliverySchedule, skipDates []string, vacation *models.VacationMode) (time.Time, bool) {
	base := dateOnly(today)
	if s := dateOnly(startDate); s.After(base) {
		base = s
	}

	skips := make(map[string]struct{}, len(skipDates))
	for _, d := range skipDates {
		skips[d] = struct{}{}
	}

	candidate := base
	for i := 1; i <= LookaheadDays; i++ {
		candidate = base.AddDate(0, 0, i)
		if deliverable(candidate, schedule, skips, vacation) {
			return candidate, true
		}
	}
	return candidate, false
}

func deliverable(day time.Time, schedule models.DeliverySchedule, skips map[string]struct{}, vacation *models.VacationMode) bool {
	if !schedule.ActiveOn(day.Weekday()) {
		return false
	}
	if _, skipped := skips[day.Format(utils.DateLayout)]; skipped {
		return false
	}
	return !onVacation(day, vacation)
}

// onVacation reports whether day falls inside the vacation range, inclusive
// on both ends. Malformed vacation dates exclude nothing.
func onVacation(day time.Time, vacation *models.VacationMode) bool {
	if vacation == nil || !vacation.Active {
		return false
	}
	start, err := time.Parse(utils.DateLayout, vacation.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse(utils.DateLayout, vacation.EndDate)
	if err != nil {
		return false
	}
	return !day.Before(dateOnly(start)) && !day.After(dateOnly(end))
}

// PruneSkipDates drops skip dates before today. Comparing the "YYYY-MM-DD"
// strings lexicographically is safe for ISO dates.
func PruneSkipDates(today time.Time, skipDates []string) []string {
	if len(skipDates) == 0 {
		return skipDates
	}
	cutoff := dateOnly(today).Format(utils.DateLayout)
	kept := make([]string, 0, len(skipDates))
	for _, d := range skipDates {
		if d >= cutoff {
			kept = append(kept, d)
		}
	}
	return kept
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
