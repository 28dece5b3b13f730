package delivery

import (
	"testing"
	"time"

	"farmstead/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-03-14 is a Thursday.
var thursday = time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

func mwf() models.DeliverySchedule {
	return models.DeliverySchedule{Monday: true, Wednesday: true, Friday: true}
}

func allDays() models.DeliverySchedule {
	return models.DeliverySchedule{
		Monday: true, Tuesday: true, Wednesday: true, Thursday: true,
		Friday: true, Saturday: true, Sunday: true,
	}
}

func TestNextDeliveryPicksFirstActiveWeekday(t *testing.T) {
	next, ok := NextDelivery(thursday, thursday, mwf(), nil, nil)

	require.True(t, ok)
	assert.Equal(t, "2024-03-15", next.Format("2006-01-02"))
}

func TestNextDeliveryNeverReturnsToday(t *testing.T) {
	// Thursday is active but the walk starts tomorrow.
	schedule := models.DeliverySchedule{Thursday: true}
	next, ok := NextDelivery(thursday, thursday, schedule, nil, nil)

	require.True(t, ok)
	assert.Equal(t, "2024-03-21", next.Format("2006-01-02"))
}

func TestNextDeliverySkipDateMovesToNextActiveDay(t *testing.T) {
	next, ok := NextDelivery(thursday, thursday, mwf(), []string{"2024-03-15"}, nil)

	require.True(t, ok)
	assert.Equal(t, "2024-03-18", next.Format("2006-01-02"))
}

func TestNextDeliveryVacationRangeIsInclusive(t *testing.T) {
	vacation := &models.VacationMode{Active: true, StartDate: "2024-03-15", EndDate: "2024-03-20"}
	next, ok := NextDelivery(thursday, thursday, allDays(), nil, vacation)

	require.True(t, ok)
	assert.Equal(t, "2024-03-21", next.Format("2006-01-02"))
}

func TestNextDeliveryInactiveVacationIgnored(t *testing.T) {
	vacation := &models.VacationMode{Active: false, StartDate: "2024-03-15", EndDate: "2024-03-20"}
	next, ok := NextDelivery(thursday, thursday, mwf(), nil, vacation)

	require.True(t, ok)
	assert.Equal(t, "2024-03-15", next.Format("2006-01-02"))
}

func TestNextDeliveryMalformedVacationExcludesNothing(t *testing.T) {
	vacation := &models.VacationMode{Active: true, StartDate: "not-a-date", EndDate: "2024-03-20"}
	next, ok := NextDelivery(thursday, thursday, mwf(), nil, vacation)

	require.True(t, ok)
	assert.Equal(t, "2024-03-15", next.Format("2006-01-02"))
}

func TestNextDeliveryFutureStartDateAnchorsWalk(t *testing.T) {
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC) // a Monday
	next, ok := NextDelivery(thursday, start, mwf(), nil, nil)

	require.True(t, ok)
	assert.Equal(t, "2024-04-03", next.Format("2006-01-02"))
}

func TestNextDeliveryLookaheadExhausted(t *testing.T) {
	next, ok := NextDelivery(thursday, thursday, models.DeliverySchedule{}, nil, nil)

	assert.False(t, ok)
	assert.Equal(t, "2024-04-13", next.Format("2006-01-02"))
}

func TestNextDeliveryTimeOfDayIrrelevant(t *testing.T) {
	lateThursday := time.Date(2024, 3, 14, 23, 59, 0, 0, time.UTC)
	next, ok := NextDelivery(lateThursday, lateThursday, mwf(), nil, nil)

	require.True(t, ok)
	assert.Equal(t, "2024-03-15", next.Format("2006-01-02"))
}

func TestPruneSkipDatesDropsPastOnly(t *testing.T) {
	skips := []string{"2024-03-01", "2024-03-14", "2024-03-20"}

	kept := PruneSkipDates(thursday, skips)

	assert.Equal(t, []string{"2024-03-14", "2024-03-20"}, kept)
}

func TestPruneSkipDatesEmpty(t *testing.T) {
	assert.Empty(t, PruneSkipDates(thursday, nil))
}
