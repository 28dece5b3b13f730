package stay

import (
	"testing"

	"farmstead/models"

	"github.com/stretchr/testify/assert"
)

var testActivities = map[string]models.Activity{
	"act-goat": {ID: "act-goat", Name: "Goat feeding", Price: 15},
	"act-tour": {ID: "act-tour", Name: "Orchard tour", Price: 25},
}

func TestActivityTotal(t *testing.T) {
	selections := []models.ActivitySelection{
		{ActivityID: "act-goat", Participants: 2},
		{ActivityID: "act-tour", Participants: 1},
	}

	assert.Equal(t, 55.0, ActivityTotal(selections, testActivities))
}

func TestActivityTotalUnknownIDContributesNothing(t *testing.T) {
	selections := []models.ActivitySelection{
		{ActivityID: "act-missing", Participants: 3},
		{ActivityID: "act-goat", Participants: 1},
	}

	assert.Equal(t, 15.0, ActivityTotal(selections, testActivities))
}

func TestBookingTotalRoomRate(t *testing.T) {
	room := models.Room{ID: "room-1", NightlyRate: 120}
	selections := []models.ActivitySelection{{ActivityID: "act-goat", Participants: 2}}

	total := BookingTotal(room, 3, selections, testActivities, nil)
	assert.Equal(t, 390.0, total)
}

func TestBookingTotalPackageReplacesRoomCharge(t *testing.T) {
	room := models.Room{ID: "room-1", NightlyRate: 120}
	pkg := &models.SpecialPackage{ID: "pkg-1", Name: "Harvest week", Price: 499}
	selections := []models.ActivitySelection{{ActivityID: "act-goat", Participants: 2}}

	// Nights do not matter once a package is attached.
	total := BookingTotal(room, 7, selections, testActivities, pkg)
	assert.Equal(t, 529.0, total)
}

func TestBookingTotalZeroNights(t *testing.T) {
	room := models.Room{ID: "room-1", NightlyRate: 120}

	assert.Equal(t, 0.0, BookingTotal(room, 0, nil, testActivities, nil))
}
