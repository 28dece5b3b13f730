package stay

import (
	"testing"
	"time"

	"farmstead/models"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	// Existing booking occupies [2024-03-10, 2024-03-15).
	bIn, bOut := day("2024-03-10"), day("2024-03-15")

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"inside", "2024-03-12", "2024-03-14", true},
		{"straddles start", "2024-03-08", "2024-03-11", true},
		{"straddles end", "2024-03-12", "2024-03-18", true},
		{"covers whole stay", "2024-03-08", "2024-03-18", true},
		{"starts on checkout day", "2024-03-15", "2024-03-18", false},
		{"ends on checkin day", "2024-03-08", "2024-03-10", false},
		{"entirely before", "2024-03-01", "2024-03-05", false},
		{"entirely after", "2024-03-20", "2024-03-25", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(day(tt.checkIn), day(tt.checkOut), bIn, bOut)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights(day("2024-01-01"), day("2024-01-04")))
	assert.Equal(t, 1, Nights(day("2024-01-01"), day("2024-01-02")))
	assert.Equal(t, 0, Nights(day("2024-01-04"), day("2024-01-01")))
	assert.Equal(t, 0, Nights(day("2024-01-01"), day("2024-01-01")))

	// Partial days round up.
	lateCheckout := day("2024-01-02").Add(6 * time.Hour)
	assert.Equal(t, 2, Nights(day("2024-01-01"), lateCheckout))
}

func TestIsAvailable(t *testing.T) {
	room := models.Room{ID: "room-1", Available: true}
	bookings := []models.StayBooking{
		{ID: "b1", RoomID: "room-1", CheckIn: "2024-03-10", CheckOut: "2024-03-15", Status: models.BookingStatusConfirmed},
	}

	assert.False(t, IsAvailable(room, bookings, day("2024-03-12"), day("2024-03-18")))
	assert.True(t, IsAvailable(room, bookings, day("2024-03-15"), day("2024-03-18")))
}

func TestIsAvailableCancelledBookingFreesDates(t *testing.T) {
	room := models.Room{ID: "room-1", Available: true}
	bookings := []models.StayBooking{
		{ID: "b1", RoomID: "room-1", CheckIn: "2024-03-10", CheckOut: "2024-03-15", Status: models.BookingStatusCancelled},
	}

	assert.True(t, IsAvailable(room, bookings, day("2024-03-12"), day("2024-03-18")))
}

func TestIsAvailableOtherRoomIgnored(t *testing.T) {
	room := models.Room{ID: "room-1", Available: true}
	bookings := []models.StayBooking{
		{ID: "b1", RoomID: "room-2", CheckIn: "2024-03-10", CheckOut: "2024-03-15", Status: models.BookingStatusConfirmed},
	}

	assert.True(t, IsAvailable(room, bookings, day("2024-03-12"), day("2024-03-18")))
}

func TestIsAvailableUnavailableRoom(t *testing.T) {
	room := models.Room{ID: "room-1", Available: false}

	assert.False(t, IsAvailable(room, nil, day("2024-03-12"), day("2024-03-18")))
}

func TestIsAvailableInvertedRange(t *testing.T) {
	room := models.Room{ID: "room-1", Available: true}

	assert.False(t, IsAvailable(room, nil, day("2024-03-18"), day("2024-03-12")))
	assert.False(t, IsAvailable(room, nil, day("2024-03-12"), day("2024-03-12")))
}

func TestIsAvailableMalformedBookingSkipped(t *testing.T) {
	room := models.Room{ID: "room-1", Available: true}
	bookings := []models.StayBooking{
		{ID: "b1", RoomID: "room-1", CheckIn: "garbage", CheckOut: "2024-03-15", Status: models.BookingStatusConfirmed},
	}

	assert.True(t, IsAvailable(room, bookings, day("2024-03-12"), day("2024-03-18")))
}

func TestBookedDates(t *testing.T) {
	bookings := []models.StayBooking{
		{ID: "b1", RoomID: "room-1", CheckIn: "2024-03-10", CheckOut: "2024-03-13", Status: models.BookingStatusConfirmed},
		{ID: "b2", RoomID: "room-1", CheckIn: "2024-03-12", CheckOut: "2024-03-14", Status: models.BookingStatusConfirmed},
		{ID: "b3", RoomID: "room-2", CheckIn: "2024-03-10", CheckOut: "2024-03-12", Status: models.BookingStatusConfirmed},
		{ID: "b4", RoomID: "room-1", CheckIn: "2024-03-20", CheckOut: "2024-03-22", Status: models.BookingStatusCancelled},
	}

	// b1 blocks 10-12, b2 blocks 12-13 (the 14th is b2's checkout and stays free).
	got := BookedDates("room-1", bookings)
	assert.Equal(t, []string{"2024-03-10", "2024-03-11", "2024-03-12", "2024-03-13"}, got)
}

func TestBookedDatesEmpty(t *testing.T) {
	assert.Empty(t, BookedDates("room-1", nil))
}
