// Package stay holds the pure farm-stay rules: overlap detection, night
// counting, booked-date enumeration, and pricing. Callers load state and
// pass it in; nothing here touches a store or the clock.
package stay

import (
	"math"
	"sort"
	"time"

	"farmstead/models"
	"farmstead/utils"
)

// Overlaps reports whether two half-open [checkIn, checkOut) ranges collide.
// Back-to-back stays sharing a turnover day do not overlap.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// Nights counts the nights between check-in and check-out, rounding partial
// days up. Non-positive ranges count zero nights.
func Nights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	if hours <= 0 {
		return 0
	}
	return int(math.Ceil(hours / 24))
}

// IsAvailable reports whether the room can host a stay over
// [checkIn, checkOut). Inverted or empty ranges are never available, and
// cancelled bookings do not block dates.
func IsAvailable(room models.Room, bookings []models.StayBooking, checkIn, checkOut time.Time) bool {
	if !checkIn.Before(checkOut) {
		return false
	}
	if !room.Available {
		return false
	}
	for _, b := range bookings {
		if b.RoomID != room.ID || b.Status == models.BookingStatusCancelled {
			continue
		}
		bIn, bOut, ok := bookingRange(b)
		if !ok {
			continue
		}
		if Overlaps(checkIn, checkOut, bIn, bOut) {
			return false
		}
	}
	return true
}

// BookedDates enumerates every occupied date for the room as a sorted,
// de-duplicated list. Each booking contributes [checkIn, checkOut); the
// checkout day itself stays free.
func BookedDates(roomID string, bookings []models.StayBooking) []string {
	seen := make(map[string]struct{})
	for _, b := range bookings {
		if b.RoomID != roomID || b.Status == models.BookingStatusCancelled {
			continue
		}
		bIn, bOut, ok := bookingRange(b)
		if !ok {
			continue
		}
		for d := bIn; d.Before(bOut); d = d.AddDate(0, 0, 1) {
			seen[d.Format(utils.DateLayout)] = struct{}{}
		}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// bookingRange parses a booking's stored date strings. Malformed records
// are skipped rather than blocking the whole room.
func bookingRange(b models.StayBooking) (time.Time, time.Time, bool) {
	in, err := time.Parse(utils.DateLayout, b.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	out, err := time.Parse(utils.DateLayout, b.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return in, out, true
}
