// File: database/repository/stay/interface.go
package stayRepo

import "farmstead/models"

// StayRepository covers the farm-stay side: rooms, the activity and package
// catalogs, and booking records.
type StayRepository interface {
	GetRoomByID(roomID string) (*models.Room, error)
	GetRooms() ([]models.Room, error)
	GetActivities() ([]models.Activity, error)
	GetActivityMap() (map[string]models.Activity, error)
	GetPackages() ([]models.SpecialPackage, error)
	GetPackageByID(packageID string) (*models.SpecialPackage, error)

	CreateBooking(booking *models.StayBooking) error
	GetBookingByID(bookingID string) (*models.StayBooking, error)
	GetBookingsByRoom(roomID string) ([]models.StayBooking, error)
	GetBookingsBySession(sessionID string) ([]models.StayBooking, error)
	SetBookingStatus(bookingID, status string) error
}
