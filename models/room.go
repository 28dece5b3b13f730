package models

// Room represents a farm-stay room. Availability is derived entirely from the
// booking collection; there is no separate blocked-dates table.
type Room struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	NightlyRate float64 `bson:"nightly_rate" json:"nightly_rate"` // Price per night
	Capacity    int     `bson:"capacity" json:"capacity"`         // Max guests
	Available   bool    `bson:"available" json:"available"`       // Global availability toggle
	Description string  `bson:"description" json:"description"`
	ImageURL    string  `bson:"image_url" json:"image_url"`
}

// Activity is a bookable farm activity (e.g., cheese-making workshop).
// Used only as a price lookup during booking cost aggregation.
type Activity struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	Price           float64 `bson:"price" json:"price"` // Per participant
	MaxParticipants int     `bson:"max_participants" json:"max_participants"`
	Description     string  `bson:"description" json:"description"`
}

// SpecialPackage is a fixed-price stay bundle. When selected it replaces
// per-night room pricing entirely; it is not additive.
type SpecialPackage struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"` // Fixed price for the whole stay
	Description string  `bson:"description" json:"description"`
}
