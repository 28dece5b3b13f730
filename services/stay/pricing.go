package stay

import "farmstead/models"

// ActivityTotal prices the selected activities. Unknown activity IDs
// contribute nothing.
func ActivityTotal(selections []models.ActivitySelection, activities map[string]models.Activity) float64 {
	var total float64
	for _, sel := range selections {
		activity, ok := activities[sel.ActivityID]
		if !ok {
			continue
		}
		total += activity.Price * float64(sel.Participants)
	}
	return total
}

// BookingTotal prices a stay. A special package replaces the per-night room
// charge entirely; activities are always charged on top.
func BookingTotal(room models.Room, nights int, selections []models.ActivitySelection, activities map[string]models.Activity, pkg *models.SpecialPackage) float64 {
	activityTotal := ActivityTotal(selections, activities)
	if pkg != nil {
		return pkg.Price + activityTotal
	}
	return room.NightlyRate*float64(nights) + activityTotal
}
