package site

import "time"

// Location is the company's check-in site: a geofence center plus radius.
// Stored as a singleton; attendance is only accepted inside the radius.
type Location struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	UpdatedAt    time.Time
}
