package domain

// Coordinates is a geographic point in floating-point degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Court is one facility record from the static catalog. The catalog is
// loaded once at startup and never mutated; every field except ID is
// free-text as far as the core is concerned.
type Court struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Address        string      `json:"address"`
	Area           string      `json:"area"`
	Coordinates    Coordinates `json:"coordinates"`
	Hours          string      `json:"hours"`
	NumberOfCourts int         `json:"numberOfCourts"`
	Indoor         bool        `json:"indoor"`
	SurfaceType    string      `json:"surfaceType"`
	Contact        string      `json:"contact,omitempty"`
	Description    string      `json:"description,omitempty"`
	Image          string      `json:"image,omitempty"`
	BookingURL     *string     `json:"bookingUrl,omitempty"`
}

// CourtWithDistance is a catalog court annotated with its distance from the
// user's location for the current query. DistanceKm is nil when no location
// was supplied.
type CourtWithDistance struct {
	Court
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// Location is a user position supplied by the caller. The core never polls
// for position itself; it only consumes an already-resolved coordinate.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
