package domain

// CourtTypeFilter selects indoor courts, outdoor courts, or both.
type CourtTypeFilter string

const (
	CourtTypeAll     CourtTypeFilter = "all"
	CourtTypeIndoor  CourtTypeFilter = "indoor"
	CourtTypeOutdoor CourtTypeFilter = "outdoor"
)

// FilterState holds the user's current filter criteria. It is a plain value
// object replaced wholesale on every edit; each field is independently
// neutral at its default.
type FilterState struct {
	Search        string          `json:"search"`
	Type          CourtTypeFilter `json:"typeFilter"`
	Area          string          `json:"areaFilter"`
	Surface       string          `json:"surfaceFilter"`
	FavoritesOnly bool            `json:"showFavoritesOnly"`
	OpenNow       bool            `json:"openNow"`
	MinCourts     int             `json:"minCourts"`
}

// DefaultFilters returns the neutral criteria: every predicate passes.
func DefaultFilters() FilterState {
	return FilterState{
		Type:    CourtTypeAll,
		Area:    "all",
		Surface: "all",
	}
}

// Normalized repairs values that would violate the criteria invariants:
// a negative minimum-court threshold becomes 0 and an unrecognized type
// filter falls back to "all".
func (f FilterState) Normalized() FilterState {
	if f.MinCourts < 0 {
		f.MinCourts = 0
	}
	switch f.Type {
	case CourtTypeIndoor, CourtTypeOutdoor:
	default:
		f.Type = CourtTypeAll
	}
	if f.Area == "" {
		f.Area = "all"
	}
	if f.Surface == "" {
		f.Surface = "all"
	}
	return f
}
