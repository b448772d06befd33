package service

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/domain"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/geo"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/hours"
)

// DiscoveryService turns the catalog, the filter criteria, the favorite set
// and an optional user location into an ordered, annotated result list.
// The only non-determinism is the wall clock consumed by the open-now
// predicate; it is injected so the pipeline stays testable.
type DiscoveryService struct {
	now func() time.Time
}

func NewDiscoveryService() *DiscoveryService {
	return &DiscoveryService{now: time.Now}
}

// DiscoverInput carries one discovery query. Courts is never mutated.
type DiscoverInput struct {
	Courts         []domain.Court
	Filters        domain.FilterState
	Favorites      []string
	UserLocation   *domain.Location
	SortByDistance bool
}

// Discover filters with a conjunction of independent predicates, annotates
// the survivors with distance when a location is known, and sorts by
// distance when asked. Identical inputs yield an identical, order-stable
// result.
func (s *DiscoveryService) Discover(in DiscoverInput) []domain.CourtWithDistance {
	return s.discoverAt(in, hours.MinutesOfDay(s.now()))
}

func (s *DiscoveryService) discoverAt(in DiscoverInput, nowMinutes int) []domain.CourtWithDistance {
	filters := in.Filters.Normalized()
	search := strings.ToLower(filters.Search)

	favorites := make(map[string]struct{}, len(in.Favorites))
	for _, id := range in.Favorites {
		favorites[id] = struct{}{}
	}

	result := make([]domain.CourtWithDistance, 0, len(in.Courts))
	for _, court := range in.Courts {
		if search != "" && !strings.Contains(strings.ToLower(court.Name), search) {
			continue
		}
		if filters.Type == domain.CourtTypeIndoor && !court.Indoor {
			continue
		}
		if filters.Type == domain.CourtTypeOutdoor && court.Indoor {
			continue
		}
		if filters.Area != "all" && court.Area != filters.Area {
			continue
		}
		if filters.Surface != "all" && court.SurfaceType != filters.Surface {
			continue
		}
		if filters.FavoritesOnly {
			if _, ok := favorites[court.ID]; !ok {
				continue
			}
		}
		if filters.OpenNow {
			// Unknown hours never count as open.
			if hours.Evaluate(court.Hours, nowMinutes) != hours.Open {
				continue
			}
		}
		if filters.MinCourts > 0 && court.NumberOfCourts < filters.MinCourts {
			continue
		}

		annotated := domain.CourtWithDistance{Court: court}
		if in.UserLocation != nil {
			d := geo.DistanceKm(
				in.UserLocation.Latitude,
				in.UserLocation.Longitude,
				court.Coordinates.Lat,
				court.Coordinates.Lng,
			)
			annotated.DistanceKm = &d
		}
		result = append(result, annotated)
	}

	if in.SortByDistance && in.UserLocation != nil {
		sort.SliceStable(result, func(i, j int) bool {
			return distanceOrInf(result[i]) < distanceOrInf(result[j])
		})
	}
	return result
}

// distanceOrInf sorts items without a computed distance last.
func distanceOrInf(c domain.CourtWithDistance) float64 {
	if c.DistanceKm == nil {
		return math.Inf(1)
	}
	return *c.DistanceKm
}
