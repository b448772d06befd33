package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/catalog"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/domain"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/metrics"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/service"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/util"
)

type CourtHandler struct {
	courts    []domain.Court
	discovery *service.DiscoveryService
	favorites *service.FavoriteService
	reviews   *service.ReviewService
	metrics   *metrics.Collector
}

func RegisterCourts(
	e *echo.Echo,
	courts []domain.Court,
	discovery *service.DiscoveryService,
	favorites *service.FavoriteService,
	reviews *service.ReviewService,
	collector *metrics.Collector,
) {
	handler := &CourtHandler{
		courts:    courts,
		discovery: discovery,
		favorites: favorites,
		reviews:   reviews,
		metrics:   collector,
	}

	group := e.Group("/api/courts")
	group.GET("", handler.listCourts)
	group.GET("/:id", handler.courtByID)
}

// listCourts handles GET /api/courts: the full discovery pipeline driven by
// query parameters.
func (h *CourtHandler) listCourts(c echo.Context) error {
	query, err := parseCourtListQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	favorites, err := h.favorites.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not load favorites"))
	}

	result := h.discovery.Discover(service.DiscoverInput{
		Courts:         h.courts,
		Filters:        query.filters,
		Favorites:      favorites,
		UserLocation:   query.location,
		SortByDistance: query.sortByDistance,
	})
	h.metrics.RecordDiscoveryQuery()

	return c.JSON(http.StatusOK, util.Envelope{
		"courts": result,
		"total":  len(result),
	})
}

// courtByID handles GET /api/courts/{id}: one court with its annotations.
func (h *CourtHandler) courtByID(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	court, ok := catalog.FindByID(h.courts, id)
	if !ok {
		return c.JSON(http.StatusNotFound, util.Error("court not found"))
	}

	ctx := c.Request().Context()
	reviews, err := h.reviews.ListForCourt(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not load reviews"))
	}
	favorited, err := h.favorites.IsFavorite(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not load favorites"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"court":         court,
		"favorite":      favorited,
		"reviews":       reviews,
		"averageRating": service.AverageRating(reviews),
	})
}

type courtListQuery struct {
	filters        domain.FilterState
	location       *domain.Location
	sortByDistance bool
}

func parseCourtListQuery(c echo.Context) (courtListQuery, error) {
	filters := domain.DefaultFilters()
	filters.Search = strings.TrimSpace(c.QueryParam("search"))

	if v := strings.TrimSpace(c.QueryParam("type")); v != "" {
		switch domain.CourtTypeFilter(v) {
		case domain.CourtTypeAll, domain.CourtTypeIndoor, domain.CourtTypeOutdoor:
			filters.Type = domain.CourtTypeFilter(v)
		default:
			return courtListQuery{}, fmt.Errorf("type must be one of all, indoor, outdoor")
		}
	}
	if v := strings.TrimSpace(c.QueryParam("area")); v != "" {
		filters.Area = v
	}
	if v := strings.TrimSpace(c.QueryParam("surface")); v != "" {
		filters.Surface = v
	}
	filters.FavoritesOnly = queryFlag(c, "favorites_only")
	filters.OpenNow = queryFlag(c, "open_now")

	if v := strings.TrimSpace(c.QueryParam("min_courts")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return courtListQuery{}, fmt.Errorf("min_courts must be a non-negative integer")
		}
		filters.MinCourts = n
	}

	query := courtListQuery{filters: filters}

	latStr := strings.TrimSpace(c.QueryParam("lat"))
	lngStr := strings.TrimSpace(c.QueryParam("lng"))
	if latStr != "" || lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			return courtListQuery{}, fmt.Errorf("lat and lng must both be valid numbers")
		}
		query.location = &domain.Location{Latitude: lat, Longitude: lng}
	}

	if v := strings.TrimSpace(c.QueryParam("sort")); v != "" {
		if v != "distance" {
			return courtListQuery{}, fmt.Errorf("sort must be 'distance'")
		}
		query.sortByDistance = true
	}
	return query, nil
}

func queryFlag(c echo.Context, name string) bool {
	switch strings.ToLower(strings.TrimSpace(c.QueryParam(name))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
