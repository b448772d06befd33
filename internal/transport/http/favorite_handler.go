package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/catalog"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/domain"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/metrics"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/service"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/util"
)

type FavoriteHandler struct {
	courts    []domain.Court
	favorites *service.FavoriteService
	metrics   *metrics.Collector
}

func RegisterFavorites(e *echo.Echo, courts []domain.Court, favorites *service.FavoriteService, collector *metrics.Collector) {
	handler := &FavoriteHandler{
		courts:    courts,
		favorites: favorites,
		metrics:   collector,
	}

	group := e.Group("/api/favorites")
	group.GET("", handler.listFavorites)
	group.POST("/:id/toggle", handler.toggleFavorite)
}

func (h *FavoriteHandler) listFavorites(c echo.Context) error {
	ids, err := h.favorites.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not load favorites"))
	}
	return c.JSON(http.StatusOK, util.Data("favorites", ids))
}

func (h *FavoriteHandler) toggleFavorite(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if _, ok := catalog.FindByID(h.courts, id); !ok {
		return c.JSON(http.StatusNotFound, util.Error("court not found"))
	}

	favorited, err := h.favorites.Toggle(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not update favorites"))
	}
	h.metrics.RecordFavoriteToggle()

	return c.JSON(http.StatusOK, util.Envelope{
		"courtId":  id,
		"favorite": favorited,
	})
}
