package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/catalog"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/domain"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/metrics"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/service"
	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/util"
)

type ReviewHandler struct {
	courts  []domain.Court
	reviews *service.ReviewService
	metrics *metrics.Collector
}

func RegisterReviews(e *echo.Echo, courts []domain.Court, reviews *service.ReviewService, collector *metrics.Collector) {
	handler := &ReviewHandler{
		courts:  courts,
		reviews: reviews,
		metrics: collector,
	}

	group := e.Group("/api/courts/:id/reviews")
	group.GET("", handler.listReviews)
	group.POST("", handler.createReview)
	group.DELETE("/:reviewId", handler.deleteReview)
}

func (h *ReviewHandler) listReviews(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if _, ok := catalog.FindByID(h.courts, id); !ok {
		return c.JSON(http.StatusNotFound, util.Error("court not found"))
	}

	reviews, err := h.reviews.ListForCourt(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not load reviews"))
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"courtId":       id,
		"reviews":       reviews,
		"averageRating": service.AverageRating(reviews),
	})
}

func (h *ReviewHandler) createReview(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if _, ok := catalog.FindByID(h.courts, id); !ok {
		return c.JSON(http.StatusNotFound, util.Error("court not found"))
	}

	var req struct {
		Author  string  `json:"author"`
		Rating  float64 `json:"rating"`
		Comment string  `json:"comment"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	review, err := h.reviews.Add(c.Request().Context(), id, req.Author, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrReviewValidation) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("could not save review"))
	}
	h.metrics.RecordReviewCreated()

	return c.JSON(http.StatusCreated, util.Data("review", review))
}

// deleteReview removes one review. A missing court or review id still
// answers 204: deletion of an absent entity is a no-op, not an error.
func (h *ReviewHandler) deleteReview(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	reviewID := strings.TrimSpace(c.Param("reviewId"))

	if err := h.reviews.Remove(c.Request().Context(), id, reviewID); err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not delete review"))
	}
	h.metrics.RecordReviewDeleted()

	return c.NoContent(http.StatusNoContent)
}
