package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/metrics"
)

func NewRouter(allowOrigins []string, collector *metrics.Collector) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	registerLogging(e, collector)

	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderOrigin,
			echo.HeaderXRequestedWith,
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})
	if collector != nil {
		e.GET("/metrics", echo.WrapHandler(collector.Handler()))
	}
	return e
}
