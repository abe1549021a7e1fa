package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "yatra/backend/docs"
	"yatra/backend/internal/handler"
)

// NewRouter assembles the Echo instance: API routes under /api, optional
// swagger UI, and the static SPA fallback for everything else.
func NewRouter(
	newsletterHandler *handler.NewsletterHandler,
	contactHandler *handler.ContactHandler,
	leadHandler *handler.LeadHandler,
	geoHandler *handler.GeoHandler,
	staticDir string,
	enableSwagger bool,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(RequestLoggerMiddleware())

	if enableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group("/api", NoStoreMiddleware())
	api.GET("/health", func(c echo.Context) error {
		return c.JSON(nethttp.StatusOK, map[string]string{"status": "ok"})
	})

	newsletterHandler.RegisterRoutes(api)
	contactHandler.RegisterRoutes(api)
	leadHandler.RegisterRoutes(api)
	geoHandler.RegisterRoutes(api)

	registerStatic(e, staticDir)

	return e
}
