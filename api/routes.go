package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"gosiwon-finder/services"
	"gosiwon-finder/utils"
)

func RegisterRoutes(e *echo.Echo, pc *PropertyController) {
	e.GET("/health", HealthCheck)

	api := e.Group("/api")
	api.GET("/properties", pc.SearchProperties)
	api.GET("/properties/:id", pc.GetProperty)
	api.GET("/stats", pc.GetStats)
	api.GET("/rooms/available", pc.ListAvailableRooms)
	api.GET("/options", GetOptions)
}

// NewServer builds the echo instance with middleware and routes registered.
func NewServer(catalog *services.Catalog, logger *utils.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("[http] %s %s %d %v", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	RegisterRoutes(e, NewPropertyController(catalog, logger))
	return e
}
