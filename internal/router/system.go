package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/flats-api/internal/handler"
	"github.com/deppfellow/flats-api/static"
)

// registerSystemRoutes registers the endpoints outside the flats API:
// health, docs UI and the static docs assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.StaticFS("/static", static.FS)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
