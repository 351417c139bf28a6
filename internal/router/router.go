// Package router builds the Echo instance: middleware chain, error
// handler and every route.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/flats-api/internal/handler"
	"github.com/deppfellow/flats-api/internal/middleware"
	"github.com/deppfellow/flats-api/internal/server"
)

// NewRouter wires middleware and routes. Order matters: the request id
// and the New Relic transaction must exist before the context logger is
// built, and the logger before anything that logs.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
		middlewares.Global.BodyLimit(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerFlatRoutes(router, h)

	return router
}

// registerFlatRoutes mounts the flat endpoints. The id segment is optional
// for GET-by-id, PUT and DELETE: the id-less forms reach the same handlers
// and fail id validation with a 400.
func registerFlatRoutes(r *echo.Echo, h *handler.Handlers) {
	flats := r.Group("/flats")

	getFlat := handler.Handle[handler.FlatIDRequest](h.Flat.Handler, h.Flat.GetFlat, http.StatusOK)
	updateFlat := handler.HandleNoContent[handler.UpdateFlatRequest](h.Flat.Handler, h.Flat.UpdateFlat, http.StatusOK)
	deleteFlat := handler.HandleNoContent[handler.FlatIDRequest](h.Flat.Handler, h.Flat.DeleteFlat, http.StatusOK)

	flats.POST("", handler.HandleNoContent[handler.CreateFlatRequest](h.Flat.Handler, h.Flat.CreateFlat, http.StatusCreated))
	flats.GET("", handler.Handle[handler.ListFlatsRequest](h.Flat.Handler, h.Flat.ListFlats, http.StatusOK))

	flats.GET("/:id", getFlat)
	flats.PUT("/:id", updateFlat)
	flats.DELETE("/:id", deleteFlat)

	flats.GET("/", getFlat)
	flats.PUT("", updateFlat)
	flats.PUT("/", updateFlat)
	flats.DELETE("", deleteFlat)
	flats.DELETE("/", deleteFlat)
}
