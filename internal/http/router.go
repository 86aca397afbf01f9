// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/http/handlers"
	"tripsmith/internal/http/middleware"
	"tripsmith/internal/modules/usage"
)

func NewRouter(
	plannerSvc handlers.TravelPlanner,
	usageSvc *usage.Service,
	tz handlers.TimezoneLookup,
) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	planHandler := handlers.NewPlanHandler(plannerSvc, usageSvc, tz)
	r.POST("/api/travel-plans", planHandler.Create)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
