package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"slotwise/handlers"
	"slotwise/middleware"
)

// RegisterScheduleRoutes registers the availability read surface and
// the provider-facing editor endpoints.
func RegisterScheduleRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	api := r.Group("/api/schedule")
	{
		// Read endpoints, consumed by the presentation and booking
		// collaborators behind the gateway.
		api.GET("/:providerId/day/:date", h.GetEffectiveDayHandler)
		api.GET("/:providerId/day/:date/slots", h.GetDaySlotsHandler)
		api.POST("/:providerId/validate", h.ValidateBookingHandler)

		// Editor endpoints require the provider's own token.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthProviderMiddleware())
		protected.GET("/:providerId/weekly", h.GetWeeklyScheduleHandler)
		protected.PUT("/:providerId/weekly/:day/toggle", h.ToggleWeekdayHandler)
		protected.POST("/:providerId/weekly/:day/windows", h.AddWindowHandler)
		protected.PUT("/:providerId/weekly/:day/windows/:index", h.EditWindowHandler)
		protected.DELETE("/:providerId/weekly/:day/windows/:index", h.RemoveWindowHandler)
		protected.GET("/:providerId/overrides", h.GetOverridesHandler)
		protected.PUT("/:providerId/overrides/:date", h.SetOverrideHandler)
		protected.DELETE("/:providerId/overrides/:date", h.ClearOverrideHandler)
	}
}

// RegisterRoutes wires CORS, the health endpoint, and all route groups.
func RegisterRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterScheduleRoutes(r, h)
}
