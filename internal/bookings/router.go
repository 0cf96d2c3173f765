package bookings

import (
	"github.com/gin-gonic/gin"

	"musobuddy/internal/shared/middleware"
)

// SetupBookingRoutes configures all booking-related routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.JWTAuth(), middleware.RequireRoles("USER", "ADMIN"))
	{
		bookings.POST("", controller.CreateBooking)               // POST   /api/v1/bookings
		bookings.GET("", controller.ListBookings)                 // GET    /api/v1/bookings?status=confirmed&page=1
		bookings.GET("/conflicts", controller.ScanConflicts)      // GET    /api/v1/bookings/conflicts
		bookings.GET("/:id", controller.GetBooking)               // GET    /api/v1/bookings/:id
		bookings.PATCH("/:id", controller.UpdateBooking)          // PATCH  /api/v1/bookings/:id
		bookings.POST("/:id/status", controller.UpdateStatus)     // POST   /api/v1/bookings/:id/status
		bookings.DELETE("/:id", controller.DeleteBooking)         // DELETE /api/v1/bookings/:id
		bookings.GET("/:id/conflicts", controller.GetBookingConflicts) // GET /api/v1/bookings/:id/conflicts
	}
}
