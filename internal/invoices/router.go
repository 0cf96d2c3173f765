package invoices

import (
	"github.com/gin-gonic/gin"

	"musobuddy/internal/shared/middleware"
)

func SetupInvoiceRoutes(rg *gin.RouterGroup, controller *Controller) {
	invoiceRoutes := rg.Group("/invoices")
	invoiceRoutes.Use(middleware.JWTAuth())
	{
		userRoutes := invoiceRoutes.Group("")
		userRoutes.Use(middleware.RequireRoles("USER", "ADMIN"))
		{
			userRoutes.POST("", controller.CreateInvoice)
			userRoutes.GET("", controller.ListInvoices)
			userRoutes.GET("/:id", controller.GetInvoice)
			userRoutes.POST("/:id/send", controller.SendInvoice)
			userRoutes.POST("/:id/pay", controller.MarkInvoicePaid)
		}

		adminRoutes := invoiceRoutes.Group("")
		adminRoutes.Use(middleware.RequireRoles("ADMIN"))
		{
			adminRoutes.POST("/sweep-overdue", controller.SweepOverdue)
		}
	}
}
