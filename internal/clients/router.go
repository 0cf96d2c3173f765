package clients

import (
	"github.com/gin-gonic/gin"

	"musobuddy/internal/shared/middleware"
)

func SetupClientRoutes(rg *gin.RouterGroup, controller *Controller) {
	clientRoutes := rg.Group("/clients")
	clientRoutes.Use(middleware.JWTAuth())
	clientRoutes.Use(middleware.RequireRoles("USER", "ADMIN"))
	{
		clientRoutes.POST("", controller.CreateClient)
		clientRoutes.GET("", controller.ListClients)
		clientRoutes.GET("/:id", controller.GetClient)
		clientRoutes.PATCH("/:id", controller.UpdateClient)
		clientRoutes.DELETE("/:id", controller.DeleteClient)
	}
}
