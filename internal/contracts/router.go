package contracts

import (
	"github.com/gin-gonic/gin"

	"musobuddy/internal/shared/middleware"
)

func SetupContractRoutes(rg *gin.RouterGroup, controller *Controller) {
	// Public signing endpoints: the token in the URL is the credential.
	rg.GET("/contracts/sign/:token", controller.ViewContractByToken)
	rg.POST("/contracts/sign/:token", controller.SignContract)

	contractRoutes := rg.Group("/contracts")
	contractRoutes.Use(middleware.JWTAuth())
	contractRoutes.Use(middleware.RequireRoles("USER", "ADMIN"))
	{
		contractRoutes.POST("", controller.CreateContract)
		contractRoutes.GET("", controller.ListContracts)
		contractRoutes.GET("/:id", controller.GetContract)
		contractRoutes.POST("/:id/send", controller.SendContract)
	}
}
