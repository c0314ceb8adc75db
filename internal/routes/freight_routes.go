package routes

import (
	"frete_dispatch/internal/controllers"

	"github.com/gin-gonic/gin"
)

func FreightRoutes(r *gin.Engine) {
	freight := r.Group("/freight")
	{
		freight.GET("/quote", controllers.GetQuote)
		freight.GET("/message", controllers.GetDispatchMessage)
		freight.GET("/messages", controllers.ListDispatchMessages)
		freight.POST("/minimum", controllers.ComputeMinimumFreight)
	}
}
