package routes

import (
	"frete_dispatch/internal/controllers"

	"github.com/gin-gonic/gin"
)

func CatalogRoutes(r *gin.Engine) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("/routes", controllers.ListCatalogRoutes)
		catalog.POST("/routes", controllers.CreateCatalogRoute)
		catalog.DELETE("/routes", controllers.RemoveCatalogRoutes)
	}
}
