package routes

import (
	"frete_dispatch/internal/controllers"

	"github.com/gin-gonic/gin"
)

func DriverRoutes(r *gin.Engine) {
	driver := r.Group("/drivers")
	{
		// Empty relative path keeps the endpoints at /drivers itself;
		// "/" would register /drivers/ and force a 307 on POSTs.
		driver.POST("", controllers.RegisterDriver)
		driver.GET("", controllers.ListDrivers)
	}
}
