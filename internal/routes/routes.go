package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Gin snapshots the middleware chain per route at registration time,
	// so recovery and request logging must attach before any endpoint.
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	CatalogRoutes(r)
	FreightRoutes(r)
	DriverRoutes(r)

	return r
}
