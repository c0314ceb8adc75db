package main

import (
	"log"
	"net/http"

	"frete_dispatch/internal/config"
	"frete_dispatch/internal/logger"
	"frete_dispatch/internal/middleware"
	"frete_dispatch/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Setup Gin router (recovery and request logging attach in there,
	// ahead of route registration)
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚚 Server running at :8080")
	log.Fatal(http.ListenAndServe("0.0.0.0:8080", handler))
}
