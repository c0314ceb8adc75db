package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"

	"frete_dispatch/internal/freight"
)

// GetQuote resolves the contracted price for an (origin, destination,
// customer type) query against the current catalog snapshot.
func GetQuote(c *gin.Context) {
	customer, err := freight.ParseCustomerType(c.Query("customer_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin and destination query parameters are required"})
		return
	}

	routes, err := repo.LoadRoutes()
	if err != nil {
		logrus.WithError(err).Error("GetQuote: failed to load catalog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load freight catalog"})
		return
	}

	price, err := freight.Lookup(routes, origin, destination, customer)
	if err != nil {
		if errors.Is(err, freight.ErrRouteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rota não encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"origin":        freight.Normalize(origin),
		"destination":   freight.Normalize(destination),
		"customer_type": customer,
		"price":         price,
	})
}

// GetDispatchMessage composes the driver-facing message for one resolved
// lane. Each message gets a reference id so dispatchers can track which
// text went out to which driver group.
func GetDispatchMessage(c *gin.Context) {
	customer, err := freight.ParseCustomerType(c.Query("customer_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin and destination query parameters are required"})
		return
	}

	routes, err := repo.LoadRoutes()
	if err != nil {
		logrus.WithError(err).Error("GetDispatchMessage: failed to load catalog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load freight catalog"})
		return
	}

	route, err := freight.FindRoute(routes, origin, destination)
	if err != nil {
		if errors.Is(err, freight.ErrRouteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rota não encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message_id": uuid.NewString(),
		"message":    freight.ComposeMessage(route, customer),
	})
}

// ListDispatchMessages composes one message per catalog row hauling the
// given product, for bulk sends.
func ListDispatchMessages(c *gin.Context) {
	customer, err := freight.ParseCustomerType(c.Query("customer_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := c.Query("product")
	if product == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product query parameter is required"})
		return
	}

	routes, err := repo.LoadRoutes()
	if err != nil {
		logrus.WithError(err).Error("ListDispatchMessages: failed to load catalog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load freight catalog"})
		return
	}

	body := freight.ComposeMessagesForProduct(routes, product, customer)
	if body == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "No routes found for product " + product})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message_id": uuid.NewString(),
		"product":    freight.Normalize(product),
		"messages":   body,
	})
}
