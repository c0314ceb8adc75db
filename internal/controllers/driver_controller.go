package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"

	"frete_dispatch/internal/freight"
	"frete_dispatch/internal/models"
)

// registrableTrucks is the closed set offered by the registration form,
// compared on normalized keys so "graneleiro" and "Graneleiro" both pass.
var registrableTrucks = map[string]bool{
	"graneleiro":  true,
	"rodocacamba": true,
	"bau":         true,
	"carreta":     true,
}

// RegisterDriver adds a driver to the registry. Phone numbers are unique;
// re-registering one maps the Postgres unique violation to a conflict.
func RegisterDriver(c *gin.Context) {
	var input models.Driver
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("RegisterDriver: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !registrableTrucks[freight.Normalize(input.TruckType)] {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "truck_type must be one of Graneleiro, Rodocaçamba, Baú or Carreta",
		})
		return
	}

	if err := repo.AppendDriver(&input); err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "phone already registered"})
			return
		}
		logrus.WithError(err).Error("RegisterDriver: failed to persist driver")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not register driver: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"driver": input})
}

// ListDrivers returns the whole driver registry.
func ListDrivers(c *gin.Context) {
	drivers, err := repo.LoadDrivers()
	if err != nil {
		logrus.WithError(err).Error("ListDrivers: failed to load registry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load drivers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": drivers})
}
