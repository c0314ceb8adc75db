package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"frete_dispatch/internal/freight"
)

// ComputeMinimumFreight evaluates the ANTT-style minimum freight price for
// an ad-hoc lane. Independent of the catalog; the payload carries every
// scalar the formula needs.
func ComputeMinimumFreight(c *gin.Context) {
	var input freight.MinimumInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("ComputeMinimumFreight: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	breakdown, err := freight.ComputeMinimum(input)
	if err != nil {
		if errors.Is(err, freight.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"breakdown": breakdown})
}
