package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"frete_dispatch/internal/catalog"
	"frete_dispatch/internal/freight"
	"frete_dispatch/internal/models"
)

// repo is the catalog store shared by all controllers. Package-level so
// handler tests can swap in a stub.
var repo catalog.Repository = catalog.NewGormRepository()

// RouteWithVerdict pairs a catalog row with its recomputed validation
// verdict for listings. Verdicts are derived on every load, never stored.
type RouteWithVerdict struct {
	models.FreightRoute
	Verdict string `json:"verdict"`
}

// ListCatalogRoutes returns the whole catalog, each row annotated with its
// product/truck compatibility verdict.
func ListCatalogRoutes(c *gin.Context) {
	routes, err := repo.LoadRoutes()
	if err != nil {
		logrus.WithError(err).Error("ListCatalogRoutes: failed to load catalog")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load freight catalog"})
		return
	}

	rows := make([]RouteWithVerdict, 0, len(routes))
	for _, r := range routes {
		rows = append(rows, RouteWithVerdict{FreightRoute: r, Verdict: freight.Validate(r)})
	}
	c.JSON(http.StatusOK, gin.H{"routes": rows})
}

// CreateCatalogRoute appends a new route to the catalog. Origin and
// destination are required; everything else mirrors the add-freight form.
func CreateCatalogRoute(c *gin.Context) {
	var input models.FreightRoute
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateCatalogRoute: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.PricePJ < 0 || input.PricePF < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prices must not be negative"})
		return
	}

	if err := repo.AppendRoute(&input); err != nil {
		logrus.WithError(err).Error("CreateCatalogRoute: failed to persist route")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create route: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"route":   input,
		"verdict": freight.Validate(input),
	})
}

// RemoveCatalogRoutes deletes catalog rows by destination, matching only the
// normalized destination key. Lanes from different origins into the same
// destination are all removed in one call; the response reports the count so
// the operator can spot unintended siblings going with it.
func RemoveCatalogRoutes(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "destination query parameter is required"})
		return
	}

	removed, err := repo.RemoveByDestination(destination)
	if err != nil {
		logrus.WithError(err).Error("RemoveCatalogRoutes: failed to delete routes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not remove routes: " + err.Error()})
		return
	}
	if removed == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No routes found for destination " + destination})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Frete para " + freight.Normalize(destination) + " removido com sucesso",
		"removed": removed,
	})
}
