package freight

import "frete_dispatch/internal/models"

// sampleRoute is the Catanduva lane from the sample catalog, keys as
// entered on the sheet (not yet normalized).
func sampleRoute() models.FreightRoute {
	return SampleCatalog()[0]
}

// loadedSampleCatalog mimics what the repository hands the core: the sample
// catalog with matchable keys normalized.
func loadedSampleCatalog() []models.FreightRoute {
	catalog := SampleCatalog()
	for i := range catalog {
		NormalizeRouteKeys(&catalog[i])
	}
	return catalog
}
