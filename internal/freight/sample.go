package freight

import (
	"frete_dispatch/internal/models"
)

// SampleCatalog is the fixed demonstration catalog used by cmd/selftest and
// the package tests. Keys are stored as entered on the sheet; callers that
// need normalized keys run NormalizeRouteKeys, exactly as the repository
// does on load.
func SampleCatalog() []models.FreightRoute {
	return []models.FreightRoute{
		{
			Origin:            "Santana de Parnaíba",
			Destination:       "Catanduva",
			Product:           "Adubo",
			TruckType:         "Graneleiro",
			LoadingLocation:   "Terminal Santana de Parnaíba",
			UnloadingLocation: "Armazém Catanduva",
			PricePJ:           600.00,
			PricePF:           500.00,
		},
		{
			Origin:            "Santana de Parnaíba",
			Destination:       "Meridiano",
			Product:           "Calcário",
			TruckType:         "Rodocaçamba",
			LoadingLocation:   "Terminal Santana de Parnaíba",
			UnloadingLocation: "Fazenda Meridiano",
			PricePJ:           750.00,
			PricePF:           680.00,
		},
		{
			Origin:            "Uberaba",
			Destination:       "Rio Verde",
			Product:           "Gesso",
			TruckType:         "Baú",
			LoadingLocation:   "Mineração Uberaba",
			UnloadingLocation: "Distribuidora Rio Verde",
			PricePJ:           980.00,
			PricePF:           910.00,
		},
	}
}
