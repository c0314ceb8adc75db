package catalog

import (
	"frete_dispatch/internal/config"
	"frete_dispatch/internal/freight"
	"frete_dispatch/internal/models"
)

// Repository is the persistence contract the HTTP shell depends on. The
// computation core never sees it; core functions take catalog snapshots.
type Repository interface {
	LoadRoutes() ([]models.FreightRoute, error)
	AppendRoute(r *models.FreightRoute) error
	RemoveByDestination(destination string) (int64, error)
	LoadDrivers() ([]models.Driver, error)
	AppendDriver(d *models.Driver) error
}

// GormRepository persists the catalogs through the shared gorm handle.
// It resolves the handle per call so it can be constructed before InitDB.
type GormRepository struct{}

func NewGormRepository() *GormRepository { return &GormRepository{} }

// LoadRoutes returns the full catalog in insertion order with the four
// matchable text fields normalized, so downstream lookups always compare
// canonical keys. Stored rows are left untouched.
func (g *GormRepository) LoadRoutes() ([]models.FreightRoute, error) {
	var routes []models.FreightRoute
	if err := config.GetDB().Order("id").Find(&routes).Error; err != nil {
		return nil, err
	}
	for i := range routes {
		freight.NormalizeRouteKeys(&routes[i])
	}
	return routes, nil
}

func (g *GormRepository) AppendRoute(r *models.FreightRoute) error {
	return config.GetDB().Create(r).Error
}

// MatchDestinationIDs selects every route whose normalized destination
// matches the given one, regardless of origin. Removal has always worked
// this way on the sheet: lanes from different origins into the same
// destination all go together.
func MatchDestinationIDs(routes []models.FreightRoute, destination string) []uint {
	key := freight.Normalize(destination)
	var ids []uint
	for _, r := range routes {
		if freight.Normalize(r.Destination) == key {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// RemoveByDestination deletes every route matched by MatchDestinationIDs
// and returns how many rows were deleted.
func (g *GormRepository) RemoveByDestination(destination string) (int64, error) {
	routes, err := g.LoadRoutes()
	if err != nil {
		return 0, err
	}

	ids := MatchDestinationIDs(routes, destination)
	if len(ids) == 0 {
		return 0, nil
	}

	tx := config.GetDB().Delete(&models.FreightRoute{}, ids)
	return tx.RowsAffected, tx.Error
}

func (g *GormRepository) LoadDrivers() ([]models.Driver, error) {
	var drivers []models.Driver
	if err := config.GetDB().Order("id").Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

func (g *GormRepository) AppendDriver(d *models.Driver) error {
	return config.GetDB().Create(d).Error
}
