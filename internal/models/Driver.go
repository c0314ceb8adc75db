// internal/models/Driver.go
package models

import (
	"gorm.io/gorm"
)

// Truck types a driver can register with. Free-text everywhere else; the
// registration form offers exactly these four.
const (
	TruckGraneleiro  = "Graneleiro"  // grain hauler
	TruckRodocacamba = "Rodocaçamba" // dump trailer
	TruckBau         = "Baú"         // box truck
	TruckCarreta     = "Carreta"     // flatbed / generic trailer
)

// Driver is an entry in the driver registry. Drivers are not linked to
// catalog routes; the operator matches them informally by truck type and
// coverage region when dispatching.
type Driver struct {
	gorm.Model

	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone" binding:"required" gorm:"unique"`
	TruckType      string `json:"truck_type"`
	CoverageRegion string `json:"coverage_region"` // e.g. "SP, RJ, MG"
}
