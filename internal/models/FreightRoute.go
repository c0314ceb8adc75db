// internal/models/FreightRoute.go
package models

import (
	"gorm.io/gorm"
)

// FreightRoute is one row of the freight catalog: a lane between an origin
// and a destination, the product hauled on it and the contracted price for
// each customer class.
//
// The pair (origin, destination) is the lookup key after normalization, but
// the catalog deliberately carries no uniqueness constraint on it: duplicate
// lanes are legal and lookups take the first match in insertion order.
type FreightRoute struct {
	gorm.Model

	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Product     string `json:"product"`
	TruckType   string `json:"truck_type"`

	// Human-readable site labels shown in dispatch messages, as opposed to
	// the normalized city keys used for matching.
	LoadingLocation   string `json:"loading_location"`
	UnloadingLocation string `json:"unloading_location"`

	PricePJ float64 `json:"price_pj" gorm:"check:price_pj >= 0"` // business customers
	PricePF float64 `json:"price_pf" gorm:"check:price_pf >= 0"` // individual customers
}
