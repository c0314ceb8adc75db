package freight

import (
	"fmt"
	"math"
)

// MinimumInput carries the scalar parameters for an ad-hoc minimum freight
// computation. It is independent of the route catalog.
type MinimumInput struct {
	DistanceKm    float64 `json:"distance_km"`
	AxleCount     int     `json:"axle_count"`
	TollPerAxle   float64 `json:"toll_per_axle"`
	Tonnage       float64 `json:"tonnage"`
	MarginPercent float64 `json:"margin_percent"`
	ICMSPercent   float64 `json:"icms_percent"`
}

// axleCoefficients is one tier of the ANTT linear cost table:
// baseCost = Slope*distanceKm + Intercept.
type axleCoefficients struct {
	Slope     float64
	Intercept float64
}

// Published per-axle-count coefficients. The set is closed: any other axle
// count is rejected, not interpolated.
var axleTable = map[int]axleCoefficients{
	5: {Slope: 6.0301, Intercept: 615.26},
	6: {Slope: 6.7408, Intercept: 663.07},
	7: {Slope: 7.313, Intercept: 753.88},
	9: {Slope: 8.242, Intercept: 808.17},
}

// MinimumBreakdown exposes every intermediate of the minimum freight
// computation. All values are shown to the operator, not just the final
// per-ton figures.
type MinimumBreakdown struct {
	BaseCost                           float64 `json:"base_cost"`
	TollCost                           float64 `json:"toll_cost"`
	DriverMinimum                      float64 `json:"driver_minimum"`
	DriverMinimumPerTon                float64 `json:"driver_minimum_per_ton"`
	ShipperMinimumPerTon               float64 `json:"shipper_minimum_per_ton"`
	DriverMinimumWithToll              float64 `json:"driver_minimum_with_toll"`
	DriverMinimumWithTollPerTon        float64 `json:"driver_minimum_with_toll_per_ton"`
	ShipperMinimumWithTollPerTon       float64 `json:"shipper_minimum_with_toll_per_ton"`
	ShipperMinimumWithTollAndTaxPerTon float64 `json:"shipper_minimum_with_toll_and_tax_per_ton"`
}

// ComputeMinimum evaluates the regulator-style minimum freight price for an
// ad-hoc lane. Pure and deterministic; all invalid inputs are rejected with
// ErrInvalidInput before anything is computed.
//
// The rounding buffers are carried over exactly as the pricing worksheet
// applies them: the toll-free shipper figure is ceil(x)+1 while the
// with-toll figures are ceil(x+1.0). Do not unify them without sign-off
// from whoever owns the worksheet.
func ComputeMinimum(in MinimumInput) (MinimumBreakdown, error) {
	coef, ok := axleTable[in.AxleCount]
	if !ok {
		return MinimumBreakdown{}, fmt.Errorf("%w: axle count must be 5, 6, 7 or 9, got %d", ErrInvalidInput, in.AxleCount)
	}
	if in.DistanceKm <= 0 {
		return MinimumBreakdown{}, fmt.Errorf("%w: distance must be positive, got %v", ErrInvalidInput, in.DistanceKm)
	}
	if in.Tonnage <= 0 {
		return MinimumBreakdown{}, fmt.Errorf("%w: tonnage must be positive, got %v", ErrInvalidInput, in.Tonnage)
	}
	if in.TollPerAxle < 0 {
		return MinimumBreakdown{}, fmt.Errorf("%w: toll per axle must not be negative, got %v", ErrInvalidInput, in.TollPerAxle)
	}
	if in.MarginPercent < 0 {
		return MinimumBreakdown{}, fmt.Errorf("%w: margin percent must not be negative, got %v", ErrInvalidInput, in.MarginPercent)
	}
	if in.ICMSPercent < 0 {
		return MinimumBreakdown{}, fmt.Errorf("%w: ICMS percent must not be negative, got %v", ErrInvalidInput, in.ICMSPercent)
	}

	margin := 1 + in.MarginPercent/100
	tax := 1 + in.ICMSPercent/100

	var b MinimumBreakdown
	b.BaseCost = coef.Slope*in.DistanceKm + coef.Intercept
	b.TollCost = in.TollPerAxle * float64(in.AxleCount)

	// Toll is excluded from the driver floor and reintroduced below.
	b.DriverMinimum = b.BaseCost
	b.DriverMinimumPerTon = b.DriverMinimum / in.Tonnage
	b.ShipperMinimumPerTon = math.Ceil(b.DriverMinimumPerTon*margin) + 1

	b.DriverMinimumWithToll = b.DriverMinimum + b.TollCost
	b.DriverMinimumWithTollPerTon = b.DriverMinimumWithToll / in.Tonnage
	b.ShipperMinimumWithTollPerTon = math.Ceil(b.DriverMinimumWithTollPerTon*margin + 1.0)
	b.ShipperMinimumWithTollAndTaxPerTon = math.Ceil(b.DriverMinimumWithTollPerTon*margin*tax + 1.0)

	return b, nil
}
