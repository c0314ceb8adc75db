package freight

import (
	"fmt"
	"strings"

	"frete_dispatch/internal/models"
)

// CustomerType selects which contracted price applies to a quote.
type CustomerType string

const (
	CustomerPJ CustomerType = "pj" // business (legal-entity) customers
	CustomerPF CustomerType = "pf" // individual customers
)

// ParseCustomerType accepts the two customer classes in any casing.
// An empty value defaults to PJ, matching how quotes were always issued.
func ParseCustomerType(s string) (CustomerType, error) {
	switch Normalize(s) {
	case "pj", "":
		return CustomerPJ, nil
	case "pf":
		return CustomerPF, nil
	}
	return "", fmt.Errorf("%w: unknown customer type %q", ErrInvalidInput, s)
}

// Label is the uppercase tag used in dispatch messages ("PJ" / "PF").
func (c CustomerType) Label() string {
	return strings.ToUpper(string(c))
}

// PriceFor picks the route price field for this customer class.
func (c CustomerType) PriceFor(r models.FreightRoute) float64 {
	if c == CustomerPF {
		return r.PricePF
	}
	return r.PricePJ
}

// FindRoute returns the first catalog row whose normalized origin and
// destination both match the query. The catalog enforces no uniqueness on
// that pair, so under duplicates the earliest row wins.
func FindRoute(catalog []models.FreightRoute, origin, destination string) (models.FreightRoute, error) {
	o := Normalize(origin)
	d := Normalize(destination)
	for _, r := range catalog {
		if Normalize(r.Origin) == o && Normalize(r.Destination) == d {
			return r, nil
		}
	}
	return models.FreightRoute{}, ErrRouteNotFound
}

// Lookup resolves the contracted price for a lane and customer class.
// Returns ErrRouteNotFound when no row matches; a zero price is only ever
// a real catalog value, never a miss.
func Lookup(catalog []models.FreightRoute, origin, destination string, customer CustomerType) (float64, error) {
	r, err := FindRoute(catalog, origin, destination)
	if err != nil {
		return 0, err
	}
	return customer.PriceFor(r), nil
}
