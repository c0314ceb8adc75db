package freight

import (
	"fmt"
	"strings"

	"frete_dispatch/internal/models"
)

// ComposeMessage renders one driver-facing dispatch message for a resolved
// route. The template is fixed: loading/unloading site labels keep their
// original spelling with the normalized city key in parentheses, and the
// price is always two decimals with the R$ prefix.
func ComposeMessage(r models.FreightRoute, customer CustomerType) string {
	return fmt.Sprintf(
		"Carga disponível!\n"+
			"Produto: %s\n"+
			"Origem: %s (%s)\n"+
			"Destino: %s (%s)\n"+
			"Caminhão: %s\n"+
			"Frete %s: R$ %.2f",
		Normalize(r.Product),
		r.LoadingLocation, Normalize(r.Origin),
		r.UnloadingLocation, Normalize(r.Destination),
		Normalize(r.TruckType),
		customer.Label(), customer.PriceFor(r),
	)
}

// ComposeMessagesForProduct renders a dispatch message for every catalog row
// hauling the given product, joined by a blank line, for bulk sends. An
// unknown product simply yields an empty string.
func ComposeMessagesForProduct(catalog []models.FreightRoute, product string, customer CustomerType) string {
	p := Normalize(product)
	var msgs []string
	for _, r := range catalog {
		if Normalize(r.Product) == p {
			msgs = append(msgs, ComposeMessage(r, customer))
		}
	}
	return strings.Join(msgs, "\n\n")
}
