package freight

import (
	"frete_dispatch/internal/models"
)

// VerdictOK is the verdict for a route that passes every compatibility rule.
const VerdictOK = "OK"

// Verdicts for the fixed product/truck compatibility rules. The wording is
// what dispatchers have always seen on the validation sheet, so it stays.
const (
	VerdictRequiresRodocacamba = "Erro: produto exige rodocaçamba"
	VerdictRequiresGraneleiro  = "Erro: adubo exige graneleiro"
)

// Validate applies the product -> truck compatibility rules to a single
// route and returns a verdict. Rules run in order and the first violation
// wins; rows with products outside the ruled set are always OK.
//
// Validate never mutates the route and does no cross-row checks; it is
// recomputed on every catalog listing rather than persisted.
func Validate(r models.FreightRoute) string {
	prod := Normalize(r.Product)
	truck := Normalize(r.TruckType)

	if (prod == "calcario" || prod == "gesso") && truck != "rodocacamba" {
		return VerdictRequiresRodocacamba
	}
	if prod == "adubo" && truck != "graneleiro" {
		return VerdictRequiresGraneleiro
	}
	return VerdictOK
}
