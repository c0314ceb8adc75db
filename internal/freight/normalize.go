package freight

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"frete_dispatch/internal/models"
)

// toASCII decomposes accented characters and drops the combining marks,
// then drops anything still outside ASCII, e.g. "São Paulo" -> "Sao Paulo".
var toASCII = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// Normalize canonicalizes a free-text key for matching: lowercase, trimmed,
// accents stripped down to plain ASCII. Idempotent, so it is safe to apply
// both when the catalog is loaded and again on every query key.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(toASCII, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeRouteKeys normalizes the four matchable text fields of a route in
// place. The loading/unloading labels keep their original spelling since they
// are display text, not keys.
func NormalizeRouteKeys(r *models.FreightRoute) {
	r.Origin = Normalize(r.Origin)
	r.Destination = Normalize(r.Destination)
	r.Product = Normalize(r.Product)
	r.TruckType = Normalize(r.TruckType)
}
