// Package search normalise les termes de recherche du tableau de bord pour
// une comparaison insensible à la casse et aux accents, en miroir de
// l'extension unaccent côté PostgreSQL.
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var depliage = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Plier retire les accents, passe en minuscules et supprime les espaces de
// bordure. "Électricité " devient "electricite".
func Plier(s string) string {
	plie, _, err := transform.String(depliage, s)
	if err != nil {
		plie = s
	}
	return strings.ToLower(strings.TrimSpace(plie))
}
