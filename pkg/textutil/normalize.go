// Package textutil normaliza texto libre para usarlo como llave de búsqueda.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize devuelve el texto en minúsculas y sin diacríticos (Á→a, ñ→n).
// Es idempotente y solo sirve como llave de comparación; nunca se almacena
// ni se muestra. Entrada vacía produce cadena vacía.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// NFD descompone los caracteres acentuados; Mn son las marcas combinantes.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
