// Package nlp implementa el analisis de texto de las reflexiones: normalizacion,
// sentimiento por clausulas, clasificacion de animo y extraccion de keywords.
package nlp

import (
	"regexp"
	"strings"
)

// quoteReplacer canonicaliza comillas tipograficas antes de expandir contracciones.
var quoteReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// contractionRules expande contracciones a su forma de dos palabras. El orden
// importa: las formas irregulares (won't, can't) van antes de la regla generica
// n't, y esa antes de las expansiones 're/'ve/'ll/'d. Asi "not" queda visible
// como token independiente para la logica de negacion.
var contractionRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)\bwon't\b`), "will not"},
	{regexp.MustCompile(`(?i)\b(can)'t\b`), "${1}not"},
	{regexp.MustCompile(`(?i)\bshan't\b`), "shall not"},
	{regexp.MustCompile(`(?i)\bain't\b`), "is not"},
	{regexp.MustCompile(`(?i)\b([a-z]+)n't\b`), "$1 not"},
	{regexp.MustCompile(`(?i)\b(i)'m\b`), "$1 am"},
	{regexp.MustCompile(`(?i)'re\b`), " are"},
	{regexp.MustCompile(`(?i)'ve\b`), " have"},
	{regexp.MustCompile(`(?i)'ll\b`), " will"},
	{regexp.MustCompile(`(?i)'d\b`), " would"},
}

// Normalize canonicaliza comillas y expande contracciones comunes. Es
// idempotente: normalizar texto ya normalizado no cambia nada.
func Normalize(text string) string {
	out := quoteReplacer.Replace(text)
	for _, rule := range contractionRules {
		out = rule.re.ReplaceAllString(out, rule.repl)
	}
	return out
}
