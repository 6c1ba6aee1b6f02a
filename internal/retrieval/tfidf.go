// Package retrieval implementa el indice de respuestas: un espacio TF-IDF fijo
// construido una sola vez al inicio del proceso y compartido en modo lectura
// por todos los requests.
package retrieval

import (
	"math"
	"regexp"
	"strings"
)

// docSanitizer normaliza documentos del corpus y queries: minusculas, solo
// [a-z0-9-' ] y whitespace colapsado.
var docSanitizer = regexp.MustCompile(`[^a-z0-9\-' ]`)

func normalizeDoc(text string) string {
	clean := docSanitizer.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Join(strings.Fields(clean), " ")
}

// docTerms genera unigramas y bigramas del documento ya normalizado.
func docTerms(doc string) []string {
	tokens := strings.Fields(doc)
	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// vectorizer mantiene el vocabulario y los pesos IDF fijados en el fit inicial.
// El vocabulario nunca crece: terminos fuera de vocabulario pesan 0 en queries.
type vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// fitVectorizer construye vocabulario e IDF sobre los documentos del corpus.
// IDF = log(N/df), asi los terminos presentes en todos los documentos no
// aportan señal.
func fitVectorizer(docs []string) *vectorizer {
	v := &vectorizer{vocab: make(map[string]int)}

	df := make([]int, 0)
	for _, doc := range docs {
		seen := make(map[int]bool)
		for _, term := range docTerms(doc) {
			dim, ok := v.vocab[term]
			if !ok {
				dim = len(v.vocab)
				v.vocab[term] = dim
				df = append(df, 0)
			}
			if !seen[dim] {
				df[dim]++
				seen[dim] = true
			}
		}
	}

	n := float64(len(docs))
	v.idf = make([]float64, len(df))
	for dim, count := range df {
		v.idf[dim] = math.Log(n / float64(count))
	}
	return v
}

// transform convierte un documento normalizado en un vector TF-IDF disperso
// con norma L2 = 1 (o el vector cero si nada del vocabulario aparece).
func (v *vectorizer) transform(doc string) map[int]float64 {
	terms := docTerms(doc)
	if len(terms) == 0 {
		return map[int]float64{}
	}

	counts := make(map[int]int)
	for _, term := range terms {
		if dim, ok := v.vocab[term]; ok {
			counts[dim]++
		}
	}

	vec := make(map[int]float64, len(counts))
	total := float64(len(terms))
	var normSq float64
	for dim, count := range counts {
		w := (float64(count) / total) * v.idf[dim]
		if w == 0 {
			continue
		}
		vec[dim] = w
		normSq += w * w
	}
	if normSq > 0 {
		norm := math.Sqrt(normSq)
		for dim := range vec {
			vec[dim] /= norm
		}
	}
	return vec
}

// dot es el producto punto de dos vectores dispersos; con vectores
// L2-normalizados equivale a la similitud coseno.
func dot(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for dim, w := range a {
		sum += w * b[dim]
	}
	return sum
}
