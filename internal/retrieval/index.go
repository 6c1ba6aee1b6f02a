package retrieval

import (
	"sort"
	"strings"

	"levelup-api/internal/domain"
	"levelup-api/internal/nlp"
)

// tagBonus es el aporte aditivo por cada keyword presente en los tags del record.
const tagBonus = 0.05

// Index es el indice de similitud sobre el banco de respuestas. Se construye
// una vez al inicio y despues es de solo lectura, asi puede compartirse entre
// requests concurrentes sin locks.
type Index struct {
	records []domain.ResponseRecord
	vec     *vectorizer
	docVecs []map[int]float64
}

// BuildIndex vectoriza el corpus completo (texto del template concatenado con
// sus tags) en un espacio TF-IDF de unigramas y bigramas. El vocabulario queda
// fijo en esta unica pasada.
func BuildIndex(corpus []domain.ResponseRecord) *Index {
	records := make([]domain.ResponseRecord, len(corpus))
	copy(records, corpus)

	docs := make([]string, len(records))
	for i, rec := range records {
		docs[i] = normalizeDoc(rec.Text + " " + strings.Join(rec.Tags, " "))
	}

	vec := fitVectorizer(docs)
	docVecs := make([]map[int]float64, len(docs))
	for i, doc := range docs {
		docVecs[i] = vec.transform(doc)
	}

	return &Index{records: records, vec: vec, docVecs: docVecs}
}

// Len devuelve el tamaño del corpus indexado.
func (ix *Index) Len() int { return len(ix.records) }

// Query devuelve hasta k records ordenados del mas al menos similar. El ranking
// es deterministico para un corpus e input fijos.
//
// Filtrado de candidatos: se filtra por mood, con la asimetria intencional de
// que "neutral" no restringe nada (admite records positivos y negativos: es el
// mood de fallback universal, no un filtro estricto). Si se pide un estilo y el
// recorte queda vacio, se descarta el filtro de estilo; si el filtro de mood no
// deja nada, se usa el corpus entero.
func (ix *Index) Query(text string, mood domain.Mood, style string, keywords []string, k int) []domain.ResponseRecord {
	if k <= 0 || len(ix.records) == 0 {
		return nil
	}

	candidates := make([]int, 0, len(ix.records))
	for i, rec := range ix.records {
		if mood == domain.MoodNeutral || rec.Mood == mood {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		for i := range ix.records {
			candidates = append(candidates, i)
		}
	}

	if style != "" {
		styled := make([]int, 0, len(candidates))
		for _, i := range candidates {
			if ix.records[i].Style == style {
				styled = append(styled, i)
			}
		}
		if len(styled) > 0 {
			candidates = styled
		}
	}

	queryDoc := normalizeDoc(text + " " + strings.Join(nlp.FilterQueryKeywords(keywords, mood), " "))
	queryVec := ix.vec.transform(queryDoc)

	scores := make([]float64, len(candidates))
	for pos, i := range candidates {
		score := dot(queryVec, ix.docVecs[i])
		for _, kw := range keywords {
			if ix.records[i].HasTag(kw) {
				score += tagBonus
			}
		}
		scores[pos] = score
	}

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	// empates por orden original del corpus
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if len(order) > k {
		order = order[:k]
	}
	out := make([]domain.ResponseRecord, len(order))
	for n, pos := range order {
		out[n] = ix.records[candidates[pos]]
	}
	return out
}
