package nlp

import (
	"math"
	"regexp"
	"strings"

	"levelup-api/internal/domain"
)

// clauseSplitter separa clausulas contrastivas. En una frase tipo "X but Y",
// Y suele ser el sentimiento que el autor quiere dejar, asi que cada clausula
// se puntua por separado y las ultimas pesan mas.
var clauseSplitter = regexp.MustCompile(`(?i)\b(?:but|however|though|yet)\b`)

// deadZone: polaridades combinadas dentro de (-0.05, 0.05) se fijan en 0.0.
const deadZone = 0.05

// AdjustedSentiment calcula el sentimiento de una reflexion normalizada:
// divide en clausulas contrastivas, puntua cada una con las reglas de negacion
// y logro, y combina con promedio ponderado por posicion. La subjetividad se
// calcula siempre sobre el texto completo.
func AdjustedSentiment(text string) domain.SentimentResult {
	_, subjectivity := scoreSentence(text)

	clauses := splitClauses(text)
	polarities := make([]float64, len(clauses))
	for i, clause := range clauses {
		polarities[i] = clausePolarity(clause)
	}

	combined := combinePolarities(polarities)
	if combined > -deadZone && combined < deadZone {
		combined = 0.0
	}

	return domain.SentimentResult{Polarity: combined, Subjectivity: subjectivity}
}

func splitClauses(text string) []string {
	var clauses []string
	for _, part := range clauseSplitter.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			clauses = append(clauses, part)
		}
	}
	return clauses
}

// clausePolarity parte del score base de la clausula y aplica, en orden:
// override por palabra fuerte negativa, override por "not <positivo>",
// amortiguacion por negador generico y booster de logros.
func clausePolarity(clause string) float64 {
	pol, _ := scoreSentence(clause)
	tokens := tokenize(clause)

	hasNegator := false
	hasHardNegative := false
	hasCompletion := false
	negatedPositive := false
	for i, t := range tokens {
		if negators[t] {
			hasNegator = true
		}
		if hardNegatives[t] {
			hasHardNegative = true
		}
		if completionWords[t] {
			hasCompletion = true
		}
		if t == "not" && i+1 < len(tokens) && positiveWords[tokens[i+1]] {
			negatedPositive = true
		}
	}

	if hasHardNegative {
		pol = math.Min(pol, -0.6)
	}
	if negatedPositive {
		pol = math.Min(pol, -0.5)
	}
	if hasNegator && pol > 0 {
		// invierte el signo con magnitud suavizada
		pol = -0.6 * pol
	}
	if hasCompletion && !hasNegator {
		pol = math.Min(pol+0.2, 1.0)
	}
	return pol
}

// combinePolarities pondera por posicion: una clausula vale por si sola, con
// dos domina la segunda (0.3/0.7), y con tres o mas los pesos crecen
// linealmente de 0.2 a 0.8 normalizados a suma 1.
func combinePolarities(polarities []float64) float64 {
	switch len(polarities) {
	case 0:
		return 0.0
	case 1:
		return polarities[0]
	case 2:
		return 0.3*polarities[0] + 0.7*polarities[1]
	}

	n := len(polarities)
	var weightSum, total float64
	for i, p := range polarities {
		w := 0.2 + 0.6*float64(i)/float64(n-1)
		weightSum += w
		total += w * p
	}
	return total / weightSum
}
