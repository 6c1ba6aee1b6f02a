package nlp

import (
	"regexp"
	"sort"
	"strings"

	"levelup-api/internal/domain"
)

const fallbackTopic = "this"

var (
	tokenSanitizer = regexp.MustCompile(`[^a-z0-9\- ]`)
	numericToken   = regexp.MustCompile(`^[0-9]+$`)
	alphaToken     = regexp.MustCompile(`^[a-z]+$`)
)

// tokenize baja a minusculas, reemplaza todo lo que no sea [a-z0-9- ] por
// espacio y separa por whitespace.
func tokenize(text string) []string {
	clean := tokenSanitizer.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Fields(clean)
}

// keywordOK aplica los filtros de keyword: largo minimo 3, no numerico puro,
// ni stop-word, ni negador, ni topico bloqueado.
func keywordOK(token string) bool {
	if len(token) < 3 || numericToken.MatchString(token) {
		return false
	}
	return !stopWords[token] && !negators[token] && !badTopics[token]
}

// ExtractKeywords devuelve hasta n keywords del texto, ordenadas por frecuencia
// descendente; los empates se resuelven por primera aparicion (orden estable).
func ExtractKeywords(text string, n int) []string {
	if n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	firstPos := make(map[string]int)
	for i, token := range tokenize(text) {
		if !keywordOK(token) {
			continue
		}
		if _, seen := counts[token]; !seen {
			firstPos[token] = i
		}
		counts[token]++
	}

	keywords := make([]string, 0, len(counts))
	for token := range counts {
		keywords = append(keywords, token)
	}
	sort.Slice(keywords, func(i, j int) bool {
		a, b := keywords[i], keywords[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return firstPos[a] < firstPos[b]
	})

	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return keywords
}

// FilterQueryKeywords filtra keywords antes de armar el vector de query del
// indice: alfabeticas, largo > 2, ni stop-words ni topicos bloqueados, y sin
// palabras positivas cuando el animo es negativo.
func FilterQueryKeywords(keywords []string, mood domain.Mood) []string {
	var out []string
	for _, kw := range keywords {
		if !alphaToken.MatchString(kw) || len(kw) <= 2 {
			continue
		}
		if stopWords[kw] || badTopics[kw] {
			continue
		}
		if mood == domain.MoodNegative && positiveWords[kw] {
			continue
		}
		out = append(out, kw)
	}
	return out
}

// topicAllowed es la regla de consistencia de animo: una palabra positiva nunca
// es topico de una reflexion negativa.
func topicAllowed(token string, mood domain.Mood) bool {
	return !(mood == domain.MoodNegative && positiveWords[token])
}

// validTopic re-valida un topico elegido antes de usarlo en un template.
func validTopic(token string, mood domain.Mood) bool {
	return alphaToken.MatchString(token) &&
		len(token) >= 3 &&
		!stopWords[token] &&
		!negators[token] &&
		!badTopics[token] &&
		topicAllowed(token, mood)
}

// ChooseTopic selecciona el token que personaliza el template. Primero recorre
// las keywords en orden de ranking; si ninguna pasa la regla de consistencia,
// re-tokeniza la reflexion y toma el primer token que pase los filtros; si
// tampoco hay, cae al literal "this". El guard final re-valida lo elegido y
// degrada a "this" ante cualquier violacion.
func ChooseTopic(keywords []string, text string, mood domain.Mood) string {
	topic := ""
	for _, kw := range keywords {
		if topicAllowed(kw, mood) {
			topic = kw
			break
		}
	}
	if topic == "" {
		for _, token := range tokenize(text) {
			if keywordOK(token) && topicAllowed(token, mood) {
				topic = token
				break
			}
		}
	}
	if topic == "" {
		return fallbackTopic
	}
	if !validTopic(topic, mood) {
		return fallbackTopic
	}
	return topic
}
