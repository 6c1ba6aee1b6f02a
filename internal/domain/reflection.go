package domain

import "fmt"

// Mood es la banda discreta de polaridad que gobierna la seleccion de respuestas.
type Mood string

const (
	MoodPositive Mood = "positive"
	MoodNeutral  Mood = "neutral"
	MoodNegative Mood = "negative"
)

// Valid indica si el valor corresponde a una banda conocida.
func (m Mood) Valid() bool {
	switch m {
	case MoodPositive, MoodNeutral, MoodNegative:
		return true
	}
	return false
}

// DisplayLabel traduce la banda interna a la etiqueta visible en la app.
func (m Mood) DisplayLabel() string {
	switch m {
	case MoodPositive:
		return "Motivated"
	case MoodNegative:
		return "Stressed"
	default:
		return "Neutral"
	}
}

// ParseMood valida un string externo (corpus, request) como Mood.
func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown mood %q", s)
	}
	return m, nil
}

// Estilos soportados por el corpus de respuestas.
const (
	StyleCoach  = "coach"
	StyleFriend = "friend"
	StyleZen    = "zen"
)

// ValidStyle acepta el conjunto cerrado de estilos o vacio (sin preferencia).
func ValidStyle(s string) bool {
	switch s {
	case "", StyleCoach, StyleFriend, StyleZen:
		return true
	}
	return false
}

// SentimentResult es el resultado del analisis de sentimiento sobre una reflexion.
// Polarity vive en [-1, 1] y Subjectivity en [0, 1]; la subjetividad se calcula
// siempre sobre el texto completo, no por clausula.
type SentimentResult struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// ResponseRecord es una entrada inmutable del banco de respuestas. Se identifica
// por su posicion en el corpus, que nunca muta despues de la carga.
type ResponseRecord struct {
	Text  string   `json:"text" yaml:"text"`
	Mood  Mood     `json:"mood" yaml:"mood"`
	Style string   `json:"style" yaml:"style"`
	Tags  []string `json:"tags" yaml:"tags"`
}

// HasTag hace lookup lineal; los records tienen pocos tags.
func (r ResponseRecord) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ReflectionInput es el input de una reflexion ya validado por el transporte.
type ReflectionInput struct {
	Reflection string `json:"reflection"`
	Name       string `json:"name,omitempty"`
	Style      string `json:"style,omitempty"`
}

// ReflectionResult es la salida estructurada del pipeline completo.
type ReflectionResult struct {
	Summary      string   `json:"summary"`
	Emotion      string   `json:"emotion"`
	Polarity     float64  `json:"polarity"`
	Subjectivity float64  `json:"subjectivity"`
	Keywords     []string `json:"keywords"`
}
