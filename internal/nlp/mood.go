package nlp

import "levelup-api/internal/domain"

// moodThreshold es el umbral unico del clasificador: |p| > 0.2 cae en las
// bandas externas. Se usa 0.2 (y no 0.35) para que reflexiones con negacion
// amortiguada, tipo "I do not feel motivated", caigan en la banda negativa.
const moodThreshold = 0.2

// ClassifyMood discretiza la polaridad final en una de las tres bandas.
// Funcion pura, monotona y simetrica; las bandas son exhaustivas y excluyentes.
func ClassifyMood(polarity float64) domain.Mood {
	switch {
	case polarity > moodThreshold:
		return domain.MoodPositive
	case polarity < -moodThreshold:
		return domain.MoodNegative
	default:
		return domain.MoodNeutral
	}
}
