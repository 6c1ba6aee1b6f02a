package service

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"levelup-api/internal/domain"
	"levelup-api/internal/nlp"
	"levelup-api/internal/retrieval"
)

const (
	// maxKeywords es cuantas keywords se extraen y reportan por reflexion.
	maxKeywords = 5
	// candidatePool es el top-k del indice entre el que se sortea la respuesta.
	candidatePool = 3
	// defaultName se usa cuando el request no trae nombre.
	defaultName = "friend"
	// maxNameLen trunca nombres largos (en runas).
	maxNameLen = 24
	// defaultSummary es el mensaje fijo cuando el indice no produce candidatos.
	defaultSummary = "Logged it. Writing it down already counts - see you tomorrow."
)

// Rand es la fuente de azar de la seleccion final; inyectable para que los
// tests puedan fijar la eleccion dentro del pool de candidatos.
type Rand interface {
	Intn(n int) int
}

// ReflectionService orquesta el pipeline completo de una reflexion: normaliza,
// puntua sentimiento por clausulas, clasifica animo, extrae keywords/topico,
// consulta el indice y rellena el template ganador.
type ReflectionService struct {
	logger *zap.Logger
	index  *retrieval.Index

	mu  sync.Mutex
	rng Rand
	now func() time.Time
}

// NewReflectionService crea el servicio con azar y reloj reales.
func NewReflectionService(logger *zap.Logger, index *retrieval.Index) *ReflectionService {
	return NewReflectionServiceWithRand(
		logger,
		index,
		rand.New(rand.NewSource(time.Now().UnixNano())),
		time.Now,
	)
}

// NewReflectionServiceWithRand permite inyectar la fuente de azar y el reloj.
func NewReflectionServiceWithRand(logger *zap.Logger, index *retrieval.Index, rng Rand, now func() time.Time) *ReflectionService {
	return &ReflectionService{logger: logger, index: index, rng: rng, now: now}
}

// Summarize procesa una reflexion ya validada por el transporte y devuelve el
// resultado estructurado. Nunca falla: los caminos degradados (texto sin tokens
// utiles, template con llaves inesperadas, cero candidatos) se recuperan
// localmente con un resultado usable.
func (s *ReflectionService) Summarize(input domain.ReflectionInput) domain.ReflectionResult {
	normalized := nlp.Normalize(strings.TrimSpace(input.Reflection))

	sentiment := nlp.AdjustedSentiment(normalized)
	mood := nlp.ClassifyMood(sentiment.Polarity)
	keywords := nlp.ExtractKeywords(normalized, maxKeywords)
	topic := nlp.ChooseTopic(keywords, normalized, mood)

	style := input.Style
	if !domain.ValidStyle(style) {
		style = ""
	}

	candidates := s.index.Query(normalized, mood, style, keywords, candidatePool)
	summary := s.selectResponse(candidates, sanitizeName(input.Name), topic, Greeting(s.now()))

	s.logger.Debug("reflection summarized",
		zap.String("mood", string(mood)),
		zap.Float64("polarity", sentiment.Polarity),
		zap.String("topic", topic),
		zap.Int("candidates", len(candidates)),
	)

	if keywords == nil {
		keywords = []string{}
	}
	return domain.ReflectionResult{
		Summary:      summary,
		Emotion:      mood.DisplayLabel(),
		Polarity:     sentiment.Polarity,
		Subjectivity: sentiment.Subjectivity,
		Keywords:     keywords,
	}
}

// selectResponse sortea uniformemente entre los candidatos (a lo sumo
// candidatePool) y rellena el template. Sin candidatos, responde el mensaje
// neutro por defecto.
func (s *ReflectionService) selectResponse(candidates []domain.ResponseRecord, name, topic, greeting string) string {
	if len(candidates) == 0 {
		return defaultSummary
	}
	pool := candidates
	if len(pool) > candidatePool {
		pool = pool[:candidatePool]
	}

	s.mu.Lock()
	pick := pool[s.rng.Intn(len(pool))]
	s.mu.Unlock()

	return fillTemplate(pick.Text, name, topic, greeting)
}

// fillTemplate sustituye {name}, {topic} y {greeting}. Si despues de sustituir
// quedan llaves (placeholder desconocido o template roto), se eliminan las
// llaves literales y se devuelve el texto tal cual en vez de fallar el request.
func fillTemplate(template, name, topic, greeting string) string {
	out := strings.NewReplacer(
		"{name}", name,
		"{topic}", topic,
		"{greeting}", greeting,
	).Replace(template)

	if strings.ContainsAny(out, "{}") {
		out = strings.Map(func(r rune) rune {
			if r == '{' || r == '}' {
				return -1
			}
			return r
		}, out)
	}
	return out
}

func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return defaultName
	}
	runes := []rune(name)
	if len(runes) > maxNameLen {
		name = string(runes[:maxNameLen])
	}
	return name
}

// Greeting devuelve el saludo por franja horaria: Morning de 5 a 11, Afternoon
// de 12 a 17, Evening el resto.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return "Morning"
	case h >= 12 && h < 18:
		return "Afternoon"
	default:
		return "Evening"
	}
}
