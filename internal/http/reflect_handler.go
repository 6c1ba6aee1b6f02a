package http

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"levelup-api/internal/domain"
	"levelup-api/internal/service"
)

// maxReflectionLen es el largo maximo (en runas) de una reflexion.
const maxReflectionLen = 1000

// ReflectHandler mantiene dependencias para los endpoints de reflexiones.
type ReflectHandler struct {
	logger      *zap.Logger
	reflections *service.ReflectionService
	limiter     service.RateLimiter
}

// NewReflectHandler crea una instancia de ReflectHandler con sus dependencias.
func NewReflectHandler(logger *zap.Logger, reflections *service.ReflectionService, limiter service.RateLimiter) *ReflectHandler {
	return &ReflectHandler{
		logger:      logger,
		reflections: reflections,
		limiter:     limiter,
	}
}

// Health maneja GET /health.
func (h *ReflectHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Summarize maneja POST /summarize. Valida limites de input y rate limit; el
// pipeline en si no falla nunca, asi que pasada la validacion siempre hay 200.
func (h *ReflectHandler) Summarize(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
		return
	}

	var req struct {
		Reflection string `json:"reflection"`
		Name       string `json:"name"`
		Style      string `json:"style"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid summarize request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	reflection := strings.TrimSpace(req.Reflection)
	if reflection == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty reflection"})
		return
	}
	if utf8.RuneCountInString(reflection) > maxReflectionLen {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Reflection too long (max 1000)"})
		return
	}

	result := h.reflections.Summarize(domain.ReflectionInput{
		Reflection: reflection,
		Name:       req.Name,
		Style:      strings.TrimSpace(req.Style),
	})

	c.JSON(http.StatusOK, result)
}
