package service

import (
	"strings"
	"sync"
	"time"
)

// RateLimiter limita requests por cliente con una ventana fija. El transporte
// lo recibe inyectado; la implementacion concreta depende del deployment.
type RateLimiter interface {
	Allow(key string) bool
}

type windowCount struct {
	bucket int64
	count  int
}

// memoryRateLimiter es el contador de ventana fija en memoria: suficiente para
// un solo proceso, sin dependencias externas.
type memoryRateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	counts map[string]*windowCount
	now    func() time.Time
}

// NewMemoryRateLimiter crea un limitador en memoria de max requests por window.
func NewMemoryRateLimiter(window time.Duration, max int) RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &memoryRateLimiter{
		window: window,
		max:    max,
		counts: make(map[string]*windowCount),
		now:    time.Now,
	}
}

func (l *memoryRateLimiter) Allow(key string) bool {
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		return false
	}

	bucket := l.now().UnixNano() / int64(l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.counts) > 10000 {
		l.sweep(bucket)
	}

	entry, ok := l.counts[normalizedKey]
	if !ok || entry.bucket != bucket {
		entry = &windowCount{bucket: bucket}
		l.counts[normalizedKey] = entry
	}
	entry.count++
	return entry.count <= l.max
}

// sweep descarta contadores de ventanas pasadas. Se llama con el lock tomado.
func (l *memoryRateLimiter) sweep(bucket int64) {
	for key, entry := range l.counts {
		if entry.bucket != bucket {
			delete(l.counts, key)
		}
	}
}
