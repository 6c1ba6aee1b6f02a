package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestMemoryRateLimiterWindow(t *testing.T) {
	current := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	lim := &memoryRateLimiter{
		window: time.Minute,
		max:    2,
		counts: make(map[string]*windowCount),
		now:    func() time.Time { return current },
	}

	if !lim.Allow("1.2.3.4") || !lim.Allow("1.2.3.4") {
		t.Fatal("first two requests should pass")
	}
	if lim.Allow("1.2.3.4") {
		t.Fatal("third request inside the window should be denied")
	}

	// otra key no comparte el contador
	if !lim.Allow("5.6.7.8") {
		t.Fatal("different client should have its own window")
	}

	// pasada la ventana, el contador arranca de nuevo
	current = current.Add(2 * time.Minute)
	if !lim.Allow("1.2.3.4") {
		t.Fatal("request in a new window should pass")
	}
}

func TestMemoryRateLimiterKeyNormalization(t *testing.T) {
	lim := NewMemoryRateLimiter(time.Minute, 1)

	if lim.Allow("") {
		t.Fatal("empty key must be denied")
	}
	if !lim.Allow("  Client-A  ") {
		t.Fatal("first request should pass")
	}
	if lim.Allow("client-a") {
		t.Fatal("normalized key should share the counter")
	}
}

type mockEvaler struct {
	count    int64
	err      error
	lastKeys []string
	lastArgs []interface{}
}

func (m *mockEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	m.lastKeys = keys
	m.lastArgs = args
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	cmd.SetVal(m.count)
	return cmd
}

func TestRedisRateLimiter(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		err   error
		key   string
		want  bool
	}{
		{name: "under limit", count: 3, key: "1.2.3.4", want: true},
		{name: "at limit", count: 5, key: "1.2.3.4", want: true},
		{name: "over limit", count: 6, key: "1.2.3.4", want: false},
		{name: "redis failure allows request", count: 0, err: errors.New("boom"), key: "1.2.3.4", want: true},
		{name: "empty key denied", count: 1, key: "   ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockEvaler{count: tt.count, err: tt.err}
			lim := &redisRateLimiter{client: mock, window: time.Minute, max: 5, prefix: "reflect:rl:"}
			if got := lim.Allow(tt.key); got != tt.want {
				t.Fatalf("Allow(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestRedisRateLimiterKeyPrefix(t *testing.T) {
	mock := &mockEvaler{count: 1}
	lim := &redisRateLimiter{client: mock, window: time.Minute, max: 5, prefix: "reflect:rl:"}
	lim.Allow("1.2.3.4")
	if len(mock.lastKeys) != 1 || mock.lastKeys[0] != "reflect:rl:1.2.3.4" {
		t.Fatalf("unexpected redis key: %v", mock.lastKeys)
	}
	if len(mock.lastArgs) != 1 || mock.lastArgs[0] != 60 {
		t.Fatalf("unexpected expire args: %v", mock.lastArgs)
	}
}
