package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter ограничивает число запросов с одного ключа (IP) за окно.
// В начале каждого окна bucket снова получает rate токенов.
type RateLimiter struct {
	buckets  map[string]*bucket
	logger   *slog.Logger
	now      func() time.Time
	cleanupC chan struct{}
	stopOnce sync.Once
	rate     int
	window   time.Duration
	mu       sync.RWMutex
}

// bucket представляет bucket для конкретного IP/ключа
type bucket struct {
	lastRefill time.Time
	tokens     int
	mu         sync.Mutex
}

// NewRateLimiter создает rate limiter и запускает очистку неактивных buckets.
// Остановить очистку можно через Stop.
func NewRateLimiter(rate int, window time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		window:   window,
		logger:   logger,
		now:      time.Now,
		cleanupC: make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupOldBuckets()
		case <-rl.cleanupC:
			return
		}
	}
}

// cleanupOldBuckets удаляет buckets, не пополнявшиеся дольше двух окон
func (rl *RateLimiter) cleanupOldBuckets() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		b.mu.Lock()
		if now.Sub(b.lastRefill) > rl.window*2 {
			delete(rl.buckets, key)
		}
		b.mu.Unlock()
	}
}

// Stop останавливает очистку, повторный вызов безопасен
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.cleanupC) })
}

// Allow забирает токен из bucket ключа, false если токены кончились
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.RLock()
	b, exists := rl.buckets[key]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		// Другой запрос мог создать bucket, пока мы ждали блокировку
		if b, exists = rl.buckets[key]; !exists {
			b = &bucket{tokens: rl.rate, lastRefill: rl.now()}
			rl.buckets[key] = b
		}
		rl.mu.Unlock()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := rl.now()
	if now.Sub(b.lastRefill) >= rl.window {
		b.tokens = rl.rate
		b.lastRefill = now
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}

// Middleware отвечает 429, когда IP клиента исчерпал лимит
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allowRequest(w, r) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allowRequest(w http.ResponseWriter, r *http.Request) bool {
	key := getClientIP(r)
	if rl.Allow(key) {
		return true
	}

	rl.logger.Warn("Rate limit exceeded",
		"ip", key,
		"method", r.Method,
		"path", sanitizePath(r.URL.Path),
	)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", retryAfter(rl.window))
	w.WriteHeader(http.StatusTooManyRequests)
	_, _ = w.Write([]byte(`{"error":"Too Many Requests","message":"rate limit exceeded, please try again later"}`))
	return false
}

// PathRateLimit отдельный лимит для точного пути
type PathRateLimit struct {
	Path   string
	Rate   int
	Window time.Duration
}

// RateLimits набор лимитеров: отдельные для перечисленных путей и общий для остальных
type RateLimits struct {
	paths    map[string]*RateLimiter
	fallback *RateLimiter
}

// NewRateLimits создает лимиты с общим rate/window и переопределениями по пути
func NewRateLimits(rate int, window time.Duration, logger *slog.Logger, overrides ...PathRateLimit) *RateLimits {
	l := &RateLimits{
		paths:    make(map[string]*RateLimiter, len(overrides)),
		fallback: NewRateLimiter(rate, window, logger),
	}
	for _, o := range overrides {
		l.paths[o.Path] = NewRateLimiter(o.Rate, o.Window, logger)
	}
	return l
}

// Middleware выбирает лимитер по пути запроса
func (l *RateLimits) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter, ok := l.paths[r.URL.Path]
		if !ok {
			limiter = l.fallback
		}
		if !limiter.allowRequest(w, r) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Stop останавливает очистку во всех лимитерах
func (l *RateLimits) Stop() {
	l.fallback.Stop()
	for _, rl := range l.paths {
		rl.Stop()
	}
}

// getClientIP извлекает IP адрес клиента из запроса.
// X-Forwarded-For и X-Real-IP учитываются для работы за прокси.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func retryAfter(window time.Duration) string {
	secs := int(window.Seconds())
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
