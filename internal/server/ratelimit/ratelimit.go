// Package ratelimit provides per-client rate limiting on top of golang.org/x/time/rate.
package ratelimit

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int // Bucket size; zero when the request is not limited
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type bucket struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Limiter manages rate limiting for multiple clients, one token bucket per
// client, endpoint and method.
type Limiter struct {
	mu          sync.Mutex
	buckets     map[string]*bucket
	config      *Config
	now         func() time.Time
	cleanupStop chan struct{}
	stopOnce    sync.Once
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultRate:     10,
			DefaultBurst:    20,
			CleanupInterval: 5 * time.Minute,
			IdleTTL:         time.Hour,
		}
	}

	limiter := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
		now:     time.Now,
	}

	// Start cleanup goroutine if enabled
	if config.Enabled && config.CleanupInterval > 0 {
		limiter.cleanupStop = make(chan struct{})
		go limiter.cleanup(config.CleanupInterval)
	}

	return limiter
}

// Allow checks if a request from the given client is allowed for the specified endpoint.
// Returns true if allowed, false if rate limited, along with rate limit information.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false}
	}

	endpointConfig := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if endpointConfig == nil {
		endpointConfig = &EndpointConfig{
			Rate:  l.config.DefaultRate,
			Burst: l.config.DefaultBurst,
		}
	}

	// Unlimited endpoint (e.g., health check)
	if endpointConfig.Rate <= 0 || endpointConfig.Rate == rate.Inf {
		return true, Info{Allowed: true}
	}

	burst := endpointConfig.Burst
	if burst <= 0 {
		burst = int(math.Max(1, float64(endpointConfig.Rate)))
	}

	now := l.now()
	key := clientID + ":" + endpoint + ":" + method
	lim := l.getLimiter(key, endpointConfig.Rate, burst, now)

	allowed := lim.AllowN(now, 1)
	tokens := lim.TokensAt(now)

	info := Info{
		Allowed:   allowed,
		Limit:     burst,
		Remaining: int(math.Max(0, math.Floor(tokens))),
		ResetTime: now.Add(durationFor(float64(burst)-tokens, endpointConfig.Rate)),
	}
	if !allowed {
		info.RetryAfter = durationFor(1-tokens, endpointConfig.Rate)
	}
	return allowed, info
}

// durationFor returns how long the bucket takes to gain n tokens.
func durationFor(n float64, r rate.Limit) time.Duration {
	if n <= 0 || r <= 0 {
		return 0
	}
	return time.Duration(n / float64(r) * float64(time.Second))
}

func (l *Limiter) getLimiter(key string, r rate.Limit, burst int, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(r, burst)}
		l.buckets[key] = b
	}
	b.lastAccess = now
	return b.limiter
}

// cleanup removes old unused buckets to prevent memory leaks.
func (l *Limiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.cleanupBuckets()
		case <-l.cleanupStop:
			return
		}
	}
}

// cleanupBuckets removes buckets that have been idle for longer than IdleTTL.
func (l *Limiter) cleanupBuckets() {
	ttl := l.config.IdleTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	cutoff := l.now().Add(-ttl)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Size returns the number of tracked buckets.
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		if l.cleanupStop != nil {
			close(l.cleanupStop)
		}
	})
}
