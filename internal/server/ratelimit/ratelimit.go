// Package ratelimit provides per-client rate limiting using a token bucket
// algorithm. Analysis requests are CPU-bound regex work, so the analyze
// endpoint is throttled per client IP.
package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket is a thread-safe token bucket. Tokens refill continuously at
// a steady rate up to the bucket's capacity.
type TokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes a token if one is available.
func (tb *TokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// status reports remaining tokens and when the bucket will be full again.
func (tb *TokenBucket) status() (remaining int, resetTime time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	remaining = int(tb.tokens)
	if tb.tokens < float64(tb.capacity) {
		secondsUntilFull := (float64(tb.capacity) - tb.tokens) / tb.refillRate
		resetTime = tb.lastRefill.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	} else {
		resetTime = tb.lastRefill
	}
	return remaining, resetTime
}

// refill must be called with the mutex held.
func (tb *TokenBucket) refill() {
	now := time.Now()
	tb.tokens = min(float64(tb.capacity), tb.tokens+now.Sub(tb.lastRefill).Seconds()*tb.refillRate)
	tb.lastRefill = now
}

// Info describes the rate-limit state returned with each decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter settings.
type Config struct {
	Enabled         bool
	RequestsPerMin  int
	Burst           int
	CleanupInterval time.Duration
	IdleEviction    time.Duration
}

// DefaultConfig allows 60 requests per minute per client.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		RequestsPerMin:  60,
		Burst:           10,
		CleanupInterval: 5 * time.Minute,
		IdleEviction:    15 * time.Minute,
	}
}

// Limiter manages one token bucket per client.
type Limiter struct {
	config *Config

	mu         sync.RWMutex
	buckets    map[string]*TokenBucket
	lastAccess map[string]time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup goroutine.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Burst <= 0 {
		config.Burst = config.RequestsPerMin
	}

	l := &Limiter{
		config:     config,
		buckets:    make(map[string]*TokenBucket),
		lastAccess: make(map[string]time.Time),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanup()
	}

	return l
}

// Allow checks whether a request from the given client may proceed.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	bucket := l.getBucket(clientID)

	l.mu.Lock()
	l.lastAccess[clientID] = time.Now()
	l.mu.Unlock()

	allowed := bucket.allow()
	remaining, resetTime := bucket.status()

	var retryAfter time.Duration
	if !allowed {
		retryAfter = max(time.Until(resetTime), 0)
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      l.config.RequestsPerMin,
		Remaining:  remaining,
		ResetTime:  resetTime,
		RetryAfter: retryAfter,
	}
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	}
}

func (l *Limiter) getBucket(clientID string) *TokenBucket {
	l.mu.RLock()
	bucket, ok := l.buckets[clientID]
	l.mu.RUnlock()
	if ok {
		return bucket
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if bucket, ok := l.buckets[clientID]; ok {
		return bucket
	}
	bucket = newTokenBucket(l.config.Burst, float64(l.config.RequestsPerMin)/60.0)
	l.buckets[clientID] = bucket
	return bucket
}

// cleanup evicts buckets that have been idle longer than IdleEviction.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			cutoff := time.Now().Add(-l.config.IdleEviction)
			l.mu.Lock()
			for id, last := range l.lastAccess {
				if last.Before(cutoff) {
					delete(l.buckets, id)
					delete(l.lastAccess, id)
				}
			}
			l.mu.Unlock()
		case <-l.cleanupStop:
			return
		}
	}
}
