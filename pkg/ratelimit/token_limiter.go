package ratelimit

import (
	"context"
	"sync"
	"time"
)

// TokenLimiter enforces a sliding per-minute token budget, used to stay under
// provider token-per-minute quotas for AI requests.
type TokenLimiter struct {
	mu           sync.Mutex
	maxPerMinute int
	used         int
	windowStart  time.Time
}

// NewTokenLimiter creates a limiter with the given tokens-per-minute budget.
func NewTokenLimiter(maxPerMinute int) *TokenLimiter {
	return &TokenLimiter{
		maxPerMinute: maxPerMinute,
		windowStart:  time.Now(),
	}
}

// GetRemaining returns the remaining token budget in the current window.
func (l *TokenLimiter) GetRemaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resetIfExpired()
	return l.maxPerMinute - l.used
}

// Wait blocks until the given number of tokens fits into the budget, or the
// context is cancelled.
func (l *TokenLimiter) Wait(ctx context.Context, tokens int) error {
	for {
		l.mu.Lock()
		l.resetIfExpired()
		if l.used+tokens <= l.maxPerMinute {
			l.used += tokens
			l.mu.Unlock()
			return nil
		}
		wait := time.Until(l.windowStart.Add(time.Minute))
		l.mu.Unlock()

		if wait <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (l *TokenLimiter) resetIfExpired() {
	if time.Since(l.windowStart) >= time.Minute {
		l.used = 0
		l.windowStart = time.Now()
	}
}
