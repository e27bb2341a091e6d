// Package ratelimiter is a per-identity token bucket limiter.
package ratelimiter

import (
	"sync"
	"time"
)

// bucket is a single identity's token bucket.
type bucket struct {
	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

// Limiter hands out tokens per identity (ip, user id).
// Buckets idle longer than idleTTL are evicted by Sweep.
type Limiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	rate     float64 // tokens per second
	capacity float64
	idleTTL  time.Duration
	now      func() time.Time
}

func New(rate, capacity float64, idleTTL time.Duration) *Limiter {
	return &Limiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// PerMinute allows n requests per minute with a burst of n.
func PerMinute(n int) *Limiter {
	return New(float64(n)/60, float64(n), time.Hour)
}

func (l *Limiter) get(identity string) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[identity]
	if !ok {
		b = &bucket{tokens: l.capacity, lastRefill: l.now()}
		l.buckets[identity] = b
	}
	return b
}

// Allow takes one token from identity's bucket.
func (l *Limiter) Allow(identity string) bool {
	ok, _ := l.Reserve(identity)
	return ok
}

// Reserve is Allow that also reports, on refusal, how long until the next
// token is available.
func (l *Limiter) Reserve(identity string) (bool, time.Duration) {
	b := l.get(identity)

	b.mu.Lock()
	defer b.mu.Unlock()

	now := l.now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * l.rate
	if b.tokens > l.capacity {
		b.tokens = l.capacity
	}
	b.lastRefill = now
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}
	if l.rate <= 0 {
		return false, l.idleTTL
	}
	wait := time.Duration((1 - b.tokens) / l.rate * float64(time.Second))
	return false, wait
}

// Sweep drops buckets not used for idleTTL and returns how many were removed.
func (l *Limiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.idleTTL)
	removed := 0
	for id, b := range l.buckets {
		b.mu.Lock()
		idle := b.lastSeen.Before(cutoff)
		b.mu.Unlock()
		if idle {
			delete(l.buckets, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until stop is closed.
func (l *Limiter) RunSweeper(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.Sweep()
		case <-stop:
			return
		}
	}
}
