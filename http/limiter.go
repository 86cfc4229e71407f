package http

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultClientIdle is how long a client must stay quiet before its limiter
// may be dropped.
const DefaultClientIdle = 10 * time.Minute

// ClientLimiter rate limits submissions per client using token buckets. Each
// client gets its own limiter, so one busy client does not starve the rest.
//
// Limiters of clients idle for longer than Idle are dropped once their bucket
// has refilled, so forgetting them never grants extra tokens.
type ClientLimiter struct {
	// Idle is the quiet period after which a client may be forgotten.
	Idle time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	mu      sync.Mutex
	clients map[string]*client
	swept   time.Time
	rps     float64
	burst   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientLimiter creates a new ClientLimiter allowing rps submissions per
// second per client with the given burst. A burst below 1 is treated as 1.
func NewClientLimiter(rps float64, burst int) *ClientLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ClientLimiter{
		Idle:    DefaultClientIdle,
		Now:     time.Now,
		clients: make(map[string]*client),
		rps:     rps,
		burst:   burst,
	}
}

// Allow reports whether name may submit now, consuming a token if so.
func (l *ClientLimiter) Allow(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.Now()
	if now.Sub(l.swept) >= l.Idle {
		l.sweep(now)
	}

	c, ok := l.clients[name]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
		l.clients[name] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// Len returns the number of clients currently tracked.
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// sweep drops idle clients whose bucket is full again.
func (l *ClientLimiter) sweep(now time.Time) {
	for name, c := range l.clients {
		if now.Sub(c.lastSeen) >= l.Idle && c.limiter.TokensAt(now) >= float64(l.burst) {
			delete(l.clients, name)
		}
	}
	l.swept = now
}
