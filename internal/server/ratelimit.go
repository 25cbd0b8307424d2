package server

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// PeerLimiter applies a token bucket per remote peer address and
// periodically evicts entries for peers that have gone idle.
type PeerLimiter struct {
	limit   rate.Limit
	burst   int
	mu      sync.Mutex
	byPeer  map[string]*peerEntry
	hits    uint64
	idleTTL time.Duration
}

type peerEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewPeerLimiter creates a per-peer limiter; returns nil if args are
// invalid. A nil limiter allows everything.
func NewPeerLimiter(rps float64, burst int, idleTTL time.Duration) *PeerLimiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}
	return &PeerLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		byPeer:  make(map[string]*peerEntry),
		idleTTL: idleTTL,
	}
}

// Allow reports whether one call can be admitted for the peer at now.
func (l *PeerLimiter) Allow(peerAddr string, now time.Time) bool {
	if l == nil {
		return true
	}
	peerAddr = strings.TrimSpace(peerAddr)
	if peerAddr == "" {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.byPeer[peerAddr]
	if !ok {
		e = &peerEntry{
			limiter:  rate.NewLimiter(l.limit, l.burst),
			lastSeen: now,
		}
		l.byPeer[peerAddr] = e
	}
	e.lastSeen = now
	allowed := e.limiter.AllowN(now, 1)

	l.hits++
	if l.hits%512 == 0 {
		cutoff := now.Add(-l.idleTTL)
		for k, v := range l.byPeer {
			if v.lastSeen.Before(cutoff) {
				delete(l.byPeer, k)
			}
		}
	}

	return allowed
}
