package memstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nabrasa-storefront/internal/domain/cart"
	"nabrasa-storefront/internal/pkg/clock"
	"nabrasa-storefront/internal/usecase/shared"
)

type sessionEntry struct {
	mu      sync.Mutex
	session shared.Session
	// set by Sweep under mu once the entry left the map
	removed bool
}

// SessionStore keeps carts in process memory. Sessions idle for longer than
// ttl are dropped on the next sweep.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	clock    clock.Clock
	ttl      time.Duration
}

var _ shared.SessionStore = (*SessionStore)(nil)

func NewSessionStore(clk clock.Clock, ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*sessionEntry),
		clock:    clk,
		ttl:      ttl,
	}
}

func (s *SessionStore) entry(id string) *sessionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		e = &sessionEntry{session: shared.Session{
			ID:        id,
			Cart:      cart.NewCart(),
			UpdatedAt: s.clock.Now(),
		}}
		s.sessions[id] = e
	}
	return e
}

// lock returns the live entry for id with its mutex held.
func (s *SessionStore) lock(id string) *sessionEntry {
	for {
		e := s.entry(id)
		e.mu.Lock()
		if !e.removed {
			return e
		}
		e.mu.Unlock()
	}
}

func (s *SessionStore) Get(ctx context.Context, id string) (*shared.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e := s.lock(id)
	defer e.mu.Unlock()
	return copySession(e.session), nil
}

// Update applies fn to a working copy and keeps it only when fn succeeds.
func (s *SessionStore) Update(ctx context.Context, id string, fn func(sess *shared.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e := s.lock(id)
	defer e.mu.Unlock()

	working := copySession(e.session)
	if err := fn(working); err != nil {
		return err
	}
	working.ID = id
	working.UpdatedAt = s.clock.Now()
	e.session = *working
	return nil
}

func (s *SessionStore) AppendNotice(ctx context.Context, id string, n shared.Notice) error {
	return s.Update(ctx, id, func(sess *shared.Session) error {
		sess.Notices = append(sess.Notices, n)
		return nil
	})
}

// Sweep drops sessions idle past the ttl and reports how many were removed.
func (s *SessionStore) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.clock.Now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		e.mu.Lock()
		if e.session.UpdatedAt.Before(cutoff) {
			e.removed = true
			delete(s.sessions, id)
			removed++
		}
		e.mu.Unlock()
	}
	return removed
}

// RunSweeper sweeps on every tick until ctx is cancelled.
func (s *SessionStore) RunSweeper(ctx context.Context, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logger.Debug("expired sessions removed", "count", n)
			}
		}
	}
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func copySession(src shared.Session) *shared.Session {
	dst := src
	if src.Cart == nil {
		dst.Cart = cart.NewCart()
	} else {
		dst.Cart = src.Cart.Clone()
	}
	dst.Notices = append([]shared.Notice(nil), src.Notices...)
	return &dst
}
