package services

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"pulse_landing/config"
	"pulse_landing/models"
)

// ErrEmptySessionID is returned when a caller has no session cookie value
var ErrEmptySessionID = errors.New("empty session id")

// ViewStateStore keeps one page state per visitor session
type ViewStateStore interface {
	// Load returns the stored state, or a fresh one for unknown sessions.
	// It never stores anything for an unknown session.
	Load(sessionID string) (models.ViewState, error)
	// Update applies fn to the session's state and stores the result.
	// If fn returns an error nothing is stored.
	Update(sessionID string, fn func(*models.ViewState) error) (models.ViewState, error)
	// CleanupExpired drops sessions idle for longer than the TTL
	CleanupExpired() int
}

// ViewStates is the global view state store
var ViewStates ViewStateStore

// InitViewStateStore sets up the in-memory store from configuration
func InitViewStateStore(cfg *config.Config) {
	ViewStates = NewMemoryViewStateStore(cfg.SessionTTL, SystemClock{})
	log.Printf("[INFO] View state store initialized (in-memory, ttl %s)", cfg.SessionTTL)
}

// MemoryViewStateStore holds view states in process memory.
// Every read or write slides the session's expiry forward.
type MemoryViewStateStore struct {
	mu       sync.Mutex
	sessions map[string]*models.ViewSession
	ttl      time.Duration
	clock    Clock
}

// NewMemoryViewStateStore creates an empty store
func NewMemoryViewStateStore(ttl time.Duration, clock Clock) *MemoryViewStateStore {
	if ttl <= 0 {
		ttl = config.DefaultSessionTTL
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &MemoryViewStateStore{
		sessions: make(map[string]*models.ViewSession),
		ttl:      ttl,
		clock:    clock,
	}
}

func (s *MemoryViewStateStore) Load(sessionID string) (models.ViewState, error) {
	if sessionID == "" {
		return models.ViewState{}, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Reads never create sessions; only Update does
	sess, ok := s.sessions[sessionID]
	if !ok || sess.IsExpired(s.clock.Now()) {
		return models.NewViewState(), nil
	}
	sess.ExpiresAt = s.clock.Now().Add(s.ttl)
	return sess.State, nil
}

func (s *MemoryViewStateStore) Update(sessionID string, fn func(*models.ViewState) error) (models.ViewState, error) {
	if sessionID == "" {
		return models.ViewState{}, ErrEmptySessionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	next := sess.State
	if err := fn(&next); err != nil {
		return sess.State, fmt.Errorf("failed to update view state: %w", err)
	}
	sess.State = next
	return next, nil
}

func (s *MemoryViewStateStore) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	removed := 0
	for id, sess := range s.sessions {
		if sess.IsExpired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("Cleaned up %d expired view sessions", removed)
	}
	return removed
}

// Len returns the number of live sessions
func (s *MemoryViewStateStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// session returns the live session for id, replacing an expired one.
// Callers must hold s.mu.
func (s *MemoryViewStateStore) session(id string) *models.ViewSession {
	now := s.clock.Now()

	sess, ok := s.sessions[id]
	if !ok || sess.IsExpired(now) {
		sess = &models.ViewSession{
			ID:        id,
			State:     models.NewViewState(),
			CreatedAt: now,
		}
		s.sessions[id] = sess
	}
	sess.ExpiresAt = now.Add(s.ttl)
	return sess
}
