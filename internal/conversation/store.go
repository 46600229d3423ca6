// Package conversation holds the in-process session store: bounded message
// history, embedded order context, TTL expiry and capacity eviction.
//
// Eviction order on capacity pressure: expired sessions first, then the
// session with the oldest last_activity, ties broken by insertion sequence.
package conversation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"restaurant-chat-service/internal/model"
	"restaurant-chat-service/pkg/log"
)

// Config bounds the store.
type Config struct {
	MaxConversations           int
	MaxMessagesPerConversation int
	TTL                        time.Duration
}

const (
	DefaultMaxConversations           = 1000
	DefaultMaxMessagesPerConversation = 50
	DefaultTTL                        = 24 * time.Hour
)

// Store owns all sessions. Safe for concurrent use: the index lock serializes
// creation and eviction, a per-session lock serializes entry mutations, so
// operations on different sessions do not block each other.
type Store struct {
	cfg Config
	l   log.Logger

	mu       sync.RWMutex
	sessions map[string]*session
	seq      uint64

	// now is swapped in tests for deterministic TTL behavior.
	now func() time.Time
}

// NewStore creates a session store. Zero config fields fall back to defaults.
func NewStore(cfg Config, l log.Logger) *Store {
	if cfg.MaxConversations <= 0 {
		cfg.MaxConversations = DefaultMaxConversations
	}
	if cfg.MaxMessagesPerConversation <= 0 {
		cfg.MaxMessagesPerConversation = DefaultMaxMessagesPerConversation
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Store{
		cfg:      cfg,
		l:        l,
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// GetOrCreate resolves sessionID to a live session, or allocates a new one
// with a freshly generated identifier when sessionID is empty, unknown or
// expired. The returned bool is true when a new session was created.
// Concurrent calls for the same live identifier always resolve to the same
// session.
func (st *Store) GetOrCreate(sessionID string) (string, bool) {
	now := st.now()

	// Fast path: live hit without the index write lock.
	if sessionID != "" {
		st.mu.RLock()
		s, ok := st.sessions[sessionID]
		st.mu.RUnlock()
		if ok {
			s.mu.RLock()
			live := !s.gone && !s.expiredLocked(now, st.cfg.TTL)
			s.mu.RUnlock()
			if live {
				return sessionID, false
			}
		}
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if sessionID != "" {
		if s, ok := st.sessions[sessionID]; ok {
			s.mu.Lock()
			if !s.gone && !s.expiredLocked(now, st.cfg.TTL) {
				s.mu.Unlock()
				return sessionID, false
			}
			// Expired under its old ID; drop it and fall through to create.
			s.gone = true
			s.mu.Unlock()
			delete(st.sessions, sessionID)
		}
	}

	id := st.createLocked(now)
	return id, true
}

// createLocked allocates and inserts a new session, evicting on capacity
// pressure. Caller holds st.mu.
func (st *Store) createLocked(now time.Time) string {
	for len(st.sessions) >= st.cfg.MaxConversations {
		st.evictOneLocked(now)
	}

	st.seq++
	s := &session{
		id:           uuid.New().String(),
		createdAt:    now,
		seq:          st.seq,
		lastActivity: now,
		metadata:     make(map[string]any),
	}
	st.sessions[s.id] = s
	return s.id
}

// evictOneLocked removes the best eviction victim: any expired session wins
// over every non-expired one; among the rest, oldest last_activity, ties
// broken by insertion sequence. Caller holds st.mu.
func (st *Store) evictOneLocked(now time.Time) {
	var victim *session
	victimExpired := false

	for _, s := range st.sessions {
		s.mu.RLock()
		expired := s.expiredLocked(now, st.cfg.TTL)
		activity := s.lastActivity
		seq := s.seq
		s.mu.RUnlock()

		if victim == nil {
			victim, victimExpired = s, expired
			continue
		}

		victim.mu.RLock()
		vActivity, vSeq := victim.lastActivity, victim.seq
		victim.mu.RUnlock()

		switch {
		case expired && !victimExpired:
			victim, victimExpired = s, true
		case expired == victimExpired:
			if activity.Before(vActivity) || (activity.Equal(vActivity) && seq < vSeq) {
				victim = s
			}
		}
	}

	if victim == nil {
		return
	}

	victim.mu.Lock()
	victim.gone = true
	victim.mu.Unlock()
	delete(st.sessions, victim.id)

	if st.l != nil {
		st.l.Debugf(context.Background(), "conversation: evicted session %s (expired=%t)", victim.id, victimExpired)
	}
}

// lookup returns the live session for id, or ErrSessionNotFound.
func (st *Store) lookup(id string) (*session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// AppendMessage appends a message with the current timestamp, enforcing the
// per-conversation length bound by dropping the oldest messages first.
func (st *Store) AppendMessage(sessionID string, role model.Role, content string) error {
	if !role.Valid() {
		return ErrInvalidRole
	}

	s, err := st.lookup(sessionID)
	if err != nil {
		return err
	}

	now := st.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gone || s.expiredLocked(now, st.cfg.TTL) {
		return ErrSessionNotFound
	}

	s.messages = append(s.messages, model.Message{
		Role:      role,
		Content:   content,
		Timestamp: now,
	})
	if over := len(s.messages) - st.cfg.MaxMessagesPerConversation; over > 0 {
		kept := make([]model.Message, st.cfg.MaxMessagesPerConversation)
		copy(kept, s.messages[over:])
		s.messages = kept
	}
	s.lastActivity = now
	return nil
}

// History returns a snapshot of the session's messages.
func (st *Store) History(sessionID string) ([]model.Message, error) {
	s, err := st.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	now := st.now()

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.gone || s.expiredLocked(now, st.cfg.TTL) {
		return nil, ErrSessionNotFound
	}

	out := make([]model.Message, len(s.messages))
	copy(out, s.messages)
	return out, nil
}

// Touch refreshes last_activity without mutating content.
func (st *Store) Touch(sessionID string) error {
	s, err := st.lookup(sessionID)
	if err != nil {
		return err
	}

	now := st.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gone || s.expiredLocked(now, st.cfg.TTL) {
		return ErrSessionNotFound
	}
	s.lastActivity = now
	return nil
}

// Clear removes the session entirely. Clearing an absent session is a no-op.
func (st *Store) Clear(sessionID string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[sessionID]
	if !ok {
		return
	}
	s.mu.Lock()
	s.gone = true
	s.mu.Unlock()
	delete(st.sessions, sessionID)
}

// Summary returns the session's bookkeeping snapshot.
func (st *Store) Summary(sessionID string) (model.SessionSummary, error) {
	s, err := st.lookup(sessionID)
	if err != nil {
		return model.SessionSummary{}, err
	}

	now := st.now()

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.gone || s.expiredLocked(now, st.cfg.TTL) {
		return model.SessionSummary{}, ErrSessionNotFound
	}
	return s.summaryLocked(), nil
}

// SetMetadata stores an opaque value on the session.
func (st *Store) SetMetadata(sessionID, key string, value any) error {
	s, err := st.lookup(sessionID)
	if err != nil {
		return err
	}

	now := st.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gone || s.expiredLocked(now, st.cfg.TTL) {
		return ErrSessionNotFound
	}
	s.metadata[key] = value
	return nil
}

// UpdateOrder runs fn against the session's order context under the session
// lock and refreshes last_activity when fn succeeds. The order package is the
// only caller; it never creates sessions implicitly.
func (st *Store) UpdateOrder(sessionID string, fn func(*model.OrderContext) error) error {
	s, err := st.lookup(sessionID)
	if err != nil {
		return err
	}

	now := st.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gone || s.expiredLocked(now, st.cfg.TTL) {
		return ErrSessionNotFound
	}
	if err := fn(&s.order); err != nil {
		return err
	}
	s.lastActivity = now
	return nil
}

// ViewOrder returns a deep snapshot of the session's order context.
func (st *Store) ViewOrder(sessionID string) (model.OrderContext, error) {
	s, err := st.lookup(sessionID)
	if err != nil {
		return model.OrderContext{}, err
	}

	now := st.now()

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.gone || s.expiredLocked(now, st.cfg.TTL) {
		return model.OrderContext{}, ErrSessionNotFound
	}
	return s.order.Clone(), nil
}

// Stats counts live sessions and their messages. Expired-but-unswept
// sessions are excluded.
func (st *Store) Stats() (activeSessions, totalMessages int) {
	now := st.now()

	st.mu.RLock()
	defer st.mu.RUnlock()

	for _, s := range st.sessions {
		s.mu.RLock()
		if !s.expiredLocked(now, st.cfg.TTL) {
			activeSessions++
			totalMessages += len(s.messages)
		}
		s.mu.RUnlock()
	}
	return activeSessions, totalMessages
}

// RemoveExpired sweeps sessions whose TTL has elapsed and returns how many
// were removed. Called periodically by the reaper.
func (st *Store) RemoveExpired() int {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		expired := s.expiredLocked(now, st.cfg.TTL)
		if expired {
			s.gone = true
		}
		s.mu.Unlock()

		if expired {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}
