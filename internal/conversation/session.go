package conversation

import (
	"sync"
	"time"

	"restaurant-chat-service/internal/model"
)

// session is the store's mutable record for one conversation. All fields
// after mu are guarded by mu; the store index lock is never held while mu is
// held.
type session struct {
	mu sync.RWMutex

	id        string
	createdAt time.Time
	seq       uint64 // insertion order, eviction tie-break

	lastActivity time.Time
	messages     []model.Message
	order        model.OrderContext
	metadata     map[string]any

	// gone is set when the session has been removed from the index so a
	// mutator holding a stale pointer fails instead of writing to an orphan.
	gone bool
}

// expiredLocked reports whether the session's idle time exceeds ttl.
// Caller holds s.mu (read or write).
func (s *session) expiredLocked(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.lastActivity) > ttl
}

// summaryLocked builds a read-only snapshot. Caller holds s.mu.
func (s *session) summaryLocked() model.SessionSummary {
	meta := make(map[string]any, len(s.metadata))
	for k, v := range s.metadata {
		meta[k] = v
	}
	return model.SessionSummary{
		SessionID:    s.id,
		CreatedAt:    s.createdAt,
		LastActivity: s.lastActivity,
		MessageCount: len(s.messages),
		Order:        s.order.Clone(),
		Metadata:     meta,
	}
}
