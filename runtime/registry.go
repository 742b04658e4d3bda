package runtime

import (
	"fmt"
	"sync"
	"time"
	"voice-relay/domain"
	"voice-relay/errors"
	"voice-relay/services"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// SessionFactory builds a conversation session for a freshly allocated handle.
type SessionFactory func(id string, langA, langB domain.LanguageCode) (*services.ConversationService, error)

// Registry holds the live conversation sessions keyed by their handle.
// The presentation layer only keeps the handle, never the session itself.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*services.ConversationService
	factory  SessionFactory
}

func NewRegistry(factory SessionFactory) *Registry {
	return &Registry{
		sessions: make(map[string]*services.ConversationService),
		factory:  factory,
	}
}

// Create allocates a handle and registers a new session for it.
// Nothing is registered when the factory refuses the languages.
func (r *Registry) Create(langA, langB domain.LanguageCode) (*services.ConversationService, error) {
	id := uuid.NewString()
	session, err := r.factory(id, langA, langB)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = session
	return session, nil
}

func (r *Registry) Get(id string) (*services.ConversationService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrSessionNotFound, id)
	}
	return session, nil
}

// Discard forgets a session. Discarding an unknown handle is an error so callers can answer 404.
func (r *Registry) Discard(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", errors.ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// IDs lists the live handles, in no particular order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Keys(r.sessions)
}

// Expire discards every session idle for longer than idle and returns their handles.
func (r *Registry) Expire(idle time.Duration, now time.Time) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	expired := lo.Keys(lo.PickBy(r.sessions, func(_ string, session *services.ConversationService) bool {
		return now.Sub(session.LastActive()) > idle
	}))
	for _, id := range expired {
		delete(r.sessions, id)
	}
	return expired
}
