package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/spoonacular"
)

// SessionStore owns one Paginator per browser session. Sessions expire
// after a fixed TTL measured from their last use.
type SessionStore struct {
	provider spoonacular.RecipeProvider
	pageSize int
	sessions *expirable.LRU[string, *Paginator]
}

// NewSessionStore creates a store holding at most size sessions.
func NewSessionStore(provider spoonacular.RecipeProvider, pageSize, size int, ttl time.Duration) *SessionStore {
	if size <= 0 {
		size = 1024
	}
	return &SessionStore{
		provider: provider,
		pageSize: pageSize,
		sessions: expirable.NewLRU[string, *Paginator](size, nil, ttl),
	}
}

// Get returns the Paginator of an existing session.
func (s *SessionStore) Get(id string) (*Paginator, bool) {
	if id == "" {
		return nil, false
	}
	p, ok := s.sessions.Get(id)
	if ok {
		s.sessions.Add(id, p)
	}
	return p, ok
}

// GetOrCreate returns the Paginator of session id, creating a new session
// (with a fresh ID) when id is unknown or expired.
func (s *SessionStore) GetOrCreate(id string) (string, *Paginator) {
	if p, ok := s.Get(id); ok {
		return id, p
	}
	id = uuid.New().String()
	p := NewPaginator(s.provider, s.pageSize)
	s.sessions.Add(id, p)
	return id, p
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	return s.sessions.Len()
}
