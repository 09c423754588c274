package sessions

import (
	"sync"
	"time"

	"github.com/blueline-rp/mdt-bot/models"
)

// Key identifies the single live draft an owner may have per guild.
type Key struct {
	OwnerID string
	GuildID string
}

// Store holds open drafts for the lifetime of the process. There is no
// background sweep: drafts past their expiry are reclaimed lazily on
// the next access.
type Store interface {
	// Get returns the open draft for key. An entry past its expiry is
	// purged and reported through the second return so the caller can
	// reply accordingly.
	Get(key Key) (*models.Draft, bool)
	// Put stores the draft for key, replacing any stale prior one.
	Put(key Key, draft *models.Draft)
	// Delete removes the draft for key, if any.
	Delete(key Key)
	// Len reports the number of stored drafts, expired or not.
	Len() int
}

type memoryStore struct {
	mu     sync.Mutex
	drafts map[Key]*models.Draft
}

// New returns an empty in-memory store. The gateway dispatches events
// on separate goroutines, so the store is safe for concurrent use.
func New() Store {
	return &memoryStore{
		drafts: make(map[Key]*models.Draft),
	}
}

func (s *memoryStore) Get(key Key) (*models.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(draft.ExpiresAt) {
		draft.Status = models.StatusExpired
		delete(s.drafts, key)
		return nil, true
	}
	return draft, false
}

func (s *memoryStore) Put(key Key, draft *models.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[key] = draft
}

func (s *memoryStore) Delete(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, key)
}

func (s *memoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}
