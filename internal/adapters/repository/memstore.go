package repository

import (
	"context"
	"sync"
	"time"

	"github.com/okian/levelgate/internal/domain/types"
)

// Default store configuration constants.
const (
	defaultTTL = time.Minute
)

// MemoryStore implements Store with a mutex-guarded map and TTL expiry.
type MemoryStore struct {
	mu sync.RWMutex

	pages map[int]cachedList
	hof   *cachedRows

	ttl time.Duration
	now func() time.Time
}

type cachedList struct {
	list    types.LevelList
	expires time.Time
}

type cachedRows struct {
	rows    []types.HofRow
	expires time.Time
}

// NewMemoryStore creates a MemoryStore with configuration options.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		pages: make(map[int]cachedList),
		ttl:   defaultTTL,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LevelPage returns the cached decode of a level page, if fresh.
func (s *MemoryStore) LevelPage(_ context.Context, page int) (types.LevelList, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.pages[page]
	if !ok || s.now().After(c.expires) {
		return types.LevelList{}, false
	}
	return c.list, true
}

// PutLevelPage caches the decoded level page.
func (s *MemoryStore) PutLevelPage(_ context.Context, page int, list types.LevelList) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pages[page] = cachedList{list: list, expires: s.now().Add(s.ttl)}
}

// HallOfFame returns the cached hall-of-fame rows, if fresh.
func (s *MemoryStore) HallOfFame(_ context.Context) ([]types.HofRow, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.hof == nil || s.now().After(s.hof.expires) {
		return nil, false
	}
	return s.hof.rows, true
}

// PutHallOfFame caches the decoded hall-of-fame rows.
func (s *MemoryStore) PutHallOfFame(_ context.Context, rows []types.HofRow) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hof = &cachedRows{rows: rows, expires: s.now().Add(s.ttl)}
}

// Count returns the number of fresh level pages currently cached. Expired
// entries are evicted on the way.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for page, c := range s.pages {
		if now.After(c.expires) {
			delete(s.pages, page)
		}
	}
	return len(s.pages)
}
