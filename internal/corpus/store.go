package corpus

import (
	"sync/atomic"

	"courseta/internal/domain"
)

// Store holds the live corpus snapshot. Replace swaps a fully built snapshot
// in one atomic step, so concurrent readers always observe one consistent
// corpus version and never block.
type Store struct {
	current atomic.Pointer[domain.Corpus]
}

func NewStore() *Store {
	s := &Store{}
	s.current.Store(&domain.Corpus{})
	return s
}

// Snapshot returns the current corpus. The returned value is immutable.
func (s *Store) Snapshot() *domain.Corpus {
	return s.current.Load()
}

// Replace installs a new snapshot. The previous snapshot stays valid for
// requests already holding it.
func (s *Store) Replace(c *domain.Corpus) {
	if c == nil {
		c = &domain.Corpus{}
	}
	s.current.Store(c)
}
