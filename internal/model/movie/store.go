package movie

import "sync"

// Store exposes the movie collection to HTTP handlers.
type Store interface {
	List() []Movie
	FindByID(id string) (Movie, bool)
	Append(m Movie)
	Update(id string, fn func(Movie) Movie) (Movie, bool)
	Remove(id string) bool
}

// MemoryStore keeps movies in an ordered in-process slice.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Movie
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied movies.
func NewMemoryStore(items []Movie) *MemoryStore {
	s := &MemoryStore{items: make([]Movie, 0, len(items))}
	for _, item := range items {
		s.items = append(s.items, item.clone())
	}
	return s
}

// List returns a snapshot of the collection in insertion order.
func (s *MemoryStore) List() []Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Movie, len(s.items))
	for i, item := range s.items {
		out[i] = item.clone()
	}
	return out
}

// FindByID looks up a movie by identifier.
func (s *MemoryStore) FindByID(id string) (Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.items[i].clone(), true
	}
	return Movie{}, false
}

// FindIndexByID returns the position of the movie with the given id, or -1.
func (s *MemoryStore) FindIndexByID(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(id)
}

// Append adds a movie to the end of the collection.
func (s *MemoryStore) Append(m Movie) {
	s.mu.Lock()
	s.items = append(s.items, m.clone())
	s.mu.Unlock()
}

// RemoveAt deletes the movie at index i. Out of range indexes are ignored.
func (s *MemoryStore) RemoveAt(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeAt(i)
}

// ReplaceAt overwrites the movie at index i. Out of range indexes are ignored.
func (s *MemoryStore) ReplaceAt(i int, m Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i >= 0 && i < len(s.items) {
		s.items[i] = m.clone()
	}
}

// Update replaces the movie with the given id by fn's result while holding
// the write lock. The stored identifier is kept whatever fn returns.
func (s *MemoryStore) Update(id string, fn func(Movie) Movie) (Movie, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Movie{}, false
	}

	updated := fn(s.items[i].clone()).clone()
	updated.ID = s.items[i].ID
	s.items[i] = updated
	return updated.clone(), true
}

// Remove deletes the movie with the given id and reports whether it existed.
func (s *MemoryStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.removeAt(i)
	return true
}

func (s *MemoryStore) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) removeAt(i int) {
	if i < 0 || i >= len(s.items) {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}
