package repositories

import (
	"sync"

	"vgcatalog/internal/pipeline"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory implementation of pipeline.Store keeping
// entities in insertion order. It backs the pipeline tests and local runs
// without a database.
type MemoryStore[T any] struct {
	mu       sync.RWMutex
	entities []T
	resource string
	getID    func(*T) string
	setID    func(*T, string)
}

// NewMemoryStore creates an empty in-memory store for one entity kind.
func NewMemoryStore[T any](resource string, getID func(*T) string, setID func(*T, string)) *MemoryStore[T] {
	return &MemoryStore[T]{
		resource: resource,
		getID:    getID,
		setID:    setID,
	}
}

// List returns one page of entities in insertion order.
func (s *MemoryStore[T]) List(page pipeline.PageRequest) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := page.Offset()
	if start >= len(s.entities) {
		return []T{}, nil
	}
	end := start + page.Limit
	if end > len(s.entities) {
		end = len(s.entities)
	}
	out := make([]T, end-start)
	copy(out, s.entities[start:end])
	return out, nil
}

// Load returns a copy of the entity with the given id.
func (s *MemoryStore[T]) Load(id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.entities {
		if s.getID(&s.entities[i]) == id {
			entity := s.entities[i]
			return &entity, nil
		}
	}
	return nil, &pipeline.NotFoundError{Resource: s.resource, ID: id}
}

// Persist inserts the entity on its first commit, assigning a fresh id, and
// replaces the stored copy afterwards.
func (s *MemoryStore[T]) Persist(entity *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.getID(entity)
	if id == "" {
		s.setID(entity, uuid.New().String())
		s.entities = append(s.entities, *entity)
		return nil
	}
	for i := range s.entities {
		if s.getID(&s.entities[i]) == id {
			s.entities[i] = *entity
			return nil
		}
	}
	return &pipeline.NotFoundError{Resource: s.resource, ID: id}
}

// Delete removes the entity with the given id.
func (s *MemoryStore[T]) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entities {
		if s.getID(&s.entities[i]) == id {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return nil
		}
	}
	return &pipeline.NotFoundError{Resource: s.resource, ID: id}
}
