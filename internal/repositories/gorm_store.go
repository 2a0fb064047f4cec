package repositories

import (
	"fmt"

	"vgcatalog/internal/pipeline"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMStore is a GORM-backed implementation of pipeline.Store shared by
// every entity kind. Ids are assigned on the first commit and never change.
type GORMStore[T any] struct {
	db       *gorm.DB
	resource string
	getID    func(*T) string
	setID    func(*T, string)
	preloads []string
}

// NewGORMStore creates a store for one entity kind. resource names the kind
// in not-found errors, preloads lists the associations loaded on reads.
func NewGORMStore[T any](db *gorm.DB, resource string, getID func(*T) string, setID func(*T, string), preloads ...string) *GORMStore[T] {
	return &GORMStore[T]{
		db:       db,
		resource: resource,
		getID:    getID,
		setID:    setID,
		preloads: preloads,
	}
}

func (s *GORMStore[T]) query() *gorm.DB {
	tx := s.db
	for _, preload := range s.preloads {
		tx = tx.Preload(preload)
	}
	return tx
}

// List returns one page of entities in insertion order.
func (s *GORMStore[T]) List(page pipeline.PageRequest) ([]T, error) {
	var entities []T
	err := s.query().
		Order("created_at").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", s.resource, err)
	}
	return entities, nil
}

// Load returns the entity with the given id.
func (s *GORMStore[T]) Load(id string) (*T, error) {
	var entity T
	if err := s.query().First(&entity, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &pipeline.NotFoundError{Resource: s.resource, ID: id}
		}
		return nil, fmt.Errorf("failed to get %s by ID %s: %w", s.resource, id, err)
	}
	return &entity, nil
}

// Persist inserts the entity on its first commit, assigning a fresh id, and
// updates it afterwards.
func (s *GORMStore[T]) Persist(entity *T) error {
	if s.getID(entity) == "" {
		s.setID(entity, uuid.New().String())
		if err := s.db.Create(entity).Error; err != nil {
			return fmt.Errorf("failed to create %s: %w", s.resource, err)
		}
		return nil
	}
	if err := s.db.Save(entity).Error; err != nil {
		return fmt.Errorf("failed to update %s: %w", s.resource, err)
	}
	return nil
}

// Delete removes the entity with the given id.
func (s *GORMStore[T]) Delete(id string) error {
	var entity T
	res := s.db.Delete(&entity, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", s.resource, res.Error)
	}
	if res.RowsAffected == 0 {
		return &pipeline.NotFoundError{Resource: s.resource, ID: id}
	}
	return nil
}

// DB exposes the underlying handle for entity-specific queries.
func (s *GORMStore[T]) DB() *gorm.DB {
	return s.db
}
