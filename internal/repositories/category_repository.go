package repositories

import (
	"vgcatalog/internal/models"

	"gorm.io/gorm"
)

// NewGORMCategoryRepository creates the category datastore. Categories have
// no queries beyond the shared store contract.
func NewGORMCategoryRepository(db *gorm.DB) *GORMStore[models.Category] {
	return NewGORMStore(db, "category",
		func(c *models.Category) string { return c.ID },
		func(c *models.Category, id string) { c.ID = id })
}
