package repositories

import (
	"vgcatalog/internal/models"

	"gorm.io/gorm"
)

// NewGORMEditorRepository creates the editor datastore. Editors have no
// queries beyond the shared store contract.
func NewGORMEditorRepository(db *gorm.DB) *GORMStore[models.Editor] {
	return NewGORMStore(db, "editor",
		func(e *models.Editor) string { return e.ID },
		func(e *models.Editor, id string) { e.ID = id })
}
