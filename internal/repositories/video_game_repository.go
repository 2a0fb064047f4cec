package repositories

import (
	"fmt"

	"vgcatalog/internal/models"
	"vgcatalog/internal/pipeline"

	"gorm.io/gorm"
)

// VideoGameRepository is the video game datastore capability. On top of the
// shared store contract it answers the newsletter's release-window query.
type VideoGameRepository interface {
	pipeline.Store[models.VideoGame]
	FindReleasedBetween(from, to models.Date) ([]models.VideoGame, error)
}

// GORMVideoGameRepository is a GORM implementation of VideoGameRepository.
type GORMVideoGameRepository struct {
	*GORMStore[models.VideoGame]
}

// NewGORMVideoGameRepository creates a new instance of GORMVideoGameRepository.
func NewGORMVideoGameRepository(db *gorm.DB) *GORMVideoGameRepository {
	return &GORMVideoGameRepository{
		GORMStore: NewGORMStore(db, "video-game",
			func(g *models.VideoGame) string { return g.ID },
			func(g *models.VideoGame, id string) { g.ID = id },
			"Editor", "Categories"),
	}
}

// Persist commits the game and synchronizes its category links. Save alone
// adds new join rows but never unlinks removed ones, hence the Replace on
// updates.
func (r *GORMVideoGameRepository) Persist(game *models.VideoGame) error {
	isNew := game.ID == ""
	if err := r.GORMStore.Persist(game); err != nil {
		return err
	}
	if !isNew {
		if err := r.DB().Model(game).Association("Categories").Replace(game.Categories); err != nil {
			return fmt.Errorf("failed to update categories of video-game %s: %w", game.ID, err)
		}
	}
	return nil
}

// FindReleasedBetween returns every game whose release date falls in the
// inclusive [from, to] window, ordered by release date ascending.
func (r *GORMVideoGameRepository) FindReleasedBetween(from, to models.Date) ([]models.VideoGame, error) {
	var games []models.VideoGame
	err := r.DB().
		Preload("Editor").
		Preload("Categories").
		Where("release_date BETWEEN ? AND ?", from, to).
		Order("release_date ASC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query release window: %w", err)
	}
	return games, nil
}
