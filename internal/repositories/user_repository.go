package repositories

import (
	"fmt"

	"vgcatalog/internal/models"
	"vgcatalog/internal/pipeline"

	"gorm.io/gorm"
)

// UserRepository is the user datastore capability. Login needs the email
// lookup, the newsletter job needs the subscriber enumeration.
type UserRepository interface {
	pipeline.Store[models.User]
	GetByEmail(email string) (*models.User, error)
	FindSubscribed() ([]models.User, error)
}

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	*GORMStore[models.User]
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		GORMStore: NewGORMStore(db, "user",
			func(u *models.User) string { return u.ID },
			func(u *models.User, id string) { u.ID = id }),
	}
}

// GetByEmail retrieves a user by their unique email.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.DB().First(&user, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &pipeline.NotFoundError{Resource: "user", ID: email}
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// FindSubscribed returns every user with the newsletter flag set, in
// insertion order.
func (r *GORMUserRepository) FindSubscribed() ([]models.User, error) {
	var users []models.User
	if err := r.DB().Where("newsletter = ?", true).Order("created_at").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to query newsletter subscribers: %w", err)
	}
	return users, nil
}
