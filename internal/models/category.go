package models

import "gorm.io/gorm"

// Category is a genre label shared by any number of games.
type Category struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	gorm.Model `json:"-"`
}

// CategoryPatch carries the payload of a create or update request.
type CategoryPatch struct {
	Name *string `json:"name"`
}

// Apply copies payload-present fields onto c.
func (p *CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
}
