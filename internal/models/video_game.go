package models

import "gorm.io/gorm"

// VideoGame represents a game in the catalog. A game belongs to exactly one
// editor and may carry any number of categories.
type VideoGame struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string     `json:"title" validate:"required,min=2,max=100"`
	ReleaseDate Date       `json:"releaseDate" gorm:"type:date"`
	Description string     `json:"description" gorm:"type:text" validate:"required,min=10,max=1000"`
	EditorID    string     `json:"editorId" gorm:"type:varchar(36)" validate:"required"`
	Editor      *Editor    `json:"editor,omitempty" gorm:"foreignKey:EditorID"`
	Categories  []Category `json:"categories" gorm:"many2many:video_game_categories"`
	gorm.Model  `json:"-"`
}

// VideoGamePatch carries the payload of a create or update request. Nil
// fields were absent from the payload and leave the target untouched.
type VideoGamePatch struct {
	Title       *string   `json:"title"`
	ReleaseDate *Date     `json:"releaseDate"`
	Description *string   `json:"description"`
	EditorID    *string   `json:"editorId"`
	CategoryIDs *[]string `json:"categoryIds"`
}

// Apply copies the scalar payload fields onto g. Category references are
// resolved separately because they need a store lookup.
func (p *VideoGamePatch) Apply(g *VideoGame) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.ReleaseDate != nil {
		g.ReleaseDate = *p.ReleaseDate
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.EditorID != nil {
		g.EditorID = *p.EditorID
		g.Editor = nil
	}
}
