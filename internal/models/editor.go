package models

import "gorm.io/gorm"

// Editor is a game publisher. A game references exactly one editor; deleting
// a game never cascades to its editor.
type Editor struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Country    string `json:"country" validate:"required,min=2,max=100"`
	gorm.Model `json:"-"`
}

// EditorPatch carries the payload of a create or update request.
type EditorPatch struct {
	Name    *string `json:"name"`
	Country *string `json:"country"`
}

// Apply copies payload-present fields onto e.
func (p *EditorPatch) Apply(e *Editor) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Country != nil {
		e.Country = *p.Country
	}
}
