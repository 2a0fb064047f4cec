package services

import (
	"fmt"

	"vgcatalog/internal/models"
	"vgcatalog/internal/pipeline"
	"vgcatalog/internal/repositories"
)

// The four API resources are instances of the same pipeline with different
// descriptors: role predicates, merge, constraints and projection per
// entity kind.

// NewVideoGameResource builds the video-game resource. Category references
// are resolved during merge, the editor reference is checked at validation
// so an unresolved editor rejects the commit.
func NewVideoGameResource(
	games pipeline.Store[models.VideoGame],
	editors pipeline.Store[models.Editor],
	categories pipeline.Store[models.Category],
) *pipeline.Resource[models.VideoGame, models.VideoGamePatch] {
	validate := pipeline.NewValidator()
	return &pipeline.Resource[models.VideoGame, models.VideoGamePatch]{
		Name:      "video-game",
		ReadRole:  pipeline.AnyCaller,
		WriteRole: pipeline.AdminOnly,
		Store:     games,
		ID:        func(g *models.VideoGame) string { return g.ID },
		Merge: func(g *models.VideoGame, p *models.VideoGamePatch) error {
			p.Apply(g)
			if p.CategoryIDs == nil {
				return nil
			}
			resolved := make([]models.Category, 0, len(*p.CategoryIDs))
			var violations []pipeline.Violation
			for _, id := range *p.CategoryIDs {
				category, err := categories.Load(id)
				if err != nil {
					if pipeline.IsNotFound(err) {
						violations = append(violations, pipeline.Violation{
							Field:   "categoryIds",
							Message: fmt.Sprintf("category %s does not exist", id),
						})
						continue
					}
					return err
				}
				resolved = append(resolved, *category)
			}
			if len(violations) > 0 {
				return &pipeline.ValidationError{Violations: violations}
			}
			g.Categories = resolved
			return nil
		},
		Validate: func(g *models.VideoGame) []pipeline.Violation {
			violations := pipeline.CheckStruct(validate, g)
			if g.ReleaseDate.IsZero() {
				violations = append(violations, pipeline.Violation{
					Field:   "releaseDate",
					Message: "This value should not be blank",
				})
			}
			if g.EditorID != "" {
				if _, err := editors.Load(g.EditorID); err != nil {
					violations = append(violations, pipeline.Violation{
						Field:   "editorId",
						Message: fmt.Sprintf("editor %s does not exist", g.EditorID),
					})
				}
			}
			return violations
		},
	}
}

// NewCategoryResource builds the category resource.
func NewCategoryResource(store pipeline.Store[models.Category]) *pipeline.Resource[models.Category, models.CategoryPatch] {
	validate := pipeline.NewValidator()
	return &pipeline.Resource[models.Category, models.CategoryPatch]{
		Name:      "category",
		ReadRole:  pipeline.AnyCaller,
		WriteRole: pipeline.AdminOnly,
		Store:     store,
		ID:        func(c *models.Category) string { return c.ID },
		Merge: func(c *models.Category, p *models.CategoryPatch) error {
			p.Apply(c)
			return nil
		},
		Validate: func(c *models.Category) []pipeline.Violation {
			return pipeline.CheckStruct(validate, c)
		},
	}
}

// NewEditorResource builds the editor resource.
func NewEditorResource(store pipeline.Store[models.Editor]) *pipeline.Resource[models.Editor, models.EditorPatch] {
	validate := pipeline.NewValidator()
	return &pipeline.Resource[models.Editor, models.EditorPatch]{
		Name:      "editor",
		ReadRole:  pipeline.AnyCaller,
		WriteRole: pipeline.AdminOnly,
		Store:     store,
		ID:        func(e *models.Editor) string { return e.ID },
		Merge: func(e *models.Editor, p *models.EditorPatch) error {
			p.Apply(e)
			return nil
		},
		Validate: func(e *models.Editor) []pipeline.Violation {
			return pipeline.CheckStruct(validate, e)
		},
	}
}

// NewUserResource builds the user resource. Every operation, reads
// included, requires the admin role, and a payload password is hashed
// during merge so the plaintext never reaches the entity or the store.
func NewUserResource(store repositories.UserRepository, hash func(string) (string, error)) *pipeline.Resource[models.User, models.UserPatch] {
	validate := pipeline.NewValidator()
	return &pipeline.Resource[models.User, models.UserPatch]{
		Name:      "user",
		ReadRole:  pipeline.AdminOnly,
		WriteRole: pipeline.AdminOnly,
		Store:     store,
		ID:        func(u *models.User) string { return u.ID },
		Merge: func(u *models.User, p *models.UserPatch) error {
			p.Apply(u)
			if p.Password == nil {
				return nil
			}
			if len(*p.Password) < 6 {
				return &pipeline.ValidationError{Violations: []pipeline.Violation{{
					Field:   "password",
					Message: "This value must be at least 6 characters long",
				}}}
			}
			hashed, err := hash(*p.Password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			u.Password = hashed
			return nil
		},
		Validate: func(u *models.User) []pipeline.Violation {
			violations := pipeline.CheckStruct(validate, u)
			// The hash is checked here rather than via a struct tag so the
			// violation names the field the client actually sent.
			if u.Password == "" {
				violations = append(violations, pipeline.Violation{
					Field:   "password",
					Message: "This value should not be blank",
				})
			}
			return violations
		},
		Project: func(u *models.User) any {
			return u.View()
		},
	}
}
