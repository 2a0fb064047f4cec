package services_test

import (
	"testing"

	"vgcatalog/internal/models"
	"vgcatalog/internal/pipeline"
	"vgcatalog/internal/repositories"
	"vgcatalog/internal/services"

	"github.com/stretchr/testify/assert"
)

var (
	admin     = pipeline.Principal{UserID: "admin-1", Email: "admin@example.com", Roles: []string{models.RoleAdmin}}
	standard  = pipeline.Principal{UserID: "user-1", Email: "user@example.com", Roles: []string{models.RoleStandard}}
	anonymous = pipeline.Anonymous
)

func ptr[T any](v T) *T { return &v }

type catalogFixture struct {
	games      *repositories.MemoryStore[models.VideoGame]
	editors    *repositories.MemoryStore[models.Editor]
	categories *repositories.MemoryStore[models.Category]
	editor     models.Editor
	category   models.Category
	resource   *pipeline.Resource[models.VideoGame, models.VideoGamePatch]
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	f := &catalogFixture{
		games: repositories.NewMemoryStore("video-game",
			func(g *models.VideoGame) string { return g.ID },
			func(g *models.VideoGame, id string) { g.ID = id }),
		editors: repositories.NewMemoryStore("editor",
			func(e *models.Editor) string { return e.ID },
			func(e *models.Editor, id string) { e.ID = id }),
		categories: repositories.NewMemoryStore("category",
			func(c *models.Category) string { return c.ID },
			func(c *models.Category, id string) { c.ID = id }),
	}
	f.editor = models.Editor{Name: "Nintendo", Country: "Japan"}
	assert.NoError(t, f.editors.Persist(&f.editor))
	f.category = models.Category{Name: "Adventure"}
	assert.NoError(t, f.categories.Persist(&f.category))
	f.resource = services.NewVideoGameResource(f.games, f.editors, f.categories)
	return f
}

func (f *catalogFixture) validPatch() *models.VideoGamePatch {
	return &models.VideoGamePatch{
		Title:       ptr("The Legend of Zelda"),
		ReleaseDate: ptr(models.NewDate(1986, 2, 21)),
		Description: ptr("An iconic adventure game from Nintendo."),
		EditorID:    ptr(f.editor.ID),
		CategoryIDs: ptr([]string{f.category.ID}),
	}
}

func (f *catalogFixture) storedCount(t *testing.T) int {
	t.Helper()
	games, err := f.games.List(pipeline.PageRequest{Page: 1, Limit: 100})
	assert.NoError(t, err)
	return len(games)
}

func TestVideoGameCreateAssignsID(t *testing.T) {
	f := newCatalogFixture(t)

	game, err := f.resource.Create(admin, f.validPatch())
	assert.NoError(t, err)
	assert.NotEmpty(t, game.ID)
	assert.Equal(t, "The Legend of Zelda", game.Title)
	assert.Equal(t, f.editor.ID, game.EditorID)
	assert.Len(t, game.Categories, 1)

	// The assigned id is stable on subsequent reads.
	view, err := f.resource.Get(anonymous, game.ID)
	assert.NoError(t, err)
	assert.Equal(t, game.ID, view.(*models.VideoGame).ID)
}

func TestVideoGameMutationsRequireAdmin(t *testing.T) {
	f := newCatalogFixture(t)

	for _, principal := range []pipeline.Principal{anonymous, standard} {
		_, err := f.resource.Create(principal, f.validPatch())
		assert.ErrorIs(t, err, pipeline.ErrForbidden)

		_, err = f.resource.Update(principal, "some-id", f.validPatch())
		assert.ErrorIs(t, err, pipeline.ErrForbidden)

		err = f.resource.Delete(principal, "some-id")
		assert.ErrorIs(t, err, pipeline.ErrForbidden)
	}
	// No side effect occurred.
	assert.Equal(t, 0, f.storedCount(t))
}

func TestVideoGameReadsNeedNoRole(t *testing.T) {
	f := newCatalogFixture(t)
	game, err := f.resource.Create(admin, f.validPatch())
	assert.NoError(t, err)

	views, err := f.resource.List(anonymous, pipeline.PageRequest{Page: 1, Limit: 3})
	assert.NoError(t, err)
	assert.Len(t, views, 1)

	_, err = f.resource.Get(anonymous, game.ID)
	assert.NoError(t, err)
}

func TestVideoGameCreateRejectsInvalidPayload(t *testing.T) {
	f := newCatalogFixture(t)

	// An empty payload keeps every field at its type default, which then
	// fails the constraints. The full violation list comes back at once.
	_, err := f.resource.Create(admin, &models.VideoGamePatch{})
	ve, ok := pipeline.AsValidation(err)
	assert.True(t, ok)

	fields := make(map[string]bool)
	for _, violation := range ve.Violations {
		fields[violation.Field] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["description"])
	assert.True(t, fields["editorId"])
	assert.True(t, fields["releaseDate"])

	assert.Equal(t, 0, f.storedCount(t))
}

func TestVideoGameCreateRejectsShortTitle(t *testing.T) {
	f := newCatalogFixture(t)

	patch := f.validPatch()
	patch.Title = ptr("Z")
	_, err := f.resource.Create(admin, patch)
	ve, ok := pipeline.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, "title", ve.Violations[0].Field)
	assert.Equal(t, 0, f.storedCount(t))
}

func TestVideoGameEditorMustResolve(t *testing.T) {
	f := newCatalogFixture(t)

	patch := f.validPatch()
	patch.EditorID = ptr("ghost-editor")
	_, err := f.resource.Create(admin, patch)
	ve, ok := pipeline.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, "editorId", ve.Violations[0].Field)
	assert.Equal(t, 0, f.storedCount(t))
}

func TestVideoGameCategoryMustResolve(t *testing.T) {
	f := newCatalogFixture(t)

	patch := f.validPatch()
	patch.CategoryIDs = ptr([]string{f.category.ID, "ghost-category"})
	_, err := f.resource.Create(admin, patch)
	ve, ok := pipeline.AsValidation(err)
	assert.True(t, ok)
	assert.Equal(t, "categoryIds", ve.Violations[0].Field)
	assert.Equal(t, 0, f.storedCount(t))
}

func TestVideoGameUpdateIsPartialMerge(t *testing.T) {
	f := newCatalogFixture(t)
	game, err := f.resource.Create(admin, f.validPatch())
	assert.NoError(t, err)

	// Only the title is present in the payload; every other field keeps
	// its prior value.
	updated, err := f.resource.Update(admin, game.ID, &models.VideoGamePatch{
		Title: ptr("The Legend of Zelda: A Link to the Past"),
	})
	assert.NoError(t, err)
	assert.Equal(t, game.ID, updated.ID)
	assert.Equal(t, "The Legend of Zelda: A Link to the Past", updated.Title)
	assert.Equal(t, game.Description, updated.Description)
	assert.Equal(t, game.ReleaseDate.String(), updated.ReleaseDate.String())
	assert.Equal(t, game.EditorID, updated.EditorID)
	assert.Len(t, updated.Categories, 1)
}

func TestVideoGameRejectedUpdateChangesNothing(t *testing.T) {
	f := newCatalogFixture(t)
	game, err := f.resource.Create(admin, f.validPatch())
	assert.NoError(t, err)

	_, err = f.resource.Update(admin, game.ID, &models.VideoGamePatch{Title: ptr("x")})
	_, ok := pipeline.AsValidation(err)
	assert.True(t, ok)

	reloaded, err := f.games.Load(game.ID)
	assert.NoError(t, err)
	assert.Equal(t, "The Legend of Zelda", reloaded.Title)
}

func TestVideoGameUpdateMissingIDIsNotFound(t *testing.T) {
	f := newCatalogFixture(t)
	_, err := f.resource.Update(admin, "missing", &models.VideoGamePatch{Title: ptr("Anything")})
	assert.True(t, pipeline.IsNotFound(err))
}

func TestVideoGameDelete(t *testing.T) {
	f := newCatalogFixture(t)
	game, err := f.resource.Create(admin, f.validPatch())
	assert.NoError(t, err)

	assert.NoError(t, f.resource.Delete(admin, game.ID))
	_, err = f.resource.Get(anonymous, game.ID)
	assert.True(t, pipeline.IsNotFound(err))

	err = f.resource.Delete(admin, game.ID)
	assert.True(t, pipeline.IsNotFound(err))

	// Deleting the game never cascades to its editor or category.
	_, err = f.editors.Load(f.editor.ID)
	assert.NoError(t, err)
	_, err = f.categories.Load(f.category.ID)
	assert.NoError(t, err)
}
