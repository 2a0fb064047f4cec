package models_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"vgcatalog/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestUserSerializationNeverContainsPassword(t *testing.T) {
	user := models.User{
		ID:         "user-1",
		Email:      "someone@example.com",
		Password:   "$2a$10$somethinghashed",
		Roles:      []string{models.RoleAdmin},
		Newsletter: true,
	}

	for name, value := range map[string]any{
		"entity": user,
		"view":   user.View(),
	} {
		serialized, err := json.Marshal(value)
		assert.NoError(t, err)
		lowered := strings.ToLower(string(serialized))
		assert.NotContains(t, lowered, "password", "serialized %s leaks the password field", name)
		assert.NotContains(t, string(serialized), user.Password, "serialized %s leaks the hash", name)
	}

	view := user.View()
	assert.Equal(t, user.ID, view.ID)
	assert.Equal(t, user.Email, view.Email)
	assert.Equal(t, user.Roles, view.Roles)
	assert.Equal(t, user.Newsletter, view.Newsletter)
}

func TestVideoGameJSONRoundTrip(t *testing.T) {
	game := models.VideoGame{
		ID:          "game-1",
		Title:       "Mass Effect",
		ReleaseDate: models.NewDate(2007, 11, 20),
		Description: "A science-fiction RPG developed by BioWare.",
		EditorID:    "editor-1",
		Categories: []models.Category{
			{ID: "cat-1", Name: "RPG"},
			{ID: "cat-2", Name: "Action"},
		},
	}

	serialized, err := json.Marshal(game)
	assert.NoError(t, err)
	assert.Contains(t, string(serialized), `"releaseDate":"2007-11-20"`)

	var decoded models.VideoGame
	assert.NoError(t, json.Unmarshal(serialized, &decoded))
	assert.Equal(t, game.Title, decoded.Title)
	assert.Equal(t, game.Description, decoded.Description)
	assert.Equal(t, game.ReleaseDate.String(), decoded.ReleaseDate.String())
	assert.Equal(t, game.EditorID, decoded.EditorID)
	assert.Len(t, decoded.Categories, 2)
	assert.Equal(t, "RPG", decoded.Categories[0].Name)
}

func TestVideoGamePatchAppliesOnlyPresentFields(t *testing.T) {
	game := models.VideoGame{
		Title:       "Fire Emblem",
		ReleaseDate: models.NewDate(1990, 4, 20),
		Description: "A tactical strategy game developed by Nintendo.",
		EditorID:    "editor-1",
	}

	title := "Fire Emblem: Awakening"
	patch := models.VideoGamePatch{Title: &title}
	patch.Apply(&game)

	assert.Equal(t, "Fire Emblem: Awakening", game.Title)
	assert.Equal(t, "1990-04-20", game.ReleaseDate.String())
	assert.Equal(t, "editor-1", game.EditorID)
}

func TestDateUnmarshalRejectsBadFormat(t *testing.T) {
	var d models.Date
	assert.Error(t, json.Unmarshal([]byte(`"20-11-2007"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &d))
	assert.NoError(t, json.Unmarshal([]byte(`"2007-11-20"`), &d))
	assert.Equal(t, "2007-11-20", d.String())
}

func TestDateScan(t *testing.T) {
	var d models.Date

	assert.NoError(t, d.Scan(time.Date(2025, 9, 29, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, "2025-09-29", d.String())

	assert.NoError(t, d.Scan("2025-09-29 00:00:00"))
	assert.Equal(t, "2025-09-29", d.String())

	assert.NoError(t, d.Scan([]byte("2025-09-29")))
	assert.Equal(t, "2025-09-29", d.String())

	assert.Error(t, d.Scan(42))
}

func TestDateAddDays(t *testing.T) {
	d := models.NewDate(2025, 12, 29)
	assert.Equal(t, "2026-01-05", d.AddDays(7).String())
	assert.False(t, d.AddDays(7).Before(d.Time))
}
