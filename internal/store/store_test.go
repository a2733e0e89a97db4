package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"la-interior-backend/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func sampleProject(id string) models.Project {
	return models.Project{
		ID:                      id,
		Name:                    "Living Room",
		RoomPhotoURL:            "data:image/png;base64,cGFpbnRlZA==",
		OriginalPhotoDataURI:    "data:image/png;base64,b3JpZ2luYWw=",
		AIRepaintedPhotoDataURI: "data:image/png;base64,cGFpbnRlZA==",
		SelectedColors:          []string{"#AABBCC", "#112233"},
		AISuggestedPalette: &models.ColorSuggestion{
			Suggestion: []string{"#445566", "#556677"},
			Reasoning:  "matches the requested mood",
		},
		SheenSuggestion: &models.TextSuggestion{
			Suggestion: "Eggshell",
			Reasoning:  "living room walls",
		},
		AIDetectedWallColors: &models.WallColorSuggestion{
			Suggestion: []models.DetectedWallColor{{Hex: "#EEDDCC", Name: "Light Beige"}},
			Reasoning:  "dominant flat surface",
		},
		QuestionnaireAnswers: &models.QuestionnaireAnswers{
			FavoriteColor:      "forest green",
			Mood:               "Calm and Relaxing",
			AgeRange:           "26-35",
			Theme:              "Minimalist",
			RoomType:           "Living Room",
			LightingPreference: "Bright and Airy",
		},
		CreatedAt: "2026-01-02T15:04:05Z",
	}
}

func TestSaveAndFindProjectRoundTrip(t *testing.T) {
	s := newTestStore(t)
	saved := sampleProject("project-1")

	require.NoError(t, s.SaveProject("user-a", saved, false))

	found, err := s.FindProject("user-a", "project-1")
	require.NoError(t, err)
	assert.Equal(t, saved, *found)
}

func TestFindProjectIsScopedToOwner(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveProject("user-a", sampleProject("project-1"), false))

	_, err := s.FindProject("user-b", "project-1")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestListProjectsKeepsInsertionOrderPerUser(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveProject("user-a", sampleProject("project-1"), false))
	require.NoError(t, s.SaveProject("user-b", sampleProject("project-2"), false))
	require.NoError(t, s.SaveProject("user-a", sampleProject("project-3"), false))

	projects, err := s.ListProjects("user-a")
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "project-1", projects[0].ID)
	assert.Equal(t, "project-3", projects[1].ID)
}

func TestListProjectsForUnknownUserIsEmpty(t *testing.T) {
	s := newTestStore(t)

	projects, err := s.ListProjects("nobody")
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestEditReplacesRecordInPlace(t *testing.T) {
	s := newTestStore(t)
	original := sampleProject("project-1")
	require.NoError(t, s.SaveProject("user-a", original, false))
	require.NoError(t, s.SaveProject("user-a", sampleProject("project-2"), false))

	edited := original
	edited.Name = "Renamed"
	edited.SelectedColors = []string{"#FFFFFF"}
	require.NoError(t, s.SaveProject("user-a", edited, true))

	projects, err := s.ListProjects("user-a")
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Renamed", projects[0].Name)
	assert.Equal(t, original.CreatedAt, projects[0].CreatedAt)
	assert.Equal(t, "project-2", projects[1].ID)
}

func TestEditingMissingProjectFails(t *testing.T) {
	s := newTestStore(t)

	err := s.SaveProject("user-a", sampleProject("ghost"), true)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestDeleteProject(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveProject("user-a", sampleProject("project-1"), false))

	require.NoError(t, s.DeleteProject("user-a", "project-1"))

	_, err := s.FindProject("user-a", "project-1")
	assert.ErrorIs(t, err, ErrProjectNotFound)

	err = s.DeleteProject("user-a", "project-1")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestDeleteIsScopedToOwner(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveProject("user-a", sampleProject("project-1"), false))

	err := s.DeleteProject("user-b", "project-1")
	assert.ErrorIs(t, err, ErrProjectNotFound)

	_, err = s.FindProject("user-a", "project-1")
	assert.NoError(t, err)
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateUser(models.StoredUser{
		User:         models.User{ID: "u1", Username: "Alice", Email: "alice@gmail.com"},
		PasswordHash: "hash",
		PINHash:      "pin",
	}))

	err := s.CreateUser(models.StoredUser{
		User: models.User{ID: "u2", Username: "ALICE", Email: "other@gmail.com"},
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	err = s.CreateUser(models.StoredUser{
		User: models.User{ID: "u3", Username: "bob", Email: "Alice@gmail.com"},
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestFindUserIsCaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateUser(models.StoredUser{
		User:         models.User{ID: "u1", Username: "Alice", Email: "alice@gmail.com"},
		PasswordHash: "hash",
	}))

	user, err := s.FindUser("ALICE")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hash", user.PasswordHash)

	_, err = s.FindUser("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUserReplacesRecord(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateUser(models.StoredUser{
		User:         models.User{ID: "u1", Username: "alice", Email: "alice@gmail.com"},
		PasswordHash: "old-hash",
	}))

	require.NoError(t, s.UpdateUser(models.StoredUser{
		User:         models.User{ID: "u1", Username: "alice", Email: "alice@gmail.com"},
		PasswordHash: "new-hash",
	}))

	user, err := s.FindUser("alice")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", user.PasswordHash)

	err = s.UpdateUser(models.StoredUser{User: models.User{Username: "ghost"}})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
