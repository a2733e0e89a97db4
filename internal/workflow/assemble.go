package workflow

import (
	"time"

	"github.com/google/uuid"

	"la-interior-backend/internal/models"
)

// AssembleProject merges the session into a persistable project
// record. Suggestion slots holding an empty result are normalized to
// null so records never carry noise from providers that were never
// successfully invoked. The displayed photo is the repainted image
// when one exists, else the original upload. When the session is
// editing a stored project, the original id and creation time are
// preserved; otherwise a fresh identity is minted.
//
// The second return value reports whether the assembled record is an
// edit of an existing project.
func (s *Session) AssembleProject(name string) (*models.Project, bool, error) {
	if name == "" {
		return nil, false, ErrNoProjectName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.photoDataURL == "" {
		return nil, false, ErrNoPhoto
	}

	isEditing := s.editingID != ""
	project := &models.Project{
		ID:                   s.editingID,
		Name:                 name,
		OriginalPhotoDataURI: s.photoDataURL,
		// Always an array in the stored record, never null.
		SelectedColors: append([]string{}, s.selectedColors...),
		CreatedAt:      s.editingCreatedAt,
	}
	if !isEditing {
		project.ID = uuid.NewString()
		project.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	project.RoomPhotoURL = s.photoDataURL
	if !s.repainted.Empty() {
		project.AIRepaintedPhotoDataURI = s.repainted.Suggestion
		project.RoomPhotoURL = s.repainted.Suggestion
	}

	if !s.palette.Empty() {
		project.AISuggestedPalette = &models.ColorSuggestion{
			Suggestion: append([]string(nil), s.palette.Suggestion...),
			Reasoning:  s.palette.Reasoning,
		}
	}
	if !s.sheen.Empty() {
		project.SheenSuggestion = &models.TextSuggestion{
			Suggestion: s.sheen.Suggestion,
			Reasoning:  s.sheen.Reasoning,
		}
	}
	if !s.complementary.Empty() {
		project.ComplementaryColors = &models.ColorSuggestion{
			Suggestion: append([]string(nil), s.complementary.Suggestion...),
			Reasoning:  s.complementary.Reasoning,
		}
	}
	if !s.detected.Empty() {
		project.AIDetectedWallColors = &models.WallColorSuggestion{
			Suggestion: append([]models.DetectedWallColor(nil), s.detected.Suggestion...),
			Reasoning:  s.detected.Reasoning,
		}
	}
	if s.answers != nil {
		copied := *s.answers
		project.QuestionnaireAnswers = &copied
	}

	return project, isEditing, nil
}
