package workflow

import (
	"context"

	"la-interior-backend/internal/models"
)

// Request operations. Each one validates locally before touching the
// provider, marks its slot loading, runs the call outside the lock
// with the session's provider timeout, and applies the result only if
// its dispatch sequence is still current. Local validation failures
// are returned to the caller; provider failures land in the slot's
// Error field and are user-visible through the snapshot.

// GeneratePalette requests a palette derived from the photo alone.
func (s *Session) GeneratePalette(ctx context.Context) error {
	s.mu.Lock()
	if s.photoDataURL == "" {
		s.mu.Unlock()
		return ErrNoPhoto
	}
	photo := s.photoDataURL
	s.paletteSeq++
	seq := s.paletteSeq
	s.palette.IsLoading = true
	s.palette.Error = ""
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	result, err := s.provider.GeneratePalette(ctx, photo)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.paletteSeq {
		return nil
	}
	if err != nil {
		s.palette = models.ColorSuggestion{Error: err.Error()}
		return nil
	}
	reasoning := result.Reasoning
	if reasoning == "" {
		reasoning = "AI generated palette based on your image."
	}
	s.palette = models.ColorSuggestion{Suggestion: result.Palette, Reasoning: reasoning}
	return nil
}

// SuggestFromPreferences requests a palette driven by the
// questionnaire. A successful completion opens the preference gate.
func (s *Session) SuggestFromPreferences(ctx context.Context, answers models.QuestionnaireAnswers) error {
	if !answers.Complete() {
		return ErrIncompleteQuestionnaire
	}

	s.mu.Lock()
	if s.photoDataURL == "" {
		s.mu.Unlock()
		return ErrNoPhoto
	}
	photo := s.photoDataURL
	copied := answers
	s.answers = &copied
	s.paletteSeq++
	seq := s.paletteSeq
	s.palette.IsLoading = true
	s.palette.Error = ""
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	result, err := s.provider.SuggestPaletteFromPreferences(ctx, photo, answers)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.paletteSeq {
		return nil
	}
	if err != nil {
		s.palette = models.ColorSuggestion{Error: err.Error()}
		return nil
	}
	s.palette = models.ColorSuggestion{Suggestion: result.Palette, Reasoning: result.Reasoning}
	s.gate = ReadyForSuggestions
	return nil
}

// SuggestComplementary requests accent colors for the active color.
func (s *Session) SuggestComplementary(ctx context.Context) error {
	s.mu.Lock()
	if s.photoDataURL == "" {
		s.mu.Unlock()
		return ErrNoPhoto
	}
	if s.activeColor == "" {
		s.mu.Unlock()
		return ErrNoActiveColor
	}
	photo, color := s.photoDataURL, s.activeColor
	s.complementarySeq++
	seq := s.complementarySeq
	s.complementary.IsLoading = true
	s.complementary.Error = ""
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	result, err := s.provider.SuggestComplementaryColors(ctx, photo, color)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.complementarySeq {
		return nil
	}
	if err != nil {
		s.complementary = models.ColorSuggestion{Error: err.Error()}
		return nil
	}
	s.complementary = models.ColorSuggestion{Suggestion: result.Palette, Reasoning: result.Reasoning}
	return nil
}

// SuggestSheen requests a paint sheen for the active color.
func (s *Session) SuggestSheen(ctx context.Context) error {
	s.mu.Lock()
	if s.photoDataURL == "" {
		s.mu.Unlock()
		return ErrNoPhoto
	}
	if s.activeColor == "" {
		s.mu.Unlock()
		return ErrNoActiveColor
	}
	photo, color := s.photoDataURL, s.activeColor
	s.sheenSeq++
	seq := s.sheenSeq
	s.sheen.IsLoading = true
	s.sheen.Error = ""
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	result, err := s.provider.SuggestPaintSheen(ctx, photo, color)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.sheenSeq {
		return nil
	}
	if err != nil {
		s.sheen = models.TextSuggestion{Error: err.Error()}
		return nil
	}
	s.sheen = models.TextSuggestion{Suggestion: result.SuggestedSheen, Reasoning: result.Reasoning}
	return nil
}

// DetectWallColors requests detection of the existing wall colors.
// Fired automatically on photo upload; callable again on demand.
func (s *Session) DetectWallColors(ctx context.Context) error {
	s.mu.Lock()
	if s.photoDataURL == "" {
		s.mu.Unlock()
		return ErrNoPhoto
	}
	photo := s.photoDataURL
	s.detectSeq++
	seq := s.detectSeq
	s.detected.IsLoading = true
	s.detected.Error = ""
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	result, err := s.provider.DetectWallColors(ctx, photo)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.detectSeq {
		return nil
	}
	if err != nil {
		s.detected = models.WallColorSuggestion{Error: err.Error()}
		return nil
	}
	s.detected = models.WallColorSuggestion{Suggestion: result.WallColors, Reasoning: result.Reasoning}
	return nil
}

// Repaint requests a repainted image for the active color. The
// previous repainted image stays visible while the call is in flight;
// on failure the suggestion reverts to empty so the displayed photo
// falls back to the original upload rather than a stale repaint.
func (s *Session) Repaint(ctx context.Context) error {
	s.mu.Lock()
	if s.photoDataURL == "" {
		s.mu.Unlock()
		return ErrNoPhoto
	}
	if s.activeColor == "" {
		s.mu.Unlock()
		return ErrNoActiveColor
	}
	photo, color := s.photoDataURL, s.activeColor
	s.repaintSeq++
	seq := s.repaintSeq
	s.repainted.IsLoading = true
	s.repainted.Error = ""
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	image, err := s.provider.RepaintWall(ctx, photo, color)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.repaintSeq {
		return nil
	}
	if err != nil {
		s.repainted = models.ImageSuggestion{Error: err.Error()}
		return nil
	}
	s.repainted = models.ImageSuggestion{
		Suggestion: image,
		Reasoning:  "AI repainted image based on your selection.",
	}
	return nil
}
