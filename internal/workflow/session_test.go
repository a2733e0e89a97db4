package workflow

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"la-interior-backend/internal/designai"
	"la-interior-backend/internal/models"
)

const testPhoto = "data:image/png;base64,dGVzdC1waG90bw=="

// fakeProvider counts invocations and lets tests control each
// operation's behavior.
type fakeProvider struct {
	mu sync.Mutex

	detectCalls  int
	paletteCalls int
	prefCalls    int
	compCalls    int
	sheenCalls   int
	repaintCalls int

	repaintFn func(ctx context.Context, photo, color string) (string, error)
	prefFn    func(ctx context.Context, photo string, answers models.QuestionnaireAnswers) (*designai.PaletteResult, error)
}

func (f *fakeProvider) count(n *int) {
	f.mu.Lock()
	*n++
	f.mu.Unlock()
}

func (f *fakeProvider) calls(n *int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *n
}

func (f *fakeProvider) DetectWallColors(ctx context.Context, photo string) (*designai.WallColorResult, error) {
	f.count(&f.detectCalls)
	return &designai.WallColorResult{
		WallColors: []models.DetectedWallColor{{Hex: "#EEDDCC", Name: "Light Beige"}},
		Reasoning:  "dominant flat surface",
	}, nil
}

func (f *fakeProvider) GeneratePalette(ctx context.Context, photo string) (*designai.PaletteResult, error) {
	f.count(&f.paletteCalls)
	return &designai.PaletteResult{Palette: []string{"#101010", "#202020", "#303030"}}, nil
}

func (f *fakeProvider) SuggestPaletteFromPreferences(ctx context.Context, photo string, answers models.QuestionnaireAnswers) (*designai.PaletteResult, error) {
	f.count(&f.prefCalls)
	if f.prefFn != nil {
		return f.prefFn(ctx, photo, answers)
	}
	return &designai.PaletteResult{
		Palette:   []string{"#445566", "#556677", "#667788"},
		Reasoning: "matches the requested mood",
	}, nil
}

func (f *fakeProvider) SuggestComplementaryColors(ctx context.Context, photo, color string) (*designai.PaletteResult, error) {
	f.count(&f.compCalls)
	return &designai.PaletteResult{Palette: []string{"#ABCDEF"}, Reasoning: "accent pairing"}, nil
}

func (f *fakeProvider) SuggestPaintSheen(ctx context.Context, photo, color string) (*designai.SheenResult, error) {
	f.count(&f.sheenCalls)
	return &designai.SheenResult{SuggestedSheen: "Eggshell", Reasoning: "living room walls"}, nil
}

func (f *fakeProvider) RepaintWall(ctx context.Context, photo, color string) (string, error) {
	f.count(&f.repaintCalls)
	if f.repaintFn != nil {
		return f.repaintFn(ctx, photo, color)
	}
	return "data:image/png;base64,cmVwYWludGVk", nil
}

// newTestSession uses a debounce long enough that the auto-repaint
// timer never fires unless a test arranges for it.
func newTestSession(provider Provider) *Session {
	return NewSession(provider, time.Hour, 5*time.Second)
}

func completeAnswers() models.QuestionnaireAnswers {
	return models.QuestionnaireAnswers{
		FavoriteColor:      "forest green",
		Mood:               "Calm and Relaxing",
		AgeRange:           "26-35",
		Theme:              "Minimalist",
		RoomType:           "Living Room",
		LightingPreference: "Bright and Airy",
	}
}

func TestSelectionSetNeverHoldsDuplicates(t *testing.T) {
	s := newTestSession(&fakeProvider{})
	require.NoError(t, s.SetPhoto("room.png", testPhoto))

	require.NoError(t, s.AddColor("#AABBCC"))
	require.NoError(t, s.AddColor("#AABBCC"))
	require.NoError(t, s.AddColor("#112233"))
	require.NoError(t, s.SelectAsActive("#AABBCC"))
	require.NoError(t, s.SelectAsActive("#112233"))

	snap := s.Snapshot()
	assert.Equal(t, []string{"#AABBCC", "#112233"}, snap.SelectedColors)
	assert.Equal(t, "#112233", snap.ActiveColor)
}

func TestActiveColorIsAlwaysAMemberOrEmpty(t *testing.T) {
	s := newTestSession(&fakeProvider{})
	require.NoError(t, s.SetPhoto("room.png", testPhoto))

	ops := []func(){
		func() { s.AddColor("#000001") },
		func() { s.AddColor("#000002") },
		func() { s.SelectAsActive("#000003") },
		func() { s.RemoveColor("#000003") },
		func() { s.RemoveColor("#000001") },
		func() { s.RemoveColor("#000002") },
		func() { s.AddColor("#000004") },
	}

	for _, op := range ops {
		op()
		snap := s.Snapshot()
		if snap.ActiveColor == "" {
			continue
		}
		assert.Contains(t, snap.SelectedColors, snap.ActiveColor)
	}
}

func TestFirstAddedColorBecomesActive(t *testing.T) {
	s := newTestSession(&fakeProvider{})
	require.NoError(t, s.SetPhoto("room.png", testPhoto))

	require.NoError(t, s.AddColor("#AABBCC"))
	assert.Equal(t, "#AABBCC", s.Snapshot().ActiveColor)

	// Later additions leave the active color alone.
	require.NoError(t, s.AddColor("#112233"))
	assert.Equal(t, "#AABBCC", s.Snapshot().ActiveColor)
}

func TestSelectAsActiveAddsUnknownColor(t *testing.T) {
	s := newTestSession(&fakeProvider{})
	require.NoError(t, s.SetPhoto("room.png", testPhoto))

	require.NoError(t, s.SelectAsActive("#445566"))
	snap := s.Snapshot()
	assert.Equal(t, []string{"#445566"}, snap.SelectedColors)
	assert.Equal(t, "#445566", snap.ActiveColor)
}

func TestRemoveActiveColorReassignsToFirstRemaining(t *testing.T) {
	s := newTestSession(&fakeProvider{})
	require.NoError(t, s.SetPhoto("room.png", testPhoto))

	require.NoError(t, s.AddColor("#000001"))
	require.NoError(t, s.AddColor("#000002"))
	require.NoError(t, s.SelectAsActive("#000002"))

	s.RemoveColor("#000002")
	assert.Equal(t, "#000001", s.Snapshot().ActiveColor)

	s.RemoveColor("#000001")
	snap := s.Snapshot()
	assert.Empty(t, snap.ActiveColor)
	assert.Empty(t, snap.SelectedColors)
}

func TestRemoveNonMemberIsANoOp(t *testing.T) {
	s := newTestSession(&fakeProvider{})
	require.NoError(t, s.SetPhoto("room.png", testPhoto))
	require.NoError(t, s.AddColor("#AABBCC"))

	s.RemoveColor("#FFFFFF")

	snap := s.Snapshot()
	assert.Equal(t, []string{"#AABBCC"}, snap.SelectedColors)
	assert.Equal(t, "#AABBCC", snap.ActiveColor)
}

func TestMalformedColorRejectedWithoutMutation(t *testing.T) {
	s := newTestSession(&fakeProvider{})
	require.NoError(t, s.SetPhoto("room.png", testPhoto))

	for _, bad := range []string{"", "red", "#12345", "#1234567", "123456", "#12G456"} {
		assert.ErrorIs(t, s.AddColor(bad), ErrInvalidColor, "AddColor(%q)", bad)
		assert.ErrorIs(t, s.SelectAsActive(bad), ErrInvalidColor, "SelectAsActive(%q)", bad)
	}

	snap := s.Snapshot()
	assert.Empty(t, snap.SelectedColors)
	assert.Empty(t, snap.ActiveColor)
}

func TestSetPhotoResetsDerivedState(t *testing.T) {
	provider := &fakeProvider{}
	s := newTestSession(provider)
	require.NoError(t, s.SetPhoto("before.png", testPhoto))

	require.NoError(t, s.AddColor("#AABBCC"))
	require.NoError(t, s.GeneratePalette(context.Background()))
	require.NoError(t, s.SuggestSheen(context.Background()))
	require.NoError(t, s.SuggestComplementary(context.Background()))
	require.NoError(t, s.Repaint(context.Background()))
	require.NoError(t, s.SuggestFromPreferences(context.Background(), completeAnswers()))
	assert.Equal(t, ReadyForSuggestions, s.Gate())

	require.NoError(t, s.SetPhoto("after.png", "data:image/jpeg;base64,ZnJlc2g="))

	snap := s.Snapshot()
	assert.Empty(t, snap.SelectedColors)
	assert.Empty(t, snap.ActiveColor)
	assert.Empty(t, snap.Palette.Suggestion)
	assert.Empty(t, snap.Sheen.Suggestion)
	assert.Empty(t, snap.Complementary.Suggestion)
	assert.Empty(t, snap.RepaintedImage.Suggestion)
	assert.Nil(t, snap.QuestionnaireAnswers)
	assert.Equal(t, string(CollectingPreferences), snap.GateState)
}

func TestSetPhotoAutoTriggersWallColorDetection(t *testing.T) {
	provider := &fakeProvider{}
	s := newTestSession(provider)

	require.NoError(t, s.SetPhoto("room.png", testPhoto))

	assert.Eventually(t, func() bool {
		return provider.calls(&provider.detectCalls) == 1 &&
			len(s.Snapshot().DetectedWallColors.Suggestion) == 1
	}, 2*time.Second, 10*time.Millisecond)

	snap := s.Snapshot()
	assert.Equal(t, "Light Beige", snap.DetectedWallColors.Suggestion[0].Name)

	// Color changes never re-trigger detection.
	require.NoError(t, s.AddColor("#AABBCC"))
	require.NoError(t, s.SelectAsActive("#112233"))
	assert.Equal(t, 1, provider.calls(&provider.detectCalls))
}

func TestPreferenceGateLifecycle(t *testing.T) {
	provider := &fakeProvider{}
	s := newTestSession(provider)

	assert.Equal(t, CollectingPreferences, s.Gate())

	require.NoError(t, s.SetPhoto("room.png", testPhoto))
	assert.Equal(t, CollectingPreferences, s.Gate())

	require.NoError(t, s.SuggestFromPreferences(context.Background(), completeAnswers()))
	assert.Equal(t, ReadyForSuggestions, s.Gate())

	// A fresh photo closes the gate and clears the answers.
	require.NoError(t, s.SetPhoto("other.png", testPhoto))
	assert.Equal(t, CollectingPreferences, s.Gate())
	assert.Nil(t, s.Snapshot().QuestionnaireAnswers)
}

func TestIncompleteQuestionnaireRejectedLocally(t *testing.T) {
	provider := &fakeProvider{}
	s := newTestSession(provider)
	require.NoError(t, s.SetPhoto("room.png", testPhoto))

	answers := completeAnswers()
	answers.Mood = "   "

	err := s.SuggestFromPreferences(context.Background(), answers)
	assert.ErrorIs(t, err, ErrIncompleteQuestionnaire)
	assert.Equal(t, 0, provider.calls(&provider.prefCalls))
	assert.Equal(t, CollectingPreferences, s.Gate())
}

func TestPreferenceFailureKeepsGateClosed(t *testing.T) {
	provider := &fakeProvider{
		prefFn: func(ctx context.Context, photo string, answers models.QuestionnaireAnswers) (*designai.PaletteResult, error) {
			return nil, assert.AnError
		},
	}
	s := newTestSession(provider)
	require.NoError(t, s.SetPhoto("room.png", testPhoto))

	require.NoError(t, s.SuggestFromPreferences(context.Background(), completeAnswers()))

	assert.Equal(t, CollectingPreferences, s.Gate())
	assert.NotEmpty(t, s.Snapshot().Palette.Error)
}

func TestLoadProjectRestoresStateAndOpensGate(t *testing.T) {
	s := newTestSession(&fakeProvider{})

	answers := completeAnswers()
	s.LoadProject(models.Project{
		ID:                      "project-1",
		Name:                    "Living Room Makeover",
		OriginalPhotoDataURI:    testPhoto,
		AIRepaintedPhotoDataURI: "data:image/png;base64,b2xk",
		SelectedColors:          []string{"#AABBCC", "#112233"},
		AISuggestedPalette:      &models.ColorSuggestion{Suggestion: []string{"#445566"}},
		QuestionnaireAnswers:    &answers,
		CreatedAt:               "2026-01-02T15:04:05Z",
	})

	snap := s.Snapshot()
	assert.Equal(t, "project-1", snap.EditingProjectID)
	assert.Equal(t, "#AABBCC", snap.ActiveColor)
	assert.Equal(t, "data:image/png;base64,b2xk", snap.RepaintedImage.Suggestion)
	assert.Equal(t, "Previously repainted by AI.", snap.RepaintedImage.Reasoning)
	assert.Equal(t, string(ReadyForSuggestions), snap.GateState)
}

func TestLoadProjectWithoutColorsActivatesFirstPaletteEntry(t *testing.T) {
	s := newTestSession(&fakeProvider{})

	s.LoadProject(models.Project{
		ID:                   "project-2",
		OriginalPhotoDataURI: testPhoto,
		AISuggestedPalette:   &models.ColorSuggestion{Suggestion: []string{"#987654", "#123456"}},
		CreatedAt:            "2026-01-02T15:04:05Z",
	})

	assert.Equal(t, "#987654", s.Snapshot().ActiveColor)
}
