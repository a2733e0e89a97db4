package workflow

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"la-interior-backend/internal/designai"
	"la-interior-backend/internal/models"
)

var (
	ErrNoPhoto                 = errors.New("a room photo must be uploaded first")
	ErrNoActiveColor           = errors.New("an active color must be selected first")
	ErrInvalidColor            = errors.New("color must be a hex value like #RRGGBB")
	ErrIncompleteQuestionnaire = errors.New("all questionnaire answers are required")
	ErrNoProjectName           = errors.New("a project name is required")
)

// GateState sequences access to preference-based suggestions.
type GateState string

const (
	CollectingPreferences GateState = "collecting_preferences"
	ReadyForSuggestions   GateState = "ready_for_suggestions"
)

// Provider is the external AI surface a session drives. Implemented by
// *designai.Client; tests substitute fakes.
type Provider interface {
	DetectWallColors(ctx context.Context, photoDataURI string) (*designai.WallColorResult, error)
	GeneratePalette(ctx context.Context, photoDataURI string) (*designai.PaletteResult, error)
	SuggestPaletteFromPreferences(ctx context.Context, photoDataURI string, answers models.QuestionnaireAnswers) (*designai.PaletteResult, error)
	SuggestComplementaryColors(ctx context.Context, photoDataURI, color string) (*designai.PaletteResult, error)
	SuggestPaintSheen(ctx context.Context, photoDataURI, color string) (*designai.SheenResult, error)
	RepaintWall(ctx context.Context, photoDataURI, color string) (string, error)
}

// Session coordinates one user's design workflow: the uploaded photo,
// the working set of candidate colors, the per-provider suggestion
// state, the preference gate, and assembly of the persisted project
// record. All state sits behind one mutex; provider calls run outside
// the lock and re-validate their dispatch sequence before applying
// results, so a stale resolution never overwrites a newer one.
type Session struct {
	mu       sync.Mutex
	provider Provider

	debounce time.Duration
	timeout  time.Duration

	photoName    string
	photoDataURL string

	selectedColors []string
	activeColor    string

	palette       models.ColorSuggestion
	sheen         models.TextSuggestion
	complementary models.ColorSuggestion
	detected      models.WallColorSuggestion
	repainted     models.ImageSuggestion

	answers *models.QuestionnaireAnswers
	gate    GateState

	// Editing identity, set when a stored project is loaded. Assembly
	// preserves these instead of minting new ones.
	editingID        string
	editingCreatedAt string

	// Per-slot dispatch sequences for stale-response rejection.
	paletteSeq       uint64
	sheenSeq         uint64
	complementarySeq uint64
	detectSeq        uint64
	repaintSeq       uint64

	// Single-slot debounce timer for auto-repaint.
	repaintTimer *time.Timer
}

func NewSession(provider Provider, debounce, timeout time.Duration) *Session {
	return &Session{
		provider: provider,
		debounce: debounce,
		timeout:  timeout,
		gate:     CollectingPreferences,
	}
}

// SetPhoto replaces the room photo and resets every piece of derived
// state: the selection set, the active color, all suggestion slots,
// the questionnaire answers, and the preference gate. In-flight
// provider calls are orphaned by bumping every dispatch sequence.
// Wall-color detection fires automatically for the new photo.
func (s *Session) SetPhoto(name, dataURL string) error {
	if !strings.HasPrefix(dataURL, "data:") {
		return errors.New("photo must be a base64 data URL")
	}

	s.mu.Lock()
	s.photoName = name
	s.photoDataURL = dataURL

	s.selectedColors = nil
	s.activeColor = ""
	s.palette = models.ColorSuggestion{}
	s.sheen = models.TextSuggestion{}
	s.complementary = models.ColorSuggestion{}
	s.detected = models.WallColorSuggestion{}
	s.repainted = models.ImageSuggestion{}

	s.answers = nil
	s.gate = CollectingPreferences

	s.paletteSeq++
	s.sheenSeq++
	s.complementarySeq++
	s.detectSeq++
	s.repaintSeq++

	s.cancelPendingRepaintLocked()
	s.mu.Unlock()

	// Detection is keyed to photo upload, not to color changes, and
	// runs once per upload.
	go s.DetectWallColors(context.Background())

	return nil
}

// SetQuestionnaire stores the user's preference answers. Incomplete
// answers are rejected so the gate cannot be satisfied by a partial
// record.
func (s *Session) SetQuestionnaire(answers models.QuestionnaireAnswers) error {
	if !answers.Complete() {
		return ErrIncompleteQuestionnaire
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	copied := answers
	s.answers = &copied
	return nil
}

// AddColor validates value and appends it to the selection set if it
// is not already present. The first color added becomes active.
func (s *Session) AddColor(value string) error {
	if !models.ValidHexColor(value) {
		return ErrInvalidColor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.selectedColors {
		if c == value {
			return nil
		}
	}
	s.selectedColors = append(s.selectedColors, value)
	if s.activeColor == "" {
		s.setActiveLocked(value)
	}
	return nil
}

// SelectAsActive makes value the active color, adding it to the
// selection set first if needed.
func (s *Session) SelectAsActive(value string) error {
	if !models.ValidHexColor(value) {
		return ErrInvalidColor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	present := false
	for _, c := range s.selectedColors {
		if c == value {
			present = true
			break
		}
	}
	if !present {
		s.selectedColors = append(s.selectedColors, value)
	}
	s.setActiveLocked(value)
	return nil
}

// RemoveColor removes value from the selection set. Removing the
// active color reassigns active to the first remaining member, or
// clears it when the set is empty. Removing a non-member is a no-op.
func (s *Session) RemoveColor(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, c := range s.selectedColors {
		if c == value {
			index = i
			break
		}
	}
	if index == -1 {
		return
	}

	s.selectedColors = append(s.selectedColors[:index], s.selectedColors[index+1:]...)
	if s.activeColor == value {
		if len(s.selectedColors) > 0 {
			s.setActiveLocked(s.selectedColors[0])
		} else {
			s.activeColor = ""
			s.cancelPendingRepaintLocked()
		}
	}
}

// setActiveLocked updates the active color and, on a genuine change,
// schedules the debounced auto-repaint.
func (s *Session) setActiveLocked(value string) {
	if s.activeColor == value {
		return
	}
	s.activeColor = value
	s.scheduleRepaintLocked()
}

// scheduleRepaintLocked arms the single-slot repaint timer, replacing
// any pending one so a burst of color picks collapses into one call.
func (s *Session) scheduleRepaintLocked() {
	if s.photoDataURL == "" || s.activeColor == "" {
		return
	}
	s.cancelPendingRepaintLocked()
	s.repaintTimer = time.AfterFunc(s.debounce, s.autoRepaint)
}

func (s *Session) cancelPendingRepaintLocked() {
	if s.repaintTimer != nil {
		s.repaintTimer.Stop()
		s.repaintTimer = nil
	}
}

// autoRepaint runs when the debounce timer fires. A repaint already in
// flight wins over the timer and this trigger is dropped, even though
// the in-flight call may carry an older color. The next color change
// or a manual repaint catches the session up.
func (s *Session) autoRepaint() {
	s.mu.Lock()
	if s.photoDataURL == "" || s.activeColor == "" || s.repainted.IsLoading {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.Repaint(context.Background())
}

// LoadProject primes the session from a stored project for editing.
// Stored answers put the gate directly into ReadyForSuggestions.
func (s *Session) LoadProject(project models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editingID = project.ID
	s.editingCreatedAt = project.CreatedAt

	s.photoName = "Uploaded room image"
	s.photoDataURL = project.OriginalPhotoDataURI
	s.selectedColors = append([]string(nil), project.SelectedColors...)

	s.palette = models.ColorSuggestion{}
	if project.AISuggestedPalette != nil {
		s.palette = *project.AISuggestedPalette
	}
	s.sheen = models.TextSuggestion{}
	if project.SheenSuggestion != nil {
		s.sheen = *project.SheenSuggestion
	}
	s.complementary = models.ColorSuggestion{}
	if project.ComplementaryColors != nil {
		s.complementary = *project.ComplementaryColors
	}
	s.detected = models.WallColorSuggestion{}
	if project.AIDetectedWallColors != nil {
		s.detected = *project.AIDetectedWallColors
	}
	s.repainted = models.ImageSuggestion{}
	if project.AIRepaintedPhotoDataURI != "" {
		s.repainted = models.ImageSuggestion{
			Suggestion: project.AIRepaintedPhotoDataURI,
			Reasoning:  "Previously repainted by AI.",
		}
	}

	s.answers = nil
	s.gate = CollectingPreferences
	if project.QuestionnaireAnswers != nil {
		copied := *project.QuestionnaireAnswers
		s.answers = &copied
		s.gate = ReadyForSuggestions
	}

	// First selected color drives the AI tools, falling back to the
	// first palette entry.
	s.activeColor = ""
	if len(s.selectedColors) > 0 {
		s.activeColor = s.selectedColors[0]
	} else if len(s.palette.Suggestion) > 0 {
		s.activeColor = s.palette.Suggestion[0]
	}
}

// Gate returns the preference-gate state.
func (s *Session) Gate() GateState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gate
}

// Snapshot returns a deep copy of the UI-visible session state.
func (s *Session) Snapshot() models.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := models.SessionSnapshot{
		PhotoName:      s.photoName,
		PhotoDataURL:   s.photoDataURL,
		SelectedColors: append([]string(nil), s.selectedColors...),
		ActiveColor:    s.activeColor,
		Palette:        copyColorSuggestion(s.palette),
		Sheen:          s.sheen,
		Complementary:  copyColorSuggestion(s.complementary),
		DetectedWallColors: models.WallColorSuggestion{
			Suggestion: append([]models.DetectedWallColor(nil), s.detected.Suggestion...),
			Reasoning:  s.detected.Reasoning,
			IsLoading:  s.detected.IsLoading,
			Error:      s.detected.Error,
		},
		RepaintedImage:   s.repainted,
		GateState:        string(s.gate),
		EditingProjectID: s.editingID,
	}
	if s.answers != nil {
		copied := *s.answers
		snap.QuestionnaireAnswers = &copied
	}
	return snap
}

func copyColorSuggestion(src models.ColorSuggestion) models.ColorSuggestion {
	out := src
	out.Suggestion = append([]string(nil), src.Suggestion...)
	return out
}
