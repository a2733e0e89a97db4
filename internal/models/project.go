package models

import (
	"regexp"
	"strings"
)

// hexColorPattern matches the only color form accepted anywhere in the
// system: "#" followed by six hex digits, case preserved as supplied.
var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidHexColor reports whether value is a well-formed hex color.
func ValidHexColor(value string) bool {
	return hexColorPattern.MatchString(value)
}

// DetectedWallColor is a single wall color identified by the detection
// provider. Read-only output; the hex becomes selectable by the user.
type DetectedWallColor struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
}

// ColorSuggestion tracks one provider's palette-shaped result
// (generated palette, preference palette, complementary colors).
type ColorSuggestion struct {
	Suggestion []string `json:"suggestion"`
	Reasoning  string   `json:"reasoning"`
	IsLoading  bool     `json:"isLoading"`
	Error      string   `json:"error,omitempty"`
}

func (s ColorSuggestion) Empty() bool { return len(s.Suggestion) == 0 }

// TextSuggestion tracks a single-string result (paint sheen).
type TextSuggestion struct {
	Suggestion string `json:"suggestion"`
	Reasoning  string `json:"reasoning"`
	IsLoading  bool   `json:"isLoading"`
	Error      string `json:"error,omitempty"`
}

func (s TextSuggestion) Empty() bool { return strings.TrimSpace(s.Suggestion) == "" }

// WallColorSuggestion tracks the wall-color-detection result.
type WallColorSuggestion struct {
	Suggestion []DetectedWallColor `json:"suggestion"`
	Reasoning  string              `json:"reasoning"`
	IsLoading  bool                `json:"isLoading"`
	Error      string              `json:"error,omitempty"`
}

func (s WallColorSuggestion) Empty() bool { return len(s.Suggestion) == 0 }

// ImageSuggestion tracks the repainted-image result. The suggestion is
// a data URI; while a new repaint is in flight the previous value is
// kept so the caller can keep displaying the last good image.
type ImageSuggestion struct {
	Suggestion string `json:"suggestion"`
	Reasoning  string `json:"reasoning"`
	IsLoading  bool   `json:"isLoading"`
	Error      string `json:"error,omitempty"`
}

func (s ImageSuggestion) Empty() bool { return s.Suggestion == "" }

// QuestionnaireAnswers is the fixed preference record gathered before
// preference-based palette suggestions are allowed.
type QuestionnaireAnswers struct {
	FavoriteColor      string `json:"favoriteColor"`
	Mood               string `json:"mood"`
	AgeRange           string `json:"ageRange"`
	Theme              string `json:"theme"`
	RoomType           string `json:"roomType"`
	LightingPreference string `json:"lightingPreference"`
}

// Complete reports whether every field holds a non-blank answer.
func (q QuestionnaireAnswers) Complete() bool {
	for _, field := range []string{
		q.FavoriteColor, q.Mood, q.AgeRange, q.Theme, q.RoomType, q.LightingPreference,
	} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}

// Project is the persisted aggregate of one design session. Field
// names mirror the record the web client stores so exports stay
// interchangeable.
type Project struct {
	ID                      string                `json:"id"`
	Name                    string                `json:"name"`
	RoomPhotoURL            string                `json:"roomPhotoUrl"`
	OriginalPhotoDataURI    string                `json:"originalPhotoDataUri"`
	AIRepaintedPhotoDataURI string                `json:"aiRepaintedPhotoDataUri,omitempty"`
	SelectedColors          []string              `json:"selectedColors"`
	AISuggestedPalette      *ColorSuggestion      `json:"aiSuggestedPalette"`
	SheenSuggestion         *TextSuggestion       `json:"sheenSuggestion"`
	ComplementaryColors     *ColorSuggestion      `json:"complementaryColorsSuggestion"`
	AIDetectedWallColors    *WallColorSuggestion  `json:"aiDetectedWallColors,omitempty"`
	QuestionnaireAnswers    *QuestionnaireAnswers `json:"questionnaireAnswers,omitempty"`
	CreatedAt               string                `json:"createdAt"`
}

// StoredProject wraps a Project with its owner for the persisted
// collection.
type StoredProject struct {
	UserID string `json:"userId"`
	Project
}
