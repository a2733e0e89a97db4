package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type AuthResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
	Message     string `json:"message,omitempty"`
}

type ProfileResponse struct {
	User User `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// SessionSnapshot is the full UI-visible state of a design session.
type SessionSnapshot struct {
	PhotoName            string                `json:"photoName,omitempty"`
	PhotoDataURL         string                `json:"photoDataUrl,omitempty"`
	SelectedColors       []string              `json:"selectedColors"`
	ActiveColor          string                `json:"activeColor,omitempty"`
	Palette              ColorSuggestion       `json:"aiSuggestedPalette"`
	Sheen                TextSuggestion        `json:"sheenSuggestion"`
	Complementary        ColorSuggestion       `json:"complementaryColorsSuggestion"`
	DetectedWallColors   WallColorSuggestion   `json:"aiDetectedWallColors"`
	RepaintedImage       ImageSuggestion       `json:"aiRepaintedImage"`
	QuestionnaireAnswers *QuestionnaireAnswers `json:"questionnaireAnswers,omitempty"`
	GateState            string                `json:"gateState"`
	EditingProjectID     string                `json:"editingProjectId,omitempty"`
}

type ProjectListResponse struct {
	Projects []ProjectSummary `json:"projects"`
}

type ProjectSummary struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	RoomPhotoURL   string   `json:"roomPhotoUrl"`
	SelectedColors []string `json:"selectedColors"`
	CreatedAt      string   `json:"createdAt"`
}

type InspirationResponse struct {
	ImageDataURI  string `json:"imageDataUri"`
	RevisedPrompt string `json:"revisedPrompt,omitempty"`
}
