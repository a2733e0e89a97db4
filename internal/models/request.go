package models

type RegisterRequest struct {
	FullName    string `json:"fullName"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	CountryCode string `json:"countryCode"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	PIN         string `json:"pin"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	PIN      string `json:"pin"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type UpdatePINRequest struct {
	Password string `json:"password"`
	NewPIN   string `json:"newPin"`
}

type UpdateProfileRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	CountryCode string `json:"countryCode"`
	PhoneNumber string `json:"phoneNumber"`
}

type SetPhotoRequest struct {
	Name    string `json:"name"`
	DataURL string `json:"dataUrl"`
}

type ColorRequest struct {
	Color string `json:"color"`
}

type SaveProjectRequest struct {
	Name string `json:"name"`
	// ProjectID set means the save is an edit of an existing record.
	ProjectID string `json:"projectId,omitempty"`
}

type InspirationRequest struct {
	Prompt string `json:"prompt"`
}
