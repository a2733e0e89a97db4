package models

// User is the public view of an account, safe to return to clients.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"fullName,omitempty"`
	Email       string `json:"email,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// StoredUser is the persisted account record. Only hashes are stored,
// never the plaintext password or PIN.
type StoredUser struct {
	User
	PasswordHash string `json:"passwordHash"`
	PINHash      string `json:"pinHash"`
}

// Sanitized strips credential hashes for responses.
func (u StoredUser) Sanitized() User {
	return u.User
}
