package auth

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"la-interior-backend/internal/models"
	"la-interior-backend/internal/store"
)

var (
	ErrMissingFields      = errors.New("username, email, password, and PIN are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrInvalidPIN         = errors.New("PIN must be exactly 6 digits")
	ErrInvalidEmail       = errors.New("please enter a valid @gmail.com email address")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var (
	pinPattern   = regexp.MustCompile(`^\d{6}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@gmail\.com$`)
)

// Service implements account registration, login, and credential
// updates over the user store. Passwords and PINs are stored only as
// bcrypt hashes.
type Service struct {
	store     *store.Store
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewService(st *store.Store, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{
		store:     st,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Register validates the request, hashes the credentials, and stores
// the account. Field validation happens before any storage access.
func (s *Service) Register(req models.RegisterRequest) (*models.User, string, error) {
	if req.Username == "" || req.Password == "" || req.PIN == "" || req.Email == "" {
		return nil, "", ErrMissingFields
	}
	if len(req.Password) < 6 {
		return nil, "", ErrPasswordTooShort
	}
	if !pinPattern.MatchString(req.PIN) {
		return nil, "", ErrInvalidPIN
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, "", ErrInvalidEmail
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}
	pinHash, err := bcrypt.GenerateFromPassword([]byte(req.PIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash PIN: %w", err)
	}

	user := models.StoredUser{
		User: models.User{
			ID:          uuid.NewString(),
			Username:    strings.ToLower(req.Username),
			FullName:    req.FullName,
			Email:       strings.ToLower(req.Email),
			CountryCode: req.CountryCode,
			PhoneNumber: req.PhoneNumber,
		},
		PasswordHash: string(passwordHash),
		PINHash:      string(pinHash),
	}

	if err := s.store.CreateUser(user); err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(user.User)
	if err != nil {
		return nil, "", err
	}

	sanitized := user.Sanitized()
	return &sanitized, token, nil
}

// Login checks the password and PIN against the stored hashes. Unknown
// user, wrong password, and wrong PIN all collapse into the same
// rejection.
func (s *Service) Login(username, password, pin string) (*models.User, string, error) {
	if username == "" || password == "" || pin == "" {
		return nil, "", ErrMissingFields
	}

	user, err := s.store.FindUser(username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PINHash), []byte(pin)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.generateToken(user.User)
	if err != nil {
		return nil, "", err
	}

	sanitized := user.Sanitized()
	return &sanitized, token, nil
}

// Profile returns the sanitized account record.
func (s *Service) Profile(username string) (*models.User, error) {
	user, err := s.store.FindUser(username)
	if err != nil {
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// UpdateProfile overwrites the non-credential account fields.
func (s *Service) UpdateProfile(username string, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.store.FindUser(username)
	if err != nil {
		return nil, err
	}

	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}

	user.FullName = req.FullName
	user.CountryCode = req.CountryCode
	user.PhoneNumber = req.PhoneNumber
	if req.Email != "" {
		user.Email = strings.ToLower(req.Email)
	}

	if err := s.store.UpdateUser(*user); err != nil {
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// UpdatePassword verifies the current password before rehashing.
func (s *Service) UpdatePassword(username, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return ErrMissingFields
	}
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}

	user, err := s.store.FindUser(username)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	return s.store.UpdateUser(*user)
}

// UpdatePIN verifies the account password before rehashing the PIN.
func (s *Service) UpdatePIN(username, password, newPIN string) error {
	if password == "" || newPIN == "" {
		return ErrMissingFields
	}
	if !pinPattern.MatchString(newPIN) {
		return ErrInvalidPIN
	}

	user, err := s.store.FindUser(username)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPIN), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}
	user.PINHash = string(hash)

	return s.store.UpdateUser(*user)
}

func (s *Service) generateToken(user models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
