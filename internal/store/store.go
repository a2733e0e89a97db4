package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"la-interior-backend/internal/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrEmailTaken      = errors.New("email already registered")
	ErrProjectNotFound = errors.New("project not found")
)

const (
	usersFile    = "users.json"
	projectsFile = "projects.json"
)

// Store persists users and projects as whole JSON collections on
// disk. Every read loads the full collection and every write replaces
// it; there is no partial update and no cross-process locking. The
// mutex serializes access within this process.
type Store struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func readCollection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return records, nil
}

func writeCollection[T any](path string, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}

	// Write-then-rename so a crash mid-write never truncates the
	// collection.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(tmp), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

func (s *Store) usersPath() string    { return filepath.Join(s.dir, usersFile) }
func (s *Store) projectsPath() string { return filepath.Join(s.dir, projectsFile) }

// FindUser looks up a user by username, case-insensitively.
func (s *Store) FindUser(username string) (*models.StoredUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := readCollection[models.StoredUser](s.usersPath())
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(username)
	for i := range users {
		if users[i].Username == lower {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// CreateUser appends a new user record. Usernames are stored
// lowercased; a duplicate username or email is a conflict.
func (s *Store) CreateUser(user models.StoredUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := readCollection[models.StoredUser](s.usersPath())
	if err != nil {
		return err
	}

	user.Username = strings.ToLower(user.Username)
	user.Email = strings.ToLower(user.Email)
	for _, existing := range users {
		if existing.Username == user.Username {
			return ErrUsernameTaken
		}
		if user.Email != "" && strings.EqualFold(existing.Email, user.Email) {
			return ErrEmailTaken
		}
	}

	return writeCollection(s.usersPath(), append(users, user))
}

// UpdateUser replaces the record matching user.Username.
func (s *Store) UpdateUser(user models.StoredUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := readCollection[models.StoredUser](s.usersPath())
	if err != nil {
		return err
	}

	lower := strings.ToLower(user.Username)
	for i := range users {
		if users[i].Username == lower {
			user.Username = lower
			users[i] = user
			return writeCollection(s.usersPath(), users)
		}
	}
	return ErrUserNotFound
}

// ListProjects returns the projects owned by userID, newest first in
// insertion order (the collection is append-ordered).
func (s *Store) ListProjects(userID string) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := readCollection[models.StoredProject](s.projectsPath())
	if err != nil {
		return nil, err
	}

	var projects []models.Project
	for _, record := range records {
		if record.UserID == userID {
			projects = append(projects, record.Project)
		}
	}
	return projects, nil
}

// FindProject returns the project with the given id if userID owns it.
func (s *Store) FindProject(userID, id string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := readCollection[models.StoredProject](s.projectsPath())
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.UserID == userID && record.ID == id {
			project := record.Project
			return &project, nil
		}
	}
	return nil, ErrProjectNotFound
}

// SaveProject appends a new record or, when isEditing is set, replaces
// the record with the same id. Editing a record that no longer exists
// is ErrProjectNotFound.
func (s *Store) SaveProject(userID string, project models.Project, isEditing bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := readCollection[models.StoredProject](s.projectsPath())
	if err != nil {
		return err
	}

	if isEditing {
		for i := range records {
			if records[i].UserID == userID && records[i].ID == project.ID {
				records[i].Project = project
				return writeCollection(s.projectsPath(), records)
			}
		}
		return ErrProjectNotFound
	}

	records = append(records, models.StoredProject{UserID: userID, Project: project})
	return writeCollection(s.projectsPath(), records)
}

// DeleteProject removes the project with the given id if userID owns
// it.
func (s *Store) DeleteProject(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := readCollection[models.StoredProject](s.projectsPath())
	if err != nil {
		return err
	}

	for i, record := range records {
		if record.UserID == userID && record.ID == id {
			records = append(records[:i], records[i+1:]...)
			return writeCollection(s.projectsPath(), records)
		}
	}
	return ErrProjectNotFound
}
