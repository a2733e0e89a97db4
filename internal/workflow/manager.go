package workflow

import (
	"sync"
	"time"
)

// Manager hands out one Session per user. It is the single injected
// owner of workflow state; nothing else holds session references.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	provider Provider
	debounce time.Duration
	timeout  time.Duration
}

func NewManager(provider Provider, debounce, timeout time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		provider: provider,
		debounce: debounce,
		timeout:  timeout,
	}
}

// Get returns the user's session, creating it on first use.
func (m *Manager) Get(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[userID]
	if !ok {
		session = NewSession(m.provider, m.debounce, m.timeout)
		m.sessions[userID] = session
	}
	return session
}

// Reset discards the user's session so the next Get starts a blank
// project.
func (m *Manager) Reset(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[userID]; ok {
		session.mu.Lock()
		session.cancelPendingRepaintLocked()
		session.mu.Unlock()
	}
	delete(m.sessions, userID)
}
