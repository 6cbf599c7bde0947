package reader

import (
	"sync"

	"github.com/mrlokans/berean/internal/bible"
)

// anonymousKey groups requests that carry no session token. With auth
// disabled this yields a single shared reading position, matching a
// single-reader deployment.
const anonymousKey = "anonymous"

// Manager hands out one Session per browser session token, created lazily.
type Manager struct {
	library            *bible.Library
	annotations        AnnotationSource
	defaultTranslation string

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session registry backed by the given library.
func NewManager(library *bible.Library, annotations AnnotationSource, defaultTranslation string) *Manager {
	if _, ok := bible.TranslationByID(defaultTranslation); !ok {
		defaultTranslation = bible.DefaultTranslationID
	}
	return &Manager{
		library:            library,
		annotations:        annotations,
		defaultTranslation: defaultTranslation,
		sessions:           make(map[string]*Session),
	}
}

// Session returns the session for a token, creating it on first use.
func (m *Manager) Session(token string, userID uint) *Session {
	if token == "" {
		token = anonymousKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[token]; ok {
		return s
	}
	s := NewSession(m.library, m.annotations, userID, m.defaultTranslation)
	m.sessions[token] = s
	return s
}

// Drop discards the session for a token, typically on logout.
func (m *Manager) Drop(token string) {
	if token == "" {
		token = anonymousKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

// Count reports how many sessions are live.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
