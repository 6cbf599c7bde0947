package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/berean/internal/bible"
)

func newTestManager() *Manager {
	return NewManager(bible.NewLibrary(testDataDir), &stubAnnotations{}, "kjv")
}

func TestManager_SessionPerToken(t *testing.T) {
	m := newTestManager()

	first := m.Session("token-a", 1)
	second := m.Session("token-a", 1)
	other := m.Session("token-b", 2)

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, m.Count())
}

func TestManager_AnonymousShareOneSession(t *testing.T) {
	m := newTestManager()

	assert.Same(t, m.Session("", 0), m.Session("", 0))
	assert.Equal(t, 1, m.Count())
}

func TestManager_Drop(t *testing.T) {
	m := newTestManager()

	first := m.Session("token-a", 1)
	m.Drop("token-a")

	assert.Equal(t, 0, m.Count())
	assert.NotSame(t, first, m.Session("token-a", 1))
}

func TestManager_UnknownDefaultTranslation(t *testing.T) {
	m := NewManager(bible.NewLibrary(testDataDir), &stubAnnotations{}, "bogus")

	s := m.Session("token", 1)
	assert.Equal(t, bible.DefaultTranslationID, s.TranslationID())
}
