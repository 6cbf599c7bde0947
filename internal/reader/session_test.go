package reader

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/berean/internal/bible"
	"github.com/mrlokans/berean/internal/entities"
)

var testDataDir = filepath.Join("..", "bible", "testdata")

// stubAnnotations serves canned verse-scoped annotations keyed by
// kind|book_chapter_verse.
type stubAnnotations struct {
	records map[string]*entities.Annotation
	err     error
}

func annotationKey(kind entities.AnnotationKind, book string, chapter, verse int) string {
	return fmt.Sprintf("%s|%s_%d_%d", kind, book, chapter, verse)
}

func (s *stubAnnotations) FindVerseScoped(_ uint, kind entities.AnnotationKind, book string, chapter, verse int) (*entities.Annotation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records[annotationKey(kind, book, chapter, verse)], nil
}

func newTestSession(t *testing.T, annotations AnnotationSource) *Session {
	t.Helper()
	if annotations == nil {
		annotations = &stubAnnotations{}
	}
	return NewSession(bible.NewLibrary(testDataDir), annotations, 1, "kjv")
}

func TestSession_SetBook(t *testing.T) {
	s := newTestSession(t, nil)

	require.NoError(t, s.SetBook(context.Background(), "genesis"))

	state := s.State()
	require.NotNil(t, state.Book)
	assert.Equal(t, "genesis", state.Book.ID)
	assert.Equal(t, 1, state.ChapterNumber)
	require.NotNil(t, state.Chapter)
	assert.Len(t, state.Chapter.Verses, 5)
	assert.Nil(t, state.SelectedVerse)
	assert.False(t, state.Loading)
}

func TestSession_SetBook_ClearsSelection(t *testing.T) {
	s := newTestSession(t, nil)
	require.NoError(t, s.SetBook(context.Background(), "genesis"))
	require.NoError(t, s.NavigateToVerse(context.Background(), "genesis", 1, 1))
	require.NotNil(t, s.SelectedVerse())

	require.NoError(t, s.SetBook(context.Background(), "exodus"))

	assert.Nil(t, s.SelectedVerse())
}

func TestSession_SetBook_MissingData(t *testing.T) {
	s := newTestSession(t, nil)

	err := s.SetBook(context.Background(), "leviticus")
	assert.ErrorIs(t, err, bible.ErrBookDataMissing)

	// Position is untouched and loading is reset.
	state := s.State()
	assert.Nil(t, state.Book)
	assert.False(t, state.Loading)
}

func TestSession_SetBook_InvalidBook(t *testing.T) {
	s := newTestSession(t, nil)
	require.NoError(t, s.SetBook(context.Background(), "genesis"))
	require.NoError(t, s.NavigateToVerse(context.Background(), "genesis", 1, 1))

	assert.ErrorIs(t, s.SetBook(context.Background(), ""), bible.ErrInvalidBook)
	assert.ErrorIs(t, s.SetBook(context.Background(), "atlantis"), bible.ErrInvalidBook)

	// The id is rejected before any state changes, selection included.
	state := s.State()
	require.NotNil(t, state.Book)
	assert.Equal(t, "genesis", state.Book.ID)
	require.NotNil(t, state.SelectedVerse)
	assert.False(t, state.Loading)
}

func TestSession_NavigateToVerse(t *testing.T) {
	notes := &stubAnnotations{records: map[string]*entities.Annotation{
		annotationKey(entities.AnnotationKindNote, "genesis", 1, 2): {PublicID: "n1", Text: "a note"},
	}}
	s := newTestSession(t, notes)
	require.NoError(t, s.SetBook(context.Background(), "genesis"))

	require.NoError(t, s.NavigateToVerse(context.Background(), "genesis", 1, 2))

	state := s.State()
	require.NotNil(t, state.SelectedVerse)
	assert.Equal(t, "kjv_genesis_1_2", state.SelectedVerse.ID)
	require.NotNil(t, state.ActiveNote)
	assert.Equal(t, "a note", state.ActiveNote.Text)
	assert.Nil(t, state.ActiveQuestion)
}

func TestSession_NavigateToVerse_Toggle(t *testing.T) {
	s := newTestSession(t, nil)
	require.NoError(t, s.SetBook(context.Background(), "genesis"))

	require.NoError(t, s.NavigateToVerse(context.Background(), "genesis", 1, 1))
	require.NotNil(t, s.SelectedVerse())

	// Selecting the active verse again deselects it.
	require.NoError(t, s.NavigateToVerse(context.Background(), "genesis", 1, 1))
	assert.Nil(t, s.SelectedVerse())

	// And a third call selects it once more.
	require.NoError(t, s.NavigateToVerse(context.Background(), "genesis", 1, 1))
	assert.NotNil(t, s.SelectedVerse())
}

func TestSession_NavigateToVerse_SwitchesChapter(t *testing.T) {
	s := newTestSession(t, nil)
	require.NoError(t, s.SetBook(context.Background(), "genesis"))

	require.NoError(t, s.NavigateToVerse(context.Background(), "genesis", 2, 3))

	state := s.State()
	assert.Equal(t, 2, state.ChapterNumber)
	require.NotNil(t, state.SelectedVerse)
	assert.Equal(t, "kjv_genesis_2_3", state.SelectedVerse.ID)
}

func TestSession_NavigateToVerse_CrossBook(t *testing.T) {
	s := newTestSession(t, nil)
	require.NoError(t, s.SetBook(context.Background(), "genesis"))

	// The book switch completes before the verse lookup runs.
	require.NoError(t, s.NavigateToVerse(context.Background(), "exodus", 1, 2))

	state := s.State()
	require.NotNil(t, state.Book)
	assert.Equal(t, "exodus", state.Book.ID)
	require.NotNil(t, state.SelectedVerse)
	assert.Equal(t, "kjv_exodus_1_2", state.SelectedVerse.ID)
}

func TestSession_NavigateToVerse_NotFound(t *testing.T) {
	s := newTestSession(t, nil)
	require.NoError(t, s.SetBook(context.Background(), "genesis"))
	require.NoError(t, s.NavigateToVerse(context.Background(), "genesis", 1, 1))

	err := s.NavigateToVerse(context.Background(), "genesis", 99, 1)
	assert.ErrorIs(t, err, bible.ErrChapterNotFound)

	err = s.NavigateToVerse(context.Background(), "genesis", 1, 99)
	assert.ErrorIs(t, err, bible.ErrVerseNotFound)

	// Failed lookups leave the selection alone.
	state := s.State()
	require.NotNil(t, state.SelectedVerse)
	assert.Equal(t, "kjv_genesis_1_1", state.SelectedVerse.ID)
	assert.Equal(t, 1, state.ChapterNumber)
}

func TestSession_SetTranslation(t *testing.T) {
	s := newTestSession(t, nil)
	require.NoError(t, s.SetBook(context.Background(), "genesis"))
	require.NoError(t, s.NavigateToVerse(context.Background(), "genesis", 1, 1))

	require.NoError(t, s.SetTranslation(context.Background(), "niv"))

	state := s.State()
	assert.Equal(t, "niv", state.Translation.ID)
	require.NotNil(t, state.Chapter)
	assert.Equal(t, 1, state.ChapterNumber)
	assert.Equal(t, "niv_genesis_1_1", state.Chapter.Verses[0].ID)
	// Selection does not survive a translation switch.
	assert.Nil(t, state.SelectedVerse)
}

func TestSession_SetTranslation_Unsupported(t *testing.T) {
	s := newTestSession(t, nil)
	require.NoError(t, s.SetBook(context.Background(), "genesis"))

	err := s.SetTranslation(context.Background(), "xx")
	assert.ErrorIs(t, err, bible.ErrUnsupportedTranslation)
	assert.Equal(t, "kjv", s.TranslationID())
}

func TestSession_SetTranslation_MissingDataRollsBack(t *testing.T) {
	s := newTestSession(t, nil)
	require.NoError(t, s.SetBook(context.Background(), "exodus"))

	// Exodus has no NIV fixture, so the reload fails and kjv stays active.
	err := s.SetTranslation(context.Background(), "niv")
	assert.ErrorIs(t, err, bible.ErrBookDataMissing)
	assert.Equal(t, "kjv", s.TranslationID())
}

func TestSession_SetChapter(t *testing.T) {
	s := newTestSession(t, nil)
	require.NoError(t, s.SetBook(context.Background(), "genesis"))
	require.NoError(t, s.NavigateToVerse(context.Background(), "genesis", 1, 1))

	require.NoError(t, s.SetChapter(2))

	state := s.State()
	assert.Equal(t, 2, state.ChapterNumber)
	assert.Nil(t, state.SelectedVerse)

	assert.ErrorIs(t, s.SetChapter(42), bible.ErrChapterNotFound)
}

func TestSession_NavigateFromAnnotation(t *testing.T) {
	s := newTestSession(t, nil)
	require.NoError(t, s.SetBook(context.Background(), "genesis"))

	t.Run("verse scope switches book and selects", func(t *testing.T) {
		a := &entities.Annotation{
			Kind: entities.AnnotationKindNote, Scope: entities.ScopeVerse,
			Book: "exodus", Chapter: 1, Verse: 1,
		}
		require.NoError(t, s.NavigateFromAnnotation(context.Background(), a))

		state := s.State()
		assert.Equal(t, "exodus", state.Book.ID)
		require.NotNil(t, state.SelectedVerse)
		assert.Equal(t, "kjv_exodus_1_1", state.SelectedVerse.ID)
	})

	t.Run("chapter scope activates chapter without selection", func(t *testing.T) {
		a := &entities.Annotation{
			Kind: entities.AnnotationKindNote, Scope: entities.ScopeChapter,
			Book: "genesis", Chapter: 2,
		}
		require.NoError(t, s.NavigateFromAnnotation(context.Background(), a))

		state := s.State()
		assert.Equal(t, "genesis", state.Book.ID)
		assert.Equal(t, 2, state.ChapterNumber)
		assert.Nil(t, state.SelectedVerse)
	})

	t.Run("book scope lands on the first chapter", func(t *testing.T) {
		a := &entities.Annotation{
			Kind: entities.AnnotationKindNote, Scope: entities.ScopeBook,
			Book: "genesis",
		}
		require.NoError(t, s.NavigateFromAnnotation(context.Background(), a))

		state := s.State()
		assert.Equal(t, 1, state.ChapterNumber)
		assert.Nil(t, state.SelectedVerse)
	})
}

func TestSession_RefreshAnnotations(t *testing.T) {
	stub := &stubAnnotations{records: map[string]*entities.Annotation{}}
	s := newTestSession(t, stub)
	require.NoError(t, s.SetBook(context.Background(), "genesis"))
	require.NoError(t, s.NavigateToVerse(context.Background(), "genesis", 1, 1))
	assert.Nil(t, s.State().ActiveNote)

	// A note appears after the verse was selected.
	stub.records[annotationKey(entities.AnnotationKindNote, "genesis", 1, 1)] =
		&entities.Annotation{PublicID: "n1", Text: "late note"}

	require.NoError(t, s.RefreshAnnotations())
	require.NotNil(t, s.State().ActiveNote)
	assert.Equal(t, "late note", s.State().ActiveNote.Text)
}

func TestSession_DefaultTranslationFallback(t *testing.T) {
	s := NewSession(bible.NewLibrary(testDataDir), &stubAnnotations{}, 1, "not-a-translation")
	assert.Equal(t, bible.DefaultTranslationID, s.TranslationID())
}
