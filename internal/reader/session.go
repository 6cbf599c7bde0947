// Package reader tracks each reader's position in the text: the open book,
// translation, active chapter and selected verse. One Session exists per
// browser session; all content access goes through the shared bible.Library.
package reader

import (
	"context"
	"sync"

	"github.com/mrlokans/berean/internal/bible"
	"github.com/mrlokans/berean/internal/entities"
)

// AnnotationSource looks up the reader's own annotations for a verse. It is
// implemented by the annotations repository.
type AnnotationSource interface {
	FindVerseScoped(userID uint, kind entities.AnnotationKind, book string, chapter, verse int) (*entities.Annotation, error)
}

// Session is the reading position of a single user session. Methods are safe
// for concurrent use; every operation that changes position returns only
// after the target content is loaded and compiled, so callers can chain a
// navigation directly after a book switch.
type Session struct {
	library     *bible.Library
	annotations AnnotationSource
	userID      uint

	mu             sync.Mutex
	translationID  string
	book           *bible.BookRecord
	chapters       []bible.CompiledChapter
	currentChapter int
	selectedVerse  *bible.VerseRecord
	activeNote     *entities.Annotation
	activeQuestion *entities.Annotation
	loading        bool
}

// State is a point-in-time snapshot of a session, shaped for the reading UI.
type State struct {
	Translation    bible.Translation      `json:"translation"`
	Book           *bible.BookRecord      `json:"book,omitempty"`
	Chapter        *bible.CompiledChapter `json:"chapter,omitempty"`
	ChapterNumber  int                    `json:"chapter_number"`
	SelectedVerse  *bible.VerseRecord     `json:"selected_verse,omitempty"`
	ActiveNote     *entities.Annotation   `json:"active_note,omitempty"`
	ActiveQuestion *entities.Annotation   `json:"active_question,omitempty"`
	Loading        bool                   `json:"loading"`
}

// NewSession creates a session positioned at no book in the given translation.
func NewSession(library *bible.Library, annotations AnnotationSource, userID uint, translationID string) *Session {
	if _, ok := bible.TranslationByID(translationID); !ok {
		translationID = bible.DefaultTranslationID
	}
	return &Session{
		library:       library,
		annotations:   annotations,
		userID:        userID,
		translationID: translationID,
	}
}

// SetBook opens a book in the current translation. The verse selection is
// cleared before compilation begins; on success the first compiled chapter
// becomes active. The method returns only once compiled data is available,
// which is the readiness signal cross-book navigation waits on.
func (s *Session) SetBook(ctx context.Context, bookID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setBookLocked(ctx, bookID)
}

func (s *Session) setBookLocked(ctx context.Context, bookID string) error {
	// An id outside the canon is rejected before any state changes.
	if _, ok := bible.BookByID(bookID); !ok {
		return bible.ErrInvalidBook
	}

	s.clearSelectionLocked()
	s.loading = true
	defer func() { s.loading = false }()

	book, verses, err := s.library.Load(ctx, s.translationID, bookID)
	if err != nil {
		return err
	}
	if book == nil || book.ID == "" {
		return bible.ErrBookDataMissing
	}

	chapters := bible.Compile(book, verses)

	s.book = book
	s.chapters = chapters
	if len(chapters) > 0 {
		s.currentChapter = chapters[0].Number
	}
	return nil
}

// SetTranslation switches the active translation. An open book is reloaded
// in the new translation; the active chapter is preserved when it exists
// there, and the verse selection is cleared.
func (s *Session) SetTranslation(ctx context.Context, translationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := bible.TranslationByID(translationID); !ok {
		return bible.ErrUnsupportedTranslation
	}

	previous := s.translationID
	s.translationID = translationID
	if s.book == nil {
		return nil
	}

	keepChapter := s.currentChapter
	if err := s.setBookLocked(ctx, s.book.ID); err != nil {
		s.translationID = previous
		return err
	}
	if bible.FindChapter(s.chapters, keepChapter) != nil {
		s.currentChapter = keepChapter
	}
	return nil
}

// SetChapter makes the given chapter active, clearing any verse selection.
func (s *Session) SetChapter(number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bible.FindChapter(s.chapters, number) == nil {
		return bible.ErrChapterNotFound
	}
	s.clearSelectionLocked()
	s.currentChapter = number
	return nil
}

// NavigateToVerse moves the session to a verse. Switching books happens
// first when needed and completes before the verse is looked up. Selecting
// the verse that is already selected deselects it instead (toggle).
// On any lookup failure the session state is unchanged.
func (s *Session) NavigateToVerse(ctx context.Context, bookID string, chapter, verse int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.book == nil || s.book.ID != bookID {
		if err := s.setBookLocked(ctx, bookID); err != nil {
			return err
		}
	}
	return s.navigateLocked(chapter, verse)
}

func (s *Session) navigateLocked(chapter, verse int) error {
	target := bible.FindChapter(s.chapters, chapter)
	if target == nil {
		return bible.ErrChapterNotFound
	}
	record := target.FindVerse(verse)
	if record == nil {
		return bible.ErrVerseNotFound
	}

	// The owning chapter becomes active before the verse does.
	s.currentChapter = target.Number

	if s.selectedVerse != nil && s.selectedVerse.ID == record.ID {
		s.clearSelectionLocked()
		return nil
	}

	note, err := s.annotations.FindVerseScoped(s.userID, entities.AnnotationKindNote, s.book.ID, chapter, verse)
	if err != nil {
		return err
	}
	question, err := s.annotations.FindVerseScoped(s.userID, entities.AnnotationKindQuestion, s.book.ID, chapter, verse)
	if err != nil {
		return err
	}

	s.selectedVerse = record
	s.activeNote = note
	s.activeQuestion = question
	return nil
}

// NavigateFromAnnotation jumps to the anchor of an annotation: its verse for
// verse scope, its chapter for chapter scope, the start of its book for book
// scope. The book switch, when needed, completes before the jump.
func (s *Session) NavigateFromAnnotation(ctx context.Context, annotation *entities.Annotation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.book == nil || s.book.ID != annotation.Book {
		if err := s.setBookLocked(ctx, annotation.Book); err != nil {
			return err
		}
	}

	switch annotation.Scope {
	case entities.ScopeVerse:
		return s.navigateLocked(annotation.Chapter, annotation.Verse)
	case entities.ScopeChapter:
		if bible.FindChapter(s.chapters, annotation.Chapter) == nil {
			return bible.ErrChapterNotFound
		}
		s.clearSelectionLocked()
		s.currentChapter = annotation.Chapter
		return nil
	default:
		s.clearSelectionLocked()
		if len(s.chapters) > 0 {
			s.currentChapter = s.chapters[0].Number
		}
		return nil
	}
}

// RefreshAnnotations reloads the active note/question pair for the selected
// verse, after the reader has edited annotations.
func (s *Session) RefreshAnnotations() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedVerse == nil || s.book == nil {
		return nil
	}

	note, err := s.annotations.FindVerseScoped(s.userID, entities.AnnotationKindNote, s.book.ID, s.selectedVerse.Chapter, s.selectedVerse.Verse)
	if err != nil {
		return err
	}
	question, err := s.annotations.FindVerseScoped(s.userID, entities.AnnotationKindQuestion, s.book.ID, s.selectedVerse.Chapter, s.selectedVerse.Verse)
	if err != nil {
		return err
	}
	s.activeNote = note
	s.activeQuestion = question
	return nil
}

// SelectedVerse returns the currently selected verse, or nil.
func (s *Session) SelectedVerse() *bible.VerseRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedVerse
}

// TranslationID returns the active translation id.
func (s *Session) TranslationID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.translationID
}

// State returns a snapshot of the session for rendering. Loaded content is
// immutable, so the snapshot shares it safely.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	translation, _ := bible.TranslationByID(s.translationID)
	return State{
		Translation:    translation,
		Book:           s.book,
		Chapter:        bible.FindChapter(s.chapters, s.currentChapter),
		ChapterNumber:  s.currentChapter,
		SelectedVerse:  s.selectedVerse,
		ActiveNote:     s.activeNote,
		ActiveQuestion: s.activeQuestion,
		Loading:        s.loading,
	}
}

func (s *Session) clearSelectionLocked() {
	s.selectedVerse = nil
	s.activeNote = nil
	s.activeQuestion = nil
}
