// Package annotations provides database operations for the note and question
// collections anchored to verses, chapters, and books.
//
// This package implements the AnnotationStore interface defined in
// internal/http/annotations.go.
package annotations

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrlokans/berean/internal/entities"
)

// ErrInvalidAnchor is returned when an anchor names no book, or a verse
// without its chapter.
var ErrInvalidAnchor = errors.New("invalid annotation anchor")

// Anchor identifies what an annotation is attached to. Exactly one of
// {verse present, chapter only, neither} determines the scope.
type Anchor struct {
	Book    string
	Chapter *int
	Verse   *int
}

// Scope derives the explicit scope tag recorded on the annotation.
func (a Anchor) Scope() entities.AnnotationScope {
	switch {
	case a.Verse != nil:
		return entities.ScopeVerse
	case a.Chapter != nil:
		return entities.ScopeChapter
	default:
		return entities.ScopeBook
	}
}

// Key computes the composite scope key for the anchor.
func (a Anchor) Key() string {
	switch a.Scope() {
	case entities.ScopeVerse:
		return entities.VerseScopeKey(a.Book, *a.Chapter, *a.Verse)
	case entities.ScopeChapter:
		return entities.ChapterScopeKey(a.Book, *a.Chapter)
	default:
		return entities.BookScopeKey(a.Book)
	}
}

func (a Anchor) validate() error {
	if a.Book == "" {
		return ErrInvalidAnchor
	}
	if a.Verse != nil && a.Chapter == nil {
		return ErrInvalidAnchor
	}
	return nil
}

// Repository handles all annotation database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new annotations repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddOrUpdate replaces the text of an existing annotation when publicID
// matches one of the caller's records; the id and scope fields stay untouched.
// Otherwise it appends a new record with a fresh id and the scope key computed
// from the anchor. Annotations are never deduplicated by scope key: several
// notes may share one anchor.
func (r *Repository) AddOrUpdate(userID uint, kind entities.AnnotationKind, anchor Anchor, text, publicID string) (*entities.Annotation, error) {
	if publicID != "" {
		var existing entities.Annotation
		err := r.db.Where("user_id = ? AND kind = ? AND public_id = ?", userID, kind, publicID).
			First(&existing).Error
		if err == nil {
			existing.Text = text
			if err := r.db.Save(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if err := anchor.validate(); err != nil {
		return nil, err
	}

	annotation := entities.Annotation{
		PublicID: publicID,
		UserID:   userID,
		Kind:     kind,
		Scope:    anchor.Scope(),
		Text:     text,
		Book:     anchor.Book,
		ScopeKey: anchor.Key(),
	}
	if annotation.PublicID == "" {
		annotation.PublicID = uuid.NewString()
	}
	if anchor.Chapter != nil {
		annotation.Chapter = *anchor.Chapter
	}
	if anchor.Verse != nil {
		annotation.Verse = *anchor.Verse
	}

	if err := r.db.Create(&annotation).Error; err != nil {
		return nil, err
	}
	return &annotation, nil
}

// Delete removes the caller's annotation with the given public id. Deleting
// an absent record is a no-op, not an error.
func (r *Repository) Delete(userID uint, publicID string) error {
	return r.db.Where("user_id = ? AND public_id = ?", userID, publicID).
		Delete(&entities.Annotation{}).Error
}

// GetByPublicID retrieves one of the caller's annotations by public id.
func (r *Repository) GetByPublicID(userID uint, publicID string) (*entities.Annotation, error) {
	var annotation entities.Annotation
	err := r.db.Where("user_id = ? AND public_id = ?", userID, publicID).
		First(&annotation).Error
	if err != nil {
		return nil, err
	}
	return &annotation, nil
}

// ListByScope returns annotations matching the given coordinates. With only a
// book it returns book-scoped records; with a chapter it returns chapter-scoped
// records for that chapter (never verse records within it); with chapter and
// verse it returns verse-scoped records at that exact position. Records with
// empty text are excluded.
func (r *Repository) ListByScope(userID uint, kind entities.AnnotationKind, book string, chapter, verse *int) ([]entities.Annotation, error) {
	query := r.baseQuery(userID, kind, book)

	switch {
	case chapter != nil && verse != nil:
		query = query.Where("scope = ? AND chapter = ? AND verse = ?", entities.ScopeVerse, *chapter, *verse)
	case chapter != nil:
		query = query.Where("scope = ? AND chapter = ?", entities.ScopeChapter, *chapter)
	default:
		query = query.Where("scope = ?", entities.ScopeBook)
	}

	var annotations []entities.Annotation
	err := query.Order("created_at ASC").Find(&annotations).Error
	return annotations, err
}

// ListAll returns every annotation of the given kind for a book regardless of
// scope, for book-level aggregation views.
func (r *Repository) ListAll(userID uint, kind entities.AnnotationKind, book string) ([]entities.Annotation, error) {
	var annotations []entities.Annotation
	err := r.baseQuery(userID, kind, book).
		Order("created_at ASC").Find(&annotations).Error
	return annotations, err
}

// FindVerseScoped returns the first verse-scoped annotation at the given
// position, or nil when there is none. Used to expose the active note and
// question pair for a selected verse.
func (r *Repository) FindVerseScoped(userID uint, kind entities.AnnotationKind, book string, chapter, verse int) (*entities.Annotation, error) {
	var annotation entities.Annotation
	err := r.baseQuery(userID, kind, book).
		Where("scope = ? AND chapter = ? AND verse = ?", entities.ScopeVerse, chapter, verse).
		Order("created_at ASC").
		First(&annotation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &annotation, nil
}

// ListBooks returns the distinct books the user has annotated, in canonical
// storage order. Used by the journal export.
func (r *Repository) ListBooks(userID uint) ([]string, error) {
	var books []string
	err := r.db.Model(&entities.Annotation{}).
		Where("user_id = ? AND text <> ''", userID).
		Distinct("book").Order("book ASC").
		Pluck("book", &books).Error
	return books, err
}

// ListUsers returns the distinct user ids that have annotations.
func (r *Repository) ListUsers() ([]uint, error) {
	var userIDs []uint
	err := r.db.Model(&entities.Annotation{}).
		Where("text <> ''").
		Distinct("user_id").Order("user_id ASC").
		Pluck("user_id", &userIDs).Error
	return userIDs, err
}

// ListForBook returns every annotation of both kinds for a book, ordered for
// journal rendering.
func (r *Repository) ListForBook(userID uint, book string) ([]entities.Annotation, error) {
	var annotations []entities.Annotation
	err := r.db.Model(&entities.Annotation{}).
		Where("user_id = ? AND book = ? AND text <> ''", userID, book).
		Order("kind ASC, chapter ASC, verse ASC, created_at ASC").
		Find(&annotations).Error
	return annotations, err
}

func (r *Repository) baseQuery(userID uint, kind entities.AnnotationKind, book string) *gorm.DB {
	return r.db.Model(&entities.Annotation{}).
		Where("user_id = ? AND kind = ? AND book = ? AND text <> ''", userID, kind, book)
}
