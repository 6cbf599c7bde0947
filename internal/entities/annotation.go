package entities

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// AnnotationKind distinguishes the two kinds of user-authored content.
type AnnotationKind string

const (
	AnnotationKindNote     AnnotationKind = "note"
	AnnotationKindQuestion AnnotationKind = "question"
)

// AnnotationScope is an explicit tag for what an annotation is anchored to.
// Scope is recorded at creation and never changes; it is authoritative, so a
// record is never classified by the presence or absence of a verse field.
type AnnotationScope string

const (
	ScopeVerse   AnnotationScope = "verse"
	ScopeChapter AnnotationScope = "chapter"
	ScopeBook    AnnotationScope = "book"
)

// Annotation is a note or question anchored to a verse, chapter, or book.
// Verse-scope keys are translation-independent so an annotation stays attached
// when the reader switches translations.
type Annotation struct {
	ID       uint            `gorm:"primaryKey" json:"-"`
	PublicID string          `gorm:"uniqueIndex;size:36" json:"id"`
	UserID   uint            `gorm:"index" json:"user_id"`
	Kind     AnnotationKind  `gorm:"index;size:10" json:"kind"`
	Scope    AnnotationScope `gorm:"index;size:10" json:"scope"`
	Text     string          `gorm:"type:text" json:"text"`

	Book    string `gorm:"index;size:40" json:"book"`
	Chapter int    `json:"chapter,omitempty"`
	Verse   int    `json:"verse,omitempty"`

	ScopeKey string `gorm:"index;size:120" json:"scope_key"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Annotation) TableName() string {
	return "annotations"
}

// VerseScopeKey builds the composite key anchoring an annotation to a verse:
// {book}_{chapter}_{verse}.
func VerseScopeKey(book string, chapter, verse int) string {
	return fmt.Sprintf("%s_%d_%d", book, chapter, verse)
}

// ChapterScopeKey builds the key anchoring an annotation to a whole chapter:
// {book}_chapter_{chapter}. The literal "chapter" segment keeps it distinct
// from any verse key.
func ChapterScopeKey(book string, chapter int) string {
	return fmt.Sprintf("%s_chapter_%d", book, chapter)
}

// BookScopeKey builds the key anchoring an annotation to a whole book:
// {book}_book.
func BookScopeKey(book string) string {
	return book + "_book"
}
