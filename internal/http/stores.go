package http

import (
	"github.com/mrlokans/berean/internal/database/annotations"
	"github.com/mrlokans/berean/internal/entities"
)

// Controller-side store interfaces. Implemented by the repositories in
// internal/database; kept narrow so tests can substitute fakes.

// AnnotationStore provides the note and question collections.
type AnnotationStore interface {
	AddOrUpdate(userID uint, kind entities.AnnotationKind, anchor annotations.Anchor, text, publicID string) (*entities.Annotation, error)
	Delete(userID uint, publicID string) error
	GetByPublicID(userID uint, publicID string) (*entities.Annotation, error)
	ListByScope(userID uint, kind entities.AnnotationKind, book string, chapter, verse *int) ([]entities.Annotation, error)
	ListAll(userID uint, kind entities.AnnotationKind, book string) ([]entities.Annotation, error)
}
