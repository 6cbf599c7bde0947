// Package studygroups exposes annotations shared by a reader's study group
// peers. Peer records are read-only external data: they are listed alongside
// the reader's own notes and questions but never stored in, or merged into,
// the reader's collections.
package studygroups

import (
	"strings"
	"time"

	"github.com/mrlokans/berean/internal/entities"
)

// PeerAnnotation is a note or question shared by another group member.
// Chapter and Verse of zero mean the annotation is anchored above that level.
type PeerAnnotation struct {
	ID        string                  `json:"id"`
	UserEmail string                  `json:"user_email"`
	UserName  string                  `json:"user_name"`
	Kind      entities.AnnotationKind `json:"kind"`
	Text      string                  `json:"text"`
	Book      string                  `json:"book"`
	Chapter   int                     `json:"chapter,omitempty"`
	Verse     int                     `json:"verse,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

// Provider lists peer annotations with the same scope-filter shape as the
// reader's own collections: book only returns everything for the book,
// book+chapter returns chapter-anchored records, book+chapter+verse returns
// records at that exact verse.
type Provider interface {
	ListPeerAnnotations(book string, chapter, verse *int) ([]PeerAnnotation, error)
}

// FilterByScope applies the shared scope-filter semantics to a slice of peer
// annotations.
func FilterByScope(records []PeerAnnotation, book string, chapter, verse *int) []PeerAnnotation {
	if book == "" {
		return nil
	}

	matched := make([]PeerAnnotation, 0)
	for _, r := range records {
		if !strings.EqualFold(r.Book, book) {
			continue
		}
		switch {
		case chapter == nil:
			// Book query returns every record for the book, any scope.
		case verse != nil:
			if r.Chapter != *chapter || r.Verse != *verse {
				continue
			}
		default:
			if r.Chapter != *chapter || r.Verse != 0 {
				continue
			}
		}
		matched = append(matched, r)
	}
	return matched
}
