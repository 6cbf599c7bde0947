package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/berean/internal/auth"
	"github.com/mrlokans/berean/internal/database/annotations"
	"github.com/mrlokans/berean/internal/entities"
	"github.com/mrlokans/berean/internal/reader"
)

// AnnotationsController manages the caller's note and question collections.
type AnnotationsController struct {
	store    AnnotationStore
	readers  *reader.Manager
	sessions *auth.SessionManager
}

// NewAnnotationsController creates an annotations controller.
func NewAnnotationsController(store AnnotationStore, readers *reader.Manager, sessions *auth.SessionManager) *AnnotationsController {
	return &AnnotationsController{
		store:    store,
		readers:  readers,
		sessions: sessions,
	}
}

type saveAnnotationRequest struct {
	ID      string `json:"id"`
	Kind    string `json:"kind" binding:"required"`
	Book    string `json:"book" binding:"required"`
	Chapter *int   `json:"chapter"`
	Verse   *int   `json:"verse"`
	Text    string `json:"text" binding:"required"`
}

func parseKind(raw string) (entities.AnnotationKind, bool) {
	switch entities.AnnotationKind(strings.ToLower(raw)) {
	case entities.AnnotationKindNote:
		return entities.AnnotationKindNote, true
	case entities.AnnotationKindQuestion:
		return entities.AnnotationKindQuestion, true
	default:
		return "", false
	}
}

// Save creates a new annotation, or replaces the text of an existing one
// when id matches a record of the caller's.
func (ctl *AnnotationsController) Save(c *gin.Context) {
	var req saveAnnotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "kind, book and text are required")
		return
	}

	kind, ok := parseKind(req.Kind)
	if !ok {
		respondBadRequest(c, "kind must be note or question")
		return
	}

	anchor := annotations.Anchor{Book: strings.ToLower(req.Book), Chapter: req.Chapter, Verse: req.Verse}
	annotation, err := ctl.store.AddOrUpdate(GetUserID(c), kind, anchor, req.Text, req.ID)
	if err != nil {
		if errors.Is(err, annotations.ErrInvalidAnchor) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "save annotation")
		return
	}

	ctl.refreshReader(c)
	c.JSON(http.StatusCreated, annotation)
}

// Get returns one of the caller's annotations by id.
func (ctl *AnnotationsController) Get(c *gin.Context) {
	annotation, err := ctl.store.GetByPublicID(GetUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "annotation")
			return
		}
		respondInternalError(c, err, "get annotation")
		return
	}
	c.JSON(http.StatusOK, annotation)
}

// Delete removes one of the caller's annotations. Deleting an absent record
// succeeds.
func (ctl *AnnotationsController) Delete(c *gin.Context) {
	if err := ctl.store.Delete(GetUserID(c), c.Param("id")); err != nil {
		respondInternalError(c, err, "delete annotation")
		return
	}
	ctl.refreshReader(c)
	respondSuccess(c, "annotation deleted")
}

// List returns the caller's annotations for the queried scope. With book
// only it returns book-scoped records; adding chapter narrows to
// chapter-scoped records; adding verse narrows to that exact verse.
// Passing all=true returns every record for the book regardless of scope.
func (ctl *AnnotationsController) List(c *gin.Context) {
	kind, ok := parseKind(c.DefaultQuery("kind", "note"))
	if !ok {
		respondBadRequest(c, "kind must be note or question")
		return
	}

	book := strings.ToLower(c.Query("book"))
	if book == "" {
		respondBadRequest(c, "book is required")
		return
	}

	chapter, ok := parseOptionalQueryInt(c, "chapter")
	if !ok {
		return
	}
	verse, ok := parseOptionalQueryInt(c, "verse")
	if !ok {
		return
	}
	if verse != nil && chapter == nil {
		respondBadRequest(c, "verse requires chapter")
		return
	}

	var (
		records []entities.Annotation
		err     error
	)
	if c.Query("all") == "true" {
		records, err = ctl.store.ListAll(GetUserID(c), kind, book)
	} else {
		records, err = ctl.store.ListByScope(GetUserID(c), kind, book, chapter, verse)
	}
	if err != nil {
		respondInternalError(c, err, "list annotations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"annotations": records})
}

// refreshReader keeps the session's active note/question pair in step with
// the collections after a mutation.
func (ctl *AnnotationsController) refreshReader(c *gin.Context) {
	if ctl.readers == nil {
		return
	}
	var token string
	if ctl.sessions != nil {
		token = ctl.sessions.SessionToken(c.Request)
	}
	if err := ctl.readers.Session(token, GetUserID(c)).RefreshAnnotations(); err != nil {
		// The mutation already succeeded; a stale pane is recoverable.
		log.Printf("Failed to refresh reader annotations: %v", err)
	}
}
