package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/berean/internal/auth"
	"github.com/mrlokans/berean/internal/reader"
)

// ReaderController exposes the per-session reading position: open book,
// translation, active chapter and verse selection.
type ReaderController struct {
	readers     *reader.Manager
	sessions    *auth.SessionManager
	annotations AnnotationStore
}

// NewReaderController creates a reader controller.
func NewReaderController(readers *reader.Manager, sessions *auth.SessionManager, annotations AnnotationStore) *ReaderController {
	return &ReaderController{
		readers:     readers,
		sessions:    sessions,
		annotations: annotations,
	}
}

// session resolves the caller's reading session from the request.
func (ctl *ReaderController) session(c *gin.Context) *reader.Session {
	var token string
	if ctl.sessions != nil {
		token = ctl.sessions.SessionToken(c.Request)
	}
	return ctl.readers.Session(token, GetUserID(c))
}

// GetState returns the current reading position.
func (ctl *ReaderController) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.session(c).State())
}

type setBookRequest struct {
	Book string `json:"book" binding:"required"`
}

// SetBook opens a book. The response carries the freshly compiled state, so
// a client can navigate immediately after — the reply itself is the
// completion signal.
func (ctl *ReaderController) SetBook(c *gin.Context) {
	var req setBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "book is required")
		return
	}

	session := ctl.session(c)
	if err := session.SetBook(c.Request.Context(), req.Book); err != nil {
		respondContentError(c, err, "set book")
		return
	}
	c.JSON(http.StatusOK, session.State())
}

type setTranslationRequest struct {
	Translation string `json:"translation" binding:"required"`
}

// SetTranslation switches the active translation, reloading any open book.
func (ctl *ReaderController) SetTranslation(c *gin.Context) {
	var req setTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "translation is required")
		return
	}

	session := ctl.session(c)
	if err := session.SetTranslation(c.Request.Context(), req.Translation); err != nil {
		respondContentError(c, err, "set translation")
		return
	}
	c.JSON(http.StatusOK, session.State())
}

type setChapterRequest struct {
	Chapter int `json:"chapter" binding:"required"`
}

// SetChapter activates a chapter of the open book.
func (ctl *ReaderController) SetChapter(c *gin.Context) {
	var req setChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "chapter is required")
		return
	}

	session := ctl.session(c)
	if err := session.SetChapter(req.Chapter); err != nil {
		respondContentError(c, err, "set chapter")
		return
	}
	c.JSON(http.StatusOK, session.State())
}

type selectVerseRequest struct {
	Book    string `json:"book" binding:"required"`
	Chapter int    `json:"chapter" binding:"required"`
	Verse   int    `json:"verse" binding:"required"`
}

// SelectVerse navigates to a verse, toggling the selection off when the
// verse is already selected.
func (ctl *ReaderController) SelectVerse(c *gin.Context) {
	var req selectVerseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "book, chapter and verse are required")
		return
	}

	session := ctl.session(c)
	if err := session.NavigateToVerse(c.Request.Context(), req.Book, req.Chapter, req.Verse); err != nil {
		respondContentError(c, err, "select verse")
		return
	}
	c.JSON(http.StatusOK, session.State())
}

type navigateRequest struct {
	AnnotationID string `json:"annotation_id" binding:"required"`
}

// NavigateToAnnotation jumps to the anchor of one of the caller's
// annotations, switching book and translation context as needed.
func (ctl *ReaderController) NavigateToAnnotation(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "annotation_id is required")
		return
	}

	annotation, err := ctl.annotations.GetByPublicID(GetUserID(c), req.AnnotationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "annotation")
			return
		}
		respondInternalError(c, err, "navigate to annotation")
		return
	}

	session := ctl.session(c)
	if err := session.NavigateFromAnnotation(c.Request.Context(), annotation); err != nil {
		respondContentError(c, err, "navigate to annotation")
		return
	}
	c.JSON(http.StatusOK, session.State())
}
