package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/berean/internal/bible"
)

// ComparisonController serves single-verse cross-translation comparisons.
type ComparisonController struct {
	library           *bible.Library
	comparator        *bible.Comparator
	sourceTranslation string
}

// NewComparisonController creates a comparison controller. The source
// translation is used when the caller does not name one.
func NewComparisonController(library *bible.Library, comparator *bible.Comparator, sourceTranslation string) *ComparisonController {
	if _, ok := bible.TranslationByID(sourceTranslation); !ok {
		sourceTranslation = bible.DefaultTranslationID
	}
	return &ComparisonController{
		library:           library,
		comparator:        comparator,
		sourceTranslation: sourceTranslation,
	}
}

// Compare renders a verse in an alternate translation alongside the original.
// Query parameters: translation (target, required), book, chapter, verse, and
// an optional source translation.
func (ctl *ComparisonController) Compare(c *gin.Context) {
	targetID := strings.ToLower(c.Query("translation"))
	if targetID == "" {
		respondBadRequest(c, "translation is required")
		return
	}

	bookID := strings.ToLower(c.Query("book"))
	if bookID == "" {
		respondBadRequest(c, "book is required")
		return
	}

	chapter, ok := parseRequiredQueryInt(c, "chapter")
	if !ok {
		return
	}
	verse, ok := parseRequiredQueryInt(c, "verse")
	if !ok {
		return
	}

	sourceID := strings.ToLower(c.DefaultQuery("source", ctl.sourceTranslation))
	if sourceID == targetID {
		respondBadRequest(c, "target translation must differ from the source")
		return
	}

	book, verses, err := ctl.library.Load(c.Request.Context(), sourceID, bookID)
	if err != nil {
		respondContentError(c, err, "compare verse")
		return
	}

	chapters := bible.Compile(book, verses)
	compiled := bible.FindChapter(chapters, chapter)
	if compiled == nil {
		respondContentError(c, bible.ErrChapterNotFound, "compare verse")
		return
	}
	record := compiled.FindVerse(verse)
	if record == nil {
		respondContentError(c, bible.ErrVerseNotFound, "compare verse")
		return
	}

	result, err := ctl.comparator.Compare(c.Request.Context(), *record, targetID)
	if err != nil {
		respondContentError(c, err, "compare verse")
		return
	}

	c.JSON(http.StatusOK, result)
}
