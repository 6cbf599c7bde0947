package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/berean/internal/bible"
)

// CatalogsController serves the closed translation and book catalogs.
type CatalogsController struct {
	defaultTranslation string
}

// NewCatalogsController creates a catalogs controller.
func NewCatalogsController(defaultTranslation string) *CatalogsController {
	if _, ok := bible.TranslationByID(defaultTranslation); !ok {
		defaultTranslation = bible.DefaultTranslationID
	}
	return &CatalogsController{defaultTranslation: defaultTranslation}
}

// ListTranslations returns every published translation.
func (ctl *CatalogsController) ListTranslations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"translations": bible.Translations,
		"default":      ctl.defaultTranslation,
	})
}

// ListBooks returns the 66 canonical books in canonical order.
func (ctl *CatalogsController) ListBooks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"books": bible.Books})
}

// GetBook returns a single canonical book by id.
func (ctl *CatalogsController) GetBook(c *gin.Context) {
	book, ok := bible.BookByID(c.Param("id"))
	if !ok {
		respondContentError(c, bible.ErrInvalidBook, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// ListComparisonTranslations returns the translations a verse in the given
// translation can be compared against.
func (ctl *CatalogsController) ListComparisonTranslations(c *gin.Context) {
	translationID := c.Param("id")
	if _, ok := bible.TranslationByID(translationID); !ok {
		respondContentError(c, bible.ErrUnsupportedTranslation, "list comparisons")
		return
	}
	c.JSON(http.StatusOK, gin.H{"translations": bible.AvailableForComparison(translationID)})
}
