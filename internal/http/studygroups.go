package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/berean/internal/studygroups"
)

// StudyGroupsController serves read-only annotations shared by study group
// peers.
type StudyGroupsController struct {
	provider studygroups.Provider
}

// NewStudyGroupsController creates a study groups controller.
func NewStudyGroupsController(provider studygroups.Provider) *StudyGroupsController {
	return &StudyGroupsController{provider: provider}
}

// ListPeerAnnotations returns the peer annotations visible at the queried
// position. A book-only query returns everything peers shared for the book,
// whatever its scope; chapter and verse narrow the result to records anchored
// there.
func (ctl *StudyGroupsController) ListPeerAnnotations(c *gin.Context) {
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

	records, err := ctl.provider.ListPeerAnnotations(book, chapter, verse)
	if err != nil {
		respondInternalError(c, err, "list peer annotations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"annotations": records})
}
