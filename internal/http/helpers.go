package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/berean/internal/auth"
	"github.com/mrlokans/berean/internal/bible"
)

// GetUserID extracts the authenticated user's ID from the Gin context.
// Returns 0 when auth is disabled or no user is authenticated.
func GetUserID(c *gin.Context) uint {
	return auth.GetUserID(c)
}

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"` // machine-readable error code
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error
// response. The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondContentError maps the content error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is treated as an internal error.
func respondContentError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, bible.ErrUnsupportedTranslation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "unsupported_translation"})
	case errors.Is(err, bible.ErrInvalidBook):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid_book"})
	case errors.Is(err, bible.ErrBookDataMissing):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "book_data_missing"})
	case errors.Is(err, bible.ErrChapterNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "chapter_not_found"})
	case errors.Is(err, bible.ErrVerseNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "verse_not_found"})
	case errors.Is(err, bible.ErrVerseNotFoundInTranslation):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: "verse_not_found_in_translation"})
	default:
		respondInternalError(c, err, context)
	}
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// respondAccepted sends a 202 Accepted response (for async operations).
func respondAccepted(c *gin.Context, message string, data any) {
	c.JSON(http.StatusAccepted, SuccessResponse{Message: message, Data: data})
}

// --- Parameter Parsing ---

// parseOptionalQueryInt parses an optional integer query parameter. Returns
// nil when absent, responds with 400 and ok=false when malformed.
func parseOptionalQueryInt(c *gin.Context, name string) (value *int, ok bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 1 {
		respondBadRequest(c, "invalid "+name)
		return nil, false
	}
	return &parsed, true
}

// parseRequiredQueryInt parses a required positive integer query parameter.
func parseRequiredQueryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		respondBadRequest(c, name+" is required")
		return 0, false
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 1 {
		respondBadRequest(c, "invalid "+name)
		return 0, false
	}
	return parsed, true
}
