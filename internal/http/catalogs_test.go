package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/berean/internal/bible"
)

func setupCatalogsTest(t *testing.T, defaultTranslation string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	controller := NewCatalogsController(defaultTranslation)
	router := gin.New()
	router.GET("/api/translations", controller.ListTranslations)
	router.GET("/api/books", controller.ListBooks)
	router.GET("/api/books/:id", controller.GetBook)
	router.GET("/api/translations/:id/comparisons", controller.ListComparisonTranslations)
	return router
}

func TestCatalogsController_ListTranslations(t *testing.T) {
	t.Run("returns the full registry with the configured default", func(t *testing.T) {
		router := setupCatalogsTest(t, "niv")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/translations", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Translations []bible.Translation `json:"translations"`
			Default      string              `json:"default"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Translations, len(bible.Translations))
		assert.Equal(t, "niv", response.Default)
	})

	t.Run("falls back to the standard default for an unknown translation", func(t *testing.T) {
		router := setupCatalogsTest(t, "klingon")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/translations", nil)
		router.ServeHTTP(w, req)

		var response struct {
			Default string `json:"default"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, bible.DefaultTranslationID, response.Default)
	})
}

func TestCatalogsController_ListBooks(t *testing.T) {
	t.Run("returns the 66 canonical books in order", func(t *testing.T) {
		router := setupCatalogsTest(t, "kjv")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Books []bible.Book `json:"books"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Books, 66)
		assert.Equal(t, "genesis", response.Books[0].ID)
		assert.Equal(t, "revelation", response.Books[65].ID)
	})
}

func TestCatalogsController_GetBook(t *testing.T) {
	t.Run("returns a book regardless of id casing", func(t *testing.T) {
		router := setupCatalogsTest(t, "kjv")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books/Genesis", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var book bible.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
		assert.Equal(t, "genesis", book.ID)
		assert.Equal(t, "Genesis", book.Name)
	})

	t.Run("rejects a book outside the canon", func(t *testing.T) {
		router := setupCatalogsTest(t, "kjv")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books/atlantis", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogsController_ListComparisonTranslations(t *testing.T) {
	t.Run("excludes the queried translation", func(t *testing.T) {
		router := setupCatalogsTest(t, "kjv")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/translations/kjv/comparisons", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Translations []bible.Translation `json:"translations"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Translations, len(bible.Translations)-1)
		for _, tr := range response.Translations {
			assert.NotEqual(t, "kjv", tr.ID)
		}
	})

	t.Run("rejects an unknown translation", func(t *testing.T) {
		router := setupCatalogsTest(t, "kjv")

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/translations/klingon/comparisons", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
