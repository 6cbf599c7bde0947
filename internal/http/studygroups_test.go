package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/berean/internal/studygroups"
)

func setupStudyGroupsTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	controller := NewStudyGroupsController(studygroups.NewDemoProvider())
	router := gin.New()
	router.GET("/api/studygroups/annotations", controller.ListPeerAnnotations)
	return router
}

func listPeers(t *testing.T, router *gin.Engine, query string) ([]studygroups.PeerAnnotation, int) {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/studygroups/annotations?"+query, nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		return nil, w.Code
	}

	var response struct {
		Annotations []studygroups.PeerAnnotation `json:"annotations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Annotations, w.Code
}

func TestStudyGroupsController_ListPeerAnnotations(t *testing.T) {
	t.Run("book query returns everything peers shared for the book", func(t *testing.T) {
		router := setupStudyGroupsTest(t)

		records, code := listPeers(t, router, "book=genesis")
		assert.Equal(t, http.StatusOK, code)
		assert.Len(t, records, 13)
	})

	t.Run("verse query narrows to the exact position", func(t *testing.T) {
		router := setupStudyGroupsTest(t)

		records, code := listPeers(t, router, "book=genesis&chapter=1&verse=1")
		assert.Equal(t, http.StatusOK, code)
		require.Len(t, records, 2)
		for _, r := range records {
			assert.Equal(t, 1, r.Chapter)
			assert.Equal(t, 1, r.Verse)
		}
	})

	t.Run("chapter query excludes verse-anchored records", func(t *testing.T) {
		router := setupStudyGroupsTest(t)

		records, code := listPeers(t, router, "book=genesis&chapter=1")
		assert.Equal(t, http.StatusOK, code)
		require.Len(t, records, 4)
		for _, r := range records {
			assert.Equal(t, 1, r.Chapter)
			assert.Zero(t, r.Verse)
		}
	})

	t.Run("book without shared records yields an empty list", func(t *testing.T) {
		router := setupStudyGroupsTest(t)

		records, code := listPeers(t, router, "book=exodus")
		assert.Equal(t, http.StatusOK, code)
		assert.Empty(t, records)
	})

	t.Run("missing book is rejected", func(t *testing.T) {
		router := setupStudyGroupsTest(t)

		_, code := listPeers(t, router, "chapter=1")
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("verse without chapter is rejected", func(t *testing.T) {
		router := setupStudyGroupsTest(t)

		_, code := listPeers(t, router, "book=genesis&verse=1")
		assert.Equal(t, http.StatusBadRequest, code)
	})
}
