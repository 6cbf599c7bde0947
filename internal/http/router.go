package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/berean/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// Apply CSRF protection if auth is enabled
	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies, cfg.AuthService))
	}

	// Session middleware runs even without auth: the session cookie keys the
	// anonymous visitor's reading position.
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	// Apply auth middleware if enabled
	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware.Handler())
	} else {
		// No auth - inject default user ID
		router.Use(func(c *gin.Context) {
			c.Set(auth.ContextKeyUserID, auth.DefaultUserID)
			c.Set(auth.ContextKeyAuthType, auth.AuthTypeNone)
			c.Next()
		})
	}

	// Register auth routes if auth service is available
	if cfg.AuthService != nil && cfg.AuthService.IsAuthEnabled() {
		authController := auth.NewAuthController(cfg.AuthService, cfg.SessionManager, cfg.AuthConfig)
		authController.RegisterRoutes(router)
	}

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Database, cfg.Version)
	catalogs := NewCatalogsController(cfg.DefaultTranslation)
	readerController := NewReaderController(cfg.Readers, cfg.SessionManager, cfg.AnnotationStore)
	annotationsController := NewAnnotationsController(cfg.AnnotationStore, cfg.Readers, cfg.SessionManager)
	comparison := NewComparisonController(cfg.Library, cfg.Comparator, cfg.DefaultTranslation)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Catalog endpoints
	router.GET("/api/translations", catalogs.ListTranslations)
	router.GET("/api/books", catalogs.ListBooks)
	router.GET("/api/books/:id", catalogs.GetBook)
	router.GET("/api/translations/:id/comparisons", catalogs.ListComparisonTranslations)

	// Reader endpoints
	router.GET("/api/reader", readerController.GetState)
	router.PUT("/api/reader/book", readerController.SetBook)
	router.PUT("/api/reader/translation", readerController.SetTranslation)
	router.PUT("/api/reader/chapter", readerController.SetChapter)
	router.POST("/api/reader/select", readerController.SelectVerse)
	router.POST("/api/reader/navigate", readerController.NavigateToAnnotation)

	// Annotation endpoints
	router.GET("/api/annotations", annotationsController.List)
	router.POST("/api/annotations", annotationsController.Save)
	router.GET("/api/annotations/:id", annotationsController.Get)
	router.DELETE("/api/annotations/:id", annotationsController.Delete)

	// Comparison endpoint
	router.GET("/api/compare", comparison.Compare)

	// Study group peer annotations
	if cfg.PeerProvider != nil {
		studyGroups := NewStudyGroupsController(cfg.PeerProvider)
		router.GET("/api/studygroups/annotations", studyGroups.ListPeerAnnotations)
	}

	// Task management endpoints
	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient, cfg.JournalScheduler, cfg.JournalConfig)
		router.GET("/api/tasks/types", tasksController.ListTaskTypes)
		router.GET("/api/tasks/:id", tasksController.GetTaskStatus)
		router.POST("/api/tasks/:type/run", tasksController.RunTask)
		router.POST("/api/journal/sync-now", tasksController.JournalSyncNow)
		router.GET("/api/journal/status", tasksController.JournalSyncStatus)
	}

	return router
}
