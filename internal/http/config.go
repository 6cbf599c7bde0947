package http

import (
	"github.com/mrlokans/berean/internal/auth"
	"github.com/mrlokans/berean/internal/bible"
	"github.com/mrlokans/berean/internal/config"
	"github.com/mrlokans/berean/internal/database"
	"github.com/mrlokans/berean/internal/reader"
	"github.com/mrlokans/berean/internal/scheduler"
	"github.com/mrlokans/berean/internal/studygroups"
	"github.com/mrlokans/berean/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed to create
// the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database        *database.Database
	Library         *bible.Library
	Comparator      *bible.Comparator
	Readers         *reader.Manager
	AnnotationStore AnnotationStore

	// Study group peers (optional)
	PeerProvider studygroups.Provider

	// Authentication
	AuthService    *auth.Service
	SessionManager *auth.SessionManager
	AuthMiddleware *auth.Middleware
	AuthConfig     config.Auth
	CSRFSecret     []byte
	SecureCookies  bool

	// Default source translation for comparisons
	DefaultTranslation string

	// Task queue client (optional)
	TaskClient *tasks.Client

	// Journal export (optional)
	JournalScheduler *scheduler.JournalSyncScheduler
	JournalConfig    config.Journal

	// Application info
	Version string
}
