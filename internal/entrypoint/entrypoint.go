package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/berean/internal/auth"
	"github.com/mrlokans/berean/internal/bible"
	"github.com/mrlokans/berean/internal/config"
	"github.com/mrlokans/berean/internal/database"
	"github.com/mrlokans/berean/internal/database/annotations"
	http_controllers "github.com/mrlokans/berean/internal/http"
	"github.com/mrlokans/berean/internal/reader"
	"github.com/mrlokans/berean/internal/scheduler"
	"github.com/mrlokans/berean/internal/studygroups"
	"github.com/mrlokans/berean/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	// The scripture data is produced by an offline conversion pipeline;
	// without it every content endpoint would 404.
	if _, err := os.Stat(cfg.Bible.DataDir); os.IsNotExist(err) {
		log.Fatalf("Scripture data directory %s does not exist. Set 'BIBLE_DATA_DIR' to the converted data.", cfg.Bible.DataDir)
	}

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Berean v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Content access: shared library plus the comparison cache
	library := bible.NewLibrary(cfg.Bible.DataDir)
	comparator := bible.NewComparator(cfg.Bible.DataDir)

	annotationsRepo := annotations.NewRepository(db.DB)

	// One reading session per browser session
	readers := reader.NewManager(library, annotationsRepo, cfg.Bible.DefaultTranslation)

	// Study group peers. Until a group backend exists instances serve the
	// built-in demo group.
	peerProvider := studygroups.NewDemoProvider()

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.FromAppConfig(cfg.Tasks))
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		// Register task queues
		taskClient.Register(
			tasks.NewWarmTranslationQueue(library),
			tasks.NewExportJournalQueue(annotationsRepo),
		)

		// Start task workers in background
		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Periodic journal export
	journalScheduler := scheduler.NewJournalSyncScheduler(annotationsRepo, cfg.Journal)
	if cfg.Journal.ExportDir != "" {
		if err := os.MkdirAll(cfg.Journal.ExportDir, 0o755); err != nil {
			log.Fatalf("Failed to create journal export directory %s: %v", cfg.Journal.ExportDir, err)
		}
	}
	if err := journalScheduler.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start journal sync scheduler: %v", err)
	}

	// Sessions key the per-browser reading position, so the session manager
	// runs even with authentication disabled.
	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}
	sessionManager, err := auth.NewSessionManager(sqlDB, cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	// Initialize authentication if enabled
	var authService *auth.Service
	var authMiddleware *auth.Middleware
	var csrfSecret []byte

	if cfg.Auth.Mode == config.AuthModeLocal {
		log.Printf("Authentication mode: local")

		authService = auth.NewService(db.DB, cfg.Auth)
		authMiddleware = auth.NewMiddleware(authService, sessionManager, cfg.Auth)

		// Generate or use configured CSRF secret
		if cfg.Auth.SessionSecret != "" {
			csrfSecret, err = hex.DecodeString(cfg.Auth.SessionSecret)
			if err != nil {
				// Not hex, use as raw bytes
				csrfSecret = []byte(cfg.Auth.SessionSecret)
			}
		} else {
			secret, err := auth.GenerateSessionSecret()
			if err != nil {
				log.Fatalf("Failed to generate CSRF secret: %v", err)
			}
			csrfSecret, _ = hex.DecodeString(secret)
			log.Printf("Generated session secret (set AUTH_SESSION_SECRET to persist)")
		}

		// Check if setup is needed
		hasUsers, _ := authService.HasUsers()
		if !hasUsers {
			log.Printf("No users found. POST /api/auth/setup to create an administrator account.")
		}
	} else {
		log.Printf("Authentication mode: none (no authentication required)")
	}

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		Database:           db,
		Library:            library,
		Comparator:         comparator,
		Readers:            readers,
		AnnotationStore:    annotationsRepo,
		PeerProvider:       peerProvider,
		AuthService:        authService,
		SessionManager:     sessionManager,
		AuthMiddleware:     authMiddleware,
		AuthConfig:         cfg.Auth,
		CSRFSecret:         csrfSecret,
		SecureCookies:      cfg.Auth.SecureCookies,
		DefaultTranslation: cfg.Bible.DefaultTranslation,
		TaskClient:         taskClient,
		JournalScheduler:   journalScheduler,
		JournalConfig:      cfg.Journal,
		Version:            version,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		journalScheduler.Stop()
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
