// Package scheduler runs periodic maintenance jobs, currently the study
// journal export.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/berean/internal/bible"
	"github.com/mrlokans/berean/internal/config"
	"github.com/mrlokans/berean/internal/database/annotations"
	"github.com/mrlokans/berean/internal/exporters"
)

// JournalSyncScheduler periodically exports every user's annotations to the
// configured journal directory.
type JournalSyncScheduler struct {
	repo   *annotations.Repository
	config config.Journal

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc

	lastStatus  string
	lastMessage string
}

// NewJournalSyncScheduler creates a new scheduler instance.
func NewJournalSyncScheduler(repo *annotations.Repository, cfg config.Journal) *JournalSyncScheduler {
	return &JournalSyncScheduler{
		repo:   repo,
		config: cfg,
		cron:   cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if sync is enabled.
func (s *JournalSyncScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.config.SyncEnabled {
		log.Printf("Journal sync scheduler: disabled")
		return nil
	}

	if s.config.ExportDir == "" {
		log.Printf("Journal sync scheduler: export directory not configured, skipping")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.config.SyncSchedule, func() {
		s.runSync()
	})
	if err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.config.SyncSchedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Journal sync scheduler: started with schedule '%s'", s.config.SyncSchedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler.
func (s *JournalSyncScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Journal sync scheduler: stopped")
}

// RunNow triggers an immediate sync.
func (s *JournalSyncScheduler) RunNow() {
	go s.runSync()
}

// IsRunning returns whether the scheduler is active.
func (s *JournalSyncScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next sync will occur.
func (s *JournalSyncScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// LastRun reports the outcome of the most recent sync.
func (s *JournalSyncScheduler) LastRun() (status, message string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastStatus, s.lastMessage
}

func (s *JournalSyncScheduler) setLastRun(status, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastStatus = status
	s.lastMessage = message
}

// runSync exports the annotations of every user that has any. User 0 is the
// default user when auth is disabled.
func (s *JournalSyncScheduler) runSync() {
	if s.config.ExportDir == "" {
		log.Printf("Journal sync: skipped (export directory not configured)")
		s.setLastRun("failed", "export directory not configured")
		return
	}

	log.Printf("Journal sync: starting export to %s", s.config.ExportDir)
	startTime := time.Now()

	userIDs, err := s.annotatedUsers()
	if err != nil {
		errMsg := fmt.Sprintf("Failed to list annotated users: %v", err)
		log.Printf("Journal sync: %s", errMsg)
		s.setLastRun("failed", errMsg)
		return
	}

	var books, records int
	for _, userID := range userIDs {
		// Each user gets their own subtree when several have annotations.
		dir := s.config.ExportDir
		if len(userIDs) > 1 {
			dir = filepath.Join(s.config.ExportDir, fmt.Sprintf("user-%d", userID))
			if err := os.MkdirAll(dir, 0o755); err != nil {
				errMsg := fmt.Sprintf("Failed to create export directory for user %d: %v", userID, err)
				log.Printf("Journal sync: %s", errMsg)
				s.setLastRun("failed", errMsg)
				return
			}
		}
		exporter := exporters.NewJournalExporter(dir)
		if err := s.exportUser(exporter, userID); err != nil {
			errMsg := fmt.Sprintf("Export failed for user %d: %v", userID, err)
			log.Printf("Journal sync: %s", errMsg)
			s.setLastRun("failed", errMsg)
			return
		}
		books += exporter.Result.BooksProcessed
		records += exporter.Result.AnnotationsProcessed
	}

	duration := time.Since(startTime)
	successMsg := fmt.Sprintf("Exported %d books, %d annotations in %v",
		books, records, duration.Round(time.Millisecond))
	log.Printf("Journal sync: %s", successMsg)
	s.setLastRun("success", successMsg)
}

func (s *JournalSyncScheduler) annotatedUsers() ([]uint, error) {
	return s.repo.ListUsers()
}

func (s *JournalSyncScheduler) exportUser(exporter *exporters.JournalExporter, userID uint) error {
	books, err := s.repo.ListBooks(userID)
	if err != nil {
		return err
	}
	for _, bookID := range books {
		records, err := s.repo.ListForBook(userID, bookID)
		if err != nil {
			return err
		}
		bookName := bookID
		if book, ok := bible.BookByID(bookID); ok {
			bookName = book.Name
		}
		if _, err := exporter.ExportBook(bookID, bookName, records); err != nil {
			return err
		}
	}
	return nil
}
