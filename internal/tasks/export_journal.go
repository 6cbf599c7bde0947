package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/berean/internal/bible"
	"github.com/mrlokans/berean/internal/database/annotations"
	"github.com/mrlokans/berean/internal/exporters"
)

// ExportJournalTask exports one user's annotations to the journal directory.
type ExportJournalTask struct {
	UserID    uint   `json:"user_id"`
	ExportDir string `json:"export_dir"`
}

// Config returns the queue configuration for journal export tasks.
func (t ExportJournalTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        QueueExportJournal,
		MaxAttempts: 3,
		Backoff:     1 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ExportJournalProcessor creates a processor for ExportJournalTask.
func ExportJournalProcessor(repo *annotations.Repository) backlite.QueueProcessor[ExportJournalTask] {
	return func(ctx context.Context, task ExportJournalTask) error {
		exporter := exporters.NewJournalExporter(task.ExportDir)

		books, err := repo.ListBooks(task.UserID)
		if err != nil {
			return fmt.Errorf("list annotated books: %w", err)
		}

		for _, bookID := range books {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			records, err := repo.ListForBook(task.UserID, bookID)
			if err != nil {
				return fmt.Errorf("list annotations for %s: %w", bookID, err)
			}

			bookName := bookID
			if book, ok := bible.BookByID(bookID); ok {
				bookName = book.Name
			}
			if _, err := exporter.ExportBook(bookID, bookName, records); err != nil {
				return fmt.Errorf("export %s: %w", bookID, err)
			}
		}

		log.Printf("[TASK] Exported journal for user %d: %d books, %d annotations",
			task.UserID, exporter.Result.BooksProcessed, exporter.Result.AnnotationsProcessed)
		return nil
	}
}

// NewExportJournalQueue creates a backlite queue for journal export tasks.
func NewExportJournalQueue(repo *annotations.Repository) backlite.Queue {
	return backlite.NewQueue(ExportJournalProcessor(repo))
}
