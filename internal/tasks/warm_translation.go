package tasks

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/berean/internal/bible"
)

// Queue names, shared with the HTTP task endpoints.
const (
	QueueWarmTranslation = "warm_translation"
	QueueExportJournal   = "export_journal"
)

// WarmTranslationTask pre-loads a translation's books into the content cache
// so first navigation does not pay the load cost. An empty Books slice warms
// every canonical book.
type WarmTranslationTask struct {
	TranslationID string   `json:"translation_id"`
	Books         []string `json:"books,omitempty"`
}

// Config returns the queue configuration for cache warm-up tasks.
func (t WarmTranslationTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        QueueWarmTranslation,
		MaxAttempts: 2,
		Backoff:     30 * time.Second,
		Timeout:     5 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// WarmTranslationProcessor creates a processor for WarmTranslationTask.
// Books whose data files are absent are skipped; not every translation ships
// every book.
func WarmTranslationProcessor(library *bible.Library) backlite.QueueProcessor[WarmTranslationTask] {
	return func(ctx context.Context, task WarmTranslationTask) error {
		if _, ok := bible.TranslationByID(task.TranslationID); !ok {
			return bible.ErrUnsupportedTranslation
		}

		bookIDs := task.Books
		if len(bookIDs) == 0 {
			for _, book := range bible.Books {
				bookIDs = append(bookIDs, book.ID)
			}
		}

		warmed, missing := 0, 0
		for _, bookID := range bookIDs {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			_, _, err := library.Load(ctx, task.TranslationID, bookID)
			switch {
			case err == nil:
				warmed++
			case errors.Is(err, bible.ErrBookDataMissing):
				missing++
			default:
				return err
			}
		}

		log.Printf("[TASK] Warmed %s cache: %d books loaded, %d without data",
			task.TranslationID, warmed, missing)
		return nil
	}
}

// NewWarmTranslationQueue creates a backlite queue for cache warm-up tasks.
func NewWarmTranslationQueue(library *bible.Library) backlite.Queue {
	return backlite.NewQueue(WarmTranslationProcessor(library))
}
