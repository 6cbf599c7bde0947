package tasks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/berean/internal/bible"
	"github.com/mrlokans/berean/internal/config"
	"github.com/mrlokans/berean/internal/database/annotations"
	"github.com/mrlokans/berean/internal/entities"
)

var testDataDir = filepath.Join("..", "bible", "testdata")

func TestWarmTranslationProcessor(t *testing.T) {
	library := bible.NewLibrary(testDataDir)
	proc := WarmTranslationProcessor(library)

	// leviticus has no fixture data and is skipped, not failed.
	err := proc(context.Background(), WarmTranslationTask{
		TranslationID: "kjv",
		Books:         []string{"genesis", "exodus", "leviticus"},
	})

	require.NoError(t, err)
	assert.True(t, library.Cached("kjv", "genesis"))
	assert.True(t, library.Cached("kjv", "exodus"))
	assert.False(t, library.Cached("kjv", "leviticus"))
}

func TestWarmTranslationProcessor_UnsupportedTranslation(t *testing.T) {
	proc := WarmTranslationProcessor(bible.NewLibrary(testDataDir))

	err := proc(context.Background(), WarmTranslationTask{TranslationID: "xx"})
	assert.ErrorIs(t, err, bible.ErrUnsupportedTranslation)
}

func setupAnnotationsRepo(t *testing.T) *annotations.Repository {
	t.Helper()
	dbPath := "./test_tasks_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Annotation{}))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	})

	return annotations.NewRepository(db)
}

func intPtr(v int) *int { return &v }

func TestExportJournalProcessor(t *testing.T) {
	repo := setupAnnotationsRepo(t)
	_, err := repo.AddOrUpdate(1, entities.AnnotationKindNote,
		annotations.Anchor{Book: "genesis", Chapter: intPtr(1), Verse: intPtr(1)}, "first note", "")
	require.NoError(t, err)

	exportDir := t.TempDir()
	proc := ExportJournalProcessor(repo)

	require.NoError(t, proc(context.Background(), ExportJournalTask{UserID: 1, ExportDir: exportDir}))

	content, err := os.ReadFile(filepath.Join(exportDir, "genesis.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "first note")
	assert.Contains(t, string(content), "Genesis 1:1")
}

func TestFromAppConfig(t *testing.T) {
	cfg := FromAppConfig(config.Tasks{Workers: 4})
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, DefaultConfig().MaxRetries, cfg.MaxRetries)

	assert.Equal(t, DefaultConfig(), FromAppConfig(config.Tasks{}))
}
