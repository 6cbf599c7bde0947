package bible

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// resourceKind selects which of the two per-book documents to resolve.
type resourceKind string

const (
	resourceBook   resourceKind = "Book"
	resourceVerses resourceKind = "Verses"
)

// resourcePath resolves (translation, book, kind) to the on-disk JSON document
// produced by the conversion pipeline:
//
//	{dataDir}/{ABBREV}/{bookId}Book.json
//	{dataDir}/{ABBREV}/{bookId}Verses.json
//
// The translation is validated against the closed catalog.
func resourcePath(dataDir, translationID, bookID string, kind resourceKind) (string, error) {
	tr, ok := TranslationByID(translationID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedTranslation, translationID)
	}
	bookID = strings.ToLower(bookID)
	if !IsBookAvailable(bookID) {
		return "", fmt.Errorf("%w: %s", ErrInvalidBook, bookID)
	}
	return filepath.Join(dataDir, tr.Abbreviation, bookID+string(kind)+".json"), nil
}

// LoadedBook pairs a book-metadata record with its flat verse list.
type LoadedBook struct {
	Book   *BookRecord
	Verses []VerseRecord
}

// Library loads pre-converted scripture data on demand and caches it for the
// lifetime of the process. Translations are immutable once published, so the
// cache is never invalidated. Concurrent loads for the same uncached key are
// coalesced into one fetch.
type Library struct {
	dataDir  string
	readFile func(string) ([]byte, error)

	mu    sync.RWMutex
	cache map[string]*LoadedBook
	group singleflight.Group
}

// NewLibrary creates a library reading from the given data directory.
func NewLibrary(dataDir string) *Library {
	return &Library{
		dataDir:  dataDir,
		readFile: os.ReadFile,
		cache:    make(map[string]*LoadedBook),
	}
}

func loadCacheKey(translationID, bookID string) string {
	return strings.ToLower(translationID) + "_" + strings.ToLower(bookID)
}

// Load returns the book record and verse list for (translation, book).
// A cache hit returns the previously loaded pair without touching disk.
func (l *Library) Load(ctx context.Context, translationID, bookID string) (*BookRecord, []VerseRecord, error) {
	key := loadCacheKey(translationID, bookID)

	l.mu.RLock()
	cached := l.cache[key]
	l.mu.RUnlock()
	if cached != nil {
		return cached.Book, cached.Verses, nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		loaded, err := l.fetch(ctx, translationID, bookID)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.cache[key] = loaded
		l.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, nil, err
	}

	loaded := v.(*LoadedBook)
	return loaded.Book, loaded.Verses, nil
}

// Cached reports whether the pair for (translation, book) is already loaded.
func (l *Library) Cached(translationID, bookID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cache[loadCacheKey(translationID, bookID)] != nil
}

// fetch retrieves both documents for the pair. The two reads run concurrently
// and both must succeed.
func (l *Library) fetch(ctx context.Context, translationID, bookID string) (*LoadedBook, error) {
	bookPath, err := resourcePath(l.dataDir, translationID, bookID, resourceBook)
	if err != nil {
		return nil, err
	}
	versesPath, err := resourcePath(l.dataDir, translationID, bookID, resourceVerses)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		book     BookRecord
		verses   []VerseRecord
		bookErr  error
		verseErr error
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		bookErr = l.readDocument(bookPath, &book)
	}()
	go func() {
		defer wg.Done()
		verseErr = l.readDocument(versesPath, &verses)
	}()
	wg.Wait()

	if bookErr != nil {
		return nil, bookErr
	}
	if verseErr != nil {
		return nil, verseErr
	}

	return &LoadedBook{Book: &book, Verses: verses}, nil
}

func (l *Library) readDocument(path string, dest any) error {
	data, err := l.readFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBookDataMissing, filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBookDataMissing, filepath.Base(path), err)
	}
	return nil
}
