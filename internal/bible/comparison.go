package bible

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Comparator fetches a single verse from an alternate translation for
// side-by-side comparison. It keeps its own cache keyed by
// (translation, book, chapter, verse) and never shares entries with the
// Library's load cache, even though both key on translation and book.
type Comparator struct {
	dataDir  string
	readFile func(string) ([]byte, error)

	mu    sync.RWMutex
	cache map[string]*ComparisonResult
}

// NewComparator creates a comparator reading from the given data directory.
func NewComparator(dataDir string) *Comparator {
	return &Comparator{
		dataDir:  dataDir,
		readFile: os.ReadFile,
		cache:    make(map[string]*ComparisonResult),
	}
}

func comparisonCacheKey(translationID, bookID string, chapter, verse int) string {
	return fmt.Sprintf("%s_%s_%d_%d", strings.ToLower(translationID), strings.ToLower(bookID), chapter, verse)
}

// Compare returns the given verse as rendered by the target translation.
// Results are cached; a failed lookup is not, so a retry may succeed once the
// target translation's data becomes available.
func (c *Comparator) Compare(ctx context.Context, verse VerseRecord, targetTranslationID string) (*ComparisonResult, error) {
	key := comparisonCacheKey(targetTranslationID, verse.Book, verse.Chapter, verse.Verse)

	c.mu.RLock()
	cached := c.cache[key]
	c.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	tr, ok := TranslationByID(targetTranslationID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTranslation, targetTranslationID)
	}

	path, err := resourcePath(c.dataDir, targetTranslationID, verse.Book, resourceVerses)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := c.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBookDataMissing, filepath.Base(path), err)
	}
	var verses []VerseRecord
	if err := json.Unmarshal(data, &verses); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBookDataMissing, filepath.Base(path), err)
	}

	for i := range verses {
		if verses[i].Chapter == verse.Chapter && verses[i].Verse == verse.Verse {
			result := &ComparisonResult{
				VerseRecord:     verses[i],
				TranslationMeta: tr,
				Original:        verse,
			}
			c.mu.Lock()
			c.cache[key] = result
			c.mu.Unlock()
			return result, nil
		}
	}

	return nil, fmt.Errorf("%w: %s %d:%d in %s",
		ErrVerseNotFoundInTranslation, verse.Book, verse.Chapter, verse.Verse, targetTranslationID)
}
