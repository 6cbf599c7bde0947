package bible

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLibrary wraps the default file reader with a fetch counter.
func countingLibrary(t *testing.T) (*Library, *atomic.Int64) {
	t.Helper()

	var reads atomic.Int64
	lib := NewLibrary("./testdata")
	lib.readFile = func(path string) ([]byte, error) {
		reads.Add(1)
		return os.ReadFile(path)
	}
	return lib, &reads
}

func TestLibrary_Load(t *testing.T) {
	lib, _ := countingLibrary(t)

	book, verses, err := lib.Load(context.Background(), "kjv", "genesis")

	require.NoError(t, err)
	assert.Equal(t, "genesis", book.ID)
	assert.Equal(t, "Genesis", book.Name)
	assert.Equal(t, TestamentOld, book.Testament)
	assert.Equal(t, 2, book.ChapterCount)
	assert.Len(t, verses, 8)
	assert.Equal(t, "kjv_genesis_1_1", verses[0].ID)
}

func TestLibrary_Load_CacheHit(t *testing.T) {
	lib, reads := countingLibrary(t)

	book1, verses1, err := lib.Load(context.Background(), "kjv", "genesis")
	require.NoError(t, err)
	assert.Equal(t, int64(2), reads.Load()) // one read per document

	book2, verses2, err := lib.Load(context.Background(), "kjv", "genesis")
	require.NoError(t, err)

	// Identical objects, no additional reads.
	assert.Same(t, book1, book2)
	assert.Equal(t, int64(2), reads.Load())
	assert.Same(t, &verses1[0], &verses2[0])
}

func TestLibrary_Load_UnsupportedTranslation(t *testing.T) {
	lib, reads := countingLibrary(t)

	_, _, err := lib.Load(context.Background(), "xx", "genesis")

	require.ErrorIs(t, err, ErrUnsupportedTranslation)
	assert.Equal(t, int64(0), reads.Load())
	assert.False(t, lib.Cached("xx", "genesis"))
}

func TestLibrary_Load_BookDataMissing(t *testing.T) {
	lib, _ := countingLibrary(t)

	// esv is a supported translation but has no data in testdata.
	_, _, err := lib.Load(context.Background(), "esv", "genesis")
	require.ErrorIs(t, err, ErrBookDataMissing)
	assert.False(t, lib.Cached("esv", "genesis"))
}

func TestLibrary_Load_InvalidBook(t *testing.T) {
	lib, reads := countingLibrary(t)

	// A book outside the canon is rejected as invalid rather than missing.
	_, _, err := lib.Load(context.Background(), "kjv", "atlantis")
	require.ErrorIs(t, err, ErrInvalidBook)

	_, _, err = lib.Load(context.Background(), "kjv", "")
	require.ErrorIs(t, err, ErrInvalidBook)

	assert.Equal(t, int64(0), reads.Load())
}

func TestLibrary_Load_FailureNotCached(t *testing.T) {
	lib, _ := countingLibrary(t)

	_, _, err := lib.Load(context.Background(), "esv", "genesis")
	require.Error(t, err)

	// A later attempt retries the fetch instead of serving the failure.
	_, _, err = lib.Load(context.Background(), "esv", "genesis")
	require.ErrorIs(t, err, ErrBookDataMissing)
}

func TestLibrary_Load_ConcurrentMissesCoalesced(t *testing.T) {
	var reads atomic.Int64
	gate := make(chan struct{})
	lib := NewLibrary("./testdata")
	lib.readFile = func(path string) ([]byte, error) {
		reads.Add(1)
		<-gate
		return os.ReadFile(path)
	}

	const callers = 5
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			_, _, err := lib.Load(context.Background(), "kjv", "genesis")
			assert.NoError(t, err)
		}()
	}

	close(gate)
	wg.Wait()

	// All callers share one in-flight fetch: two document reads total.
	assert.Equal(t, int64(2), reads.Load())
}

func TestResourcePath(t *testing.T) {
	path, err := resourcePath("/data", "nasb1995", "1samuel", resourceVerses)
	require.NoError(t, err)
	assert.Equal(t, "/data/NASB1995/1samuelVerses.json", path)

	path, err = resourcePath("/data", "KJV", "Genesis", resourceBook)
	require.NoError(t, err)
	assert.Equal(t, "/data/KJV/genesisBook.json", path)

	_, err = resourcePath("/data", "xx", "genesis", resourceBook)
	assert.ErrorIs(t, err, ErrUnsupportedTranslation)

	_, err = resourcePath("/data", "kjv", "atlantis", resourceBook)
	assert.ErrorIs(t, err, ErrInvalidBook)
}
