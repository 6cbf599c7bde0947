package bible

import "errors"

var (
	// ErrUnsupportedTranslation is returned when a translation id is not in
	// the catalog. Fatal to the operation; never cached.
	ErrUnsupportedTranslation = errors.New("translation not supported")

	// ErrBookDataMissing is returned when a book's data resource is absent
	// or cannot be parsed. The caller decides how to surface it; the loader
	// never falls back to another translation.
	ErrBookDataMissing = errors.New("book data missing")

	// ErrInvalidBook is returned for an empty book id or one outside the
	// 66-book canon.
	ErrInvalidBook = errors.New("invalid book")

	// ErrChapterNotFound is returned when a navigation target chapter does
	// not exist in the compiled data.
	ErrChapterNotFound = errors.New("chapter not found")

	// ErrVerseNotFound is returned when a navigation target verse does not
	// exist in its chapter.
	ErrVerseNotFound = errors.New("verse not found")

	// ErrVerseNotFoundInTranslation is returned when a comparison target has
	// no matching verse in the requested translation. Not cached.
	ErrVerseNotFoundInTranslation = errors.New("verse not found in translation")
)
