package bible

import (
	"fmt"
	"strings"
)

// Testament identifies which testament a book belongs to.
type Testament string

const (
	TestamentOld Testament = "old"
	TestamentNew Testament = "new"
)

// Translation is a published edition of the scriptural text.
// The set of translations is closed and defined at startup.
type Translation struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// Book is one of the 66 canonical books, independent of any translation.
type Book struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Testament Testament `json:"testament"`
	Order     int       `json:"order"`
}

// VerseRecord is a single verse as produced by the conversion pipeline.
// Immutable once loaded.
type VerseRecord struct {
	ID          string `json:"id"`
	Translation string `json:"translation"`
	Book        string `json:"book"`
	BookName    string `json:"bookName"`
	Chapter     int    `json:"chapter"`
	Verse       int    `json:"verse"`
	Text        string `json:"text"`
	// Paragraph groups every 5 verses for rendering.
	Paragraph int    `json:"paragraph"`
	Speaker   string `json:"speaker,omitempty"`
	RedLetter bool   `json:"isRedLetter"`
}

// VerseRef is a chapter/verse coordinate without text, used in the
// per-chapter verse lists of a BookRecord.
type VerseRef struct {
	Chapter int `json:"chapter"`
	Verse   int `json:"verse"`
}

// ChapterSummary describes one chapter of a BookRecord: its number and the
// coordinates of its verses. Verse text lives in the flat verse document.
type ChapterSummary struct {
	Number  int        `json:"number"`
	Summary string     `json:"summary"`
	Verses  []VerseRef `json:"verses"`
}

// BookSummary carries the descriptive metadata attached to a book.
type BookSummary struct {
	Short         string   `json:"short"`
	Long          string   `json:"long"`
	KeyThemes     []string `json:"keyThemes,omitempty"`
	KeyCharacters []string `json:"keyCharacters,omitempty"`
}

// Authorship records the traditionally attributed author of a book.
type Authorship struct {
	Name       string `json:"name"`
	Confidence string `json:"confidence,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Dating records the estimated composition date of a book.
type Dating struct {
	Estimated  string `json:"estimated"`
	Confidence string `json:"confidence,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// BookRecord is the per-translation book metadata document. Read-only at
// runtime; produced by the offline conversion pipeline.
type BookRecord struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Testament    Testament        `json:"testament"`
	Order        int              `json:"order"`
	ChapterCount int              `json:"chapterCount"`
	VerseCount   int              `json:"verseCount"`
	Translation  string           `json:"translation"`
	Summary      BookSummary      `json:"summary"`
	Author       Authorship       `json:"author"`
	DateWritten  Dating           `json:"dateWritten"`
	Chapters     []ChapterSummary `json:"chapters"`
}

// CompiledChapter joins a chapter summary with the full verse records that
// belong to it. Derived data, recomputed whenever book or translation changes.
type CompiledChapter struct {
	Number  int           `json:"number"`
	Summary string        `json:"summary"`
	Verses  []VerseRecord `json:"verses"`
}

// FindVerse returns the verse with the given number, or nil if absent.
func (c *CompiledChapter) FindVerse(verse int) *VerseRecord {
	for i := range c.Verses {
		if c.Verses[i].Verse == verse {
			return &c.Verses[i]
		}
	}
	return nil
}

// ComparisonResult is a verse fetched from an alternate translation together
// with the translation it came from and the verse it was compared against.
type ComparisonResult struct {
	VerseRecord
	TranslationMeta Translation `json:"translation_meta"`
	Original        VerseRecord `json:"original_verse"`
}

// VerseID builds the stable primary key of a verse:
// {translationLower}_{bookId}_{chapter}_{verse}.
func VerseID(translationID, bookID string, chapter, verse int) string {
	return fmt.Sprintf("%s_%s_%d_%d", strings.ToLower(translationID), bookID, chapter, verse)
}
