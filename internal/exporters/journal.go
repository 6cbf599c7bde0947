// Package exporters writes the reader's study journal to disk as markdown,
// one file per annotated book, suitable for an Obsidian vault.
package exporters

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mrlokans/berean/internal/entities"
)

// ExportResult summarizes one export run.
type ExportResult struct {
	BooksProcessed       int
	AnnotationsProcessed int
}

// JournalExporter renders annotation collections to markdown files.
type JournalExporter struct {
	ExportDir string
	Result    ExportResult
}

// NewJournalExporter creates an exporter targeting the given directory.
func NewJournalExporter(exportDir string) *JournalExporter {
	return &JournalExporter{ExportDir: exportDir}
}

func (e *JournalExporter) ensureDir() error {
	if e.ExportDir == "" {
		return fmt.Errorf("export directory not configured")
	}
	return os.MkdirAll(e.ExportDir, 0755)
}

// ExportBook writes the annotations of one book to <book>.md and returns the
// written path. Books with no annotations produce no file.
func (e *JournalExporter) ExportBook(bookID, bookName string, annotations []entities.Annotation) (string, error) {
	if len(annotations) == 0 {
		return "", nil
	}
	if err := e.ensureDir(); err != nil {
		return "", err
	}

	outputPath := filepath.Join(e.ExportDir, bookID+".md")
	content := GenerateJournalMarkdown(bookName, annotations)
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write journal file: %w", err)
	}

	e.Result.BooksProcessed++
	e.Result.AnnotationsProcessed += len(annotations)
	return outputPath, nil
}

// GenerateJournalMarkdown renders one book's annotations: frontmatter, then
// a Notes and a Questions section, each ordered book-scope first, then by
// chapter and verse.
func GenerateJournalMarkdown(bookName string, annotations []entities.Annotation) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: study_journal\n")
	fmt.Fprintf(&builder, "book: \"%s\"\n", strings.ReplaceAll(bookName, "\"", "\\\""))
	fmt.Fprintf(&builder, "exported_at: %s\n", time.Now().Format("2006-01-02"))
	fmt.Fprintf(&builder, "tags: bible, journal\n")
	fmt.Fprintf(&builder, "---\n\n")

	writeSection(&builder, "Notes", bookName, filterKind(annotations, entities.AnnotationKindNote))
	writeSection(&builder, "Questions", bookName, filterKind(annotations, entities.AnnotationKindQuestion))

	return builder.String()
}

func writeSection(builder *strings.Builder, title, bookName string, annotations []entities.Annotation) {
	if len(annotations) == 0 {
		return
	}

	sort.SliceStable(annotations, func(i, j int) bool {
		if annotations[i].Chapter != annotations[j].Chapter {
			return annotations[i].Chapter < annotations[j].Chapter
		}
		return annotations[i].Verse < annotations[j].Verse
	})

	fmt.Fprintf(builder, "## %s\n\n", title)
	for _, a := range annotations {
		fmt.Fprintf(builder, "### %s\n\n", anchorHeading(bookName, a))
		fmt.Fprintf(builder, "%s\n\n", strings.TrimSpace(a.Text))
	}
}

func anchorHeading(bookName string, a entities.Annotation) string {
	switch a.Scope {
	case entities.ScopeVerse:
		return fmt.Sprintf("%s %d:%d", bookName, a.Chapter, a.Verse)
	case entities.ScopeChapter:
		return fmt.Sprintf("%s %d", bookName, a.Chapter)
	default:
		return bookName
	}
}

func filterKind(annotations []entities.Annotation, kind entities.AnnotationKind) []entities.Annotation {
	matched := make([]entities.Annotation, 0, len(annotations))
	for _, a := range annotations {
		if a.Kind == kind {
			matched = append(matched, a)
		}
	}
	return matched
}
