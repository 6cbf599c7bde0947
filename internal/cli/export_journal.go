package cli

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mrlokans/berean/internal/bible"
	"github.com/mrlokans/berean/internal/config"
	"github.com/mrlokans/berean/internal/database"
	"github.com/mrlokans/berean/internal/database/annotations"
	"github.com/mrlokans/berean/internal/database/users"
	"github.com/mrlokans/berean/internal/exporters"
)

// ExportJournalCommand exports a user's annotations to a markdown study
// journal, one file per annotated book.
type ExportJournalCommand struct {
	DatabasePath string
	OutputDir    string
	UserID       uint
	AllUsers     bool
}

func NewExportJournalCommand() *ExportJournalCommand {
	return &ExportJournalCommand{}
}

func (cmd *ExportJournalCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export-journal", flag.ExitOnError)

	var userID uint64
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.OutputDir, "out", "", "Directory to write journal markdown into (required)")
	fs.Uint64Var(&userID, "user", 0, "User ID to export (0 is the default user when auth is disabled)")
	fs.BoolVar(&cmd.AllUsers, "all-users", false, "Export every user that has annotations")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export-journal [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export annotations as a markdown study journal, one file per book.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export-journal -out ./journal\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export-journal -out ./journal -user 3\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export-journal -out ./journal -all-users\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	cmd.UserID = uint(userID)

	if cmd.OutputDir == "" {
		fs.Usage()
		return fmt.Errorf("output directory is required")
	}

	return nil
}

func (cmd *ExportJournalCommand) Run() error {
	if _, err := os.Stat(cmd.DatabasePath); os.IsNotExist(err) {
		return fmt.Errorf("database file does not exist: %s", cmd.DatabasePath)
	}
	if err := os.MkdirAll(cmd.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	repo := annotations.NewRepository(db.DB)
	usersRepo := users.NewRepository(db.DB)

	userIDs := []uint{cmd.UserID}
	if cmd.AllUsers {
		userIDs, err = repo.ListUsers()
		if err != nil {
			return fmt.Errorf("failed to list annotated users: %w", err)
		}
		if len(userIDs) == 0 {
			fmt.Println("No annotations to export.")
			return nil
		}
	}

	var books, records int
	for _, userID := range userIDs {
		// Each user gets their own subtree when exporting several.
		dir := cmd.OutputDir
		if len(userIDs) > 1 {
			dir = filepath.Join(cmd.OutputDir, fmt.Sprintf("user-%d", userID))
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		exporter := exporters.NewJournalExporter(dir)
		if err := cmd.exportUser(exporter, repo, userID); err != nil {
			return err
		}
		if len(userIDs) > 1 {
			fmt.Printf("  %-20s %d books, %d annotations\n",
				describeUser(usersRepo, userID),
				exporter.Result.BooksProcessed, exporter.Result.AnnotationsProcessed)
		}
		books += exporter.Result.BooksProcessed
		records += exporter.Result.AnnotationsProcessed
	}

	fmt.Printf("Exported %d books, %d annotations to %s\n", books, records, cmd.OutputDir)
	return nil
}

func (cmd *ExportJournalCommand) exportUser(exporter *exporters.JournalExporter, repo *annotations.Repository, userID uint) error {
	books, err := repo.ListBooks(userID)
	if err != nil {
		return fmt.Errorf("failed to list books for user %d: %w", userID, err)
	}
	for _, bookID := range books {
		records, err := repo.ListForBook(userID, bookID)
		if err != nil {
			return fmt.Errorf("failed to load annotations for %s: %w", bookID, err)
		}
		bookName := bookID
		if book, ok := bible.BookByID(bookID); ok {
			bookName = book.Name
		}
		if _, err := exporter.ExportBook(bookID, bookName, records); err != nil {
			return fmt.Errorf("failed to export %s: %w", bookID, err)
		}
	}
	return nil
}

// describeUser labels export output with the username when the account still
// exists. The default user (id 0) and deleted accounts fall back to the id.
func describeUser(repo *users.Repository, userID uint) string {
	if user, err := repo.GetUserByID(userID); err == nil {
		return fmt.Sprintf("%s (user %d)", user.Username, userID)
	}
	return fmt.Sprintf("user %d", userID)
}
