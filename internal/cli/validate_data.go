package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mrlokans/berean/internal/bible"
	"github.com/mrlokans/berean/internal/config"
)

// ValidateDataCommand loads every book of a translation from the converted
// data directory and reports which ones are missing or unreadable.
type ValidateDataCommand struct {
	DataDir     string
	Translation string
	Verbose     bool
}

func NewValidateDataCommand() *ValidateDataCommand {
	return &ValidateDataCommand{}
}

func (cmd *ValidateDataCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("validate-data", flag.ExitOnError)

	fs.StringVar(&cmd.DataDir, "data", config.DefaultBibleDataDir, "Path to the converted scripture data")
	fs.StringVar(&cmd.Translation, "translation", bible.DefaultTranslationID, "Translation id to validate")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Print every book as it is checked")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s validate-data [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Load every canonical book of a translation and report missing data.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s validate-data -translation kjv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s validate-data -data ./data/converted -translation niv -verbose\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ValidateDataCommand) Run() error {
	translationID := strings.ToLower(cmd.Translation)
	if _, ok := bible.TranslationByID(translationID); !ok {
		return fmt.Errorf("unsupported translation: %s", cmd.Translation)
	}
	if _, err := os.Stat(cmd.DataDir); os.IsNotExist(err) {
		return fmt.Errorf("data directory does not exist: %s", cmd.DataDir)
	}

	library := bible.NewLibrary(cmd.DataDir)
	ctx := context.Background()

	var loaded, missing, broken int
	for _, book := range bible.Books {
		record, verses, err := library.Load(ctx, translationID, book.ID)
		switch {
		case err == nil:
			loaded++
			if cmd.Verbose {
				fmt.Printf("  ok      %-16s %d chapters, %d verses\n", book.ID, record.ChapterCount, len(verses))
			}
		case errors.Is(err, bible.ErrBookDataMissing):
			missing++
			if cmd.Verbose {
				fmt.Printf("  missing %s\n", book.ID)
			}
		default:
			broken++
			fmt.Printf("  error   %-16s %v\n", book.ID, err)
		}
	}

	fmt.Printf("\n%s: %d books loaded, %d missing, %d broken\n",
		strings.ToUpper(translationID), loaded, missing, broken)
	if broken > 0 {
		return fmt.Errorf("%d books failed to load", broken)
	}
	return nil
}
