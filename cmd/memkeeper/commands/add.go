// ABOUTME: CLI command to add new memories
// ABOUTME: Handles text input from arg, file, or stdin and memory creation
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
	"github.com/keeperhq/memkeeper/internal/config"
	"github.com/keeperhq/memkeeper/internal/storage"
)

var (
	addFile       string
	addApp        string
	addCategories []string
)

// NewAddCmd creates add command
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a new memory",
		Long: `Add a new memory from text or file.

Examples:
  memkeeper add --app my_agent "Met with Alice about project X"
  memkeeper add --app my_agent --file notes.txt
  memkeeper add --app my_agent --categories=meeting,project-x "Discussed timeline"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringVar(&addFile, "file", "", "Read memory content from file")
	cmd.Flags().StringVar(&addApp, "app", "", "App name the memory belongs to (required)")
	cmd.Flags().StringSliceVar(&addCategories, "categories", []string{}, "Category tags (comma-separated)")
	_ = cmd.MarkFlagRequired("app")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	// Get memory text
	var text string
	if addFile != "" {
		data, err := os.ReadFile(addFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		text = string(data)
	} else if len(args) > 0 {
		text = args[0]
	} else {
		// Read from stdin
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("no text provided")
	}

	cfg, err := config.Load(dbPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	memory, err := store.CreateMemory(storage.CreateMemoryInput{
		Content:    text,
		AppName:    addApp,
		Categories: addCategories,
	})
	if err != nil {
		return fmt.Errorf("creating memory: %w", err)
	}

	if !quiet {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Added memory %s (app: %s)\n", memory.ID, memory.AppName)
	}
	return nil
}
