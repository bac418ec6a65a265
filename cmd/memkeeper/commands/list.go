// ABOUTME: CLI command to list memories
// ABOUTME: Filtered listing with table or JSON output
package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
	"github.com/keeperhq/memkeeper/internal/config"
	"github.com/keeperhq/memkeeper/internal/storage"
	"github.com/keeperhq/memkeeper/internal/storage/sqlite"
)

var (
	listApp      string
	listCategory string
	listLimit    int
	listResearch bool
)

// NewListCmd creates list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored memories",
		Long: `List stored memories, newest first.

Examples:
  memkeeper list
  memkeeper list --app my_agent --limit 5
  memkeeper list --category project-x
  memkeeper list --research --format json`,
		RunE: runList,
	}

	cmd.Flags().StringVar(&listApp, "app", "", "Filter by app name")
	cmd.Flags().StringVar(&listCategory, "category", "", "Filter by category")
	cmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum results (default from config)")
	cmd.Flags().BoolVar(&listResearch, "research", false, "Only show research memories")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load(dbPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	limit := listLimit
	if limit <= 0 {
		limit = cfg.DefaultLimit
	}

	filter := sqlite.MemoryFilter{
		AppName:      listApp,
		Category:     listCategory,
		ResearchOnly: listResearch,
		Limit:        limit,
	}

	memories, err := store.ListMemories(filter)
	if err != nil {
		return fmt.Errorf("listing memories: %w", err)
	}

	if len(memories) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No memories found\n")
		}
		return nil
	}

	// Format output
	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(memories, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
	} else {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "APP\tCONTENT\tCATEGORIES\tCREATED\tID\n")
		fmt.Fprintf(w, "---\t-------\t----------\t-------\t--\n")

		for _, m := range memories {
			content := m.Content
			if len(content) > 60 {
				content = content[:57] + "..."
			}
			categories := strings.Join(m.Categories, ",")
			if categories == "" {
				categories = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				m.AppName, content, categories,
				m.CreatedAt.Format(time.RFC3339), m.ID)
		}

		if err := w.Flush(); err != nil {
			return fmt.Errorf("flushing output: %w", err)
		}
	}

	return nil
}
