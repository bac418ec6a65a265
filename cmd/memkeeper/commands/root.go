// ABOUTME: Root command setup and shared persistent flags
// ABOUTME: Entry point for all memkeeper CLI subcommands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
	dbPath       string
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memkeeper",
		Short: "Local memory persistence for LLM agents",
		Long: `memkeeper stores agent memories in a local SQLite file and exposes
them as MCP tools over stdio.

Memories are grouped under app namespaces and can carry research-specific
attributes (topic, kind, source reliability). Use the mcp subcommand to
serve tools to an LLM agent, or add/list to work with memories directly.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "table", "Output format (table or json)")
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: $MEMKEEPER_DB_PATH or XDG data dir)")

	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
