package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [dir]",
	Short: "Ingest transcripts into the searchable corpus",
	Long: `Reads every supported transcript under the given directory, splits
it into token-bounded chunks, embeds the chunks in throttled batches and
writes the corpus and catalog artifacts. Re-running replaces the previous
artifacts entirely.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	summary, err := ingestService.Ingest(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	cmd.Printf("Ingested %d documents (%d chunks)\n", summary.Documents, summary.Chunks)
	if summary.Skipped > 0 {
		cmd.Printf("Skipped %d unreadable files\n", summary.Skipped)
	}
	if summary.Dropped > 0 {
		cmd.Printf("Dropped %d chunks on embedding failures\n", summary.Dropped)
	}
	return nil
}
