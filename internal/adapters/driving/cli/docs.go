package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var docsJSON bool

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "List ingested documents",
	Long:  `Prints the document catalog: id, interview name and page count.`,
	Args:  cobra.NoArgs,
	RunE:  runDocs,
}

func init() {
	docsCmd.Flags().BoolVar(&docsJSON, "json", false, "output the catalog as JSON")
	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, _ []string) error {
	if catalogStore == nil {
		return errors.New("catalog store not configured")
	}

	catalog, err := catalogStore.Load(context.Background())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	ids := make([]int, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	if docsJSON {
		type document struct {
			ID    int    `json:"id"`
			Name  string `json:"name"`
			Pages int    `json:"pages"`
		}
		docs := make([]document, 0, len(ids))
		for _, id := range ids {
			e := catalog[id]
			docs = append(docs, document{ID: e.ID, Name: e.Name, Pages: e.Pages})
		}
		data, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal catalog: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(ids) == 0 {
		cmd.Println("No documents ingested.")
		return nil
	}

	cmd.Println("Documents:")
	cmd.Println()
	for _, id := range ids {
		e := catalog[id]
		cmd.Printf("  [%d] %s (%d pages)\n", id, e.Name, e.Pages)
	}
	return nil
}
