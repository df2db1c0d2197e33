package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/griot-labs/griot-cli/internal/core/domain"
	"github.com/griot-labs/griot-cli/internal/logger"
	"github.com/griot-labs/griot-cli/internal/watcher"
)

var (
	askJSON        bool
	askSource      string
	askTopK        int
	askInteractive bool
	askSession     string
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a question with document references",
	Long: `Finds the transcripts most relevant to the question and prints
document references: interview name, page ranges and a relevance score.
Transcript text itself is never printed.

With --interactive, reads questions from stdin in a loop and reloads the
index automatically when the corpus artifact changes on disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output results as JSON")
	askCmd.Flags().StringVar(&askSource, "source", "", "restrict results to one interview by name")
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "raw similarity hits to consider (0 = default)")
	askCmd.Flags().BoolVarP(&askInteractive, "interactive", "i", false, "read questions from stdin in a loop")
	askCmd.Flags().StringVar(&askSession, "session", "", "session id to record turns under (empty = new)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	// The index is built lazily on the first question.
	if retrievalService.Health() == domain.IndexUninitialized {
		if err := retrievalService.Reload(context.Background()); err != nil {
			return fmt.Errorf("load index: %w", err)
		}
	}

	if askInteractive {
		return runInteractive(cmd)
	}
	if len(args) == 0 {
		return errors.New("a question is required unless --interactive is set")
	}
	return answerOnce(context.Background(), cmd, args[0])
}

func answerOnce(ctx context.Context, cmd *cobra.Command, question string) error {
	opts := domain.QueryOptions{
		TopK:         askTopK,
		SourceFilter: askSource,
	}
	results, err := retrievalService.FindRelevantContext(ctx, question, opts)
	if err != nil {
		return fmt.Errorf("retrieval failed: %w", err)
	}

	recordTurns(ctx, question, results)

	if askJSON {
		return outputResultsJSON(cmd, results)
	}
	return outputResultsTable(cmd, results)
}

func runInteractive(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if askSession == "" {
		askSession = uuid.NewString()
	}
	cmd.Printf("Session %s. Type a question, or \"exit\" to quit.\n", askSession)

	if corpusArtifactPath != "" {
		w, err := watcher.New(corpusArtifactPath, retrievalService, 0)
		if err != nil {
			logger.Warn("Corpus watcher unavailable: %v", err)
		} else {
			defer w.Close()
			w.Start(ctx)
		}
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		cmd.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" {
			return nil
		}

		if err := answerOnce(ctx, cmd, question); err != nil {
			cmd.PrintErrf("Error: %v\n", err)
		}
	}
}

// recordTurns persists the exchange when a session store is configured
// and a session id is in play. Recording is best effort: a store failure
// must not fail the answer.
func recordTurns(ctx context.Context, question string, results []domain.AggregatedResult) {
	if sessionStore == nil || askSession == "" {
		return
	}
	if err := sessionStore.Append(ctx, askSession, domain.Turn{Role: "user", Content: question}); err != nil {
		logger.Warn("Recording question failed: %v", err)
		return
	}
	if err := sessionStore.Append(ctx, askSession, domain.Turn{Role: "assistant", Content: renderReferences(results)}); err != nil {
		logger.Warn("Recording answer failed: %v", err)
	}
}

func renderReferences(results []domain.AggregatedResult) string {
	if len(results) == 0 {
		return "no relevant documents"
	}
	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, fmt.Sprintf("%s (pages %s)", r.Name, strings.Join(r.Pages, ", ")))
	}
	return strings.Join(parts, "; ")
}

func outputResultsJSON(cmd *cobra.Command, results []domain.AggregatedResult) error {
	// The Text field carries transcript content for downstream prose
	// generation; references shown to the user must not include it.
	type reference struct {
		ID             int      `json:"id"`
		Name           string   `json:"name"`
		Pages          []string `json:"pages"`
		RelevanceScore float64  `json:"relevance_score"`
	}
	refs := make([]reference, 0, len(results))
	for _, r := range results {
		refs = append(refs, reference{
			ID:             r.ID,
			Name:           r.Name,
			Pages:          r.Pages,
			RelevanceScore: r.RelevanceScore,
		})
	}

	data, err := json.MarshalIndent(refs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResultsTable(cmd *cobra.Command, results []domain.AggregatedResult) error {
	if len(results) == 0 {
		cmd.Println("No relevant documents found.")
		return nil
	}

	cmd.Println("Relevant documents:")
	cmd.Println()
	for i, r := range results {
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, r.Name, r.RelevanceScore)
		cmd.Printf("      Pages: %s\n", strings.Join(r.Pages, ", "))
		cmd.Println()
	}
	return nil
}
