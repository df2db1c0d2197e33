// Package cli implements the cobra command tree. Commands depend on the
// driving ports only; concrete services are injected by the composition
// root in cmd/griot before Execute runs.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/griot-labs/griot-cli/internal/core/ports/driven"
	"github.com/griot-labs/griot-cli/internal/core/ports/driving"
	"github.com/griot-labs/griot-cli/internal/logger"
)

// version is overridden at build time via ldflags.
var version = "dev"

// Injected services. Nil services make their commands fail with a clear
// message instead of panicking.
var (
	ingestService    driving.IngestService
	retrievalService driving.RetrievalService
	sessionStore     driven.SessionStore
	catalogStore     driven.CatalogStore

	// corpusArtifactPath is watched for changes in interactive mode.
	corpusArtifactPath string
)

// Services bundles everything the command tree needs.
type Services struct {
	Ingest             driving.IngestService
	Retrieval          driving.RetrievalService
	Sessions           driven.SessionStore
	Catalog            driven.CatalogStore
	CorpusArtifactPath string
}

// SetServices injects the concrete services.
func SetServices(s *Services) {
	ingestService = s.Ingest
	retrievalService = s.Retrieval
	sessionStore = s.Sessions
	catalogStore = s.Catalog
	corpusArtifactPath = s.CorpusArtifactPath
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "griot",
	Short: "Ask questions against a corpus of oral-history transcripts",
	Long: `Griot answers natural-language questions with references into a
corpus of oral-history transcripts: which interviews are relevant and on
which pages. Transcripts are ingested once into a local corpus artifact;
questions are then answered offline against that artifact, with only the
embedding provider contacted at question time.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
