package main

import (
	"fmt"
	"os"
	"time"

	"github.com/griot-labs/griot-cli/internal/adapters/driven/config/file"
	"github.com/griot-labs/griot-cli/internal/adapters/driven/embedding/ollama"
	"github.com/griot-labs/griot-cli/internal/adapters/driven/embedding/openai"
	"github.com/griot-labs/griot-cli/internal/adapters/driven/index/memory"
	filestore "github.com/griot-labs/griot-cli/internal/adapters/driven/storage/file"
	"github.com/griot-labs/griot-cli/internal/adapters/driven/storage/sqlite"
	"github.com/griot-labs/griot-cli/internal/adapters/driven/tokenizer/approx"
	"github.com/griot-labs/griot-cli/internal/adapters/driven/transcript/plaintext"
	"github.com/griot-labs/griot-cli/internal/adapters/driving/cli"
	"github.com/griot-labs/griot-cli/internal/chunker"
	"github.com/griot-labs/griot-cli/internal/core/ports/driven"
	"github.com/griot-labs/griot-cli/internal/core/services"
	"github.com/griot-labs/griot-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath, err := file.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := file.Load(cfgPath)
	if err != nil {
		return err
	}

	embedSvc, err := buildEmbeddingService(cfg)
	if err != nil {
		return err
	}
	defer embedSvc.Close()

	corpusStore := filestore.NewCorpusStore(cfg.Corpus.ArtifactPath)
	catalogStore := filestore.NewCatalogStore(cfg.Corpus.CatalogPath)
	index := memory.New(corpusStore, catalogStore)

	splitter := chunker.New(approx.New(), chunker.WithMaxTokens(cfg.Chunker.MaxTokens))
	embedder := services.NewBatchEmbedder(embedSvc, cfg.Ingest.BatchSize,
		time.Duration(cfg.Ingest.BatchPauseMs)*time.Millisecond)

	ingest := services.NewIngestService(plaintext.New(), splitter, embedder, corpusStore, catalogStore)
	retrieval := services.NewRetrievalService(embedSvc, index, cfg.Search.TopK)

	// Session recording is optional; a broken store degrades to no
	// recording rather than a dead CLI.
	var sessions driven.SessionStore
	if store, err := sqlite.NewSessionStore(cfg.Session.DataDir); err != nil {
		logger.Warn("Session store unavailable: %v", err)
	} else {
		sessions = store
		defer store.Close()
	}

	cli.SetServices(&cli.Services{
		Ingest:             ingest,
		Retrieval:          retrieval,
		Sessions:           sessions,
		Catalog:            catalogStore,
		CorpusArtifactPath: cfg.Corpus.ArtifactPath,
	})

	return cli.Execute()
}

func buildEmbeddingService(cfg *file.Config) (driven.EmbeddingService, error) {
	switch cfg.Embedding.Provider {
	case "ollama":
		return ollama.NewEmbeddingService(ollama.Config{
			BaseURL:    cfg.Embedding.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.Dimensions,
		}), nil

	case "openai", "":
		return openai.NewEmbeddingService(openai.Config{
			APIKey:     os.Getenv(cfg.Embedding.APIKeyEnv),
			BaseURL:    cfg.Embedding.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.Dimensions,
		})

	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Embedding.Provider)
	}
}
