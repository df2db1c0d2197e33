// Package file provides the TOML-based application configuration.
// Configuration lives in a single file within the griot config directory.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultMaxTokens  = 500
	DefaultBatchSize  = 20
	DefaultBatchPause = 1000 // milliseconds
	DefaultTopK       = 5
)

// CorpusConfig locates the persisted ingestion artifacts.
type CorpusConfig struct {
	// ArtifactPath is the JSON corpus artifact location.
	ArtifactPath string `toml:"artifact_path"`

	// CatalogPath is the CSV catalog location.
	CatalogPath string `toml:"catalog_path"`
}

// ChunkerConfig configures how pages are split into chunks.
type ChunkerConfig struct {
	// MaxTokens is the soft cap on tokens per chunk.
	MaxTokens int `toml:"max_tokens"`
}

// EmbeddingConfig selects and configures the embedding provider.
type EmbeddingConfig struct {
	// Provider is "openai" or "ollama".
	Provider string `toml:"provider"`

	// BaseURL overrides the provider's default endpoint.
	BaseURL string `toml:"base_url"`

	// Model is the embedding model name.
	Model string `toml:"model"`

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv string `toml:"api_key_env"`

	// Dimensions overrides the model's default vector size.
	Dimensions int `toml:"dimensions"`
}

// IngestConfig configures the batch embedding generator.
type IngestConfig struct {
	// BatchSize is the number of chunks embedded concurrently per batch.
	BatchSize int `toml:"batch_size"`

	// BatchPauseMs is the fixed pause between batches, in milliseconds.
	BatchPauseMs int `toml:"batch_pause_ms"`
}

// SearchConfig configures the runtime query path.
type SearchConfig struct {
	// TopK is the number of raw hits requested per question.
	TopK int `toml:"top_k"`
}

// SessionConfig configures the chat-session store.
type SessionConfig struct {
	// DataDir holds the sessions database. Empty means ~/.griot/data.
	DataDir string `toml:"data_dir"`
}

// Config is the root application configuration.
type Config struct {
	Corpus    CorpusConfig    `toml:"corpus"`
	Chunker   ChunkerConfig   `toml:"chunker"`
	Embedding EmbeddingConfig `toml:"embedding"`
	Ingest    IngestConfig    `toml:"ingest"`
	Search    SearchConfig    `toml:"search"`
	Session   SessionConfig   `toml:"session"`
}

// DefaultPath returns ~/.griot/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".griot", "config.toml"), nil
}

// Load reads the config from path. A missing file yields the defaults;
// a present file is unmarshalled and then back-filled with defaults for
// any omitted field.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Save writes the config to path, creating directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func defaultConfig() *Config {
	cfg := &Config{
		Embedding: EmbeddingConfig{
			Provider:  "openai",
			APIKeyEnv: "OPENAI_API_KEY",
		},
	}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Corpus.ArtifactPath == "" || cfg.Corpus.CatalogPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			if cfg.Corpus.ArtifactPath == "" {
				cfg.Corpus.ArtifactPath = filepath.Join(home, ".griot", "data", "corpus.json")
			}
			if cfg.Corpus.CatalogPath == "" {
				cfg.Corpus.CatalogPath = filepath.Join(home, ".griot", "data", "catalog.csv")
			}
		}
	}
	if cfg.Chunker.MaxTokens == 0 {
		cfg.Chunker.MaxTokens = DefaultMaxTokens
	}
	if cfg.Embedding.Provider == "" {
		cfg.Embedding.Provider = "openai"
	}
	if cfg.Embedding.APIKeyEnv == "" {
		cfg.Embedding.APIKeyEnv = "OPENAI_API_KEY"
	}
	if cfg.Ingest.BatchSize == 0 {
		cfg.Ingest.BatchSize = DefaultBatchSize
	}
	if cfg.Ingest.BatchPauseMs == 0 {
		cfg.Ingest.BatchPauseMs = DefaultBatchPause
	}
	if cfg.Search.TopK == 0 {
		cfg.Search.TopK = DefaultTopK
	}
}
