package cli

import (
	"context"

	"github.com/griot-labs/griot-cli/internal/core/domain"
	"github.com/griot-labs/griot-cli/internal/core/ports/driving"
)

// mockRetrievalService returns canned references and records the call.
type mockRetrievalService struct {
	results      []domain.AggregatedResult
	err          error
	lastQuestion string
	lastOpts     domain.QueryOptions
	reloads      int
}

func (m *mockRetrievalService) FindRelevantContext(_ context.Context, question string, opts domain.QueryOptions) ([]domain.AggregatedResult, error) {
	m.lastQuestion = question
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

func (m *mockRetrievalService) Reload(context.Context) error {
	m.reloads++
	return nil
}

func (m *mockRetrievalService) Health() domain.IndexState { return domain.IndexReady }

type mockIngestService struct {
	summary *driving.IngestSummary
	err     error
	lastDir string
}

func (m *mockIngestService) Ingest(_ context.Context, dir string) (*driving.IngestSummary, error) {
	m.lastDir = dir
	if m.err != nil {
		return nil, m.err
	}
	return m.summary, nil
}

type mockCatalogStore struct {
	catalog domain.Catalog
	err     error
}

func (m *mockCatalogStore) Load(context.Context) (domain.Catalog, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.catalog, nil
}

func (m *mockCatalogStore) Save(context.Context, []domain.CatalogEntry) error { return nil }

type mockSessionStore struct {
	appended map[string][]domain.Turn
}

func (m *mockSessionStore) Get(_ context.Context, sessionID string) ([]domain.Turn, error) {
	return m.appended[sessionID], nil
}

func (m *mockSessionStore) Append(_ context.Context, sessionID string, turn domain.Turn) error {
	if m.appended == nil {
		m.appended = map[string][]domain.Turn{}
	}
	m.appended[sessionID] = append(m.appended[sessionID], turn)
	return nil
}

func (m *mockSessionStore) Close() error { return nil }

func sampleResults() []domain.AggregatedResult {
	return []domain.AggregatedResult{
		{
			ID:             7,
			Name:           "Interview with M. Boateng",
			Pages:          []string{"3-5", "7"},
			RelevanceScore: 0.91,
			Text:           "transcript content that must never reach the user",
		},
		{
			ID:             2,
			Name:           "Interview with A. Osei",
			Pages:          []string{"12"},
			RelevanceScore: 0.62,
			Text:           "more transcript content",
		},
	}
}

// setupTestServices injects mocks and returns a cleanup that restores
// the previous services and resets flag state.
func setupTestServices(retrieval *mockRetrievalService, ingest *mockIngestService, catalog *mockCatalogStore, sessions *mockSessionStore) func() {
	oldIngest := ingestService
	oldRetrieval := retrievalService
	oldSessions := sessionStore
	oldCatalog := catalogStore
	oldPath := corpusArtifactPath

	SetServices(&Services{
		Ingest:    ingest,
		Retrieval: retrieval,
		Sessions:  sessions,
		Catalog:   catalog,
	})

	return func() {
		ingestService = oldIngest
		retrievalService = oldRetrieval
		sessionStore = oldSessions
		catalogStore = oldCatalog
		corpusArtifactPath = oldPath

		askJSON = false
		askSource = ""
		askTopK = 0
		askInteractive = false
		askSession = ""
		docsJSON = false
		rootCmd.SetArgs(nil)
	}
}
