package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griot-labs/griot-cli/internal/core/domain"
)

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
}

func TestAskCmd_HasFlags(t *testing.T) {
	assert.NotNil(t, askCmd.Flags().Lookup("json"))
	assert.NotNil(t, askCmd.Flags().Lookup("source"))
	assert.NotNil(t, askCmd.Flags().Lookup("session"))

	flag := askCmd.Flags().Lookup("top-k")
	require.NotNil(t, flag)
	assert.Equal(t, "k", flag.Shorthand)

	flag = askCmd.Flags().Lookup("interactive")
	require.NotNil(t, flag)
	assert.Equal(t, "i", flag.Shorthand)
}

func TestAskCmd_RequiresQuestion(t *testing.T) {
	cleanup := setupTestServices(&mockRetrievalService{}, &mockIngestService{}, &mockCatalogStore{}, &mockSessionStore{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "question is required")
}

func TestAskCmd_PrintsReferences(t *testing.T) {
	retrieval := &mockRetrievalService{results: sampleResults()}
	cleanup := setupTestServices(retrieval, &mockIngestService{}, &mockCatalogStore{}, &mockSessionStore{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "who ran the mill?"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "who ran the mill?", retrieval.lastQuestion)
	out := buf.String()
	assert.Contains(t, out, "Interview with M. Boateng")
	assert.Contains(t, out, "3-5, 7")
	assert.Contains(t, out, "Interview with A. Osei")

	// Transcript text is for the downstream prose layer, never the user.
	assert.NotContains(t, out, "transcript content")
}

func TestAskCmd_JSONOutput(t *testing.T) {
	retrieval := &mockRetrievalService{results: sampleResults()}
	cleanup := setupTestServices(retrieval, &mockIngestService{}, &mockCatalogStore{}, &mockSessionStore{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--json", "who ran the mill?"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `"relevance_score"`)
	assert.Contains(t, out, `"pages"`)
	assert.NotContains(t, out, `"text"`)
	assert.NotContains(t, out, "transcript content")
}

func TestAskCmd_PassesSourceAndTopK(t *testing.T) {
	retrieval := &mockRetrievalService{results: sampleResults()}
	cleanup := setupTestServices(retrieval, &mockIngestService{}, &mockCatalogStore{}, &mockSessionStore{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--source", "Interview with A. Osei", "-k", "3", "anything"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "Interview with A. Osei", retrieval.lastOpts.SourceFilter)
	assert.Equal(t, 3, retrieval.lastOpts.TopK)
}

func TestAskCmd_NoResults(t *testing.T) {
	retrieval := &mockRetrievalService{results: []domain.AggregatedResult{}}
	cleanup := setupTestServices(retrieval, &mockIngestService{}, &mockCatalogStore{}, &mockSessionStore{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "anything"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No relevant documents found.")
}

func TestAskCmd_RetrievalError(t *testing.T) {
	retrieval := &mockRetrievalService{err: errors.New("index is failed")}
	cleanup := setupTestServices(retrieval, &mockIngestService{}, &mockCatalogStore{}, &mockSessionStore{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "anything"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "retrieval failed")
}

func TestAskCmd_ServiceNotConfigured(t *testing.T) {
	cleanup := setupTestServices(&mockRetrievalService{}, &mockIngestService{}, &mockCatalogStore{}, &mockSessionStore{})
	defer cleanup()
	retrievalService = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "anything"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestAskCmd_RecordsSessionTurns(t *testing.T) {
	retrieval := &mockRetrievalService{results: sampleResults()}
	sessions := &mockSessionStore{}
	cleanup := setupTestServices(retrieval, &mockIngestService{}, &mockCatalogStore{}, sessions)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--session", "s1", "who ran the mill?"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	turns := sessions.appended["s1"]
	require.Len(t, turns, 2)
	assert.Equal(t, "user", turns[0].Role)
	assert.Equal(t, "who ran the mill?", turns[0].Content)
	assert.Equal(t, "assistant", turns[1].Role)
	assert.Contains(t, turns[1].Content, "Interview with M. Boateng (pages 3-5, 7)")
}

func TestAskCmd_InteractiveAnswersAndExits(t *testing.T) {
	retrieval := &mockRetrievalService{results: sampleResults()}
	cleanup := setupTestServices(retrieval, &mockIngestService{}, &mockCatalogStore{}, &mockSessionStore{})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetIn(strings.NewReader("who ran the mill?\nexit\n"))
	rootCmd.SetArgs([]string{"ask", "--interactive"})
	defer rootCmd.SetIn(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "who ran the mill?", retrieval.lastQuestion)
	assert.Contains(t, buf.String(), "Interview with M. Boateng")
}

func TestRenderReferences_Empty(t *testing.T) {
	assert.Equal(t, "no relevant documents", renderReferences(nil))
}
