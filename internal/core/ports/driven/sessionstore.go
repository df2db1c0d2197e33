package driven

import (
	"context"

	"github.com/griot-labs/griot-cli/internal/core/domain"
)

// SessionStore records conversation history for the hosting chat layer.
// History is trimmed to the last domain.MaxSessionTurns turns per session
// on append. There is no cross-session eviction.
type SessionStore interface {
	// Get returns the retained turns for a session, oldest first.
	// An unknown session id returns an empty slice, not an error.
	Get(ctx context.Context, sessionID string) ([]domain.Turn, error)

	// Append records a turn and trims the session to the retention limit.
	Append(ctx context.Context, sessionID string, turn domain.Turn) error

	// Close releases resources.
	Close() error
}
