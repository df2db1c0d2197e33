package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/griot-labs/griot-cli/internal/core/domain"
	"github.com/griot-labs/griot-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// schema creates the session turn table. A single table suffices; turns
// are trimmed per session on append, so no migration machinery is kept.
const schema = `
CREATE TABLE IF NOT EXISTS session_turns (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	role       TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_session_turns_session ON session_turns(session_id, id);
`

// SessionStore records conversation turns for the hosting chat layer.
// History is trimmed to domain.MaxSessionTurns per session on append.
// Sessions themselves are never evicted; that unbounded growth is a
// known integration concern, not something this store hides.
type SessionStore struct {
	db   *sql.DB
	path string
}

// NewSessionStore creates a session store at the specified data
// directory. If dataDir is empty, defaults to ~/.griot/data/sessions.db.
func NewSessionStore(dataDir string) (*SessionStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".griot", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "sessions.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SessionStore{db: db, path: dbPath}, nil
}

// Path returns the database file path.
func (s *SessionStore) Path() string {
	return s.path
}

// Get returns the retained turns for a session, oldest first.
func (s *SessionStore) Get(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT role, content, created_at
		FROM session_turns
		WHERE session_id = ?
		ORDER BY id ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying session turns: %w", err)
	}
	defer rows.Close()

	turns := []domain.Turn{}
	for rows.Next() {
		var turn domain.Turn
		var createdAt string
		if err := rows.Scan(&turn.Role, &turn.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning session turn: %w", err)
		}
		turn.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		turns = append(turns, turn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session turns: %w", err)
	}

	return turns, nil
}

// Append records a turn and trims the session to the retention limit.
func (s *SessionStore) Append(ctx context.Context, sessionID string, turn domain.Turn) error {
	if sessionID == "" {
		return domain.ErrInvalidInput
	}

	createdAt := turn.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO session_turns (session_id, role, content, created_at)
		VALUES (?, ?, ?, ?)
	`, sessionID, turn.Role, turn.Content, createdAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting session turn: %w", err)
	}

	// Keep only the newest turns for this session.
	_, err = tx.ExecContext(ctx, `
		DELETE FROM session_turns
		WHERE session_id = ?
		AND id NOT IN (
			SELECT id FROM session_turns
			WHERE session_id = ?
			ORDER BY id DESC
			LIMIT ?
		)
	`, sessionID, sessionID, domain.MaxSessionTurns)
	if err != nil {
		return fmt.Errorf("trimming session turns: %w", err)
	}

	return tx.Commit()
}

// Close closes the database connection.
func (s *SessionStore) Close() error {
	return s.db.Close()
}
