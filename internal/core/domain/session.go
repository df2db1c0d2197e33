package domain

import "time"

// MaxSessionTurns is the number of turns retained per session. Appends
// beyond this trim the oldest turns. There is no cross-session eviction;
// unbounded session growth is a documented integration concern.
const MaxSessionTurns = 6

// Turn is one question/answer exchange recorded for a chat session.
// The retrieval core never reads session history; the store exists as an
// explicit capability for the hosting chat layer.
type Turn struct {
	// Role is "user" or "assistant".
	Role string

	// Content is the turn text.
	Content string

	// CreatedAt is when the turn was recorded.
	CreatedAt time.Time
}
