// Package session holds per-user conversation history. A session is an
// append-only ordered log of turns; nothing is ever pruned, which is an
// accepted limitation for session-lifetime conversations.
package session

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry in the conversation log.
type Turn struct {
	Role    Role      `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// Session is an append-only conversation log. A session is owned by a single
// user; concurrent appends are serialized internally but callers must not
// interleave two exchanges on the same session.
type Session struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`

	mu    sync.Mutex
	turns []Turn
}

// New creates a session. An empty id gets a generated one; any unique opaque
// string is a valid id.
func New(id string) *Session {
	if id == "" {
		id = "sess_" + uuid.NewString()
	}
	return &Session{
		ID:        id,
		StartedAt: time.Now(),
	}
}

// Append adds a turn to the log.
func (s *Session) Append(role Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, Turn{Role: role, Content: content, At: time.Now()})
}

// Turns returns a copy of the log in append order.
func (s *Session) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of turns.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// Transcript serializes the session for archival.
func (s *Session) Transcript() ([]byte, error) {
	type transcript struct {
		ID        string    `json:"id"`
		StartedAt time.Time `json:"started_at"`
		Turns     []Turn    `json:"turns"`
	}
	return json.MarshalIndent(transcript{
		ID:        s.ID,
		StartedAt: s.StartedAt,
		Turns:     s.Turns(),
	}, "", "  ")
}
