// Package transcript archives finished conversation sessions. The live
// session log stays in memory; archival is a one-way export for audit and
// review, not a compatibility surface.
package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oakmund/finsight/internal/session"
)

// Record is the archived form of a session.
type Record struct {
	SessionID string         `json:"session_id"`
	StartedAt time.Time      `json:"started_at"`
	Turns     []session.Turn `json:"turns"`
}

// Store defines the interface for transcript archive backends.
type Store interface {
	// Save persists a transcript record, overwriting any previous archive
	// of the same session.
	Save(ctx context.Context, rec Record) error

	// Load retrieves an archived transcript by session id.
	Load(ctx context.Context, sessionID string) (*Record, error)

	// List returns the session ids of all archived transcripts.
	List(ctx context.Context) ([]string, error)

	// Delete removes an archived transcript.
	Delete(ctx context.Context, sessionID string) error
}

// FromSession snapshots a live session into a record.
func FromSession(s *session.Session) Record {
	return Record{
		SessionID: s.ID,
		StartedAt: s.StartedAt,
		Turns:     s.Turns(),
	}
}

// Archive snapshots and saves a session in one step.
func Archive(ctx context.Context, store Store, s *session.Session) error {
	if err := store.Save(ctx, FromSession(s)); err != nil {
		return fmt.Errorf("archiving session %s: %w", s.ID, err)
	}
	return nil
}

func encode(rec Record) ([]byte, error) {
	return json.MarshalIndent(rec, "", "  ")
}

func decode(data []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding transcript: %w", err)
	}
	return &rec, nil
}
