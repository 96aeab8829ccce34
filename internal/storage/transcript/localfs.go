package transcript

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore archives transcripts as JSON files under a base directory.
type LocalStore struct {
	basePath string
}

// NewLocalStore creates a filesystem-backed archive.
func NewLocalStore(basePath string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating archive path: %w", err)
	}
	return &LocalStore{basePath: basePath}, nil
}

func (l *LocalStore) path(sessionID string) string {
	return filepath.Join(l.basePath, sessionID+".json")
}

// Save writes the transcript to <base>/<session id>.json.
func (l *LocalStore) Save(ctx context.Context, rec Record) error {
	data, err := encode(rec)
	if err != nil {
		return err
	}
	return os.WriteFile(l.path(rec.SessionID), data, 0644)
}

// Load reads an archived transcript.
func (l *LocalStore) Load(ctx context.Context, sessionID string) (*Record, error) {
	data, err := os.ReadFile(l.path(sessionID))
	if err != nil {
		return nil, err
	}
	return decode(data)
}

// List returns the session ids of all archived transcripts.
func (l *LocalStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	return ids, nil
}

// Delete removes an archived transcript.
func (l *LocalStore) Delete(ctx context.Context, sessionID string) error {
	return os.Remove(l.path(sessionID))
}
