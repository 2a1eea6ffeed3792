// Package store persists submissions to a single JSON-array file.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/folio/backend/internal/model"
)

// MessageStore defines persistence for contact submissions.
type MessageStore interface {
	// Append adds a submission to the stored collection.
	Append(ctx context.Context, sub model.Submission) error

	// ListAll returns the stored collection newest first. Read or parse
	// failures yield an empty collection, never an error.
	ListAll(ctx context.Context) []model.Submission
}

// FileStore keeps the whole collection in one JSON file and rewrites it on
// every append. Appends are serialized by an in-process mutex so concurrent
// submissions cannot lose writes; the file itself is replaced atomically so
// readers never observe a torn array.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// Ensure FileStore implements MessageStore at compile time.
var _ MessageStore = (*FileStore)(nil)

// NewFileStore creates a FileStore at path, creating the parent directory
// and an empty collection file when absent.
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: mkdir: %w", err)
		}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("store: init file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("store: stat: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Append reads the existing collection, appends sub and writes the whole
// collection back.
func (s *FileStore) Append(ctx context.Context, sub model.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs := s.readLocked()
	subs = append(subs, sub)

	data, err := json.MarshalIndent(subs, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal: %w", err)
	}

	// Write-then-rename keeps the file a well-formed array even if the
	// process dies mid-write.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("store: rename: %w", err)
	}
	return nil
}

// ListAll returns stored submissions in reverse insertion order.
func (s *FileStore) ListAll(ctx context.Context) []model.Submission {
	s.mu.Lock()
	subs := s.readLocked()
	s.mu.Unlock()

	out := make([]model.Submission, len(subs))
	for i, sub := range subs {
		out[len(subs)-1-i] = sub
	}
	return out
}

// readLocked loads the collection from disk. A missing or unparseable file
// is treated as empty. Callers must hold s.mu.
func (s *FileStore) readLocked() []model.Submission {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("store read failed", "path", s.path, "error", err)
		}
		return nil
	}

	var subs []model.Submission
	if err := json.Unmarshal(data, &subs); err != nil {
		slog.Warn("store file unparseable, treating as empty", "path", s.path, "error", err)
		return nil
	}
	return subs
}
