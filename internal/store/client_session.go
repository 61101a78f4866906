package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// fileSessionStorage keeps the client's bearer token in a single file,
// readable only by the current user.
type fileSessionStorage struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewFileSessionStorage constructs a [SessionStorage] backed by the file at
// path. The file and its directory are created on the first save.
func NewFileSessionStorage(path string, logger *logger.Logger) SessionStorage {
	return &fileSessionStorage{
		path:   path,
		logger: logger,
	}
}

// LoadToken returns the saved token, or [ErrNoSession] if none is stored.
func (s *fileSessionStorage) LoadToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNoSession
		}
		s.logger.Err(err).Str("func", "*fileSessionStorage.LoadToken").Msg("error reading session file")
		return "", fmt.Errorf("error reading session file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoSession
	}

	return token, nil
}

// SaveToken replaces the stored token. The file is written next to its
// final location first and then renamed, so a crash never leaves a
// truncated token behind.
func (s *fileSessionStorage) SaveToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("error creating session directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token), 0o600); err != nil {
		s.logger.Err(err).Str("func", "*fileSessionStorage.SaveToken").Msg("error writing session file")
		return fmt.Errorf("error writing session file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("error replacing session file: %w", err)
	}

	s.logger.Debug().Str("func", "*fileSessionStorage.SaveToken").Msg("session saved")
	return nil
}

// ClearToken removes the stored token. Clearing an absent session is not
// an error.
func (s *fileSessionStorage) ClearToken(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing session file: %w", err)
	}

	s.logger.Debug().Str("func", "*fileSessionStorage.ClearToken").Msg("session cleared")
	return nil
}
