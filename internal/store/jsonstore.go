package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/teller/internal/ledger"
	"github.com/rs/zerolog"
)

// JSONStore keeps the ledger in a single indented JSON file.
type JSONStore struct {
	path string
	log  zerolog.Logger
}

func NewJSONStore(path string, logger zerolog.Logger) (*JSONStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("can not create data directory %s: %w", dir, err)
	}

	return &JSONStore{
		path: path,
		log:  logger.With().Str("store", "json").Str("path", path).Logger(),
	}, nil
}

func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the ledger file. A missing file is bootstrapped as an empty
// ledger and written back; a malformed one yields an empty ledger and an error.
func (s *JSONStore) Load() (*ledger.Ledger, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		empty := ledger.New()
		if err := s.Save(empty); err != nil {
			return empty, err
		}
		s.log.Info().Msg("store not found, created empty ledger")
		return empty, nil
	}
	if err != nil {
		s.log.Error().Err(err).Msg("failed to read store")
		return ledger.New(), unavailable("read", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return ledger.New(), nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.log.Error().Err(err).Msg("store is not valid JSON")
		return ledger.New(), corrupt(s.path, err)
	}

	l, err := snap.Ledger()
	if err != nil {
		s.log.Error().Err(err).Msg("store violates ledger invariants")
		return ledger.New(), corrupt(s.path, err)
	}

	s.log.Debug().Int("accounts", l.Len()).Msg("ledger loaded")
	return l, nil
}

// Save writes the snapshot to a temporary file and renames it over the
// store so a crash never leaves a half-written file behind.
func (s *JSONStore) Save(l *ledger.Ledger) error {
	data, err := json.MarshalIndent(NewSnapshot(l), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return unavailable("create", tmp, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return unavailable("write", tmp, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return unavailable("sync", tmp, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return unavailable("close", tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return unavailable("replace", s.path, err)
	}

	s.log.Debug().Int("accounts", l.Len()).Msg("ledger saved")
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}
