package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/younwookim/neondodge/internal/domain/entity"
)

// FileName is the save file name inside the config directory
const FileName = "save.toml"

// document is the on-disk layout:
//
//	high_score = 42
//
//	[settings]
//	sound_enabled = true
//	reduced_motion = false
type document struct {
	HighScore int             `toml:"high_score"`
	Settings  entity.Settings `toml:"settings"`
}

func defaultDocument() document {
	return document{Settings: entity.DefaultSettings()}
}

// FileStore keeps the save document in a TOML file
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

// DefaultPath returns the save file location under the user config dir
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, "neondodge", FileName), nil
}

// NewFileStore creates a store backed by path. The file is created on first save.
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{
		path:   path,
		logger: logger.With(zap.String("path", path)),
	}
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) LoadHighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().HighScore
}

func (s *FileStore) SaveHighScore(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	doc.HighScore = score
	return s.write(doc)
}

func (s *FileStore) LoadSettings() entity.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Settings
}

func (s *FileStore) SaveSettings(settings entity.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	doc.Settings = settings
	return s.write(doc)
}

// load reads the document, falling back to defaults on any failure
func (s *FileStore) load() document {
	doc := defaultDocument()

	if _, err := toml.DecodeFile(s.path, &doc); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("save file unreadable, using defaults", zap.Error(err))
		}
		return defaultDocument()
	}

	if doc.HighScore < 0 {
		s.logger.Warn("negative high score in save file", zap.Int("high_score", doc.HighScore))
		doc.HighScore = 0
	}
	return doc
}

// write replaces the file atomically
func (s *FileStore) write(doc document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create save dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), FileName+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp save file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp save file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	return nil
}
