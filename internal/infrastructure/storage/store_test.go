package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/neondodge/internal/domain/entity"
)

func TestStores_Defaults(t *testing.T) {
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), FileName), nil),
	}

	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 0, s.LoadHighScore())
			assert.Equal(t, entity.Settings{SoundEnabled: true, ReducedMotion: false}, s.LoadSettings())
		})
	}
}

func TestStores_RoundTrip(t *testing.T) {
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "nested", FileName), nil),
	}

	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.SaveHighScore(42))
			settings := entity.Settings{SoundEnabled: false, ReducedMotion: true}
			require.NoError(t, s.SaveSettings(settings))

			assert.Equal(t, 42, s.LoadHighScore())
			assert.Equal(t, settings, s.LoadSettings())
		})
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	first := NewFileStore(path, nil)
	require.NoError(t, first.SaveSettings(entity.Settings{SoundEnabled: false}))
	require.NoError(t, first.SaveHighScore(77))

	second := NewFileStore(path, nil)
	assert.Equal(t, 77, second.LoadHighScore())
	assert.False(t, second.LoadSettings().SoundEnabled)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "high_score = 77")
	assert.Contains(t, string(data), "[settings]")
	assert.Contains(t, string(data), "sound_enabled = false")
}

func TestFileStore_BadFiles(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		wantHighScore int
		wantSettings  entity.Settings
	}{
		{"corrupt", "high_score = [", 0, entity.DefaultSettings()},
		{"wrong type", `high_score = "lots"`, 0, entity.DefaultSettings()},
		{"negative", "high_score = -5", 0, entity.DefaultSettings()},
		{"missing settings table", "high_score = 9", 9, entity.DefaultSettings()},
		{"partial settings", "[settings]\nreduced_motion = true", 0, entity.Settings{SoundEnabled: true, ReducedMotion: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			s := NewFileStore(path, nil)
			assert.Equal(t, tt.wantHighScore, s.LoadHighScore())
			assert.Equal(t, tt.wantSettings, s.LoadSettings())
		})
	}
}

func TestFileStore_SaveOverCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("{{{"), 0o644))

	s := NewFileStore(path, nil)
	require.NoError(t, s.SaveHighScore(3))

	assert.Equal(t, 3, s.LoadHighScore())
	assert.Equal(t, entity.DefaultSettings(), s.LoadSettings())
}

func TestFileStore_SaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	// The parent of the save path is a regular file
	s := NewFileStore(filepath.Join(blocker, FileName), nil)
	assert.Error(t, s.SaveHighScore(1))
	assert.Equal(t, 0, s.LoadHighScore())
}
