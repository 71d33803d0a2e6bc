package main

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/younwookim/neondodge/internal/application/scene"
	"github.com/younwookim/neondodge/internal/application/scene/gameover"
	"github.com/younwookim/neondodge/internal/application/scene/playing"
	"github.com/younwookim/neondodge/internal/application/scene/title"
	"github.com/younwookim/neondodge/internal/infrastructure/audio"
	"github.com/younwookim/neondodge/internal/infrastructure/config"
	"github.com/younwookim/neondodge/internal/infrastructure/storage"
)

func TestEmbeddedTuning(t *testing.T) {
	fsys, err := fs.Sub(configFS, "configs")
	require.NoError(t, err)

	cfg, err := config.NewFSLoader(fsys, "configs").LoadTuning()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTuning(), cfg)
}

func TestRouter(t *testing.T) {
	env := &scene.Env{
		Tuning:  config.DefaultTuning(),
		Store:   storage.NewMemoryStore(),
		Sink:    audio.NewSink(nil, false),
		Logger:  zap.NewNop(),
		NewSeed: seedSource(7),
	}
	r := NewRouter(env)

	var _ scene.Router = r
	assert.IsType(t, &title.Title{}, r.Title())
	assert.IsType(t, &playing.Playing{}, r.Playing())

	over := r.GameOver(scene.Result{Score: 12})
	require.IsType(t, &gameover.GameOver{}, over)
	assert.Equal(t, 12, over.(*gameover.GameOver).Result().Score)
}

func TestSeedSource(t *testing.T) {
	fixed := seedSource(42)
	assert.Equal(t, int64(42), fixed())
	assert.Equal(t, int64(42), fixed())

	clock := seedSource(0)
	assert.NotZero(t, clock())
}
