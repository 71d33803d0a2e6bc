// Command neondodge runs the arcade game in an ebiten window.
package main

import (
	"flag"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/neondodge/internal/application/game"
	"github.com/younwookim/neondodge/internal/application/scene"
	"github.com/younwookim/neondodge/internal/infrastructure/audio"
	"github.com/younwookim/neondodge/internal/infrastructure/config"
	"github.com/younwookim/neondodge/internal/infrastructure/logging"
	"github.com/younwookim/neondodge/internal/infrastructure/storage"
)

func main() {
	// Parse command line flags
	configFlag := flag.String("config", "", "Tuning override file (.json, .yaml or .yml)")
	seedFlag := flag.Int64("seed", 0, "Fixed seed for every match (0 picks a new seed per match)")
	saveFlag := flag.String("save", "", "Save file path (defaults to the user config directory)")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger, err := logging.New(logging.Options{Debug: *debugFlag, Console: true})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		logger.Fatal("failed to get config subfs", zap.Error(err))
	}
	tuning, err := config.NewFSLoader(fsys, "configs").LoadTuning()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if *configFlag != "" {
		tuning, err = config.LoadTuningFile(*configFlag, tuning)
		if err != nil {
			logger.Fatal("failed to load config override", zap.String("path", *configFlag), zap.Error(err))
		}
		logger.Info("config override applied", zap.String("path", *configFlag))
	}

	savePath := *saveFlag
	if savePath == "" {
		savePath, err = storage.DefaultPath()
		if err != nil {
			logger.Fatal("failed to locate save file", zap.Error(err))
		}
	}
	store := storage.NewFileStore(savePath, logger)

	env := &scene.Env{
		Tuning:  tuning,
		Store:   store,
		Sink:    audio.NewSink(newAudioOutput(logger), store.LoadSettings().SoundEnabled),
		Logger:  logger,
		NewSeed: seedSource(*seedFlag),
	}

	router := NewRouter(env)
	d := tuning.Display
	g := game.New(router.Title(), d.ScreenWidth, d.ScreenHeight, d.Framerate, logger)

	// Set up ebiten
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle("Neon Dodge")
	ebiten.SetTPS(d.Framerate)

	logger.Info("starting", zap.String("save", store.Path()), zap.Int("tps", d.Framerate))

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game exited with error", zap.Error(err))
	}
}

// newAudioOutput returns nil when no audio device is available; the game then runs silently
func newAudioOutput(logger *zap.Logger) audio.Output {
	bank, err := audio.NewToneBank(audio.SampleRate, audio.DefaultVolume)
	if err != nil {
		logger.Warn("audio disabled", zap.Error(err))
		return nil
	}
	out, err := audio.NewEbitenOutput(bank)
	if err != nil {
		logger.Warn("audio disabled", zap.Error(err))
		return nil
	}
	return out
}

// seedSource returns fixed when non-zero, otherwise a clock based seed per call
func seedSource(fixed int64) func() int64 {
	if fixed != 0 {
		return func() int64 { return fixed }
	}
	return func() int64 { return time.Now().UnixNano() }
}
