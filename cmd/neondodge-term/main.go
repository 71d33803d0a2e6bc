// Command neondodge-term plays the game in a text terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/younwookim/neondodge/internal/infrastructure/audio"
	"github.com/younwookim/neondodge/internal/infrastructure/config"
	"github.com/younwookim/neondodge/internal/infrastructure/logging"
	"github.com/younwookim/neondodge/internal/infrastructure/storage"
	"github.com/younwookim/neondodge/internal/infrastructure/term"
)

func main() {
	configFlag := flag.String("config", "", "Tuning override file (.json, .yaml or .yml)")
	seedFlag := flag.Int64("seed", 0, "Fixed seed for every match (0 picks a new seed per match)")
	saveFlag := flag.String("save", "", "Save file path (defaults to the user config directory)")
	logFlag := flag.String("log", "", "Log file (the terminal is busy drawing, so logs are off by default)")
	muteFlag := flag.Bool("mute", false, "Do not open the audio device")
	flag.Parse()

	if err := run(*configFlag, *seedFlag, *saveFlag, *logFlag, *muteFlag); err != nil {
		fmt.Fprintf(os.Stderr, "neondodge-term: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, savePath, logPath string, mute bool) error {
	logger := zap.NewNop()
	if logPath != "" {
		l, err := logging.New(logging.Options{Outputs: []string{logPath}})
		if err != nil {
			return err
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()

	tuning := config.DefaultTuning()
	if configPath != "" {
		var err error
		if tuning, err = config.LoadTuningFile(configPath, tuning); err != nil {
			return err
		}
	}

	if savePath == "" {
		var err error
		if savePath, err = storage.DefaultPath(); err != nil {
			return err
		}
	}
	store := storage.NewFileStore(savePath, logger)

	var out audio.Output
	if !mute {
		if speaker, err := newSpeaker(); err != nil {
			// Non-fatal, the game runs without sound
			logger.Warn("audio disabled", zap.Error(err))
		} else {
			defer speaker.Close()
			out = speaker
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	opts := term.Options{
		Tuning: tuning,
		Store:  store,
		Sink:   audio.NewSink(out, store.LoadSettings().SoundEnabled),
		Logger: logger,
	}
	if seed != 0 {
		opts.NewSeed = func() int64 { return seed }
	}
	session, err := term.NewSession(screen, opts)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	session.Run(events, time.Second/time.Duration(tuning.Display.Framerate))
	return nil
}

func newSpeaker() (*audio.SpeakerOutput, error) {
	bank, err := audio.NewToneBank(audio.SampleRate, audio.DefaultVolume)
	if err != nil {
		return nil, err
	}
	return audio.NewSpeakerOutput(bank)
}
