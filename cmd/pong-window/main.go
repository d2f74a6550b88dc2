package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/game"
	"github.com/lixenwraith/pong/logging"
	"github.com/lixenwraith/pong/window"
)

var configFlag = flag.String("config", "", "Path to a TOML config file (default: ./pong.toml if present)")

func main() {
	flag.Parse()

	if err := run(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "pong-window: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closer.Close()

	for _, k := range cfg.Keys.All() {
		if !window.Known(k) {
			return fmt.Errorf("%w: key %q has no keyboard mapping", config.ErrInvalidConfig, k)
		}
	}

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Audio.Enabled
	audioCfg.MasterVolume = cfg.Audio.Volume

	opts := game.Options{
		Config:  cfg,
		Display: window.Display{Width: cfg.Window.Width, Height: cfg.Window.Height},
		Keys:    window.Keyboard{},
		Log:     logger,
	}

	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		logger.WithError(err).Warn("audio unavailable, continuing without sound")
	} else {
		defer sound.Cleanup()
		opts.Audio = sound
	}

	session, err := game.New(opts)
	if err != nil {
		return err
	}

	g := window.NewGame(session, cfg.Window.Width, cfg.Window.Height, cfg.Keys.Legend(), opts.Audio)
	err = window.Run(g, cfg.Window.Title)

	played, dropped := sound.GetStats()
	logger.WithFields(logrus.Fields{
		"sounds_played":  played,
		"sounds_dropped": dropped,
	}).Info("window closed")
	return err
}
