package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/game"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/logging"
	"github.com/lixenwraith/pong/render"
)

var configFlag = flag.String("config", "", "Path to a TOML config file (default: ./pong.toml if present)")

func main() {
	flag.Parse()

	if err := run(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.WithField("panic", r).Error("crashed")
			fmt.Fprintf(os.Stderr, "\r\nPONG CRASHED: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	sound := startAudio(cfg.Audio, logger)
	if sound != nil {
		defer sound.Cleanup()
	}

	renderer := render.NewTerminalRenderer(screen)
	keyTable := input.DefaultKeyTable()
	tracker := input.NewTracker(cfg.Input.HoldWindow)

	for _, k := range cfg.Keys.All() {
		if keyTable.Bound(k) {
			logger.WithField("key", k).Warn("paddle binding shadowed by a system key")
		}
	}

	opts := game.Options{
		Config:  cfg,
		Display: renderer,
		Keys:    tracker,
		Log:     logger,
	}
	if sound != nil {
		opts.Audio = sound
	}
	session, err := game.New(opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Input polling goroutine, all world mutation goes through the event queue
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\nEVENT POLLER CRASHED: %v\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			if ev == nil {
				cancel()
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				intent, key := keyTable.Resolve(ev)
				switch intent {
				case input.IntentQuit:
					cancel()
					return
				case input.IntentToggleMute:
					session.ToggleMute()
				case input.IntentReset:
					tracker.Reset()
					session.Reset()
				case input.IntentPaddle:
					tracker.Press(key)
				}
			case *tcell.EventResize:
				cols, rows := ev.Size()
				if w, h, ok := render.FieldSize(cols, rows); ok {
					session.Resize(w, h)
				}
				screen.Sync()
			}
		}
	}()

	legend := " " + cfg.Keys.Legend()

	loop, err := engine.NewLoop(session.TickInterval(), func(dt time.Duration) {
		session.Step(dt)
		renderer.RenderFrame(session.Snapshot(), game.StatusLine(legend, "m mute  r reset  q quit", opts.Audio))
	})
	if err != nil {
		return err
	}

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fields := logrus.Fields{"ticks": loop.Ticks()}
	if sound != nil {
		fields["sounds_played"], fields["sounds_dropped"] = sound.GetStats()
	}
	session.Log().WithFields(fields).Info("session ended")
	return nil
}

// startAudio opens the speaker, returning nil to play silently on failure
func startAudio(cfg config.AudioConfig, logger logrus.FieldLogger) *audio.SoundManager {
	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Enabled
	audioCfg.MasterVolume = cfg.Volume

	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		logger.WithError(err).Warn("audio unavailable, continuing without sound")
		return nil
	}
	return sound
}
