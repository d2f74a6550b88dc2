package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/physics"
	"github.com/lixenwraith/pong/system"
	"github.com/lixenwraith/pong/vmath"
)

var ErrNoConfig = errors.New("session requires a configuration")

// Options wires the collaborators of a session
// Nil Port selects the Chipmunk2D space, nil Log discards
type Options struct {
	Config  *config.Config
	Port    physics.Port
	Display engine.Display
	Keys    engine.KeyState
	Audio   engine.AudioPlayer
	Log     logrus.FieldLogger
}

// Session is one running match: world, systems and physics port
// Tick and the read accessors belong to a single goroutine; Resize, Reset and ToggleMute may be called from any
type Session struct {
	ID    uuid.UUID
	World *engine.World
	Port  physics.Port

	interval time.Duration
	log      logrus.FieldLogger
}

// New assembles a session and spawns the startup entities
func New(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, ErrNoConfig
	}

	id := uuid.New()

	log := opts.Log
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	log = log.WithField("session", id.String())

	port := opts.Port
	if port == nil {
		port = physics.NewSpace(cfg.Sim.PhysicsSubsteps)
	}

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world := engine.NewWorld()
	world.Resource.Log = log
	world.Resource.Rand.Rng = rand.New(rand.NewSource(seed))
	if opts.Keys != nil {
		world.Resource.Input = &engine.InputResource{Keys: opts.Keys}
	}
	if opts.Audio != nil {
		world.Resource.Audio = &engine.AudioResource{Player: opts.Audio}
	}

	if err := system.Spawn(world, port, opts.Display, SettingsFrom(cfg)); err != nil {
		return nil, fmt.Errorf("spawn: %w", err)
	}

	world.AddSystem(system.NewInputSystem(world))
	world.AddSystem(system.NewPhysicsSystem(world, port))
	world.AddSystem(system.NewSpeedSystem(world, port))
	world.AddSystem(system.NewScoringSystem(world, port))
	world.AddSystem(system.NewSoundCueSystem(world))
	world.AddSystem(system.NewLayoutSystem(world, port))
	world.AddSystem(system.NewScoreTextSystem(world))
	world.AddSystem(system.NewAudioSystem(world))
	if cfg.Debug {
		world.AddSystem(system.NewCameraAssertSystem(world))
	}

	log.WithFields(logrus.Fields{
		"seed":      seed,
		"tick_rate": cfg.Sim.TickRate,
		"systems":   len(world.Systems()),
	}).Info("session started")

	return &Session{
		ID:       id,
		World:    world,
		Port:     port,
		interval: cfg.Sim.TickInterval(),
		log:      log,
	}, nil
}

// SettingsFrom maps configuration onto spawn settings
func SettingsFrom(cfg *config.Config) system.Settings {
	return system.Settings{
		BallRadius:  cfg.Ball.Radius,
		BallSpeed:   cfg.Ball.Speed,
		PaddleSize:  vmath.V2F(cfg.Paddle.Width, cfg.Paddle.Height),
		PaddleSpeed: cfg.Paddle.Speed,
		Left:        system.Bindings{Up: cfg.Keys.LeftUp, Down: cfg.Keys.LeftDown},
		Right:       system.Bindings{Up: cfg.Keys.RightUp, Down: cfg.Keys.RightDown},
	}
}

// TickInterval is the fixed step
func (s *Session) TickInterval() time.Duration {
	return s.interval
}

// Tick advances one fixed step
func (s *Session) Tick() {
	s.World.Tick(s.interval)
}

// Step matches the engine.Loop callback signature
func (s *Session) Step(dt time.Duration) {
	s.World.Tick(dt)
}

// Resize queues a window resize, applied on the next tick
func (s *Session) Resize(width, height float64) {
	s.World.PushEvent(event.EventWindowResized, &event.WindowResizedPayload{Width: width, Height: height})
}

// Reset queues a match reset
func (s *Session) Reset() {
	s.World.PushEvent(event.EventGameReset, nil)
}

// ToggleMute queues an audio mute toggle
func (s *Session) ToggleMute() {
	s.World.PushEvent(event.EventAudioMuteToggle, nil)
}

// Log returns the session-scoped logger
func (s *Session) Log() logrus.FieldLogger {
	return s.log
}
