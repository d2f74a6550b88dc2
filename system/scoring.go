package system

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/physics"
	"github.com/lixenwraith/pong/rule"
)

// ScoringSystem awards points when the ball enters a goal sensor and re-serves the ball
type ScoringSystem struct {
	engine.SystemBase
	port physics.Port
}

// NewScoringSystem creates the scoring system
func NewScoringSystem(world *engine.World, port physics.Port) engine.System {
	return &ScoringSystem{
		SystemBase: engine.NewSystemBase(world),
		port:       port,
	}
}

func (s *ScoringSystem) Priority() int {
	return constant.PriorityGame
}

// Update implements System interface (no tick-based logic)
func (s *ScoringSystem) Update() {}

func (s *ScoringSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCollisionStarted,
		event.EventGameReset,
	}
}

func (s *ScoringSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventCollisionStarted:
		if payload, ok := ev.Payload.(*event.CollisionStartedPayload); ok {
			s.handleCollision(payload)
		}
	case event.EventGameReset:
		s.reset()
	}
}

func (s *ScoringSystem) handleCollision(payload *event.CollisionStartedPayload) {
	goal, ok := rule.ScoreContact(contact(s.Component, payload))
	if !ok {
		return
	}

	s.Resource.Score.Increment(goal.Scorer)
	s.serve(goal.Ball)

	s.Resource.Log.WithFields(logrus.Fields{
		"scorer": goal.Scorer.String(),
		"left":   s.Resource.Score.Left,
		"right":  s.Resource.Score.Right,
	}).Info("goal")

	s.announce()
}

// reset zeroes the counters and serves every ball from the centre
func (s *ScoringSystem) reset() {
	s.Resource.Score.Reset()
	for _, e := range s.Component.Ball.All() {
		s.serve(e)
	}
	s.Resource.Log.Info("match reset")
	s.announce()
}

// serve centres a ball and sends it along a random diagonal at its own speed
func (s *ScoringSystem) serve(ball core.Entity) {
	speed, ok := s.Component.Speed.Get(ball)
	if !ok {
		return
	}

	pos, vel := rule.Serve(s.Resource.Rand.Rng, speed.Value)
	s.Component.Transform.Set(ball, component.TransformComponent{Position: pos})
	s.Component.Velocity.Set(ball, component.VelocityComponent{Linear: vel})

	if err := s.port.SetPosition(ball, pos); err != nil {
		s.Resource.Log.WithError(err).Warn("ball teleport failed")
	}
	if err := s.port.SetVelocity(ball, vel); err != nil {
		s.Resource.Log.WithError(err).Warn("ball serve velocity failed")
	}
}

func (s *ScoringSystem) announce() {
	s.World.PushEvent(event.EventScoreChanged, &event.ScoreChangedPayload{
		Left:  s.Resource.Score.Left,
		Right: s.Resource.Score.Right,
	})
}
