package system

import (
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/rule"
)

// ScoreTextSystem mirrors the score counters into the score text entities on change
type ScoreTextSystem struct {
	engine.SystemBase
}

// NewScoreTextSystem creates the score display system
func NewScoreTextSystem(world *engine.World) engine.System {
	return &ScoreTextSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *ScoreTextSystem) Priority() int {
	return constant.PriorityUI
}

// Update implements System interface (no tick-based logic)
func (s *ScoreTextSystem) Update() {}

func (s *ScoreTextSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventScoreChanged}
}

// HandleEvent reads the counters from the score resource, the payload may predate later goals in the same tick
func (s *ScoreTextSystem) HandleEvent(ev event.GameEvent) {
	for _, e := range s.Component.ScoreText.All() {
		text, _ := s.Component.ScoreText.Get(e)
		text.Text = rule.ScoreText(s.Resource.Score.Get(text.Side))
		s.Component.ScoreText.Set(e, text)
	}
}
