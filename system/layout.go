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
	"github.com/lixenwraith/pong/vmath"
)

// LayoutSystem keeps window-relative entities in place across window resizes
// Bounds and goals are rebuilt from the new size, paddles and score texts scale from the cached size
type LayoutSystem struct {
	engine.SystemBase
	port physics.Port
}

// NewLayoutSystem creates the resize handler
func NewLayoutSystem(world *engine.World, port physics.Port) engine.System {
	return &LayoutSystem{
		SystemBase: engine.NewSystemBase(world),
		port:       port,
	}
}

func (s *LayoutSystem) Priority() int {
	return constant.PriorityLayout
}

// Update implements System interface (no tick-based logic)
func (s *LayoutSystem) Update() {}

func (s *LayoutSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventWindowResized}
}

func (s *LayoutSystem) HandleEvent(ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.WindowResizedPayload)
	if !ok {
		return
	}
	s.resize(vmath.V2F(payload.Width, payload.Height))
}

// resize applies one resize; the cache moves only after every consumer read the old size
func (s *LayoutSystem) resize(to vmath.Vec2F) {
	log := s.Resource.Log.WithFields(logrus.Fields{"width": to.X, "height": to.Y})

	window := s.Resource.Window
	if !window.Known {
		log.Warn("resize ignored, no window size recorded at startup")
		return
	}
	if !rule.ValidSize(to) {
		log.Debug("resize ignored, degenerate size")
		return
	}
	from := vmath.V2F(window.Width, window.Height)

	for _, e := range s.Component.Bound.All() {
		bound, _ := s.Component.Bound.Get(e)
		s.place(e, rule.BoundPlacement(bound.Edge, to), false)
	}

	for _, e := range s.Component.Goal.All() {
		goal, _ := s.Component.Goal.Get(e)
		s.place(e, rule.GoalPlacement(goal.Side, to), true)
	}

	for _, e := range s.Component.Player.All() {
		s.rescale(e, from, to, true)
	}

	for _, e := range s.Component.ScoreText.All() {
		s.rescale(e, from, to, false)
	}

	window.Set(to.X, to.Y)
	log.Debug("layout rescaled")
}

// place moves a static box and replaces its extents
func (s *LayoutSystem) place(e core.Entity, p rule.Placement, sensor bool) {
	collider := component.Cuboid(p.HalfExtents.X, p.HalfExtents.Y)
	collider.Sensor = sensor

	s.Component.Transform.Set(e, component.TransformComponent{Position: p.Position})
	s.Component.Collider.Set(e, collider)

	// Move first so the new shape is built at the new transform
	if err := s.port.SetPosition(e, p.Position); err != nil {
		s.Resource.Log.WithError(err).Warn("collider move failed")
	}
	if err := s.port.SetShape(e, collider); err != nil {
		s.Resource.Log.WithError(err).Warn("collider resize failed")
	}
}

func (s *LayoutSystem) rescale(e core.Entity, from, to vmath.Vec2F, hasBody bool) {
	transform, ok := s.Component.Transform.Get(e)
	if !ok {
		return
	}
	transform.Position = rule.Rescale(transform.Position, from, to)
	s.Component.Transform.Set(e, transform)

	if !hasBody {
		return
	}
	if err := s.port.SetPosition(e, transform.Position); err != nil {
		s.Resource.Log.WithError(err).Warn("paddle move failed")
	}
}
