package engine

import (
	"github.com/lixenwraith/pong/component"
)

// ComponentStore provides typed component stores
// Systems cache it once at construction to avoid lookups per tick
type ComponentStore struct {
	// Spatial
	Transform *Store[component.TransformComponent]
	Velocity  *Store[component.VelocityComponent]
	Speed     *Store[component.SpeedComponent]
	Collider  *Store[component.ColliderComponent]

	// Markers
	Ball       *Store[component.BallComponent]
	Player     *Store[component.PlayerComponent]
	Goal       *Store[component.GoalComponent]
	Bound      *Store[component.BoundComponent]
	MainCamera *Store[component.MainCameraComponent]

	// Display
	ScoreText *Store[component.ScoreTextComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transform:  NewStore[component.TransformComponent](),
		Velocity:   NewStore[component.VelocityComponent](),
		Speed:      NewStore[component.SpeedComponent](),
		Collider:   NewStore[component.ColliderComponent](),
		Ball:       NewStore[component.BallComponent](),
		Player:     NewStore[component.PlayerComponent](),
		Goal:       NewStore[component.GoalComponent](),
		Bound:      NewStore[component.BoundComponent](),
		MainCamera: NewStore[component.MainCameraComponent](),
		ScoreText:  NewStore[component.ScoreTextComponent](),
	}
}

// all lists every store for uniform lifecycle operations
func (cs *ComponentStore) all() []AnyStore {
	return []AnyStore{
		cs.Transform,
		cs.Velocity,
		cs.Speed,
		cs.Collider,
		cs.Ball,
		cs.Player,
		cs.Goal,
		cs.Bound,
		cs.MainCamera,
		cs.ScoreText,
	}
}
