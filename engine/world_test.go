package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/vmath"
)

// recordingSystem appends its name to a shared log on every Update
type recordingSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *recordingSystem) Update()       { *s.log = append(*s.log, s.name) }
func (s *recordingSystem) Priority() int { return s.priority }

// recordingHandler records routed events and optionally emits a follow-up
// Update is a no-op, it only joins the world to receive events
type recordingHandler struct {
	types    []event.EventType
	seen     []event.GameEvent
	followUp func(ev event.GameEvent)
}

func (h *recordingHandler) Update()                       {}
func (h *recordingHandler) Priority() int                 { return 0 }
func (h *recordingHandler) EventTypes() []event.EventType { return h.types }

func (h *recordingHandler) HandleEvent(ev event.GameEvent) {
	h.seen = append(h.seen, ev)
	if h.followUp != nil {
		h.followUp(ev)
	}
}

func TestCreateEntityIssuesUniqueNonZeroIDs(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()

	if a == 0 || b == 0 {
		t.Fatalf("Expected non-zero entity IDs, got %d and %d", a, b)
	}
	if a == b {
		t.Errorf("Expected unique entity IDs, got %d twice", a)
	}
}

func TestDestroyEntityRemovesAllComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Component.Transform.Set(e, component.TransformComponent{Position: vmath.V2F(1, 2)})
	w.Component.Velocity.Set(e, component.VelocityComponent{})
	w.Component.Ball.Set(e, component.BallComponent{})

	w.DestroyEntity(e)

	if w.Component.Transform.Has(e) || w.Component.Velocity.Has(e) || w.Component.Ball.Has(e) {
		t.Error("Expected all components removed after DestroyEntity")
	}
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := NewWorld()
	var log []string

	w.AddSystem(&recordingSystem{name: "late", priority: 30, log: &log})
	w.AddSystem(&recordingSystem{name: "early", priority: 10, log: &log})
	w.AddSystem(&recordingSystem{name: "middle", priority: 20, log: &log})
	w.AddSystem(&recordingSystem{name: "middle-second", priority: 20, log: &log})

	w.Tick(time.Second / 60)

	want := []string{"early", "middle", "middle-second", "late"}
	if len(log) != len(want) {
		t.Fatalf("Expected %d updates, got %d", len(want), len(log))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Update %d: expected %s, got %s", i, want[i], log[i])
		}
	}
}

func TestTickAdvancesTimeResource(t *testing.T) {
	w := NewWorld()
	dt := 16 * time.Millisecond

	w.Tick(dt)
	w.Tick(dt)

	if w.Resource.Time.FrameNumber != 2 {
		t.Errorf("Expected frame 2, got %d", w.Resource.Time.FrameNumber)
	}
	if w.Resource.Time.DeltaTime != dt {
		t.Errorf("Expected delta %v, got %v", dt, w.Resource.Time.DeltaTime)
	}
}

func TestTickRoutesQueuedAndCascadedEvents(t *testing.T) {
	w := NewWorld()

	sound := &recordingHandler{types: []event.EventType{event.EventSoundRequest}}
	collision := &recordingHandler{types: []event.EventType{event.EventCollisionStarted}}
	collision.followUp = func(ev event.GameEvent) {
		w.PushEvent(event.EventSoundRequest, &event.SoundRequestPayload{})
	}
	w.AddSystem(collision)
	w.AddSystem(sound)

	w.PushEvent(event.EventCollisionStarted, &event.CollisionStartedPayload{A: 1, B: 2})
	w.Tick(time.Second / 60)

	if len(collision.seen) != 1 {
		t.Errorf("Expected 1 collision event, got %d", len(collision.seen))
	}
	if len(sound.seen) != 1 {
		t.Errorf("Expected cascaded sound event routed in the same tick, got %d", len(sound.seen))
	}

	w.Tick(time.Second / 60)
	if len(collision.seen) != 1 || len(sound.seen) != 1 {
		t.Error("Expected events to be consumed exactly once")
	}
}

func TestQueryIntersectsStores(t *testing.T) {
	w := NewWorld()
	moving := w.CreateEntity()
	static := w.CreateEntity()
	speedOnly := w.CreateEntity()

	w.Component.Speed.Set(moving, component.SpeedComponent{Value: 1})
	w.Component.Velocity.Set(moving, component.VelocityComponent{})
	w.Component.Velocity.Set(static, component.VelocityComponent{})
	w.Component.Speed.Set(speedOnly, component.SpeedComponent{Value: 2})

	result := w.Query().With(w.Component.Speed).With(w.Component.Velocity).Execute()
	if len(result) != 1 || result[0] != moving {
		t.Errorf("Expected only entity %d, got %v", moving, result)
	}
}

func TestStoreRemovePreservesOrder(t *testing.T) {
	s := NewStore[int]()
	s.Set(1, 10)
	s.Set(2, 20)
	s.Set(3, 30)
	s.Set(2, 21)

	s.Remove(2)

	all := s.All()
	if len(all) != 2 || all[0] != 1 || all[1] != 3 {
		t.Errorf("Expected [1 3], got %v", all)
	}
	if _, ok := s.Get(2); ok {
		t.Error("Expected removed entity to be absent")
	}
	if v, _ := s.Get(3); v != 30 {
		t.Errorf("Expected 30, got %d", v)
	}

	s.Clear()
	if s.Count() != 0 {
		t.Errorf("Expected empty store after Clear, got %d", s.Count())
	}
}
