package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/event"
)

// World contains all entities, their components, the simulation resources and the systems
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Component ComponentStore
	Resource  *Resource

	queue   *event.EventQueue
	router  *EventRouter
	systems []System
}

// NewWorld creates an empty world with default resources
func NewWorld() *World {
	queue := event.NewEventQueue()
	return &World{
		nextEntityID: 1,
		Component:    newComponentStore(),
		Resource:     newResource(queue),
		queue:        queue,
		router:       NewEventRouter(queue),
		systems:      make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.Component.all() {
		store.Remove(e)
	}
}

// AddSystem adds a system and keeps the list sorted by priority
// Systems that also implement EventHandler are registered with the router
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Insertion sort, stable for equal priorities
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}

	if h, ok := system.(EventHandler); ok {
		w.router.Register(h)
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// PushEvent queues an event stamped with the current frame
// Safe to call from any goroutine
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.queue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.FrameNumber(),
	})
}

// FrameNumber returns the current tick count
func (w *World) FrameNumber() int64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.Resource.Time.FrameNumber
}

// Tick advances the simulation by one fixed step
// Systems update in priority order, then every queued event is routed
func (w *World) Tick(dt time.Duration) {
	w.mu.Lock()
	w.Resource.Time.DeltaTime = dt
	w.Resource.Time.FrameNumber++
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.Unlock()

	for _, system := range systems {
		system.Update()
	}

	w.router.DispatchAll()
}
