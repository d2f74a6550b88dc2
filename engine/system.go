package engine

import (
	"github.com/lixenwraith/pong/event"
)

// System is an interface that all systems must implement
type System interface {
	// Update runs once per tick
	Update()
	// Priority orders Update calls, lower values run first
	Priority() int
}

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event, called synchronously on the tick goroutine
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
