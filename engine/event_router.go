package engine

import (
	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/parameter"
)

// EventRouter dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the tick goroutine
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Events pushed by handlers during dispatch are routed in a later pass of the same tick
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll drains the queue and routes every event in FIFO order
// All handlers for an event are called before moving to the next event
// Returns the number of events routed; events still pending after the pass limit stay queued
func (r *EventRouter) DispatchAll() int {
	routed := 0
	for pass := 0; pass < parameter.EventLoopIterations; pass++ {
		events := r.queue.Consume()
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
		routed += len(events)
	}
	return routed
}
