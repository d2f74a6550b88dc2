package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/pong/parameter"
)

// TestEventQueueBasic tests push and consume in FIFO order
func TestEventQueueBasic(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(GameEvent{Type: EventWindowResized, Payload: "first", Frame: 1})
	eq.Push(GameEvent{Type: EventCollisionStarted, Payload: "second", Frame: 1})
	eq.Push(GameEvent{Type: EventSoundRequest, Payload: "third", Frame: 2})

	if eq.Len() != 3 {
		t.Errorf("Expected 3 pending events, got %d", eq.Len())
	}

	events := eq.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	if events[0].Payload != "first" || events[1].Payload != "second" || events[2].Payload != "third" {
		t.Errorf("Expected FIFO order, got %v %v %v", events[0].Payload, events[1].Payload, events[2].Payload)
	}

	if again := eq.Consume(); again != nil {
		t.Errorf("Expected nil on second consume, got %d events", len(again))
	}
}

// TestEventQueueConcurrentPush pushes from several goroutines and expects no loss under capacity
func TestEventQueueConcurrentPush(t *testing.T) {
	eq := NewEventQueue()
	producers := 8
	perProducer := 50

	var wg sync.WaitGroup
	wg.Add(producers)
	for i := 0; i < producers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				eq.Push(GameEvent{Type: EventWindowResized})
			}
		}()
	}
	wg.Wait()

	if got := len(eq.Consume()); got != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, got)
	}
}

// TestEventQueueOverflow keeps the newest events when capacity is exceeded
func TestEventQueueOverflow(t *testing.T) {
	eq := NewEventQueue()
	total := parameter.EventQueueSize + 10

	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventSoundRequest, Frame: int64(i)})
	}

	events := eq.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if events[len(events)-1].Frame != int64(total-1) {
		t.Errorf("Expected newest frame %d last, got %d", total-1, events[len(events)-1].Frame)
	}
}
