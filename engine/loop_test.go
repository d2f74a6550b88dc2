package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewLoopRejectsInvalidInterval(t *testing.T) {
	if _, err := NewLoop(0, func(time.Duration) {}); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("Expected ErrInvalidInterval, got %v", err)
	}
}

func TestLoopTicksWithFixedStep(t *testing.T) {
	interval := 2 * time.Millisecond
	var steps []time.Duration

	ctx, cancel := context.WithCancel(context.Background())
	loop, err := NewLoop(interval, func(dt time.Duration) {
		steps = append(steps, dt)
		if len(steps) == 5 {
			cancel()
		}
	})
	if err != nil {
		t.Fatalf("NewLoop failed: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		cancel()
		t.Fatal("Loop did not stop after cancel")
	}

	if loop.Ticks() < 5 {
		t.Errorf("Expected at least 5 ticks, got %d", loop.Ticks())
	}
	for i, dt := range steps {
		if dt != interval {
			t.Errorf("Step %d: expected dt %v, got %v", i, interval, dt)
		}
	}
}
