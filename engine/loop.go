package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrInvalidInterval is returned for a non-positive tick interval
var ErrInvalidInterval = errors.New("tick interval must be positive")

// Loop drives a fixed-step tick function on a wall-clock schedule
// Each call receives the fixed interval as dt regardless of scheduling jitter
type Loop struct {
	interval time.Duration
	tick     func(dt time.Duration)

	ticks atomic.Uint64
}

// NewLoop creates a loop calling tick every interval
func NewLoop(interval time.Duration, tick func(dt time.Duration)) (*Loop, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	return &Loop{interval: interval, tick: tick}, nil
}

// Run blocks until ctx is done and returns ctx.Err()
// Deadlines advance by interval for drift correction; falling more than two intervals behind resynchronizes
func (l *Loop) Run(ctx context.Context) error {
	next := time.Now().Add(l.interval)

	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		l.tick(l.interval)
		l.ticks.Add(1)

		now := time.Now()
		next = next.Add(l.interval)
		if now.Sub(next) > 2*l.interval {
			next = now.Add(l.interval)
		}
		wait := next.Sub(now)
		if wait < 0 {
			wait = 0
		}
		timer.Reset(wait)
	}
}

// Ticks returns how many ticks have run
func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}
