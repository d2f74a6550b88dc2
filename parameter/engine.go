package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickRate is the default fixed simulation rate in ticks per second
	TickRate = 60

	// PhysicsSubsteps splits each tick's physics step so thin sensors are not tunneled
	PhysicsSubsteps = 4

	// EventLoopIterations bounds dispatch passes per tick when handlers emit further events
	EventLoopIterations = 16
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Input
const (
	// KeyHoldWindow is how long a terminal key counts as held after its last press or repeat
	// Terminals report no key release, so held state is inferred from autorepeat
	KeyHoldWindow = 120 * time.Millisecond
)
