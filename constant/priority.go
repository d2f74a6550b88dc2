package constant

// System Execution Priorities (lower runs first)
// Event-only systems still carry a priority, it orders their Update no-ops
const (
	PriorityInput       = 10  // Paddle velocity from held keys
	PriorityPhysics     = 20  // Physics step, collision-start drain
	PrioritySpeed       = 30  // After physics, normalizes velocity magnitude
	PriorityGame        = 40  // Scoring, sound cues
	PriorityLayout      = 45  // Window-relative placement
	PriorityUI          = 50  // Score text, audio
	PriorityDiagnostics = 950 // Debug assertions, final
)
