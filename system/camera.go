package system

import (
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/engine"
)

// CameraAssertSystem checks that exactly one main camera exists
// Logs on transitions only, the simulation continues either way
type CameraAssertSystem struct {
	engine.SystemBase

	lastCount int
	checked   bool
}

// NewCameraAssertSystem creates the main camera diagnostic
func NewCameraAssertSystem(world *engine.World) engine.System {
	return &CameraAssertSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *CameraAssertSystem) Priority() int {
	return constant.PriorityDiagnostics
}

func (s *CameraAssertSystem) Update() {
	count := s.Component.MainCamera.Count()
	if s.checked && count == s.lastCount {
		return
	}

	wasValid := s.checked && s.lastCount == 1
	s.checked = true
	s.lastCount = count

	log := s.Resource.Log.WithField("count", count)
	switch {
	case count != 1:
		log.Error("expected exactly one main camera")
	case !wasValid && s.Resource.Time.FrameNumber > 1:
		log.Info("main camera count restored")
	}
}

// Valid reports whether the last check saw exactly one main camera
func (s *CameraAssertSystem) Valid() bool {
	return s.checked && s.lastCount == 1
}
