package system

import (
	"fmt"

	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/physics"
	"github.com/lixenwraith/pong/rule"
	"github.com/lixenwraith/pong/vmath"
)

// Spawn creates the startup entities and registers their bodies with the port
// The camera and ball never depend on the window; field entities are skipped when no window size is available
func Spawn(world *engine.World, port physics.Port, display engine.Display, settings Settings) error {
	cs := &world.Component
	log := world.Resource.Log

	camera := world.CreateEntity()
	cs.MainCamera.Set(camera, component.MainCameraComponent{})

	if err := spawnBall(world, port, settings); err != nil {
		return err
	}

	var (
		width, height float64
		ok            bool
	)
	if display != nil {
		width, height, ok = display.WindowSize()
	}
	if !ok || !rule.ValidSize(vmath.V2F(width, height)) {
		log.Error("primary window size unavailable, field and paddles not spawned")
		return nil
	}
	world.Resource.Window.Set(width, height)
	size := vmath.V2F(width, height)

	for _, edge := range []core.Edge{core.EdgeTop, core.EdgeBottom} {
		if err := spawnBound(world, port, edge, size); err != nil {
			return err
		}
	}
	for _, side := range []core.Side{core.SideLeft, core.SideRight} {
		if err := spawnGoal(world, port, side, size); err != nil {
			return err
		}
		if err := spawnPlayer(world, port, side, size, settings); err != nil {
			return err
		}
		spawnScoreText(world, side, size)
	}

	log.WithField("width", width).WithField("height", height).Info("field spawned")
	return nil
}

func spawnBall(world *engine.World, port physics.Port, settings Settings) error {
	cs := &world.Component
	e := world.CreateEntity()

	vel := rule.RandomDiagonal(world.Resource.Rand.Rng, settings.BallSpeed)
	collider := component.Circle(settings.BallRadius)

	cs.Ball.Set(e, component.BallComponent{})
	cs.Transform.Set(e, component.TransformComponent{})
	cs.Velocity.Set(e, component.VelocityComponent{Linear: vel})
	cs.Speed.Set(e, component.SpeedComponent{Value: settings.BallSpeed})
	cs.Collider.Set(e, collider)

	err := port.AddBody(e, physics.BodyDef{
		Kind:         physics.BodyDynamic,
		Collider:     collider,
		Velocity:     vel,
		Mass:         parameter.BallMass,
		Elasticity:   1,
		ReportEvents: true,
	})
	if err != nil {
		return fmt.Errorf("spawn ball: %w", err)
	}
	return nil
}

func spawnBound(world *engine.World, port physics.Port, edge core.Edge, size vmath.Vec2F) error {
	cs := &world.Component
	e := world.CreateEntity()

	p := rule.BoundPlacement(edge, size)
	collider := component.Cuboid(p.HalfExtents.X, p.HalfExtents.Y)

	cs.Bound.Set(e, component.BoundComponent{Edge: edge})
	cs.Transform.Set(e, component.TransformComponent{Position: p.Position})
	cs.Collider.Set(e, collider)

	err := port.AddBody(e, physics.BodyDef{
		Kind:       physics.BodyStatic,
		Collider:   collider,
		Position:   p.Position,
		Elasticity: 1,
	})
	if err != nil {
		return fmt.Errorf("spawn %s bound: %w", edge, err)
	}
	return nil
}

func spawnGoal(world *engine.World, port physics.Port, side core.Side, size vmath.Vec2F) error {
	cs := &world.Component
	e := world.CreateEntity()

	p := rule.GoalPlacement(side, size)
	collider := component.Cuboid(p.HalfExtents.X, p.HalfExtents.Y)
	collider.Sensor = true

	cs.Goal.Set(e, component.GoalComponent{Side: side})
	cs.Transform.Set(e, component.TransformComponent{Position: p.Position})
	cs.Collider.Set(e, collider)

	err := port.AddBody(e, physics.BodyDef{
		Kind:         physics.BodyStatic,
		Collider:     collider,
		Position:     p.Position,
		ReportEvents: true,
	})
	if err != nil {
		return fmt.Errorf("spawn %s goal: %w", side, err)
	}
	return nil
}

func spawnPlayer(world *engine.World, port physics.Port, side core.Side, size vmath.Vec2F, settings Settings) error {
	cs := &world.Component
	e := world.CreateEntity()

	pos := rule.PaddleStart(side, size)
	collider := component.Cuboid(settings.PaddleSize.X/2, settings.PaddleSize.Y/2)
	keys := settings.KeysFor(side)

	cs.Player.Set(e, component.PlayerComponent{Side: side, Up: keys.Up, Down: keys.Down})
	cs.Transform.Set(e, component.TransformComponent{Position: pos})
	cs.Velocity.Set(e, component.VelocityComponent{})
	cs.Speed.Set(e, component.SpeedComponent{Value: settings.PaddleSpeed})
	cs.Collider.Set(e, collider)

	err := port.AddBody(e, physics.BodyDef{
		Kind:       physics.BodyDynamic,
		Collider:   collider,
		Position:   pos,
		Mass:       parameter.PaddleMass,
		Elasticity: 1,
		LockX:      true,
	})
	if err != nil {
		return fmt.Errorf("spawn %s paddle: %w", side, err)
	}
	return nil
}

func spawnScoreText(world *engine.World, side core.Side, size vmath.Vec2F) {
	cs := &world.Component
	e := world.CreateEntity()

	cs.ScoreText.Set(e, component.ScoreTextComponent{Side: side, Text: rule.ScoreText(0)})
	cs.Transform.Set(e, component.TransformComponent{Position: rule.ScoreTextStart(side, size)})
}
