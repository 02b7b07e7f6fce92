// internal/system/slinger.go
package system

import (
	"math"

	"go-showcase/internal/component"
	"go-showcase/internal/config"
	"go-showcase/internal/entity"
	"go-showcase/internal/event"
	"go-showcase/internal/interfaces"
	"go-showcase/internal/types"
)

// SlingerSystem — симуляция перетаскиваемых объектов: захват,
// бросок, притяжение к указателю, отскок от стен, затухание.
// Работает фиксированным шагом 60 Гц через аккумулятор, так что
// скорость затухания не зависит от частоты дисплея.
type SlingerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	pointer         interfaces.PointerContext
	bounds          interfaces.StageBounds
	gravityPull     float64

	accumulator float64
}

func NewSlingerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher,
	pointer interfaces.PointerContext, bounds interfaces.StageBounds, gravityPull float64) *SlingerSystem {
	if gravityPull <= 0 {
		gravityPull = config.DefaultGravityPull
	}
	return &SlingerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		pointer:         pointer,
		bounds:          bounds,
		gravityPull:     gravityPull,
	}
}

func (s *SlingerSystem) Update(deltaTime float64) {
	step := 1.0 / config.SimStepsPerSecond
	s.accumulator += deltaTime
	for s.accumulator >= step {
		s.stepOnce()
		s.accumulator -= step
	}
}

func (s *SlingerSystem) stepOnce() {
	px, py, pointerKnown := s.pointer.PointerPosition()
	gravityOn := s.pointer.GravityEnabled() && pointerKnown
	left, top, right, bottom := s.bounds.Bounds()
	now := s.ecs.GameTime

	for id, sl := range s.ecs.Slingers {
		if sl.Dragging {
			continue
		}
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			continue
		}

		// 1. Притяжение к указателю — только после грейс-периода,
		// чтобы брошенный объект не прилипал обратно.
		if gravityOn && now-sl.LastReleaseAt >= config.GravityGraceTime {
			s.applyGravity(pos, vel, px, py)
		}

		// 2. Интеграция позиции.
		pos.X += vel.VX
		pos.Y += vel.VY

		// 3. Стены: прижатие к границе и отражение с реституцией.
		s.collideWalls(id, sl.Radius, pos, vel, left, top, right, bottom)

		// 4. Затухание покомпонентно; ниже минимума скорость
		// прищёлкивается к ±minSpeed, чтобы не дрожать бесконечно.
		vel.VX = dampComponent(vel.VX)
		vel.VY = dampComponent(vel.VY)

		// 5. Детект покоя — ровно одно событие на эпизод.
		speed := math.Hypot(vel.VX, vel.VY)
		if speed < config.SlingerIdleSpeed {
			if !sl.HasBecomeIdle {
				sl.HasBecomeIdle = true
				s.eventDispatcher.Dispatch(event.Event{Type: event.SlingerIdle, Data: event.SlingerIdleData{
					Slinger: id,
					X:       pos.X,
					Y:       pos.Y,
				}})
			}
		} else {
			sl.HasBecomeIdle = false
			sl.LastActiveAt = now
		}
	}
}

// applyGravity раскладывает скорость на радиальную и касательную
// составляющие: импульс добавляется вдоль радиуса, касательная
// дополнительно гасится — получается рыхлое "орбитирование", а не
// прямое самонаведение. Внутри мёртвой зоны — жёсткий захват.
func (s *SlingerSystem) applyGravity(pos *component.Position, vel *component.Velocity, px, py float64) {
	dx := px - pos.X
	dy := py - pos.Y
	dist := math.Hypot(dx, dy)
	if dist > config.GravityRange {
		return
	}
	if dist <= config.GravityDeadZone {
		vel.VX = 0
		vel.VY = 0
		return
	}

	rx := dx / dist
	ry := dy / dist
	radial := vel.VX*rx + vel.VY*ry
	tanX := vel.VX - radial*rx
	tanY := vel.VY - radial*ry

	impulse := smoothStep(1-dist/config.GravityRange) * s.gravityPull
	radial += impulse
	tanX *= config.OrbitDamping
	tanY *= config.OrbitDamping

	vel.VX = radial*rx + tanX
	vel.VY = radial*ry + tanY
}

func (s *SlingerSystem) collideWalls(id types.EntityID, radius float64, pos *component.Position, vel *component.Velocity,
	left, top, right, bottom float64) {
	hit := func(wall types.Wall) {
		s.eventDispatcher.Dispatch(event.Event{Type: event.WallHit, Data: event.WallHitData{
			Slinger: id,
			Wall:    wall,
			X:       pos.X,
			Y:       pos.Y,
		}})
	}

	if pos.X-radius < left {
		pos.X = left + radius
		vel.VX = -vel.VX * config.WallRestitution
		hit(types.WallLeft)
	} else if pos.X+radius > right {
		pos.X = right - radius
		vel.VX = -vel.VX * config.WallRestitution
		hit(types.WallRight)
	}
	if pos.Y-radius < top {
		pos.Y = top + radius
		vel.VY = -vel.VY * config.WallRestitution
		hit(types.WallTop)
	} else if pos.Y+radius > bottom {
		pos.Y = bottom - radius
		vel.VY = -vel.VY * config.WallRestitution
		hit(types.WallBottom)
	}
}

// BeginDrag захватывает слингер: скорость обнуляется и держится
// нулевой всё время перетаскивания.
func (s *SlingerSystem) BeginDrag(id types.EntityID, x, y float64) {
	sl, ok := s.ecs.Slingers[id]
	if !ok {
		return
	}
	sl.Dragging = true
	if vel := s.ecs.Velocities[id]; vel != nil {
		vel.VX = 0
		vel.VY = 0
	}
	if trail := s.ecs.Trails[id]; trail != nil {
		trail.Clear()
		trail.Append(x, y, s.ecs.GameTime)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.DragStarted, Data: event.DragData{Slinger: id, X: x, Y: y}})
}

// DragTo переносит слингер на дельту указателя и пишет замер в окно истории.
func (s *SlingerSystem) DragTo(id types.EntityID, dx, dy, x, y float64) {
	sl, ok := s.ecs.Slingers[id]
	if !ok || !sl.Dragging {
		return
	}
	if pos := s.ecs.Positions[id]; pos != nil {
		pos.X += dx
		pos.Y += dy
	}
	if trail := s.ecs.Trails[id]; trail != nil {
		trail.Append(x, y, s.ecs.GameTime)
	}
}

// EndDrag отпускает слингер: скорость броска оценивается по окну
// истории указателя, запоминается момент броска для грейса гравитации.
func (s *SlingerSystem) EndDrag(id types.EntityID) {
	sl, ok := s.ecs.Slingers[id]
	if !ok || !sl.Dragging {
		return
	}
	sl.Dragging = false
	sl.LastReleaseAt = s.ecs.GameTime
	sl.HasBecomeIdle = false

	var x, y float64
	if pos := s.ecs.Positions[id]; pos != nil {
		x, y = pos.X, pos.Y
	}
	if trail := s.ecs.Trails[id]; trail != nil {
		vx, vy := trail.ReleaseVelocity(config.ThrowFactor)
		if vel := s.ecs.Velocities[id]; vel != nil {
			vel.VX = vx
			vel.VY = vy
		}
		trail.Clear()
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.DragEnded, Data: event.DragData{Slinger: id, X: x, Y: y}})
}

// SlingerAt возвращает слингер под точкой, если есть.
func (s *SlingerSystem) SlingerAt(x, y float64) (types.EntityID, bool) {
	for id, sl := range s.ecs.Slingers {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		if math.Hypot(x-pos.X, y-pos.Y) <= sl.Radius {
			return id, true
		}
	}
	return 0, false
}

func dampComponent(v float64) float64 {
	if math.Abs(v) > config.SlingerMinSpeed {
		return v * config.SlingerDamping
	}
	if v > 0 {
		return config.SlingerMinSpeed
	}
	if v < 0 {
		return -config.SlingerMinSpeed
	}
	return 0
}

// smoothStep — кубическая ступенька на [0,1].
func smoothStep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
