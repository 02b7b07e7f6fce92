// pkg/scroll/axis.go
package scroll

import "math"

// Axis — виртуальная знаковая ось прокрутки с инерцией.
// Смещение ничем не ограничено: никакой "большой базовой константы"
// не нужно, ось сама хранит своё знаковое смещение.
type Axis struct {
	Offset   float64 // текущее смещение в пикселях, может быть отрицательным
	Velocity float64 // пикселей в секунду

	Friction  float64 // коэффициент экспоненциального затухания инерции
	StopSpeed float64 // ниже этой скорости инерцию обнуляем

	GlideRate float64 // скорость программного подъезда к цели
	gliding   bool
	target    float64
}

// NewAxis создаёт ось с настройками по умолчанию.
func NewAxis() *Axis {
	return &Axis{
		Friction:  3.2,
		StopSpeed: 2.0,
		GlideRate: 7.0,
	}
}

// ApplyDelta — прямое смещение (перетаскивание). Сбрасывает программный подъезд.
func (a *Axis) ApplyDelta(d float64) {
	a.gliding = false
	a.Offset += d
}

// Flick добавляет скорость (бросок колёсика/жеста).
func (a *Axis) Flick(v float64) {
	a.gliding = false
	a.Velocity += v
}

// GlideTo запускает плавный программный подъезд к целевому смещению.
func (a *Axis) GlideTo(target float64) {
	a.gliding = true
	a.target = target
	a.Velocity = 0
}

// Gliding сообщает, выполняется ли программный подъезд.
func (a *Axis) Gliding() bool {
	return a.gliding
}

// Halt останавливает и инерцию, и подъезд (начало ручного захвата).
func (a *Axis) Halt() {
	a.Velocity = 0
	a.gliding = false
}

// Update продвигает ось на deltaTime секунд.
func (a *Axis) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	if a.gliding {
		step := a.GlideRate * deltaTime
		if step > 1 {
			step = 1
		}
		a.Offset += (a.target - a.Offset) * step
		if math.Abs(a.target-a.Offset) < 0.5 {
			a.Offset = a.target
			a.gliding = false
		}
		return
	}
	if a.Velocity != 0 {
		a.Offset += a.Velocity * deltaTime
		a.Velocity *= math.Exp(-a.Friction * deltaTime)
		if math.Abs(a.Velocity) < a.StopSpeed {
			a.Velocity = 0
		}
	}
}

// Moving — движется ли ось (инерция или подъезд).
func (a *Axis) Moving() bool {
	return a.gliding || a.Velocity != 0
}
