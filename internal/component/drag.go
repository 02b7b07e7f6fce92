// internal/component/drag.go
package component

// TrailSample — один замер позиции указателя.
type TrailSample struct {
	X, Y float64
	T    float64 // игровое время, сек
}

// PointerTrail — скользящее окно недавних замеров указателя.
// Используется только для оценки скорости броска при отпускании.
type PointerTrail struct {
	Samples []TrailSample
	Window  float64 // сек
}

// Append добавляет замер и отбрасывает всё старше окна.
func (t *PointerTrail) Append(x, y, now float64) {
	t.Samples = append(t.Samples, TrailSample{X: x, Y: y, T: now})
	cutoff := now - t.Window
	i := 0
	for i < len(t.Samples) && t.Samples[i].T < cutoff {
		i++
	}
	if i > 0 {
		t.Samples = t.Samples[i:]
	}
}

// Clear очищает окно (начало и конец перетаскивания).
func (t *PointerTrail) Clear() {
	t.Samples = t.Samples[:0]
}

// ReleaseVelocity оценивает скорость броска по крайним замерам окна:
// позиционная дельта, делённая на время, с демпфирующим множителем.
func (t *PointerTrail) ReleaseVelocity(throwFactor float64) (vx, vy float64) {
	if len(t.Samples) < 2 {
		return 0, 0
	}
	first := t.Samples[0]
	last := t.Samples[len(t.Samples)-1]
	elapsed := last.T - first.T
	if elapsed <= 0 {
		return 0, 0
	}
	vx = (last.X - first.X) / elapsed * throwFactor
	vy = (last.Y - first.Y) / elapsed * throwFactor
	return vx, vy
}
