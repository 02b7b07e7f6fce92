package scroll

import (
	"math"
	"testing"
)

const step = 1.0 / 60.0

func TestFlickDecaysToRest(t *testing.T) {
	a := NewAxis()
	a.Flick(600)

	prevSpeed := math.Abs(a.Velocity)
	for i := 0; i < 600; i++ {
		a.Update(step)
		speed := math.Abs(a.Velocity)
		if speed > prevSpeed {
			t.Fatalf("step %d: speed grew from %v to %v", i, prevSpeed, speed)
		}
		prevSpeed = speed
	}
	if a.Velocity != 0 {
		t.Errorf("velocity did not reach rest: %v", a.Velocity)
	}
	if !(a.Offset > 0) {
		t.Errorf("flick should have moved the axis forward, offset %v", a.Offset)
	}
	if a.Moving() {
		t.Error("axis still reports moving after coming to rest")
	}
}

func TestGlideReachesTargetExactly(t *testing.T) {
	a := NewAxis()
	a.Offset = 1234.5
	a.GlideTo(-300)

	for i := 0; i < 600 && a.Gliding(); i++ {
		a.Update(step)
	}
	if a.Gliding() {
		t.Fatal("glide did not finish in 10 simulated seconds")
	}
	if a.Offset != -300 {
		t.Errorf("offset %v, want exact target -300", a.Offset)
	}
}

func TestApplyDeltaCancelsGlide(t *testing.T) {
	a := NewAxis()
	a.GlideTo(500)
	a.ApplyDelta(-10)
	if a.Gliding() {
		t.Error("manual drag must cancel programmatic glide")
	}
	if a.Offset != -10 {
		t.Errorf("offset %v, want -10", a.Offset)
	}
}

func TestHaltStopsEverything(t *testing.T) {
	a := NewAxis()
	a.Flick(300)
	a.GlideTo(100)
	a.Halt()
	if a.Moving() {
		t.Error("axis moving after Halt")
	}
	before := a.Offset
	a.Update(step)
	if a.Offset != before {
		t.Error("halted axis drifted")
	}
}
