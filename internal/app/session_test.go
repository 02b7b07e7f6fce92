package app

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func TestSessionDegradedWithoutStorage(t *testing.T) {
	s := NewSession(nil)

	if s.LastSlide() != 0 || !s.GravityOn() {
		t.Fatalf("defaults: slide=%d gravity=%v", s.LastSlide(), s.GravityOn())
	}

	s.SetLastSlide(3)
	s.SetGravityOn(false)
	if err := s.Save(); err != nil {
		t.Fatalf("degraded Save must be a no-op, got %v", err)
	}
	// In-memory values still work within the run.
	if s.LastSlide() != 3 || s.GravityOn() {
		t.Error("in-memory state lost")
	}
}

func newTestManager(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	m, err := gdata.Open(gdata.Config{AppName: "go-showcase-test"})
	if err != nil {
		t.Skipf("gdata unavailable in this environment: %v", err)
	}
	return m
}

func TestSessionRoundTrip(t *testing.T) {
	m := newTestManager(t)

	first := NewSession(m)
	first.SetLastSlide(4)
	first.SetGravityOn(false)
	if err := first.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := NewSession(m)
	if second.LastSlide() != 4 {
		t.Errorf("LastSlide = %d, want 4", second.LastSlide())
	}
	if second.GravityOn() {
		t.Error("GravityOn = true, want false")
	}
}

func TestSessionFreshStorageUsesDefaults(t *testing.T) {
	m := newTestManager(t)
	s := NewSession(m)
	if s.LastSlide() != 0 || !s.GravityOn() {
		t.Errorf("fresh storage: slide=%d gravity=%v", s.LastSlide(), s.GravityOn())
	}
}
