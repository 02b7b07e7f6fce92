package system

import (
	"bytes"
	"log"
	"math"
	"os"
	"strings"
	"testing"

	"go-showcase/internal/component"
	"go-showcase/internal/config"
	"go-showcase/internal/entity"
	"go-showcase/internal/event"
	"go-showcase/internal/types"
	"go-showcase/pkg/scroll"
)

const testStep = 1.0 / 60.0

// recorder collects dispatched events for assertions.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// newMasterLayer builds an ECS with a single master layer of n slides.
func newMasterLayer(n int, spacing float64) (*entity.ECS, *event.Dispatcher, *CarouselSystem, types.EntityID) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()

	layerID := ecs.NewEntity()
	ecs.Carousels[layerID] = &component.Carousel{
		DefID:      "test-master",
		Role:       component.RoleMaster,
		Spacing:    spacing,
		Multiplier: 1,
		SlideCount: n,
		Axis:       scroll.NewAxis(),
		Direction:  scroll.DirectionRight,
		Trigger:    types.TriggerUser,
	}
	for i := 0; i < n; i++ {
		slideID := ecs.NewEntity()
		ecs.Slides[slideID] = &component.Slide{LayerID: layerID, Ordinal: i}
		ecs.Positions[slideID] = &component.Position{}
	}

	return ecs, d, NewCarouselSystem(ecs, d, layerID), layerID
}

func TestIndexFollowsOffset(t *testing.T) {
	ecs, d, sys, layerID := newMasterLayer(5, 300)
	rec := &recorder{}
	d.Subscribe(event.SlideChanged, rec)

	// Offset 900 with spacing 300 lands on index 3.
	ecs.Carousels[layerID].Axis.Offset = 900
	sys.Update(testStep)

	c := ecs.Carousels[layerID]
	if c.CurrentIndex != 3 {
		t.Fatalf("CurrentIndex = %d, want 3", c.CurrentIndex)
	}
	if c.Direction != scroll.DirectionRight {
		t.Errorf("Direction = %v, want Right", c.Direction)
	}
	changed := rec.ofType(event.SlideChanged)
	if len(changed) != 1 {
		t.Fatalf("got %d SlideChanged events, want 1", len(changed))
	}
	data := changed[0].Data.(event.SlideChangedData)
	if data.Index != 3 || data.Direction != scroll.DirectionRight {
		t.Errorf("SlideChanged payload %+v", data)
	}
}

// Past a full revolution the raw index keeps counting while the
// normalized index wraps.
func TestRawIndexPastRevolution(t *testing.T) {
	ecs, _, sys, layerID := newMasterLayer(5, 300)

	sys.ApplyScroll(2100)
	sys.Update(testStep)

	c := ecs.Carousels[layerID]
	if c.CurrentIndex != 7 {
		t.Fatalf("raw index = %d, want 7", c.CurrentIndex)
	}
	if c.NormalizedIndex() != 2 {
		t.Errorf("normalized index = %d, want 2", c.NormalizedIndex())
	}
}

func TestStabilizeFiresExactlyOnce(t *testing.T) {
	ecs, d, sys, layerID := newMasterLayer(5, 300)
	rec := &recorder{}
	d.Subscribe(event.SlideStabilized, rec)

	ecs.Carousels[layerID].Axis.Offset = 300
	sys.Update(testStep) // index change arms the debounce

	// Quiet period shorter than the delay: nothing yet.
	for elapsed := 0.0; elapsed < config.StabilizeDelay-0.05; elapsed += testStep {
		sys.Update(testStep)
	}
	if n := len(rec.ofType(event.SlideStabilized)); n != 0 {
		t.Fatalf("stabilized too early: %d events", n)
	}

	// Cross the threshold, then keep idling: exactly one event total.
	for i := 0; i < 120; i++ {
		sys.Update(testStep)
	}
	stab := rec.ofType(event.SlideStabilized)
	if len(stab) != 1 {
		t.Fatalf("got %d SlideStabilized events, want 1", len(stab))
	}
	data := stab[0].Data.(event.SlideStabilizedData)
	if data.Index != 1 || data.Normalized != 1 || data.Trigger != types.TriggerUser {
		t.Errorf("SlideStabilized payload %+v", data)
	}
}

// Movement during the quiet period restarts the debounce.
func TestStabilizeResetOnNewChange(t *testing.T) {
	ecs, d, sys, layerID := newMasterLayer(5, 300)
	rec := &recorder{}
	d.Subscribe(event.SlideStabilized, rec)

	c := ecs.Carousels[layerID]
	c.Axis.Offset = 300
	sys.Update(testStep)
	sys.Update(config.StabilizeDelay / 2)

	c.Axis.Offset = 600 // new index before the delay elapsed
	sys.Update(testStep)
	sys.Update(config.StabilizeDelay / 2)
	if n := len(rec.ofType(event.SlideStabilized)); n != 0 {
		t.Fatalf("debounce did not restart: %d events", n)
	}

	sys.Update(config.StabilizeDelay)
	stab := rec.ofType(event.SlideStabilized)
	if len(stab) != 1 {
		t.Fatalf("got %d events, want 1", len(stab))
	}
	if data := stab[0].Data.(event.SlideStabilizedData); data.Index != 2 {
		t.Errorf("stabilized on index %d, want 2", data.Index)
	}
}

func TestScrollToSlideTakesShortestArc(t *testing.T) {
	ecs, d, sys, layerID := newMasterLayer(5, 300)
	rec := &recorder{}
	d.Subscribe(event.SlideStabilized, rec)

	// From 0 the shortest way to slide 4 is one step backwards.
	sys.ScrollToSlide(4)
	for i := 0; i < 600; i++ {
		sys.Update(testStep)
	}

	c := ecs.Carousels[layerID]
	if c.CurrentIndex != -1 {
		t.Errorf("raw index = %d, want -1 (backward arc)", c.CurrentIndex)
	}
	if c.NormalizedIndex() != 4 {
		t.Errorf("normalized index = %d, want 4", c.NormalizedIndex())
	}
	if math.Abs(c.Axis.Offset+300) > 1e-9 {
		t.Errorf("offset = %v, want -300", c.Axis.Offset)
	}

	stab := rec.ofType(event.SlideStabilized)
	if len(stab) != 1 {
		t.Fatalf("got %d SlideStabilized events, want 1", len(stab))
	}
	if data := stab[0].Data.(event.SlideStabilizedData); data.Trigger != types.TriggerScrollTo {
		t.Errorf("Trigger = %v, want SCROLL_TO", data.Trigger)
	}
}

func TestSnapToSlideIsImmediate(t *testing.T) {
	ecs, d, sys, layerID := newMasterLayer(5, 300)
	rec := &recorder{}
	d.Subscribe(event.SlideChanged, rec)
	d.Subscribe(event.SlideStabilized, rec)

	sys.SnapToSlide(3)

	c := ecs.Carousels[layerID]
	if c.CurrentIndex != 3 || c.Axis.Offset != 900 {
		t.Errorf("snap: index %d offset %v", c.CurrentIndex, c.Axis.Offset)
	}
	// Snap is a silent reposition, not a scroll gesture.
	if len(rec.events) != 0 {
		t.Errorf("snap dispatched %d events", len(rec.events))
	}
	for i := 0; i < 60; i++ {
		sys.Update(testStep)
	}
	if n := len(rec.ofType(event.SlideStabilized)); n != 0 {
		t.Errorf("snap armed the debounce: %d events", n)
	}
}

// A below-minimum spacing is clamped and warned about exactly once,
// not on every tick.
func TestSpacingClampWarnsOnce(t *testing.T) {
	ecs, _, sys, layerID := newMasterLayer(5, 0)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	ecs.Carousels[layerID].Axis.Offset = 3
	for i := 0; i < 120; i++ {
		sys.Update(testStep)
	}

	if got := strings.Count(buf.String(), "below minimum"); got != 1 {
		t.Errorf("spacing warning logged %d times, want 1", got)
	}
	// Clamped spacing still drives the index math.
	if idx := ecs.Carousels[layerID].CurrentIndex; idx != 3 {
		t.Errorf("CurrentIndex = %d, want 3 with clamped spacing 1", idx)
	}
}

// Slides further than the cull window from the current index are hidden,
// everything inside is visible.
func TestCullingWindow(t *testing.T) {
	ecs, _, sys, layerID := newMasterLayer(7, 300)

	ecs.Carousels[layerID].Axis.Offset = 300
	sys.Update(testStep)

	c := ecs.Carousels[layerID]
	for _, slide := range ecs.Slides {
		dist := slide.Slot - c.CurrentIndex
		if dist < 0 {
			dist = -dist
		}
		if slide.Hidden != (dist > config.CullWindow) {
			t.Errorf("ordinal %d slot %d: Hidden = %v at distance %d",
				slide.Ordinal, slide.Slot, slide.Hidden, dist)
		}
	}
}
