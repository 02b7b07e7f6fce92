package event

import "testing"

type countingListener struct {
	got []Event
}

func (l *countingListener) OnEvent(e Event) {
	l.got = append(l.got, e)
}

func TestDispatchReachesAllSubscribers(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(SlideChanged, a)
	d.Subscribe(SlideChanged, b)

	d.Dispatch(Event{Type: SlideChanged, Data: 42})

	if len(a.got) != 1 || len(b.got) != 1 {
		t.Fatalf("delivery counts: a=%d b=%d", len(a.got), len(b.got))
	}
	if a.got[0].Data != 42 {
		t.Errorf("payload lost: %v", a.got[0].Data)
	}
}

func TestDispatchIsTypeScoped(t *testing.T) {
	d := NewDispatcher()
	l := &countingListener{}
	d.Subscribe(WallHit, l)

	d.Dispatch(Event{Type: SlideChanged})
	if len(l.got) != 0 {
		t.Error("listener received an event it never subscribed to")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(SlingerIdle, a)
	d.Subscribe(SlingerIdle, b)

	d.Unsubscribe(SlingerIdle, a)
	d.Dispatch(Event{Type: SlingerIdle})

	if len(a.got) != 0 {
		t.Error("unsubscribed listener still receives events")
	}
	if len(b.got) != 1 {
		t.Error("remaining listener lost its subscription")
	}
}

func TestDispatchWithoutListenersIsSafe(t *testing.T) {
	d := NewDispatcher()
	d.Dispatch(Event{Type: GravityToggled}) // must not panic
}
