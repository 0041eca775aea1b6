package eventbus

import (
	"testing"

	"github.com/railops/yardwheel/core/events"
)

func TestBusPublishSubscribe(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	bus.Publish(events.WarningEvent{TrainID: "ITHNAS", Reason: events.ReasonNotFound})
	ev := <-ch
	w, ok := ev.(events.WarningEvent)
	if !ok {
		t.Fatalf("expected WarningEvent got %T", ev)
	}
	if w.TrainID != "ITHNAS" || w.Reason != events.ReasonNotFound {
		t.Fatalf("unexpected event %+v", w)
	}
	bus.Unsubscribe(ch)
}

func TestBusFullSubscriberDoesNotBlock(t *testing.T) {
	bus := New()
	bus.Subscribe() // never drained
	for i := 0; i < subscriberBuffer*2; i++ {
		bus.Publish(events.TrainProcessedEvent{TrainID: "X"})
	}
}

func TestBusClose(t *testing.T) {
	bus := New()
	ch1 := bus.Subscribe()
	ch2 := bus.Subscribe()
	bus.Close()
	if _, ok := <-ch1; ok {
		t.Fatalf("expected ch1 closed")
	}
	if _, ok := <-ch2; ok {
		t.Fatalf("expected ch2 closed")
	}
}

func TestBusUnsubscribeAfterClose(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	bus.Close()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic on Unsubscribe after Close: %v", r)
		}
	}()
	bus.Unsubscribe(ch)
}
