package stream

import (
	"testing"
)

func TestSubscribeReceivesPublishedEvents(t *testing.T) {
	h := NewHub()
	defer h.Stop()

	events := h.Subscribe("dashboard")

	h.Publish(Event{Kind: EventTrade, Symbol: "600519"})

	select {
	case e := <-events:
		if e.Kind != EventTrade || e.Symbol != "600519" {
			t.Errorf("event = %+v, want trade/600519", e)
		}
		if e.At.IsZero() {
			t.Error("publish should stamp the event time")
		}
	default:
		t.Fatal("no event delivered")
	}
}

func TestMultipleSubscribersAllReceive(t *testing.T) {
	h := NewHub()
	defer h.Stop()

	a := h.Subscribe("a")
	b := h.Subscribe("b")

	h.Publish(Event{Kind: EventPrice, Symbol: "600036"})

	for name, ch := range map[string]<-chan Event{"a": a, "b": b} {
		select {
		case e := <-ch:
			if e.Kind != EventPrice {
				t.Errorf("subscriber %s got %+v", name, e)
			}
		default:
			t.Errorf("subscriber %s got nothing", name)
		}
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	h := NewHub()
	defer h.Stop()

	events := h.Subscribe("x")
	h.Unsubscribe("x")

	if _, open := <-events; open {
		t.Error("channel should be closed after unsubscribe")
	}

	// Publishing after unsubscribe must not panic.
	h.Publish(Event{Kind: EventReset})
}

func TestSlowConsumerDropsEvents(t *testing.T) {
	h := NewHubWithConfig(HubConfig{SubscriberBufferSize: 2})
	defer h.Stop()

	events := h.Subscribe("slow")

	for i := 0; i < 5; i++ {
		h.Publish(Event{Kind: EventPrice})
	}

	if h.Dropped() != 3 {
		t.Errorf("dropped = %d, want 3", h.Dropped())
	}
	if len(events) != 2 {
		t.Errorf("buffered = %d, want 2", len(events))
	}
}

func TestStopClosesAllSubscribers(t *testing.T) {
	h := NewHub()

	events := h.Subscribe("y")
	h.Stop()

	if _, open := <-events; open {
		t.Error("channel should be closed after Stop")
	}

	// Publishing after Stop is discarded without panic.
	h.Publish(Event{Kind: EventTrade})
}
