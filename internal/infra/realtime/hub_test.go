package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubRoutesBySalon(t *testing.T) {
	hub := NewHub()

	ch1, cancel1 := hub.Subscribe(1)
	defer cancel1()
	ch2, cancel2 := hub.Subscribe(2)
	defer cancel2()

	hub.Publish(AppointmentEvent{Op: OpInsert, SalonID: 1})

	select {
	case event := <-ch1:
		assert.Equal(t, OpInsert, event.Op)
		assert.Equal(t, int64(1), event.SalonID)
	default:
		t.Fatal("subscriber of salon 1 did not receive the event")
	}

	select {
	case <-ch2:
		t.Fatal("subscriber of salon 2 must not receive salon 1 events")
	default:
	}
}

func TestHubFanOut(t *testing.T) {
	hub := NewHub()

	chA, cancelA := hub.Subscribe(7)
	defer cancelA()
	chB, cancelB := hub.Subscribe(7)
	defer cancelB()

	hub.Publish(AppointmentEvent{Op: OpUpdate, SalonID: 7})

	require.Len(t, chA, 1)
	require.Len(t, chB, 1)
}

func TestHubCancelClosesChannel(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe(3)
	require.Equal(t, 1, hub.SubscriberCount(3))

	cancel()
	assert.Equal(t, 0, hub.SubscriberCount(3))

	_, open := <-ch
	assert.False(t, open)

	// Second cancel is a no-op.
	cancel()
}

func TestHubFullSubscriberDropsEvents(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe(5)
	defer cancel()

	for i := 0; i < subscriberBuffer+10; i++ {
		hub.Publish(AppointmentEvent{Op: OpInsert, SalonID: 5})
	}

	assert.Equal(t, subscriberBuffer, len(ch), "overflow events are dropped, not blocking the publisher")
}
