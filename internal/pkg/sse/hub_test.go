package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish_ReachesUserSubscribers(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("user-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("user-1")
	defer cleanup2()
	other, cleanupOther := hub.Subscribe("user-2")
	defer cleanupOther()

	hub.Publish("user-1", Event{Event: "announcement", Data: "hello"})

	for _, ch := range []chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, "announcement", ev.Event)
		default:
			t.Fatal("expected event on subscriber channel")
		}
	}

	select {
	case <-other:
		t.Fatal("user-2 should not receive user-1 events")
	default:
	}
}

func TestBroadcast(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("user-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("user-2")
	defer cleanup2()

	hub.Broadcast(Event{Event: "announcement"})

	ev1 := <-ch1
	assert.Equal(t, "user-1", ev1.UserID)
	ev2 := <-ch2
	assert.Equal(t, "user-2", ev2.UserID)
}

func TestPublishToMany(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("user-1")
	defer cleanup1()
	ch3, cleanup3 := hub.Subscribe("user-3")
	defer cleanup3()

	hub.PublishToMany([]string{"user-1", "user-2"}, Event{Event: "announcement"})

	require.Len(t, ch1, 1)
	assert.Len(t, ch3, 0)
}

func TestCleanup_RemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	assert.Equal(t, 1, hub.SubscriberCount("user-1"))
	assert.Equal(t, 1, hub.TotalSubscribers())

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("user-1"))
	assert.Equal(t, 0, hub.TotalSubscribers())

	// Publishing after cleanup must not panic on the closed channel.
	hub.Publish("user-1", Event{Event: "announcement"})
}

func TestPublish_FullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	for i := 0; i < cap(ch)+5; i++ {
		hub.Publish("user-1", Event{Event: "announcement"})
	}

	assert.Equal(t, cap(ch), len(ch))
}
