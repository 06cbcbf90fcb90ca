package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitEvent(t *testing.T, sub Subscriber) *Event {
	t.Helper()
	select {
	case ev := <-sub:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestPublishReachesAllSubscribers(t *testing.T) {
	broker := NewBroker()
	broker.Start()
	defer broker.Stop()

	sub1 := broker.Subscribe()
	sub2 := broker.Subscribe()
	defer broker.Unsubscribe(sub1)
	defer broker.Unsubscribe(sub2)

	broker.Emit(EventAgentSpawned, "spawned", map[string]string{"agent_id": "a1"})

	ev1 := waitEvent(t, sub1)
	ev2 := waitEvent(t, sub2)

	assert.Equal(t, EventAgentSpawned, ev1.Type)
	assert.Equal(t, "a1", ev1.Metadata["agent_id"])
	assert.Equal(t, ev1.ID, ev2.ID)
	assert.NotEmpty(t, ev1.ID)
	assert.False(t, ev1.Timestamp.IsZero())
}

func TestFilteredSubscription(t *testing.T) {
	broker := NewBroker()
	broker.Start()
	defer broker.Stop()

	sub := broker.SubscribeTypes(EventMigrationCompleted)
	defer broker.Unsubscribe(sub)

	broker.Emit(EventAgentSpawned, "ignored", nil)
	broker.Emit(EventMigrationCompleted, "done", map[string]string{"agent_id": "a1"})

	ev := waitEvent(t, sub)
	assert.Equal(t, EventMigrationCompleted, ev.Type)

	select {
	case extra := <-sub:
		t.Fatalf("unexpected extra event: %v", extra.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishOrderPerSubscriber(t *testing.T) {
	broker := NewBroker()
	broker.Start()
	defer broker.Stop()

	sub := broker.Subscribe()
	defer broker.Unsubscribe(sub)

	for i := 0; i < 10; i++ {
		broker.Publish(&Event{Type: EventHealthChecked, Message: string(rune('a' + i))})
	}

	for i := 0; i < 10; i++ {
		ev := waitEvent(t, sub)
		require.Equal(t, string(rune('a'+i)), ev.Message)
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	broker := NewBroker()
	broker.Start()
	defer broker.Stop()

	sub := broker.Subscribe()
	assert.Equal(t, 1, broker.SubscriberCount())

	broker.Unsubscribe(sub)
	assert.Equal(t, 0, broker.SubscriberCount())

	_, open := <-sub
	assert.False(t, open)

	// Double unsubscribe must not panic.
	broker.Unsubscribe(sub)
}

func TestSlowSubscriberSkipsInsteadOfBlocking(t *testing.T) {
	broker := NewBroker()
	broker.Start()
	defer broker.Stop()

	sub := broker.Subscribe() // never drained; buffer is 50
	defer broker.Unsubscribe(sub)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			broker.Emit(EventHealthChecked, "tick", nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}
