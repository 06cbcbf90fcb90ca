package mailbox

import (
	"testing"
	"time"

	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/roles"
	"github.com/loomctl/loom/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T, cfg Config, dir RoleDirectory) (*Bus, *events.Broker) {
	t.Helper()
	broker := events.NewBroker()
	broker.Start()
	t.Cleanup(broker.Stop)
	return NewBus(cfg, broker, dir), broker
}

func waitEvent(t *testing.T, sub events.Subscriber, eventType events.EventType) *events.Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-sub:
			if ev.Type == eventType {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s event", eventType)
			return nil
		}
	}
}

func msg(from, to string) *types.AgentMessage {
	return &types.AgentMessage{From: from, To: to, Content: "hello"}
}

func TestDirectedSend(t *testing.T) {
	bus, broker := newTestBus(t, DefaultConfig(), nil)
	sub := broker.SubscribeTypes(events.EventMessage)
	defer broker.Unsubscribe(sub)

	bus.Register("a")
	bus.Register("b")

	err := bus.Send(msg("a", "b"))
	require.NoError(t, err)
	waitEvent(t, sub, events.EventMessage)

	mb, _ := bus.Mailbox("b")
	got := mb.Messages()
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].From)
	assert.NotEmpty(t, got[0].ID)
	assert.Equal(t, types.MessageTypeMessage, got[0].Type)
	assert.Equal(t, types.PriorityNormal, got[0].Priority)

	stats := mb.Stats()
	assert.Equal(t, 1, stats.TotalReceived)
	assert.Equal(t, 1, stats.UnreadCount)

	sender, _ := bus.Mailbox("a")
	assert.Equal(t, 1, sender.Stats().TotalSent)
}

func TestSendUnknownRecipient(t *testing.T) {
	bus, _ := newTestBus(t, DefaultConfig(), nil)
	bus.Register("a")
	err := bus.Send(msg("a", "ghost"))
	assert.ErrorIs(t, err, errdefs.ErrRecipientUnknown)
}

func TestTaskMessageRaisesUrgentEvent(t *testing.T) {
	reg := roles.NewRegistry(nil, events.NewBroker())
	_, err := reg.Assign("worker-1", roles.RoleWorker, "test", "")
	require.NoError(t, err)
	_, err = reg.Assign("coord-1", roles.RoleCoordinator, "test", "")
	require.NoError(t, err)

	bus, broker := newTestBus(t, DefaultConfig(), reg)
	sub := broker.SubscribeTypes(events.EventMessage, events.EventUrgent)
	defer broker.Unsubscribe(sub)

	bus.Register("worker-1")
	bus.Register("coord-1")

	m := msg("worker-1", "coord-1")
	m.Type = types.MessageTypeTask
	m.Priority = types.PriorityHigh
	require.NoError(t, bus.Send(m))

	// Message first, then the urgent follow-up
	first := waitEvent(t, sub, events.EventMessage)
	assert.Equal(t, "coord-1", first.Metadata["agent_id"])
	waitEvent(t, sub, events.EventUrgent)

	mb, _ := bus.Mailbox("coord-1")
	stats := mb.Stats()
	assert.Equal(t, 1, stats.UnreadCount)
	assert.Equal(t, 1, stats.UrgentCount)
	assert.Equal(t, 1, stats.ByType[types.MessageTypeTask])
	assert.Equal(t, roles.RoleWorker, mb.Messages()[0].SenderRole)
}

func TestCanMessageEnforcement(t *testing.T) {
	reg := roles.NewRegistry(nil, events.NewBroker())
	_, err := reg.Assign("mon-1", roles.RoleMonitor, "test", "")
	require.NoError(t, err)
	_, err = reg.Assign("worker-1", roles.RoleWorker, "test", "")
	require.NoError(t, err)

	bus, _ := newTestBus(t, DefaultConfig(), reg)
	bus.Register("mon-1")
	bus.Register("worker-1")
	bus.Register("free-agent")

	// Monitors cannot message workers
	err = bus.Send(msg("mon-1", "worker-1"))
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)

	// Rules only bind when both ends hold assignments
	assert.NoError(t, bus.Send(msg("mon-1", "free-agent")))
	assert.NoError(t, bus.Send(msg("free-agent", "worker-1")))

	// Self-sends always pass
	assert.NoError(t, bus.Send(msg("mon-1", "mon-1")))
}

func TestBroadcast(t *testing.T) {
	bus, broker := newTestBus(t, DefaultConfig(), nil)
	sub := broker.SubscribeTypes(events.EventBroadcast)
	defer broker.Unsubscribe(sub)

	bus.Register("a")
	bus.Register("b")
	bus.Register("c")

	m := msg("a", types.BroadcastRecipient)
	require.NoError(t, bus.Send(m))
	waitEvent(t, sub, events.EventBroadcast)

	for _, id := range []string{"b", "c"} {
		mb, _ := bus.Mailbox(id)
		got := mb.Messages()
		require.Len(t, got, 1, id)
		assert.Equal(t, id, got[0].To)
	}
	// Sender does not receive its own broadcast
	mb, _ := bus.Mailbox("a")
	assert.Empty(t, mb.Messages())
	assert.Equal(t, 1, mb.Stats().TotalSent)
}

func TestSendToRole(t *testing.T) {
	reg := roles.NewRegistry(nil, events.NewBroker())
	for _, id := range []string{"w1", "w2", "w3"} {
		_, err := reg.Assign(id, roles.RoleWorker, "test", "")
		require.NoError(t, err)
	}

	bus, broker := newTestBus(t, DefaultConfig(), reg)
	sub := broker.SubscribeTypes(events.EventRoleMessage)
	defer broker.Unsubscribe(sub)

	// w3 holds the role but has no mailbox yet
	bus.Register("w1")
	bus.Register("w2")

	m := msg("w1", types.RolePrefix+roles.RoleWorker)
	require.NoError(t, bus.Send(m))
	waitEvent(t, sub, events.EventRoleMessage)

	mb, _ := bus.Mailbox("w2")
	assert.Len(t, mb.Messages(), 1)
	// Sender excluded from its own role fan-out
	mb, _ = bus.Mailbox("w1")
	assert.Empty(t, mb.Messages())
}

func TestSendToRoleWithoutDirectory(t *testing.T) {
	bus, _ := newTestBus(t, DefaultConfig(), nil)
	bus.Register("a")
	err := bus.Send(msg("a", types.RolePrefix+"worker"))
	assert.ErrorIs(t, err, errdefs.ErrRecipientUnknown)
}

func TestCapacityEvictsOldest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxMessages = 2
	bus, _ := newTestBus(t, cfg, nil)
	bus.Register("a")
	bus.Register("b")

	for _, content := range []string{"one", "two", "three"} {
		m := msg("a", "b")
		m.Content = content
		require.NoError(t, bus.Send(m))
	}

	mb, _ := bus.Mailbox("b")
	got := mb.Messages()
	require.Len(t, got, 2)
	assert.Equal(t, "two", got[0].Content)
	assert.Equal(t, "three", got[1].Content)

	stats := mb.Stats()
	assert.Equal(t, 3, stats.TotalReceived)
	assert.Equal(t, 2, stats.UnreadCount)
}

func TestExpiredMessages(t *testing.T) {
	bus, _ := newTestBus(t, DefaultConfig(), nil)
	bus.Register("a")
	bus.Register("b")

	// Already expired at send time: dropped, not queued
	past := time.Now().Add(-time.Minute)
	m := msg("a", "b")
	m.ExpiresAt = &past
	err := bus.Send(m)
	assert.Error(t, err)

	// Expires after delivery: removed by the sweep
	soon := time.Now().Add(10 * time.Millisecond)
	m2 := msg("a", "b")
	m2.ExpiresAt = &soon
	require.NoError(t, bus.Send(m2))

	mb, _ := bus.Mailbox("b")
	require.Len(t, mb.Messages(), 1)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, bus.CleanupExpired())
	assert.Empty(t, mb.Messages())
	assert.Equal(t, 0, mb.Stats().UnreadCount)
}

func TestMarkReadAndDelete(t *testing.T) {
	bus, broker := newTestBus(t, DefaultConfig(), nil)
	sub := broker.SubscribeTypes(events.EventRead, events.EventAllRead, events.EventDeleted)
	defer broker.Unsubscribe(sub)

	bus.Register("a")
	bus.Register("b")
	require.NoError(t, bus.Send(msg("a", "b")))
	require.NoError(t, bus.Send(msg("a", "b")))

	mb, _ := bus.Mailbox("b")
	got := mb.Messages()
	require.Len(t, got, 2)

	require.NoError(t, mb.MarkRead(got[0].ID))
	waitEvent(t, sub, events.EventRead)
	assert.Equal(t, 1, mb.Stats().UnreadCount)
	assert.Len(t, mb.Unread(), 1)
	read := mb.Messages()[0]
	assert.True(t, read.Read)
	assert.NotNil(t, read.ReadAt)

	assert.Equal(t, 1, mb.MarkAllRead())
	waitEvent(t, sub, events.EventAllRead)
	assert.Zero(t, mb.Stats().UnreadCount)

	require.NoError(t, mb.Delete(got[0].ID))
	waitEvent(t, sub, events.EventDeleted)
	assert.Len(t, mb.Messages(), 1)

	// An unknown message id is a missing message, not a missing mailbox
	assert.ErrorIs(t, mb.Delete("no-such-id"), errdefs.ErrMessageNotFound)
	assert.ErrorIs(t, mb.MarkRead("no-such-id"), errdefs.ErrMessageNotFound)
}

func TestDeliveryTracking(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TrackDelivery = true
	bus, _ := newTestBus(t, cfg, nil)
	bus.Register("a")
	bus.Register("b")

	m := msg("a", "b")
	require.NoError(t, bus.Send(m))

	rec, ok := bus.DeliveryStatus(m.ID, "b")
	require.True(t, ok)
	assert.Equal(t, DeliveryDelivered, rec.State)
	assert.Equal(t, 1, rec.Attempts)

	require.NoError(t, bus.MarkDeliveredAsRead("b", m.ID))
	rec, ok = bus.DeliveryStatus(m.ID, "b")
	require.True(t, ok)
	assert.Equal(t, DeliveryRead, rec.State)
}

func TestDeliveryTrackingDisabled(t *testing.T) {
	bus, _ := newTestBus(t, DefaultConfig(), nil)
	bus.Register("a")
	bus.Register("b")
	m := msg("a", "b")
	require.NoError(t, bus.Send(m))
	_, ok := bus.DeliveryStatus(m.ID, "b")
	assert.False(t, ok)
}

func TestUnregisterDropsMailbox(t *testing.T) {
	bus, _ := newTestBus(t, DefaultConfig(), nil)
	bus.Register("a")
	bus.Register("b")
	require.NoError(t, bus.Send(msg("a", "b")))

	bus.Unregister("b")
	assert.Equal(t, 1, bus.Registered())
	err := bus.Send(msg("a", "b"))
	assert.ErrorIs(t, err, errdefs.ErrRecipientUnknown)
}

func TestPerPairOrdering(t *testing.T) {
	bus, _ := newTestBus(t, DefaultConfig(), nil)
	bus.Register("a")
	bus.Register("b")

	for i := 0; i < 5; i++ {
		m := msg("a", "b")
		m.Content = string(rune('0' + i))
		require.NoError(t, bus.Send(m))
	}
	mb, _ := bus.Mailbox("b")
	got := mb.Messages()
	require.Len(t, got, 5)
	for i, m := range got {
		assert.Equal(t, string(rune('0'+i)), m.Content)
	}
}

func TestSweeperLifecycle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SweepInterval = 10 * time.Millisecond
	bus, _ := newTestBus(t, cfg, nil)
	bus.Register("a")
	bus.Register("b")

	soon := time.Now().Add(5 * time.Millisecond)
	m := msg("a", "b")
	m.ExpiresAt = &soon
	require.NoError(t, bus.Send(m))

	bus.Start()
	bus.Start() // idempotent
	defer bus.Stop()

	mb, _ := bus.Mailbox("b")
	require.Eventually(t, func() bool {
		return len(mb.Messages()) == 0
	}, time.Second, 5*time.Millisecond)

	bus.Stop()
	bus.Stop() // idempotent
}
