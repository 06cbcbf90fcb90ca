package mailbox

import (
	"fmt"
	"sync"
	"time"

	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/metrics"
	"github.com/loomctl/loom/pkg/types"
)

// Stats are one mailbox's running counters
type Stats struct {
	TotalReceived  int
	TotalSent      int
	UnreadCount    int
	UrgentCount    int
	ByType         map[types.MessageType]int
	LastActivityAt time.Time
}

// Mailbox holds one agent's messages. Operations serialize on the
// mailbox mutex, so within one sender/recipient pair delivery order is
// send order.
type Mailbox struct {
	agentID string
	max     int
	broker  *events.Broker

	mu       sync.Mutex
	messages []*types.AgentMessage
	stats    Stats
}

func newMailbox(agentID string, maxMessages int, broker *events.Broker) *Mailbox {
	return &Mailbox{
		agentID: agentID,
		max:     maxMessages,
		broker:  broker,
		stats:   Stats{ByType: make(map[types.MessageType]int)},
	}
}

// AgentID returns the owning agent's id
func (m *Mailbox) AgentID() string { return m.agentID }

// deliver appends one message, enforcing expiry and capacity. Returns
// false when the message was dropped as already expired.
func (m *Mailbox) deliver(msg *types.AgentMessage) bool {
	now := time.Now()
	if msg.Expired(now) {
		return false
	}

	m.mu.Lock()
	m.messages = append(m.messages, msg)
	m.stats.TotalReceived++
	m.stats.UnreadCount++
	m.stats.ByType[msg.Type]++
	m.stats.LastActivityAt = now
	urgent := msg.Priority == types.PriorityHigh || msg.Priority == types.PriorityUrgent
	if urgent {
		m.stats.UrgentCount++
	}

	// Capacity: evict oldest first, read or not
	for m.max > 0 && len(m.messages) > m.max {
		m.evictLocked(0)
	}
	depth := len(m.messages)
	m.mu.Unlock()

	metrics.MailboxDepth.WithLabelValues(m.agentID).Set(float64(depth))

	meta := map[string]string{"agent_id": m.agentID, "message_id": msg.ID, "from": msg.From}
	m.broker.Emit(events.EventMessage, fmt.Sprintf("Message for %s from %s", m.agentID, msg.From), meta)
	if urgent {
		m.broker.Emit(events.EventUrgent, fmt.Sprintf("Urgent message for %s", m.agentID), meta)
	}
	if msg.Type == types.MessageTypeAlert {
		m.broker.Emit(events.EventAlert, fmt.Sprintf("Alert for %s", m.agentID), meta)
	}
	return true
}

// evictLocked removes the message at index i and rolls its counters back
func (m *Mailbox) evictLocked(i int) {
	msg := m.messages[i]
	m.messages = append(m.messages[:i], m.messages[i+1:]...)
	if !msg.Read {
		m.stats.UnreadCount--
	}
	if msg.Priority == types.PriorityHigh || msg.Priority == types.PriorityUrgent {
		m.stats.UrgentCount--
	}
	m.stats.ByType[msg.Type]--
}

// Messages returns copies of every held message, oldest first
func (m *Mailbox) Messages() []*types.AgentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*types.AgentMessage, len(m.messages))
	for i, msg := range m.messages {
		copied := *msg
		out[i] = &copied
	}
	return out
}

// Unread returns copies of the unread messages, oldest first
func (m *Mailbox) Unread() []*types.AgentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*types.AgentMessage
	for _, msg := range m.messages {
		if !msg.Read {
			copied := *msg
			out = append(out, &copied)
		}
	}
	return out
}

// MarkRead marks one message read
func (m *Mailbox) MarkRead(messageID string) error {
	m.mu.Lock()
	for _, msg := range m.messages {
		if msg.ID != messageID {
			continue
		}
		if !msg.Read {
			now := time.Now()
			msg.Read = true
			msg.ReadAt = &now
			m.stats.UnreadCount--
			m.stats.LastActivityAt = now
		}
		m.mu.Unlock()
		m.broker.Emit(events.EventRead, fmt.Sprintf("Message %s read by %s", messageID, m.agentID),
			map[string]string{"agent_id": m.agentID, "message_id": messageID})
		return nil
	}
	m.mu.Unlock()
	return errdefs.Wrap(errdefs.ErrMessageNotFound, messageID, "message not in mailbox")
}

// MarkAllRead marks every message read, returning how many changed
func (m *Mailbox) MarkAllRead() int {
	m.mu.Lock()
	now := time.Now()
	changed := 0
	for _, msg := range m.messages {
		if !msg.Read {
			msg.Read = true
			msg.ReadAt = &now
			changed++
		}
	}
	m.stats.UnreadCount = 0
	if changed > 0 {
		m.stats.LastActivityAt = now
	}
	m.mu.Unlock()

	m.broker.Emit(events.EventAllRead, fmt.Sprintf("Mailbox %s marked all read", m.agentID),
		map[string]string{"agent_id": m.agentID})
	return changed
}

// Delete removes one message
func (m *Mailbox) Delete(messageID string) error {
	m.mu.Lock()
	for i, msg := range m.messages {
		if msg.ID != messageID {
			continue
		}
		m.evictLocked(i)
		depth := len(m.messages)
		m.mu.Unlock()
		metrics.MailboxDepth.WithLabelValues(m.agentID).Set(float64(depth))
		m.broker.Emit(events.EventDeleted, fmt.Sprintf("Message %s deleted from %s", messageID, m.agentID),
			map[string]string{"agent_id": m.agentID, "message_id": messageID})
		return nil
	}
	m.mu.Unlock()
	return errdefs.Wrap(errdefs.ErrMessageNotFound, messageID, "message not in mailbox")
}

// cleanupExpired evicts messages whose expiry has passed, returning how
// many were removed.
func (m *Mailbox) cleanupExpired(now time.Time) int {
	m.mu.Lock()
	removed := 0
	for i := 0; i < len(m.messages); {
		if m.messages[i].Expired(now) {
			m.evictLocked(i)
			removed++
			continue
		}
		i++
	}
	depth := len(m.messages)
	m.mu.Unlock()

	if removed > 0 {
		metrics.MailboxDepth.WithLabelValues(m.agentID).Set(float64(depth))
	}
	return removed
}

// Stats returns a copy of the mailbox counters
func (m *Mailbox) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := m.stats
	copied.ByType = make(map[types.MessageType]int, len(m.stats.ByType))
	for k, v := range m.stats.ByType {
		copied.ByType[k] = v
	}
	return copied
}

func (m *Mailbox) recordSent() {
	m.mu.Lock()
	m.stats.TotalSent++
	m.stats.LastActivityAt = time.Now()
	m.mu.Unlock()
}
