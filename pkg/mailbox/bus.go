package mailbox

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/loomctl/loom/pkg/errdefs"
	"github.com/loomctl/loom/pkg/events"
	"github.com/loomctl/loom/pkg/log"
	"github.com/loomctl/loom/pkg/metrics"
	"github.com/loomctl/loom/pkg/types"
	"github.com/rs/zerolog"
)

// RoleDirectory is what the bus needs from the role registry to route
// role-addressed messages and enforce messaging rules.
type RoleDirectory interface {
	RoleOf(agentID string) (string, bool)
	CanMessage(fromRole, toRole string) bool
	AssignmentsByRole(roleID string) []string
}

// Config tunes the message bus
type Config struct {
	// MaxMessages caps each mailbox; oldest messages are evicted first.
	// Zero means unbounded.
	MaxMessages int
	// SweepInterval is how often expired messages are purged
	SweepInterval time.Duration
	// TrackDelivery enables per-recipient delivery records
	TrackDelivery bool
}

// DefaultConfig returns the bus defaults
func DefaultConfig() Config {
	return Config{
		MaxMessages:   100,
		SweepInterval: time.Minute,
	}
}

// Bus routes messages between registered mailboxes. Directed sends to an
// unregistered recipient fail; broadcast and role sends deliver to
// whoever is registered and report the count.
type Bus struct {
	cfg     Config
	broker  *events.Broker
	roles   RoleDirectory // nil disables permission checks and role routing
	tracker *deliveryTracker
	logger  zerolog.Logger

	mu        sync.RWMutex
	mailboxes map[string]*Mailbox

	stop chan struct{}
	done chan struct{}
}

// NewBus creates a message bus. The role directory may be nil, in which
// case canMessage rules are not enforced and role-addressed sends fail.
func NewBus(cfg Config, broker *events.Broker, roles RoleDirectory) *Bus {
	b := &Bus{
		cfg:       cfg,
		broker:    broker,
		roles:     roles,
		mailboxes: make(map[string]*Mailbox),
		logger:    log.WithComponent("mailbox"),
	}
	if cfg.TrackDelivery {
		b.tracker = newDeliveryTracker()
	}
	return b
}

// Register creates (or returns) the mailbox for an agent
func (b *Bus) Register(agentID string) *Mailbox {
	b.mu.Lock()
	defer b.mu.Unlock()
	if mb, ok := b.mailboxes[agentID]; ok {
		return mb
	}
	mb := newMailbox(agentID, b.cfg.MaxMessages, b.broker)
	b.mailboxes[agentID] = mb
	b.logger.Debug().Str("agent_id", agentID).Msg("Mailbox registered")
	return mb
}

// Unregister drops an agent's mailbox and its pending messages
func (b *Bus) Unregister(agentID string) {
	b.mu.Lock()
	_, ok := b.mailboxes[agentID]
	delete(b.mailboxes, agentID)
	b.mu.Unlock()
	if ok {
		metrics.MailboxDepth.DeleteLabelValues(agentID)
		b.logger.Debug().Str("agent_id", agentID).Msg("Mailbox unregistered")
	}
}

// Mailbox returns an agent's mailbox if registered
func (b *Bus) Mailbox(agentID string) (*Mailbox, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	mb, ok := b.mailboxes[agentID]
	return mb, ok
}

// Registered returns how many mailboxes exist
func (b *Bus) Registered() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.mailboxes)
}

// Send routes one message. The To field picks the mode: the broadcast
// recipient fans out to every other mailbox, a "role:" prefix delivers
// to every holder of that role, anything else is a directed send that
// fails with ErrRecipientUnknown when no such mailbox exists.
func (b *Bus) Send(msg *types.AgentMessage) error {
	b.prepare(msg)

	switch {
	case msg.To == types.BroadcastRecipient:
		b.Broadcast(msg)
		return nil
	case strings.HasPrefix(msg.To, types.RolePrefix):
		_, err := b.SendToRole(msg, strings.TrimPrefix(msg.To, types.RolePrefix))
		return err
	}

	b.mu.RLock()
	recipient, ok := b.mailboxes[msg.To]
	sender := b.mailboxes[msg.From]
	b.mu.RUnlock()
	if !ok {
		return errdefs.Wrap(errdefs.ErrRecipientUnknown, msg.To, "no mailbox registered")
	}

	// Messaging rules apply only when both ends hold role assignments;
	// self-sends are always allowed.
	if b.roles != nil && msg.From != msg.To {
		fromRole, fromOK := b.roles.RoleOf(msg.From)
		toRole, toOK := b.roles.RoleOf(msg.To)
		if fromOK && toOK && !b.roles.CanMessage(fromRole, toRole) {
			if b.tracker != nil {
				b.tracker.record(msg.ID, msg.To, DeliveryFailed)
			}
			return errdefs.Wrapf(errdefs.ErrPermissionDenied, msg.From,
				"role %s may not message role %s", fromRole, toRole)
		}
	}

	if !recipient.deliver(msg) {
		if b.tracker != nil {
			b.tracker.record(msg.ID, msg.To, DeliveryFailed)
		}
		return errdefs.Wrap(errdefs.ErrInvalidSpec, msg.ID, "message already expired")
	}
	if b.tracker != nil {
		b.tracker.record(msg.ID, msg.To, DeliveryDelivered)
	}
	if sender != nil {
		sender.recordSent()
	}
	metrics.MessagesDelivered.WithLabelValues("direct").Inc()
	return nil
}

// Broadcast delivers a copy to every mailbox except the sender's,
// returning how many copies landed.
func (b *Bus) Broadcast(msg *types.AgentMessage) int {
	b.prepare(msg)

	b.mu.RLock()
	targets := make([]*Mailbox, 0, len(b.mailboxes))
	for agentID, mb := range b.mailboxes {
		if agentID == msg.From {
			continue
		}
		targets = append(targets, mb)
	}
	sender := b.mailboxes[msg.From]
	b.mu.RUnlock()

	delivered := 0
	for _, mb := range targets {
		copied := *msg
		copied.To = mb.AgentID()
		if mb.deliver(&copied) {
			delivered++
			if b.tracker != nil {
				b.tracker.record(msg.ID, mb.AgentID(), DeliveryDelivered)
			}
		}
	}
	if sender != nil && delivered > 0 {
		sender.recordSent()
	}
	metrics.MessagesDelivered.WithLabelValues("broadcast").Add(float64(delivered))

	b.broker.Emit(events.EventBroadcast,
		fmt.Sprintf("Broadcast from %s reached %d mailboxes", msg.From, delivered),
		map[string]string{"from": msg.From, "message_id": msg.ID})
	return delivered
}

// SendToRole delivers a copy to every agent currently holding the role,
// skipping the sender, and returns how many copies landed.
func (b *Bus) SendToRole(msg *types.AgentMessage, roleID string) (int, error) {
	if b.roles == nil {
		return 0, errdefs.Wrap(errdefs.ErrRecipientUnknown, roleID, "no role directory configured")
	}
	b.prepare(msg)

	delivered := 0
	for _, agentID := range b.roles.AssignmentsByRole(roleID) {
		if agentID == msg.From {
			continue
		}
		b.mu.RLock()
		mb, ok := b.mailboxes[agentID]
		b.mu.RUnlock()
		if !ok {
			continue
		}
		copied := *msg
		copied.To = agentID
		if mb.deliver(&copied) {
			delivered++
			if b.tracker != nil {
				b.tracker.record(msg.ID, agentID, DeliveryDelivered)
			}
		}
	}

	b.mu.RLock()
	sender := b.mailboxes[msg.From]
	b.mu.RUnlock()
	if sender != nil && delivered > 0 {
		sender.recordSent()
	}
	metrics.MessagesDelivered.WithLabelValues("role").Add(float64(delivered))

	b.broker.Emit(events.EventRoleMessage,
		fmt.Sprintf("Role message from %s reached %d %s agents", msg.From, delivered, roleID),
		map[string]string{"from": msg.From, "role_id": roleID, "message_id": msg.ID})
	return delivered, nil
}

// DeliveryStatus returns the tracked record for one message/recipient
// pair. Tracking must be enabled in the config.
func (b *Bus) DeliveryStatus(messageID, recipient string) (*DeliveryRecord, bool) {
	if b.tracker == nil {
		return nil, false
	}
	return b.tracker.lookup(messageID, recipient)
}

// MarkDeliveredAsRead marks a message read in the recipient's mailbox
// and advances its delivery record.
func (b *Bus) MarkDeliveredAsRead(agentID, messageID string) error {
	mb, ok := b.Mailbox(agentID)
	if !ok {
		return errdefs.Wrap(errdefs.ErrRecipientUnknown, agentID, "no mailbox registered")
	}
	if err := mb.MarkRead(messageID); err != nil {
		return err
	}
	if b.tracker != nil {
		b.tracker.markRead(messageID, agentID)
	}
	return nil
}

// Start launches the periodic expired-message sweeper
func (b *Bus) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stop != nil {
		return
	}
	b.stop = make(chan struct{})
	b.done = make(chan struct{})
	go b.sweep(b.stop, b.done)
}

// Stop halts the sweeper
func (b *Bus) Stop() {
	b.mu.Lock()
	stop, done := b.stop, b.done
	b.stop, b.done = nil, nil
	b.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (b *Bus) sweep(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	interval := b.cfg.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			b.CleanupExpired()
		}
	}
}

// CleanupExpired purges expired messages from every mailbox, returning
// the total removed.
func (b *Bus) CleanupExpired() int {
	b.mu.RLock()
	boxes := make([]*Mailbox, 0, len(b.mailboxes))
	for _, mb := range b.mailboxes {
		boxes = append(boxes, mb)
	}
	b.mu.RUnlock()

	now := time.Now()
	removed := 0
	for _, mb := range boxes {
		removed += mb.cleanupExpired(now)
	}
	if removed > 0 {
		b.logger.Debug().Int("removed", removed).Msg("Purged expired messages")
	}
	return removed
}

// prepare fills message defaults in place
func (b *Bus) prepare(msg *types.AgentMessage) {
	if msg.ID == "" {
		msg.ID = "msg-" + uuid.New().String()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	if msg.Type == "" {
		msg.Type = types.MessageTypeMessage
	}
	if msg.Priority == "" {
		msg.Priority = types.PriorityNormal
	}
	if msg.SenderRole == "" && b.roles != nil {
		if role, ok := b.roles.RoleOf(msg.From); ok {
			msg.SenderRole = role
		}
	}
}
