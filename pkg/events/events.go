package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of event
type EventType string

const (
	EventClusterRegistered    EventType = "cluster:registered"
	EventClusterUnregistered  EventType = "cluster:unregistered"
	EventClusterUpdated       EventType = "cluster:updated"
	EventClusterStatusChanged EventType = "cluster:status_changed"

	EventHealthStarted        EventType = "health:started"
	EventHealthStopped        EventType = "health:stopped"
	EventHealthChecked        EventType = "health:checked"
	EventHealthCheckFailed    EventType = "health:check_failed"
	EventHealthCycleCompleted EventType = "health:cycle_completed"

	EventAgentSpawned  EventType = "agent:spawned"
	EventAgentKilled   EventType = "agent:killed"
	EventAgentMigrated EventType = "agent:migrated"

	EventMigrationStarted   EventType = "migration:started"
	EventMigrationCompleted EventType = "migration:completed"
	EventMigrationFailed    EventType = "migration:failed"
	EventCleanupPending     EventType = "cleanup:pending"
	EventCleanupResolved    EventType = "cleanup:resolved"

	EventRoleRegistered   EventType = "role:registered"
	EventRoleUnregistered EventType = "role:unregistered"
	EventRoleUpdated      EventType = "role:updated"

	EventAssignmentAssigned   EventType = "assignment:assigned"
	EventAssignmentUnassigned EventType = "assignment:unassigned"

	EventMessage     EventType = "message"
	EventUrgent      EventType = "urgent"
	EventAlert       EventType = "alert"
	EventRead        EventType = "read"
	EventAllRead     EventType = "all-read"
	EventDeleted     EventType = "deleted"
	EventBroadcast   EventType = "broadcast"
	EventRoleMessage EventType = "role-message"

	EventTaskCreated       EventType = "task:created"
	EventTaskUpdated       EventType = "task:updated"
	EventTaskDeleted       EventType = "task:deleted"
	EventTaskStatusChanged EventType = "task:statusChanged"
	EventListUpdated       EventType = "list:updated"
)

// Event represents a control-plane event
type Event struct {
	ID        string
	Type      EventType
	Timestamp time.Time
	Message   string
	Metadata  map[string]string
}

// Subscriber is a channel that receives events
type Subscriber chan *Event

// Broker manages event subscriptions and distribution
type Broker struct {
	subscribers map[Subscriber]map[EventType]bool // nil set = all types
	mu          sync.RWMutex
	eventCh     chan *Event
	stopCh      chan struct{}
}

// NewBroker creates a new event broker
func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[Subscriber]map[EventType]bool),
		eventCh:     make(chan *Event, 100), // Buffer up to 100 events
		stopCh:      make(chan struct{}),
	}
}

// Start begins the broker's event distribution loop
func (b *Broker) Start() {
	go b.run()
}

// Stop stops the broker
func (b *Broker) Stop() {
	close(b.stopCh)
}

// Subscribe creates a new subscription receiving every event type
func (b *Broker) Subscribe() Subscriber {
	return b.SubscribeTypes()
}

// SubscribeTypes creates a subscription filtered to the given event types.
// With no arguments the subscriber receives everything.
func (b *Broker) SubscribeTypes(eventTypes ...EventType) Subscriber {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := make(Subscriber, 50) // Buffer per subscriber
	var filter map[EventType]bool
	if len(eventTypes) > 0 {
		filter = make(map[EventType]bool, len(eventTypes))
		for _, t := range eventTypes {
			filter[t] = true
		}
	}
	b.subscribers[sub] = filter
	return sub
}

// Unsubscribe removes a subscription
func (b *Broker) Unsubscribe(sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subscribers[sub]; ok {
		delete(b.subscribers, sub)
		close(sub)
	}
}

// Publish publishes an event to all subscribers. Missing id and timestamp
// are filled in; publish never blocks the caller.
func (b *Broker) Publish(event *Event) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case b.eventCh <- event:
	case <-b.stopCh:
	}
}

// Emit is a convenience wrapper building the Event from its parts
func (b *Broker) Emit(eventType EventType, message string, metadata map[string]string) {
	b.Publish(&Event{
		Type:     eventType,
		Message:  message,
		Metadata: metadata,
	})
}

func (b *Broker) run() {
	for {
		select {
		case event := <-b.eventCh:
			b.broadcast(event)
		case <-b.stopCh:
			return
		}
	}
}

func (b *Broker) broadcast(event *Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub, filter := range b.subscribers {
		if filter != nil && !filter[event.Type] {
			continue
		}
		select {
		case sub <- event:
		default:
			// Subscriber buffer full, skip
		}
	}
}

// SubscriberCount returns the number of active subscribers
func (b *Broker) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
