package mailbox

import (
	"sync"
	"time"
)

// DeliveryState is the lifecycle of one tracked delivery
type DeliveryState string

const (
	DeliveryPending   DeliveryState = "pending"
	DeliveryDelivered DeliveryState = "delivered"
	DeliveryRead      DeliveryState = "read"
	DeliveryFailed    DeliveryState = "failed"
)

// DeliveryRecord tracks one message to one recipient
type DeliveryRecord struct {
	MessageID string
	Recipient string
	State     DeliveryState
	Attempts  int
	UpdatedAt time.Time
}

type deliveryTracker struct {
	mu      sync.Mutex
	records map[string]*DeliveryRecord
}

func newDeliveryTracker() *deliveryTracker {
	return &deliveryTracker{records: make(map[string]*DeliveryRecord)}
}

func trackingKey(messageID, recipient string) string {
	return messageID + "/" + recipient
}

func (t *deliveryTracker) record(messageID, recipient string, state DeliveryState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	key := trackingKey(messageID, recipient)
	rec, ok := t.records[key]
	if !ok {
		rec = &DeliveryRecord{MessageID: messageID, Recipient: recipient}
		t.records[key] = rec
	}
	rec.State = state
	rec.Attempts++
	rec.UpdatedAt = time.Now()
}

// markRead advances a delivered record to read. Pending or failed
// records stay put.
func (t *deliveryTracker) markRead(messageID, recipient string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.records[trackingKey(messageID, recipient)]
	if !ok || rec.State != DeliveryDelivered {
		return false
	}
	rec.State = DeliveryRead
	rec.UpdatedAt = time.Now()
	return true
}

func (t *deliveryTracker) lookup(messageID, recipient string) (*DeliveryRecord, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.records[trackingKey(messageID, recipient)]
	if !ok {
		return nil, false
	}
	copied := *rec
	return &copied, true
}

func (t *deliveryTracker) forget(messageID, recipient string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.records, trackingKey(messageID, recipient))
}
