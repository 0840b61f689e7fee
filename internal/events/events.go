package events

import (
	"sync"
	"time"

	"asset-marketplace/utils"

	"github.com/shopspring/decimal"
)

// Type identifies a marketplace notification
type Type string

const (
	ItemCreated           Type = "item_created"
	ListedForSale         Type = "listed_for_sale"
	Sold                  Type = "sold"
	SaleCancelled         Type = "sale_cancelled"
	AuctionStarted        Type = "auction_started"
	BidPlaced             Type = "bid_placed"
	AuctionEndedPositive  Type = "auction_ended_positive"
	AuctionEndedNegative  Type = "auction_ended_negative"
	ItemBurned            Type = "item_burned"
	AssetReceived         Type = "asset_received"
	ConfigurationChanged  Type = "configuration_changed"
)

// Event is a notification emitted after a committed state transition
type Event struct {
	EventID   string          `json:"event_id"`
	Type      Type            `json:"type"`
	AssetID   uint64          `json:"asset_id"`
	Amount    decimal.Decimal `json:"amount"`
	BidCount  uint32          `json:"bid_count,omitempty"`
	Seller    string          `json:"seller,omitempty"`
	Buyer     string          `json:"buyer,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// ConfigChange is a notification emitted when an administrative parameter
// is updated, carrying the old and new values
type ConfigChange struct {
	EventID   string    `json:"event_id"`
	Type      Type      `json:"type"`
	Parameter string    `json:"parameter"`
	Old       string    `json:"old"`
	New       string    `json:"new"`
	Timestamp time.Time `json:"timestamp"`
}

// Notifier receives marketplace notifications. Emission is synchronous and
// happens after the originating state transition has been committed.
type Notifier interface {
	Emit(event Event)
	EmitConfigChange(change ConfigChange)
}

// LogNotifier writes every notification to the structured log
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Emit logs a marketplace event with its fields
func (n *LogNotifier) Emit(event Event) {
	utils.Info("marketplace event", map[string]any{
		"event_id":  event.EventID,
		"type":      string(event.Type),
		"asset_id":  event.AssetID,
		"amount":    event.Amount.String(),
		"bid_count": event.BidCount,
		"seller":    event.Seller,
		"buyer":     event.Buyer,
		"timestamp": event.Timestamp.UTC().Format(time.RFC3339),
	})
}

// EmitConfigChange logs an administrative parameter change
func (n *LogNotifier) EmitConfigChange(change ConfigChange) {
	utils.Info("configuration changed", map[string]any{
		"event_id":  change.EventID,
		"type":      string(change.Type),
		"parameter": change.Parameter,
		"old":       change.Old,
		"new":       change.New,
		"timestamp": change.Timestamp.UTC().Format(time.RFC3339),
	})
}

// Recorder collects notifications in memory. It is intended for tests that
// assert on the emitted sequence.
type Recorder struct {
	mu      sync.Mutex
	events  []Event
	changes []ConfigChange
}

// NewRecorder creates an in-memory notification recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit appends the event to the recorded sequence
func (r *Recorder) Emit(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// EmitConfigChange appends the change to the recorded sequence
func (r *Recorder) EmitConfigChange(change ConfigChange) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, change)
}

// Events returns a copy of the recorded events
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// ConfigChanges returns a copy of the recorded parameter changes
func (r *Recorder) ConfigChanges() []ConfigChange {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ConfigChange(nil), r.changes...)
}
