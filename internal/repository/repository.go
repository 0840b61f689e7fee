package repository

import (
	"asset-marketplace/internal/marketerrors"
	model "asset-marketplace/internal/models"
	"fmt"
	"sync"
)

// MarketDB defines the order/custody state storage for the marketplace.
// It is the single source of truth for item statuses, the arena of sale and
// auction orders keyed by asset id, and the process-wide counters.
type MarketDB interface {
	PutItem(item model.Item)
	Item(id uint64) (model.Item, error)
	SetItemStatus(id uint64, status model.ItemStatus)
	ItemStatus(id uint64) (model.ItemStatus, error)
	RequireItemStatus(id uint64, expected model.ItemStatus) error

	PutSaleOrder(order model.SaleOrder)
	SaleOrder(id uint64) (model.SaleOrder, error)
	PutAuctionOrder(order model.AuctionOrder)
	AuctionOrder(id uint64) (model.AuctionOrder, error)

	NextAssetID() (uint64, error)
	IncActiveItems() (uint64, error)
	DecActiveItems()
	IncItemsSold() (uint64, error)
	ActiveItems() uint64
	ItemsSold() uint64
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu            sync.RWMutex
	items         map[uint64]model.Item         // key: asset id -> value: item
	saleOrders    map[uint64]model.SaleOrder    // key: asset id -> value: latest sale order
	auctionOrders map[uint64]model.AuctionOrder // key: asset id -> value: latest auction order

	assetSeq    Counter
	activeItems Counter
	itemsSold   Counter
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		items:         make(map[uint64]model.Item),
		saleOrders:    make(map[uint64]model.SaleOrder),
		auctionOrders: make(map[uint64]model.AuctionOrder),
	}
}

// PutItem creates or replaces the tracked item for its asset id
func (r *MemoryRepo) PutItem(item model.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.AssetID] = item
}

// Item returns the tracked item for an asset id
func (r *MemoryRepo) Item(id uint64) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %d: %w", id, marketerrors.ErrItemNotFound)
	}
	return item, nil
}

// SetItemStatus unconditionally writes an item's status, creating the slot
// if the item was not tracked before
func (r *MemoryRepo) SetItemStatus(id uint64, status model.ItemStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item := r.items[id]
	item.AssetID = id
	item.Status = status
	r.items[id] = item
}

// ItemStatus returns the current status of an item. Absence of the item is
// reported as an error, never as a default status.
func (r *MemoryRepo) ItemStatus(id uint64) (model.ItemStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return "", fmt.Errorf("get status of item %d: %w", id, marketerrors.ErrItemNotFound)
	}
	return item.Status, nil
}

// RequireItemStatus fails unless the item exists and has the expected status
func (r *MemoryRepo) RequireItemStatus(id uint64, expected model.ItemStatus) error {
	status, err := r.ItemStatus(id)
	if err != nil {
		return err
	}
	if status != expected {
		return fmt.Errorf("item %d is %s, want %s: %w", id, status, expected, marketerrors.ErrInvalidState)
	}
	return nil
}

// PutSaleOrder records the sale order for its asset id. A new listing
// overwrites the previous terminal order for the same item.
func (r *MemoryRepo) PutSaleOrder(order model.SaleOrder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saleOrders[order.AssetID] = order
}

// SaleOrder returns the latest sale order for an asset id
func (r *MemoryRepo) SaleOrder(id uint64) (model.SaleOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.saleOrders[id]
	if !ok {
		return model.SaleOrder{}, fmt.Errorf("get sale order %d: %w", id, marketerrors.ErrOrderNotFound)
	}
	return order, nil
}

// PutAuctionOrder records the auction order for its asset id
func (r *MemoryRepo) PutAuctionOrder(order model.AuctionOrder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctionOrders[order.AssetID] = order
}

// AuctionOrder returns the latest auction order for an asset id
func (r *MemoryRepo) AuctionOrder(id uint64) (model.AuctionOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.auctionOrders[id]
	if !ok {
		return model.AuctionOrder{}, fmt.Errorf("get auction order %d: %w", id, marketerrors.ErrOrderNotFound)
	}
	return order, nil
}

// NextAssetID returns the next value of the asset id sequence
func (r *MemoryRepo) NextAssetID() (uint64, error) {
	return r.assetSeq.Inc()
}

// IncActiveItems increments the total-active-items count
func (r *MemoryRepo) IncActiveItems() (uint64, error) {
	return r.activeItems.Inc()
}

// DecActiveItems decrements the total-active-items count on burn
func (r *MemoryRepo) DecActiveItems() {
	r.activeItems.Dec()
}

// IncItemsSold increments the total-items-sold count
func (r *MemoryRepo) IncItemsSold() (uint64, error) {
	return r.itemsSold.Inc()
}

// ActiveItems returns the total-active-items count
func (r *MemoryRepo) ActiveItems() uint64 {
	return r.activeItems.Value()
}

// ItemsSold returns the total-items-sold count
func (r *MemoryRepo) ItemsSold() uint64 {
	return r.itemsSold.Value()
}
