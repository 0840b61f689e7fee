package market

import (
	"fmt"
	"sync"
	"time"

	"asset-marketplace/internal/config"
	"asset-marketplace/internal/events"
	"asset-marketplace/internal/ledger"
	"asset-marketplace/internal/marketerrors"
	"asset-marketplace/internal/models"
	"asset-marketplace/internal/registry"
	"asset-marketplace/internal/repository"
	"asset-marketplace/utils"

	"github.com/shopspring/decimal"
)

// MarketplaceService governs the custody lifecycle of unique assets moving
// between direct-sale and auction workflows. Every state-changing operation
// runs to completion under one mutex, so collaborator calls are synchronous
// and can never re-enter the order book before the status update commits.
type MarketplaceService struct {
	mu       sync.Mutex
	db       repository.MarketDB
	registry registry.AssetRegistry
	ledger   ledger.Ledger
	notifier events.Notifier

	account string // marketplace custody account
	admin   string // privileged principal for the administrative surface

	mintPrice       decimal.Decimal
	auctionDuration time.Duration
	minimumBidCount uint32

	// mint fees accumulated in the custody account; escrowed bids are
	// excluded so Withdraw can never touch a pending bidder's funds
	proceeds decimal.Decimal

	now func() time.Time
}

// NewMarketplaceService creates a new MarketplaceService instance
func NewMarketplaceService(db repository.MarketDB, reg registry.AssetRegistry, led ledger.Ledger, notifier events.Notifier, cfg config.Settings) *MarketplaceService {
	return &MarketplaceService{
		db:              db,
		registry:        reg,
		ledger:          led,
		notifier:        notifier,
		account:         cfg.MarketAccount,
		admin:           cfg.AdminAccount,
		mintPrice:       cfg.MintPrice,
		auctionDuration: cfg.AuctionDuration,
		minimumBidCount: cfg.MinimumBidCount,
		now:             time.Now,
	}
}

// Mint creates a new asset owned by the caller. The caller pays the
// configured mint price into the marketplace account before the registry
// mints; a rejected payment aborts the whole operation.
func (s *MarketplaceService) Mint(caller, uri string) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller == "" {
		return models.Item{}, fmt.Errorf("service: %w - empty caller", marketerrors.ErrInvalidOrder)
	}

	if s.mintPrice.IsPositive() {
		if err := s.ledger.TransferFrom(caller, s.account, s.mintPrice); err != nil {
			return models.Item{}, fmt.Errorf("service: mint fee from %s: %w: %v", caller, marketerrors.ErrPaymentFailed, err)
		}
	}

	id, err := s.db.NextAssetID()
	if err != nil {
		s.refundMintFee(caller)
		return models.Item{}, fmt.Errorf("service: allocate asset id: %w", err)
	}
	if _, err := s.db.IncActiveItems(); err != nil {
		s.refundMintFee(caller)
		return models.Item{}, fmt.Errorf("service: count active items: %w", err)
	}
	if err := s.registry.Mint(caller, id, uri); err != nil {
		s.db.DecActiveItems()
		s.refundMintFee(caller)
		return models.Item{}, fmt.Errorf("service: mint asset %d: %w: %v", id, marketerrors.ErrTransferFailed, err)
	}

	item := models.Item{AssetID: id, URI: uri, Status: models.ItemActive}
	s.db.PutItem(item)
	s.proceeds = s.proceeds.Add(s.mintPrice)

	s.emit(events.ItemCreated, id, s.mintPrice, 0, "", caller)
	return item, nil
}

// Burn removes an asset from circulation. Only the current registry owner
// may burn, and only while the item is not listed.
func (s *MarketplaceService) Burn(caller string, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.RequireItemStatus(id, models.ItemActive); err != nil {
		return fmt.Errorf("service: burn item %d: %w", id, err)
	}
	if _, err := s.requireOwner(caller, id); err != nil {
		return err
	}
	if err := s.registry.Burn(id); err != nil {
		return fmt.Errorf("service: burn asset %d: %w: %v", id, marketerrors.ErrTransferFailed, err)
	}

	s.db.SetItemStatus(id, models.ItemBurned)
	s.db.DecActiveItems()

	s.emit(events.ItemBurned, id, decimal.Zero, 0, caller, "")
	return nil
}

// ItemStatus returns the current lifecycle status of an item
func (s *MarketplaceService) ItemStatus(id uint64) (models.ItemStatus, error) {
	status, err := s.db.ItemStatus(id)
	if err != nil {
		return "", fmt.Errorf("service: %w", err)
	}
	return status, nil
}

// SaleOrder returns the latest sale order recorded for an item
func (s *MarketplaceService) SaleOrder(id uint64) (models.SaleOrder, error) {
	order, err := s.db.SaleOrder(id)
	if err != nil {
		return models.SaleOrder{}, fmt.Errorf("service: %w", err)
	}
	return order, nil
}

// AuctionOrder returns the latest auction order recorded for an item
func (s *MarketplaceService) AuctionOrder(id uint64) (models.AuctionOrder, error) {
	order, err := s.db.AuctionOrder(id)
	if err != nil {
		return models.AuctionOrder{}, fmt.Errorf("service: %w", err)
	}
	return order, nil
}

// MintPrice returns the configured mint price
func (s *MarketplaceService) MintPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mintPrice
}

// AuctionDuration returns the configured auction duration
func (s *MarketplaceService) AuctionDuration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auctionDuration
}

// MinimumBidCount returns the configured minimum number of bids an auction
// needs to resolve positively
func (s *MarketplaceService) MinimumBidCount() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.minimumBidCount
}

// ItemsSold returns the total-items-sold count
func (s *MarketplaceService) ItemsSold() uint64 {
	return s.db.ItemsSold()
}

// ActiveItems returns the total-active-items count
func (s *MarketplaceService) ActiveItems() uint64 {
	return s.db.ActiveItems()
}

// requireOwner resolves the asset's current owner through the registry and
// fails unless the caller is that owner
func (s *MarketplaceService) requireOwner(caller string, id uint64) (string, error) {
	owner, err := s.registry.OwnerOf(id)
	if err != nil {
		return "", fmt.Errorf("service: resolve owner of item %d: %w", id, err)
	}
	if owner != caller {
		return "", fmt.Errorf("service: %w - item %d is owned by %s", marketerrors.ErrNotOwner, id, owner)
	}
	return owner, nil
}

// refundMintFee returns the mint fee after a failed mint. The fee was just
// credited to the custody account, so the payout cannot be short.
func (s *MarketplaceService) refundMintFee(caller string) {
	if !s.mintPrice.IsPositive() {
		return
	}
	if err := s.ledger.Transfer(caller, s.mintPrice); err != nil {
		utils.Error("mint fee refund failed", map[string]any{
			"caller": caller,
			"amount": s.mintPrice.String(),
			"error":  err.Error(),
		})
	}
}

// emit publishes a notification for a committed state transition
func (s *MarketplaceService) emit(t events.Type, assetID uint64, amount decimal.Decimal, bidCount uint32, seller, buyer string) {
	s.notifier.Emit(events.Event{
		EventID:   utils.GenerateID(),
		Type:      t,
		AssetID:   assetID,
		Amount:    amount,
		BidCount:  bidCount,
		Seller:    seller,
		Buyer:     buyer,
		Timestamp: s.now(),
	})
}
