package market

import (
	"fmt"
	"time"

	"asset-marketplace/internal/events"
	"asset-marketplace/internal/ledger"
	"asset-marketplace/internal/marketerrors"
	"asset-marketplace/internal/registry"
	"asset-marketplace/utils"

	"github.com/shopspring/decimal"
)

// SetMintPrice updates the price charged when minting a new asset
func (s *MarketplaceService) SetMintPrice(caller string, price decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if price.IsNegative() {
		return fmt.Errorf("service: %w - negative mint price", marketerrors.ErrInvalidConfig)
	}

	old := s.mintPrice
	s.mintPrice = price
	s.emitConfigChange("mint_price", old.String(), price.String())
	return nil
}

// SetAuctionDuration updates how long an auction runs before it can be finished
func (s *MarketplaceService) SetAuctionDuration(caller string, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if d <= 0 {
		return fmt.Errorf("service: %w - non-positive auction duration", marketerrors.ErrInvalidConfig)
	}

	old := s.auctionDuration
	s.auctionDuration = d
	s.emitConfigChange("auction_duration", old.String(), d.String())
	return nil
}

// SetAuctionMinimumBidCount updates the number of bids an auction needs to
// resolve positively
func (s *MarketplaceService) SetAuctionMinimumBidCount(caller string, n uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("service: %w - zero minimum bid count", marketerrors.ErrInvalidConfig)
	}

	old := s.minimumBidCount
	s.minimumBidCount = n
	s.emitConfigChange("minimum_bid_count", fmt.Sprintf("%d", old), fmt.Sprintf("%d", n))
	return nil
}

// SetAssetRegistry swaps the asset registry collaborator. A nil registry
// fails fast rather than deferring the failure to order time.
func (s *MarketplaceService) SetAssetRegistry(caller string, reg registry.AssetRegistry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if reg == nil {
		return fmt.Errorf("service: %w - nil asset registry", marketerrors.ErrInvalidConfig)
	}

	old := s.registry
	s.registry = reg
	s.emitConfigChange("asset_registry", fmt.Sprintf("%T", old), fmt.Sprintf("%T", reg))
	return nil
}

// SetLedger swaps the ledger collaborator. A nil ledger fails fast.
func (s *MarketplaceService) SetLedger(caller string, led ledger.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if led == nil {
		return fmt.Errorf("service: %w - nil ledger", marketerrors.ErrInvalidConfig)
	}

	old := s.ledger
	s.ledger = led
	s.emitConfigChange("ledger", fmt.Sprintf("%T", old), fmt.Sprintf("%T", led))
	return nil
}

// Withdraw pays accumulated mint proceeds to the receiver. Escrowed bids
// are not part of the proceeds balance and can never be withdrawn.
func (s *MarketplaceService) Withdraw(caller, receiver string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(caller); err != nil {
		return err
	}
	if receiver == "" {
		return fmt.Errorf("service: %w - empty receiver", marketerrors.ErrInvalidConfig)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("service: %w - non-positive withdrawal amount", marketerrors.ErrInvalidConfig)
	}
	if amount.GreaterThan(s.proceeds) {
		return fmt.Errorf("service: withdraw %s: %w: only %s of proceeds available", amount, marketerrors.ErrPaymentFailed, s.proceeds)
	}
	if err := s.ledger.Transfer(receiver, amount); err != nil {
		return fmt.Errorf("service: withdraw to %s: %w: %v", receiver, marketerrors.ErrPaymentFailed, err)
	}

	old := s.proceeds
	s.proceeds = s.proceeds.Sub(amount)
	s.emitConfigChange("proceeds", old.String(), s.proceeds.String())
	return nil
}

// requireAdmin fails unless the caller is the configured privileged principal
func (s *MarketplaceService) requireAdmin(caller string) error {
	if caller != s.admin {
		return fmt.Errorf("service: %w - administrative operation requires the configured principal", marketerrors.ErrUnauthorized)
	}
	return nil
}

// emitConfigChange publishes a parameter-change notification
func (s *MarketplaceService) emitConfigChange(parameter, oldValue, newValue string) {
	s.notifier.EmitConfigChange(events.ConfigChange{
		EventID:   utils.GenerateID(),
		Type:      events.ConfigurationChanged,
		Parameter: parameter,
		Old:       oldValue,
		New:       newValue,
		Timestamp: s.now(),
	})
}
