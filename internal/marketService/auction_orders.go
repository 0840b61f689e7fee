package market

import (
	"errors"
	"fmt"

	"asset-marketplace/internal/events"
	"asset-marketplace/internal/marketerrors"
	"asset-marketplace/internal/models"
	"asset-marketplace/utils"

	"github.com/shopspring/decimal"
)

// ListForAuction opens a timed open-bid auction for an item. The caller
// must be the current registry owner; custody moves to the marketplace
// before the item status flips to on-auction.
func (s *MarketplaceService) ListForAuction(caller string, id uint64, minPrice decimal.Decimal) (models.AuctionOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !minPrice.IsPositive() {
		return models.AuctionOrder{}, fmt.Errorf("service: %w - non-positive start price", marketerrors.ErrInvalidOrder)
	}
	if err := s.db.RequireItemStatus(id, models.ItemActive); err != nil {
		return models.AuctionOrder{}, fmt.Errorf("service: list item %d for auction: %w", id, err)
	}
	owner, err := s.requireOwner(caller, id)
	if err != nil {
		return models.AuctionOrder{}, err
	}
	if err := s.registry.Transfer(caller, s.account, id); err != nil {
		return models.AuctionOrder{}, fmt.Errorf("service: take custody of item %d: %w: %v", id, marketerrors.ErrTransferFailed, err)
	}

	order := models.AuctionOrder{
		AssetID:      id,
		StartPrice:   minPrice,
		CurrentPrice: decimal.Zero,
		StartTime:    s.now(),
		BidCount:     0,
		Owner:        owner,
		Mediator:     caller,
		LastBidder:   "",
		Status:       models.AuctionActive,
	}
	s.db.PutAuctionOrder(order)
	s.db.SetItemStatus(id, models.ItemOnAuction)

	s.emit(events.AssetReceived, id, decimal.Zero, 0, owner, "")
	s.emit(events.AuctionStarted, id, minPrice, 0, owner, "")
	return order, nil
}

// PlaceBid accepts a bid on an active auction. A displaced bidder is always
// refunded before the new bid's funds are escrowed, so the marketplace never
// holds two claims on the same auction; if the new escrow is then rejected,
// the refund is taken back and the whole bid fails.
func (s *MarketplaceService) PlaceBid(bidder string, id uint64, amount decimal.Decimal) (models.AuctionOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bidder == "" || !amount.IsPositive() {
		return models.AuctionOrder{}, fmt.Errorf("service: %w - missing bidder or non-positive amount", marketerrors.ErrInvalidOrder)
	}
	if err := s.db.RequireItemStatus(id, models.ItemOnAuction); err != nil {
		return models.AuctionOrder{}, fmt.Errorf("service: bid on item %d: %w", id, err)
	}
	order, err := s.db.AuctionOrder(id)
	if err != nil || order.Status != models.AuctionActive {
		return models.AuctionOrder{}, fmt.Errorf("service: %w - item %d", marketerrors.ErrAuctionNotActive, id)
	}
	if !amount.GreaterThan(order.CurrentPrice) || amount.LessThan(order.StartPrice) {
		return models.AuctionOrder{}, fmt.Errorf("service: %w - current price is %s, start price is %s",
			marketerrors.ErrBidTooLow, order.CurrentPrice, order.StartPrice)
	}

	// refund-before-accept
	if order.LastBidder != "" {
		if err := s.ledger.Transfer(order.LastBidder, order.CurrentPrice); err != nil {
			return models.AuctionOrder{}, fmt.Errorf("service: refund outbid %s: %w: %v",
				order.LastBidder, marketerrors.ErrPaymentFailed, err)
		}
	}
	if err := s.ledger.TransferFrom(bidder, s.account, amount); err != nil {
		var reclaimErr error
		if order.LastBidder != "" {
			reclaimErr = s.ledger.TransferFrom(order.LastBidder, s.account, order.CurrentPrice)
		}
		return models.AuctionOrder{}, fmt.Errorf("service: escrow bid from %s: %w: %v",
			bidder, marketerrors.ErrPaymentFailed, errors.Join(err, reclaimErr))
	}

	order.CurrentPrice = amount
	order.LastBidder = bidder
	order.BidCount++
	s.db.PutAuctionOrder(order)

	s.emit(events.BidPlaced, id, amount, order.BidCount, order.Owner, bidder)
	return order, nil
}

// FinishAuction settles an expired auction. An auction with fewer than the
// configured minimum number of bids resolves negatively: the asset returns
// to the owner and any escrowed bid is refunded. Otherwise the auction is
// marked ended before the asset and payout move, and a failed leg restores
// the prior state. The finish boundary is inclusive.
func (s *MarketplaceService) FinishAuction(id uint64) (models.AuctionOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.RequireItemStatus(id, models.ItemOnAuction); err != nil {
		return models.AuctionOrder{}, fmt.Errorf("service: finish auction of item %d: %w", id, err)
	}
	order, err := s.db.AuctionOrder(id)
	if err != nil || order.Status != models.AuctionActive {
		return models.AuctionOrder{}, fmt.Errorf("service: %w - item %d", marketerrors.ErrAuctionNotActive, id)
	}
	if s.now().Before(order.StartTime.Add(s.auctionDuration)) {
		return models.AuctionOrder{}, fmt.Errorf("service: %w - auction on item %d is still running", marketerrors.ErrNotExpired, id)
	}

	if order.BidCount < s.minimumBidCount {
		return s.closeAuctionNegative(order)
	}

	// terminal mark first, reverted on any failed leg
	order.Status = models.AuctionSuccessfullyEnded
	s.db.PutAuctionOrder(order)

	revertOrder := func() {
		order.Status = models.AuctionActive
		s.db.PutAuctionOrder(order)
	}

	if err := s.registry.Transfer(s.account, order.LastBidder, id); err != nil {
		revertOrder()
		return models.AuctionOrder{}, fmt.Errorf("service: deliver item %d to %s: %w: %v",
			id, order.LastBidder, marketerrors.ErrTransferFailed, err)
	}
	if err := s.ledger.Transfer(order.Owner, order.CurrentPrice); err != nil {
		returnErr := s.registry.Transfer(order.LastBidder, s.account, id)
		revertOrder()
		return models.AuctionOrder{}, fmt.Errorf("service: pay seller %s: %w: %v",
			order.Owner, marketerrors.ErrPaymentFailed, errors.Join(err, returnErr))
	}

	s.db.SetItemStatus(id, models.ItemActive)
	if _, err := s.db.IncItemsSold(); err != nil {
		utils.Warn("items-sold counter saturated", map[string]any{"asset_id": id, "error": err.Error()})
	}

	s.emit(events.AuctionEndedPositive, id, order.CurrentPrice, order.BidCount, order.Owner, order.LastBidder)
	return order, nil
}

// CancelAuction withdraws an auction that has not received any bid. Only
// the mediator or the owner may cancel; once a bid exists the auction can
// only be resolved by FinishAuction.
func (s *MarketplaceService) CancelAuction(caller string, id uint64) (models.AuctionOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.RequireItemStatus(id, models.ItemOnAuction); err != nil {
		return models.AuctionOrder{}, fmt.Errorf("service: cancel auction of item %d: %w", id, err)
	}
	order, err := s.db.AuctionOrder(id)
	if err != nil || order.Status != models.AuctionActive {
		return models.AuctionOrder{}, fmt.Errorf("service: %w - item %d", marketerrors.ErrAuctionNotActive, id)
	}
	if caller != order.Mediator && caller != order.Owner {
		return models.AuctionOrder{}, fmt.Errorf("service: %w - only mediator or owner may cancel auction of item %d", marketerrors.ErrUnauthorized, id)
	}
	if order.BidCount > 0 {
		return models.AuctionOrder{}, fmt.Errorf("service: %w - auction on item %d has %d bids", marketerrors.ErrBidsExist, id, order.BidCount)
	}

	return s.closeAuctionNegative(order)
}

// closeAuctionNegative resolves an auction without a winner: the asset goes
// back to the owner, any escrowed bid is refunded, and the auction is marked
// unsuccessfully ended. The caller holds the service mutex.
func (s *MarketplaceService) closeAuctionNegative(order models.AuctionOrder) (models.AuctionOrder, error) {
	if err := s.registry.Transfer(s.account, order.Owner, order.AssetID); err != nil {
		return models.AuctionOrder{}, fmt.Errorf("service: return item %d to %s: %w: %v",
			order.AssetID, order.Owner, marketerrors.ErrTransferFailed, err)
	}
	if order.LastBidder != "" {
		if err := s.ledger.Transfer(order.LastBidder, order.CurrentPrice); err != nil {
			returnErr := s.registry.Transfer(order.Owner, s.account, order.AssetID)
			return models.AuctionOrder{}, fmt.Errorf("service: refund bidder %s: %w: %v",
				order.LastBidder, marketerrors.ErrPaymentFailed, errors.Join(err, returnErr))
		}
	}

	order.Status = models.AuctionUnsuccessfullyEnded
	s.db.PutAuctionOrder(order)
	s.db.SetItemStatus(order.AssetID, models.ItemActive)

	s.emit(events.AuctionEndedNegative, order.AssetID, order.CurrentPrice, order.BidCount, order.Owner, "")
	return order, nil
}
