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

// ListForSale lists an item at a fixed price. The caller must be the
// current registry owner; the asset moves into marketplace custody before
// the item status flips to on-sale.
func (s *MarketplaceService) ListForSale(caller string, id uint64, price decimal.Decimal) (models.SaleOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !price.IsPositive() {
		return models.SaleOrder{}, fmt.Errorf("service: %w - non-positive price", marketerrors.ErrInvalidOrder)
	}
	if err := s.db.RequireItemStatus(id, models.ItemActive); err != nil {
		return models.SaleOrder{}, fmt.Errorf("service: list item %d for sale: %w", id, err)
	}
	owner, err := s.requireOwner(caller, id)
	if err != nil {
		return models.SaleOrder{}, err
	}
	if err := s.registry.Transfer(caller, s.account, id); err != nil {
		return models.SaleOrder{}, fmt.Errorf("service: take custody of item %d: %w: %v", id, marketerrors.ErrTransferFailed, err)
	}

	order := models.SaleOrder{
		AssetID:  id,
		Mediator: caller,
		Owner:    owner,
		Price:    price,
		Status:   models.SaleActive,
	}
	s.db.PutSaleOrder(order)
	s.db.SetItemStatus(id, models.ItemOnSale)

	s.emit(events.AssetReceived, id, decimal.Zero, 0, owner, "")
	s.emit(events.ListedForSale, id, price, 0, owner, "")
	return order, nil
}

// BuySale executes a fixed-price purchase. The order is marked sold before
// any funds or custody move, so a collaborator call can never re-enter the
// same order; a rejected leg rolls every prior leg back.
func (s *MarketplaceService) BuySale(buyer string, id uint64) (models.SaleOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if buyer == "" {
		return models.SaleOrder{}, fmt.Errorf("service: %w - empty buyer", marketerrors.ErrInvalidOrder)
	}
	if err := s.db.RequireItemStatus(id, models.ItemOnSale); err != nil {
		return models.SaleOrder{}, fmt.Errorf("service: buy item %d: %w", id, err)
	}
	order, err := s.db.SaleOrder(id)
	if err != nil || order.Status != models.SaleActive {
		return models.SaleOrder{}, fmt.Errorf("service: %w - item %d has no active sale order", marketerrors.ErrNotForSale, id)
	}

	// terminal mark first, reverted on any failed leg
	order.Status = models.SaleSold
	s.db.PutSaleOrder(order)

	revertOrder := func() {
		order.Status = models.SaleActive
		s.db.PutSaleOrder(order)
	}

	if err := s.ledger.TransferFrom(buyer, s.account, order.Price); err != nil {
		revertOrder()
		return models.SaleOrder{}, fmt.Errorf("service: escrow payment from %s: %w: %v", buyer, marketerrors.ErrPaymentFailed, err)
	}
	if err := s.registry.Transfer(s.account, buyer, id); err != nil {
		refundErr := s.ledger.Transfer(buyer, order.Price)
		revertOrder()
		return models.SaleOrder{}, fmt.Errorf("service: deliver item %d to %s: %w: %v",
			id, buyer, marketerrors.ErrTransferFailed, errors.Join(err, refundErr))
	}
	if err := s.ledger.Transfer(order.Owner, order.Price); err != nil {
		returnErr := s.registry.Transfer(buyer, s.account, id)
		refundErr := s.ledger.Transfer(buyer, order.Price)
		revertOrder()
		return models.SaleOrder{}, fmt.Errorf("service: pay seller %s: %w: %v",
			order.Owner, marketerrors.ErrPaymentFailed, errors.Join(err, returnErr, refundErr))
	}

	s.db.SetItemStatus(id, models.ItemActive)
	if _, err := s.db.IncItemsSold(); err != nil {
		utils.Warn("items-sold counter saturated", map[string]any{"asset_id": id, "error": err.Error()})
	}

	s.emit(events.Sold, id, order.Price, 0, order.Owner, buyer)
	return order, nil
}

// CancelSale withdraws an active listing. Only the listing mediator or the
// original owner may cancel; the asset returns to the owner.
func (s *MarketplaceService) CancelSale(caller string, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.RequireItemStatus(id, models.ItemOnSale); err != nil {
		return fmt.Errorf("service: cancel sale of item %d: %w", id, err)
	}
	order, err := s.db.SaleOrder(id)
	if err != nil || order.Status != models.SaleActive {
		return fmt.Errorf("service: %w - item %d has no active sale order", marketerrors.ErrNotForSale, id)
	}
	if caller != order.Mediator && caller != order.Owner {
		return fmt.Errorf("service: %w - only mediator or owner may cancel sale of item %d", marketerrors.ErrUnauthorized, id)
	}

	if err := s.registry.Transfer(s.account, order.Owner, id); err != nil {
		return fmt.Errorf("service: return item %d to %s: %w: %v", id, order.Owner, marketerrors.ErrTransferFailed, err)
	}

	order.Status = models.SaleCancelled
	s.db.PutSaleOrder(order)
	s.db.SetItemStatus(id, models.ItemActive)

	s.emit(events.SaleCancelled, id, order.Price, 0, order.Owner, "")
	return nil
}
