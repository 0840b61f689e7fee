package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus is the lifecycle status of a tracked asset
type ItemStatus string

const (
	ItemActive    ItemStatus = "active"
	ItemOnSale    ItemStatus = "on_sale"
	ItemOnAuction ItemStatus = "on_auction"
	ItemBurned    ItemStatus = "burned"
)

// Item represents a unique asset tracked by the marketplace
type Item struct {
	AssetID uint64     `json:"asset_id"`
	URI     string     `json:"uri"`
	Status  ItemStatus `json:"status"`
}

// SaleOrderStatus is the lifecycle status of a fixed-price listing
type SaleOrderStatus string

const (
	SaleNone      SaleOrderStatus = "none"
	SaleActive    SaleOrderStatus = "active"
	SaleSold      SaleOrderStatus = "sold"
	SaleCancelled SaleOrderStatus = "cancelled"
)

// SaleOrder records the terms of a fixed-price listing for one item
type SaleOrder struct {
	AssetID  uint64          `json:"asset_id"`
	Mediator string          `json:"mediator"`
	Owner    string          `json:"owner"`
	Price    decimal.Decimal `json:"price"`
	Status   SaleOrderStatus `json:"status"`
}

// AuctionStatus is the lifecycle status of a timed open-bid auction
type AuctionStatus string

const (
	AuctionNone                AuctionStatus = "none"
	AuctionActive              AuctionStatus = "active"
	AuctionSuccessfullyEnded   AuctionStatus = "successfully_ended"
	AuctionUnsuccessfullyEnded AuctionStatus = "unsuccessfully_ended"
)

// AuctionOrder records the running state of a timed auction for one item.
// CurrentPrice is zero until the first bid is accepted; LastBidder is the
// account whose funds are currently escrowed by the marketplace.
type AuctionOrder struct {
	AssetID      uint64          `json:"asset_id"`
	StartPrice   decimal.Decimal `json:"start_price"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	StartTime    time.Time       `json:"start_time"`
	BidCount     uint32          `json:"bid_count"`
	Owner        string          `json:"owner"`
	Mediator     string          `json:"mediator"`
	LastBidder   string          `json:"last_bidder,omitempty"`
	Status       AuctionStatus   `json:"status"`
}
