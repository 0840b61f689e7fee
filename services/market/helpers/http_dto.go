package helpers

import (
	"github.com/shopspring/decimal"
)

// Request DTOs
type MintItemRequest struct {
	Caller string `json:"caller" binding:"required"`
	URI    string `json:"uri"`
}

type BurnItemRequest struct {
	Caller string `json:"caller" binding:"required"`
}

type ListSaleRequest struct {
	Caller  string          `json:"caller" binding:"required"`
	AssetID uint64          `json:"asset_id" binding:"required"`
	Price   decimal.Decimal `json:"price" binding:"required"`
}

type BuySaleRequest struct {
	Buyer string `json:"buyer" binding:"required"`
}

type CancelRequest struct {
	Caller string `json:"caller" binding:"required"`
}

type ListAuctionRequest struct {
	Caller   string          `json:"caller" binding:"required"`
	AssetID  uint64          `json:"asset_id" binding:"required"`
	MinPrice decimal.Decimal `json:"min_price" binding:"required"`
}

type PlaceBidRequest struct {
	Bidder string          `json:"bidder" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type SetMintPriceRequest struct {
	Caller string          `json:"caller" binding:"required"`
	Price  decimal.Decimal `json:"price"`
}

type SetAuctionDurationRequest struct {
	Caller          string `json:"caller" binding:"required"`
	DurationSeconds int64  `json:"duration_seconds" binding:"required"`
}

type SetMinimumBidCountRequest struct {
	Caller string `json:"caller" binding:"required"`
	Count  uint32 `json:"count" binding:"required"`
}

type WithdrawRequest struct {
	Caller   string          `json:"caller" binding:"required"`
	Receiver string          `json:"receiver" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
}

// Response DTOs
type ItemResponse struct {
	AssetID uint64 `json:"asset_id"`
	URI     string `json:"uri,omitempty"`
	Status  string `json:"status"`
}

type SaleOrderResponse struct {
	AssetID  uint64 `json:"asset_id"`
	Mediator string `json:"mediator"`
	Owner    string `json:"owner"`
	Price    string `json:"price"`
	Status   string `json:"status"`
}

type AuctionOrderResponse struct {
	AssetID      uint64 `json:"asset_id"`
	StartPrice   string `json:"start_price"`
	CurrentPrice string `json:"current_price"`
	StartTime    string `json:"start_time"`
	BidCount     uint32 `json:"bid_count"`
	Owner        string `json:"owner"`
	Mediator     string `json:"mediator"`
	LastBidder   string `json:"last_bidder,omitempty"`
	Status       string `json:"status"`
}

type ParametersResponse struct {
	MintPrice       string `json:"mint_price"`
	AuctionDuration string `json:"auction_duration"`
	MinimumBidCount uint32 `json:"minimum_bid_count"`
	ActiveItems     uint64 `json:"active_items"`
	ItemsSold       uint64 `json:"items_sold"`
}
