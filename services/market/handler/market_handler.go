package handler

import (
	"fmt"
	"net/http"
	"time"

	model "asset-marketplace/internal/models"
	"asset-marketplace/services/market/helpers"
	"asset-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MarketServiceInterface interface {
	Mint(caller, uri string) (model.Item, error)
	Burn(caller string, id uint64) error
	ListForSale(caller string, id uint64, price decimal.Decimal) (model.SaleOrder, error)
	BuySale(buyer string, id uint64) (model.SaleOrder, error)
	CancelSale(caller string, id uint64) error
	ListForAuction(caller string, id uint64, minPrice decimal.Decimal) (model.AuctionOrder, error)
	PlaceBid(bidder string, id uint64, amount decimal.Decimal) (model.AuctionOrder, error)
	FinishAuction(id uint64) (model.AuctionOrder, error)
	CancelAuction(caller string, id uint64) (model.AuctionOrder, error)
	ItemStatus(id uint64) (model.ItemStatus, error)
	SaleOrder(id uint64) (model.SaleOrder, error)
	AuctionOrder(id uint64) (model.AuctionOrder, error)
	MintPrice() decimal.Decimal
	AuctionDuration() time.Duration
	MinimumBidCount() uint32
	ItemsSold() uint64
	ActiveItems() uint64
	SetMintPrice(caller string, price decimal.Decimal) error
	SetAuctionDuration(caller string, d time.Duration) error
	SetAuctionMinimumBidCount(caller string, n uint32) error
	Withdraw(caller, receiver string, amount decimal.Decimal) error
}

type MarketHandler struct {
	service MarketServiceInterface
}

func NewMarketHandler(service MarketServiceInterface) *MarketHandler {
	return &MarketHandler{service: service}
}

// MintItemHandler handles POST /items
func (h *MarketHandler) MintItemHandler(c *gin.Context) {
	var req helpers.MintItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "MintItemHandler", err)
		return
	}

	item, err := h.service.Mint(req.Caller, req.URI)
	if err != nil {
		h.replyError(c, "MintItemHandler", err, map[string]any{"caller": req.Caller})
		return
	}

	resp := helpers.ItemResponse{AssetID: item.AssetID, URI: item.URI, Status: string(item.Status)}
	utils.JSONResponse(c, http.StatusCreated, resp, "item minted successfully")
	helpers.LogSuccess("MintItemHandler", "item minted successfully", map[string]any{
		"asset_id": item.AssetID,
		"caller":   req.Caller,
	})
}

// BurnItemHandler handles POST /items/:asset_id/burn
func (h *MarketHandler) BurnItemHandler(c *gin.Context) {
	id, ok := helpers.ParseAssetID(c, "BurnItemHandler")
	if !ok {
		return
	}
	var req helpers.BurnItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "BurnItemHandler", err)
		return
	}

	if err := h.service.Burn(req.Caller, id); err != nil {
		h.replyError(c, "BurnItemHandler", err, map[string]any{"asset_id": id, "caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ItemResponse{AssetID: id, Status: string(model.ItemBurned)}, "item burned successfully")
	helpers.LogSuccess("BurnItemHandler", "item burned successfully", map[string]any{"asset_id": id})
}

// GetItemHandler handles GET /items/:asset_id
func (h *MarketHandler) GetItemHandler(c *gin.Context) {
	id, ok := helpers.ParseAssetID(c, "GetItemHandler")
	if !ok {
		return
	}

	status, err := h.service.ItemStatus(id)
	if err != nil {
		h.replyError(c, "GetItemHandler", err, map[string]any{"asset_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ItemResponse{AssetID: id, Status: string(status)}, "item retrieved successfully")
}

// ListSaleHandler handles POST /sales
func (h *MarketHandler) ListSaleHandler(c *gin.Context) {
	var req helpers.ListSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ListSaleHandler", err)
		return
	}

	order, err := h.service.ListForSale(req.Caller, req.AssetID, req.Price)
	if err != nil {
		h.replyError(c, "ListSaleHandler", err, map[string]any{"asset_id": req.AssetID, "caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewSaleOrderResponse(order), "item listed for sale")
	helpers.LogSuccess("ListSaleHandler", "item listed for sale", map[string]any{
		"asset_id": order.AssetID,
		"price":    order.Price.String(),
		"mediator": order.Mediator,
	})
}

// BuySaleHandler handles POST /sales/:asset_id/buy
func (h *MarketHandler) BuySaleHandler(c *gin.Context) {
	id, ok := helpers.ParseAssetID(c, "BuySaleHandler")
	if !ok {
		return
	}
	var req helpers.BuySaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "BuySaleHandler", err)
		return
	}

	order, err := h.service.BuySale(req.Buyer, id)
	if err != nil {
		h.replyError(c, "BuySaleHandler", err, map[string]any{"asset_id": id, "buyer": req.Buyer})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewSaleOrderResponse(order), "item sold successfully")
	helpers.LogSuccess("BuySaleHandler", "item sold successfully", map[string]any{
		"asset_id": id,
		"buyer":    req.Buyer,
		"price":    order.Price.String(),
	})
}

// CancelSaleHandler handles POST /sales/:asset_id/cancel
func (h *MarketHandler) CancelSaleHandler(c *gin.Context) {
	id, ok := helpers.ParseAssetID(c, "CancelSaleHandler")
	if !ok {
		return
	}
	var req helpers.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CancelSaleHandler", err)
		return
	}

	if err := h.service.CancelSale(req.Caller, id); err != nil {
		h.replyError(c, "CancelSaleHandler", err, map[string]any{"asset_id": id, "caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "sale cancelled successfully")
	helpers.LogSuccess("CancelSaleHandler", "sale cancelled successfully", map[string]any{"asset_id": id})
}

// GetSaleOrderHandler handles GET /sales/:asset_id
func (h *MarketHandler) GetSaleOrderHandler(c *gin.Context) {
	id, ok := helpers.ParseAssetID(c, "GetSaleOrderHandler")
	if !ok {
		return
	}

	order, err := h.service.SaleOrder(id)
	if err != nil {
		h.replyError(c, "GetSaleOrderHandler", err, map[string]any{"asset_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewSaleOrderResponse(order), "sale order retrieved successfully")
}

// ListAuctionHandler handles POST /auctions
func (h *MarketHandler) ListAuctionHandler(c *gin.Context) {
	var req helpers.ListAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ListAuctionHandler", err)
		return
	}

	order, err := h.service.ListForAuction(req.Caller, req.AssetID, req.MinPrice)
	if err != nil {
		h.replyError(c, "ListAuctionHandler", err, map[string]any{"asset_id": req.AssetID, "caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionOrderResponse(order), "auction started")
	helpers.LogSuccess("ListAuctionHandler", "auction started", map[string]any{
		"asset_id":    order.AssetID,
		"start_price": order.StartPrice.String(),
		"mediator":    order.Mediator,
	})
}

// PlaceBidHandler handles POST /auctions/:asset_id/bids
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	id, ok := helpers.ParseAssetID(c, "PlaceBidHandler")
	if !ok {
		return
	}
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	order, err := h.service.PlaceBid(req.Bidder, id, req.Amount)
	if err != nil {
		h.replyError(c, "PlaceBidHandler", err, map[string]any{"asset_id": id, "bidder": req.Bidder})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewAuctionOrderResponse(order), "bid accepted")
	helpers.LogSuccess("PlaceBidHandler", "bid accepted", map[string]any{
		"asset_id":  id,
		"bidder":    req.Bidder,
		"amount":    req.Amount.String(),
		"bid_count": order.BidCount,
	})
}

// FinishAuctionHandler handles POST /auctions/:asset_id/finish
func (h *MarketHandler) FinishAuctionHandler(c *gin.Context) {
	id, ok := helpers.ParseAssetID(c, "FinishAuctionHandler")
	if !ok {
		return
	}

	order, err := h.service.FinishAuction(id)
	if err != nil {
		h.replyError(c, "FinishAuctionHandler", err, map[string]any{"asset_id": id})
		return
	}

	message := "auction ended successfully"
	if order.Status == model.AuctionUnsuccessfullyEnded {
		message = "auction ended without a winner"
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionOrderResponse(order), message)
	helpers.LogSuccess("FinishAuctionHandler", message, map[string]any{
		"asset_id":  id,
		"bid_count": order.BidCount,
		"status":    string(order.Status),
	})
}

// CancelAuctionHandler handles POST /auctions/:asset_id/cancel
func (h *MarketHandler) CancelAuctionHandler(c *gin.Context) {
	id, ok := helpers.ParseAssetID(c, "CancelAuctionHandler")
	if !ok {
		return
	}
	var req helpers.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CancelAuctionHandler", err)
		return
	}

	order, err := h.service.CancelAuction(req.Caller, id)
	if err != nil {
		h.replyError(c, "CancelAuctionHandler", err, map[string]any{"asset_id": id, "caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionOrderResponse(order), "auction cancelled successfully")
	helpers.LogSuccess("CancelAuctionHandler", "auction cancelled successfully", map[string]any{"asset_id": id})
}

// GetAuctionOrderHandler handles GET /auctions/:asset_id
func (h *MarketHandler) GetAuctionOrderHandler(c *gin.Context) {
	id, ok := helpers.ParseAssetID(c, "GetAuctionOrderHandler")
	if !ok {
		return
	}

	order, err := h.service.AuctionOrder(id)
	if err != nil {
		h.replyError(c, "GetAuctionOrderHandler", err, map[string]any{"asset_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionOrderResponse(order), "auction order retrieved successfully")
}

// GetParametersHandler handles GET /parameters
func (h *MarketHandler) GetParametersHandler(c *gin.Context) {
	resp := helpers.ParametersResponse{
		MintPrice:       h.service.MintPrice().String(),
		AuctionDuration: h.service.AuctionDuration().String(),
		MinimumBidCount: h.service.MinimumBidCount(),
		ActiveItems:     h.service.ActiveItems(),
		ItemsSold:       h.service.ItemsSold(),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "parameters retrieved successfully")
}

// SetMintPriceHandler handles PUT /admin/mint-price
func (h *MarketHandler) SetMintPriceHandler(c *gin.Context) {
	var req helpers.SetMintPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetMintPriceHandler", err)
		return
	}

	if err := h.service.SetMintPrice(req.Caller, req.Price); err != nil {
		h.replyError(c, "SetMintPriceHandler", err, map[string]any{"caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "mint price updated")
	helpers.LogSuccess("SetMintPriceHandler", "mint price updated", map[string]any{"price": req.Price.String()})
}

// SetAuctionDurationHandler handles PUT /admin/auction-duration
func (h *MarketHandler) SetAuctionDurationHandler(c *gin.Context) {
	var req helpers.SetAuctionDurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetAuctionDurationHandler", err)
		return
	}

	if err := h.service.SetAuctionDuration(req.Caller, time.Duration(req.DurationSeconds)*time.Second); err != nil {
		h.replyError(c, "SetAuctionDurationHandler", err, map[string]any{"caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auction duration updated")
	helpers.LogSuccess("SetAuctionDurationHandler", "auction duration updated", map[string]any{"duration_seconds": req.DurationSeconds})
}

// SetMinimumBidCountHandler handles PUT /admin/minimum-bid-count
func (h *MarketHandler) SetMinimumBidCountHandler(c *gin.Context) {
	var req helpers.SetMinimumBidCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetMinimumBidCountHandler", err)
		return
	}

	if err := h.service.SetAuctionMinimumBidCount(req.Caller, req.Count); err != nil {
		h.replyError(c, "SetMinimumBidCountHandler", err, map[string]any{"caller": req.Caller})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "minimum bid count updated")
	helpers.LogSuccess("SetMinimumBidCountHandler", "minimum bid count updated", map[string]any{"count": req.Count})
}

// WithdrawHandler handles POST /admin/withdraw
func (h *MarketHandler) WithdrawHandler(c *gin.Context) {
	var req helpers.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "WithdrawHandler", err)
		return
	}

	if err := h.service.Withdraw(req.Caller, req.Receiver, req.Amount); err != nil {
		h.replyError(c, "WithdrawHandler", err, map[string]any{"caller": req.Caller, "receiver": req.Receiver})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "withdrawal completed")
	helpers.LogSuccess("WithdrawHandler", "withdrawal completed", map[string]any{
		"receiver": req.Receiver,
		"amount":   req.Amount.String(),
	})
}

// replyError maps a service error to HTTP and logs it with handler context
func (h *MarketHandler) replyError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	ctx["handler"] = handlerName
	ctx["error"] = err.Error()
	utils.Warn(handlerName+": operation failed", ctx)
}
