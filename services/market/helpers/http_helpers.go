package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"asset-marketplace/internal/marketerrors"
	model "asset-marketplace/internal/models"
	"asset-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ParseAssetID parses the asset_id path parameter, replying 400 on failure
func ParseAssetID(c *gin.Context, handlerName string) (uint64, bool) {
	raw := c.Param("asset_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid asset id %q: %w", raw, err), "invalid asset id")
		utils.Warn(handlerName+": invalid asset id", map[string]any{"asset_id": raw})
		return 0, false
	}
	return id, true
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, marketerrors.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, marketerrors.ErrInvalidOrder):
		return http.StatusBadRequest, "invalid order details"
	case errors.Is(err, marketerrors.ErrInvalidConfig):
		return http.StatusBadRequest, "invalid configuration value"
	case errors.Is(err, marketerrors.ErrNotOwner):
		return http.StatusForbidden, "caller is not the asset owner"
	case errors.Is(err, marketerrors.ErrUnauthorized):
		return http.StatusForbidden, "caller is not authorized"
	case errors.Is(err, marketerrors.ErrInvalidState):
		return http.StatusConflict, "item is not in the required status"
	case errors.Is(err, marketerrors.ErrNotForSale):
		return http.StatusConflict, "item is not for sale"
	case errors.Is(err, marketerrors.ErrAuctionNotActive):
		return http.StatusConflict, "auction is not active"
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, marketerrors.ErrNotExpired):
		return http.StatusConflict, "auction has not expired"
	case errors.Is(err, marketerrors.ErrBidsExist):
		return http.StatusConflict, "auction already has bids"
	case errors.Is(err, marketerrors.ErrPaymentFailed):
		return http.StatusPaymentRequired, "payment rejected"
	case errors.Is(err, marketerrors.ErrTransferFailed):
		return http.StatusPaymentRequired, "asset transfer rejected"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// NewSaleOrderResponse converts a sale order to its response representation
func NewSaleOrderResponse(order model.SaleOrder) SaleOrderResponse {
	return SaleOrderResponse{
		AssetID:  order.AssetID,
		Mediator: order.Mediator,
		Owner:    order.Owner,
		Price:    order.Price.String(),
		Status:   string(order.Status),
	}
}

// NewAuctionOrderResponse converts an auction order to its response representation
func NewAuctionOrderResponse(order model.AuctionOrder) AuctionOrderResponse {
	return AuctionOrderResponse{
		AssetID:      order.AssetID,
		StartPrice:   order.StartPrice.String(),
		CurrentPrice: order.CurrentPrice.String(),
		StartTime:    order.StartTime.UTC().Format(time.RFC3339),
		BidCount:     order.BidCount,
		Owner:        order.Owner,
		Mediator:     order.Mediator,
		LastBidder:   order.LastBidder,
		Status:       string(order.Status),
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
