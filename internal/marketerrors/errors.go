package marketerrors

import "errors"

// Repository-level errors
var (
	ErrItemNotFound    = errors.New("item not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrCounterOverflow = errors.New("counter overflow")
)

// State machine errors
var (
	ErrInvalidState     = errors.New("item is not in the required status")
	ErrNotForSale       = errors.New("item is not for sale")
	ErrAuctionNotActive = errors.New("auction is not active")
	ErrNotExpired       = errors.New("auction duration has not elapsed")
	ErrBidsExist        = errors.New("auction already has bids")
)

// Authorization errors
var (
	ErrNotOwner     = errors.New("caller is not the asset owner")
	ErrUnauthorized = errors.New("caller is not authorized")
)

// Business logic errors
var (
	ErrInvalidOrder  = errors.New("invalid order details")
	ErrBidTooLow     = errors.New("bid amount too low")
	ErrInvalidConfig = errors.New("invalid configuration value")
)

// Collaborator errors
var (
	ErrTransferFailed = errors.New("asset transfer rejected by registry")
	ErrPaymentFailed  = errors.New("payment rejected by ledger")
)
