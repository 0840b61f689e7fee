// Package config centralises runtime configuration for the marketplace service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Settings contains the marketplace configuration loaded from defaults and
// environment overrides.
type Settings struct {
	Port            string
	AdminAccount    string
	MarketAccount   string
	MintPrice       decimal.Decimal
	AuctionDuration time.Duration
	MinimumBidCount uint32
}

// Default returns the default marketplace configuration
func Default() Settings {
	return Settings{
		Port:            ":8080",
		AdminAccount:    "admin",
		MarketAccount:   "marketplace",
		MintPrice:       decimal.NewFromInt(10),
		AuctionDuration: time.Hour,
		MinimumBidCount: 2,
	}
}

// FromEnv loads configuration values from environment variables, overriding defaults
func FromEnv() Settings {
	cfg := Default()

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.Port = ":" + v
	}
	if v := strings.TrimSpace(os.Getenv("MARKET_ADMIN_ACCOUNT")); v != "" {
		cfg.AdminAccount = v
	}
	if v := strings.TrimSpace(os.Getenv("MARKET_ACCOUNT")); v != "" {
		cfg.MarketAccount = v
	}
	if v := strings.TrimSpace(os.Getenv("MARKET_MINT_PRICE")); v != "" {
		if price, err := decimal.NewFromString(v); err == nil && !price.IsNegative() {
			cfg.MintPrice = price
		}
	}
	if v := strings.TrimSpace(os.Getenv("MARKET_AUCTION_DURATION")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.AuctionDuration = d
		}
	}
	if v := strings.TrimSpace(os.Getenv("MARKET_MINIMUM_BID_COUNT")); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil && n > 0 {
			cfg.MinimumBidCount = uint32(n)
		}
	}

	return cfg
}
