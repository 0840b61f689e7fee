package main

import (
	"fmt"
	"os"

	"asset-marketplace/internal/config"
	"asset-marketplace/internal/events"
	"asset-marketplace/internal/ledger"
	market "asset-marketplace/internal/marketService"
	"asset-marketplace/internal/registry"
	"asset-marketplace/internal/repository"
	"asset-marketplace/internal/server"

	"github.com/shopspring/decimal"
)

func main() {

	cfg := config.FromEnv()

	repo := repository.NewMemoryRepo()
	reg := registry.NewMemoryRegistry()
	led := ledger.NewMemoryLedger(cfg.MarketAccount)

	prepopulateAccounts(led)

	marketSvc := market.NewMarketplaceService(repo, reg, led, events.NewLogNotifier(), cfg)

	router := server.SetupRouter(marketSvc)

	fmt.Printf("Starting marketplace server on %s...\n", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateAccounts seeds a few funded accounts so the API is usable out
// of the box
func prepopulateAccounts(led *ledger.MemoryLedger) {
	for _, account := range []string{"alice", "bob", "carol"} {
		led.Credit(account, decimal.NewFromInt(1000))
		led.Authorize(account, decimal.NewFromInt(1000))
	}
}
