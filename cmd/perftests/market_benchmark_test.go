package perftests

import (
	"fmt"
	"testing"
	"time"

	"asset-marketplace/internal/config"
	"asset-marketplace/internal/events"
	"asset-marketplace/internal/ledger"
	market "asset-marketplace/internal/marketService"
	"asset-marketplace/internal/registry"
	"asset-marketplace/internal/repository"

	"github.com/shopspring/decimal"
)

// setupMarket creates a marketplace service backed by in-memory collaborators
func setupMarket() (*market.MarketplaceService, *ledger.MemoryLedger) {
	led := ledger.NewMemoryLedger("marketplace")
	svc := market.NewMarketplaceService(
		repository.NewMemoryRepo(),
		registry.NewMemoryRegistry(),
		led,
		events.NewRecorder(),
		config.Settings{
			AdminAccount:    "admin",
			MarketAccount:   "marketplace",
			MintPrice:       decimal.NewFromInt(1),
			AuctionDuration: time.Hour,
			MinimumBidCount: 1,
		},
	)
	return svc, led
}

func fund(led *ledger.MemoryLedger, account string, amount int64) {
	led.Credit(account, decimal.NewFromInt(amount))
	led.Authorize(account, decimal.NewFromInt(amount))
}

// Benchmark 1: full sale round trip (mint -> list -> buy)
func Benchmark_SaleRoundTrip(b *testing.B) {
	svc, led := setupMarket()
	fund(led, "seller", int64(b.N)*2)
	fund(led, "buyer", int64(b.N)*200)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		item, err := svc.Mint("seller", "")
		if err != nil {
			b.Fatalf("failed to mint: %v", err)
		}
		if _, err := svc.ListForSale("seller", item.AssetID, decimal.NewFromInt(100)); err != nil {
			b.Fatalf("failed to list: %v", err)
		}
		if _, err := svc.BuySale("buyer", item.AssetID); err != nil {
			b.Fatalf("failed to buy: %v", err)
		}
		// return the proceeds so the seller can keep paying mint fees
		fund(led, "buyer", 100)
	}
}

// Benchmark 2: bids on one shared auction (high contention on the service mutex)
func Benchmark_PlaceBid_SharedAuction(b *testing.B) {
	svc, led := setupMarket()
	fund(led, "seller", 10)

	item, err := svc.Mint("seller", "")
	if err != nil {
		b.Fatalf("failed to mint: %v", err)
	}
	if _, err := svc.ListForAuction("seller", item.AssetID, decimal.NewFromInt(1)); err != nil {
		b.Fatalf("failed to list: %v", err)
	}

	for i := 0; i < b.N; i++ {
		fund(led, fmt.Sprintf("bidder_%d", i), int64(i)+1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bidder := fmt.Sprintf("bidder_%d", i)
		if _, err := svc.PlaceBid(bidder, item.AssetID, decimal.NewFromInt(int64(i)+1)); err != nil {
			b.Fatalf("failed to bid: %v", err)
		}
	}
}

// Benchmark 3: status reads while auctions are live
func Benchmark_ItemStatus_Concurrent(b *testing.B) {
	svc, led := setupMarket()
	fund(led, "seller", 10)

	item, err := svc.Mint("seller", "")
	if err != nil {
		b.Fatalf("failed to mint: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.ItemStatus(item.AssetID); err != nil {
				b.Fatalf("failed to read status: %v", err)
			}
		}
	})
}
