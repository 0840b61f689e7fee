package market

import (
	"errors"
	"testing"
	"time"

	"asset-marketplace/internal/events"
	"asset-marketplace/internal/ledger"
	"asset-marketplace/internal/marketerrors"
	"asset-marketplace/internal/registry"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMarketplaceService_AdminSetters(t *testing.T) {
	t.Parallel()

	t.Run("non_admin_is_rejected", func(t *testing.T) {
		t.Parallel()

		f := newServiceFixture(t)

		require.True(t, errors.Is(f.svc.SetMintPrice("mallory", decimal.NewFromInt(5)), marketerrors.ErrUnauthorized))
		require.True(t, errors.Is(f.svc.SetAuctionDuration("mallory", time.Minute), marketerrors.ErrUnauthorized))
		require.True(t, errors.Is(f.svc.SetAuctionMinimumBidCount("mallory", 3), marketerrors.ErrUnauthorized))
		require.True(t, errors.Is(f.svc.Withdraw("mallory", "mallory", decimal.NewFromInt(1)), marketerrors.ErrUnauthorized))
	})

	t.Run("invalid_values_fail_fast", func(t *testing.T) {
		t.Parallel()

		f := newServiceFixture(t)

		require.True(t, errors.Is(f.svc.SetMintPrice("admin", decimal.NewFromInt(-1)), marketerrors.ErrInvalidConfig))
		require.True(t, errors.Is(f.svc.SetAuctionDuration("admin", 0), marketerrors.ErrInvalidConfig))
		require.True(t, errors.Is(f.svc.SetAuctionMinimumBidCount("admin", 0), marketerrors.ErrInvalidConfig))
		require.True(t, errors.Is(f.svc.SetAssetRegistry("admin", nil), marketerrors.ErrInvalidConfig))
		require.True(t, errors.Is(f.svc.SetLedger("admin", nil), marketerrors.ErrInvalidConfig))

		// nothing changed
		require.True(t, f.svc.MintPrice().Equal(decimal.NewFromInt(10)))
		require.Equal(t, time.Hour, f.svc.AuctionDuration())
		require.Equal(t, uint32(2), f.svc.MinimumBidCount())
	})

	t.Run("valid_updates_emit_change_notifications", func(t *testing.T) {
		t.Parallel()

		f := newServiceFixture(t)

		require.NoError(t, f.svc.SetMintPrice("admin", decimal.NewFromInt(25)))
		require.NoError(t, f.svc.SetAuctionDuration("admin", 30*time.Minute))
		require.NoError(t, f.svc.SetAuctionMinimumBidCount("admin", 5))

		require.True(t, f.svc.MintPrice().Equal(decimal.NewFromInt(25)))
		require.Equal(t, 30*time.Minute, f.svc.AuctionDuration())
		require.Equal(t, uint32(5), f.svc.MinimumBidCount())

		changes := f.rec.ConfigChanges()
		require.Len(t, changes, 3)
		for _, change := range changes {
			require.Equal(t, events.ConfigurationChanged, change.Type)
			require.NotEmpty(t, change.EventID)
		}
		require.Equal(t, "mint_price", changes[0].Parameter)
		require.Equal(t, "10", changes[0].Old)
		require.Equal(t, "25", changes[0].New)
		require.Equal(t, "auction_duration", changes[1].Parameter)
		require.Equal(t, "minimum_bid_count", changes[2].Parameter)
		require.Equal(t, *f.now, changes[0].Timestamp)
	})

	t.Run("collaborators_can_be_swapped", func(t *testing.T) {
		t.Parallel()

		f := newServiceFixture(t)

		require.NoError(t, f.svc.SetAssetRegistry("admin", registry.NewMemoryRegistry()))
		require.NoError(t, f.svc.SetLedger("admin", ledger.NewMemoryLedger("marketplace")))
		require.Len(t, f.rec.ConfigChanges(), 2)
	})
}

func TestMarketplaceService_Withdraw(t *testing.T) {
	t.Parallel()

	t.Run("withdraws_accumulated_mint_fees", func(t *testing.T) {
		t.Parallel()

		f := newServiceFixture(t)
		f.mint(t, "alice")
		f.mint(t, "bob") // proceeds: 20

		require.NoError(t, f.svc.Withdraw("admin", "treasury", decimal.NewFromInt(15)))
		require.True(t, f.led.BalanceOf("treasury").Equal(decimal.NewFromInt(15)))

		// only 5 of proceeds remain
		err := f.svc.Withdraw("admin", "treasury", decimal.NewFromInt(10))
		require.Error(t, err)
		require.True(t, errors.Is(err, marketerrors.ErrPaymentFailed))
	})

	t.Run("escrowed_bids_cannot_be_withdrawn", func(t *testing.T) {
		t.Parallel()

		f := newServiceFixture(t)
		id := listAuction(t, f, 100) // proceeds: 10 mint fee
		f.fund("bidderA", 500)

		_, err := f.svc.PlaceBid("bidderA", id, decimal.NewFromInt(100))
		require.NoError(t, err)

		// the pool holds 110 but only the 10 of mint fees are withdrawable
		err = f.svc.Withdraw("admin", "treasury", decimal.NewFromInt(50))
		require.Error(t, err)
		require.True(t, errors.Is(err, marketerrors.ErrPaymentFailed))

		require.NoError(t, f.svc.Withdraw("admin", "treasury", decimal.NewFromInt(10)))
	})

	t.Run("invalid_withdrawals_fail_fast", func(t *testing.T) {
		t.Parallel()

		f := newServiceFixture(t)
		f.mint(t, "alice")

		require.True(t, errors.Is(f.svc.Withdraw("admin", "", decimal.NewFromInt(1)), marketerrors.ErrInvalidConfig))
		require.True(t, errors.Is(f.svc.Withdraw("admin", "treasury", decimal.Zero), marketerrors.ErrInvalidConfig))
	})
}
