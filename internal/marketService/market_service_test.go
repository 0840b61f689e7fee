package market

import (
	"errors"
	"testing"
	"time"

	"asset-marketplace/internal/config"
	"asset-marketplace/internal/events"
	"asset-marketplace/internal/ledger"
	"asset-marketplace/internal/marketerrors"
	model "asset-marketplace/internal/models"
	"asset-marketplace/internal/registry"
	"asset-marketplace/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// serviceFixture wires a service against in-memory collaborators with a
// controllable clock
type serviceFixture struct {
	svc  *MarketplaceService
	repo *repository.MemoryRepo
	reg  *registry.MemoryRegistry
	led  *ledger.MemoryLedger
	rec  *events.Recorder
	now  *time.Time
}

func testConfig() config.Settings {
	return config.Settings{
		Port:            ":0",
		AdminAccount:    "admin",
		MarketAccount:   "marketplace",
		MintPrice:       decimal.NewFromInt(10),
		AuctionDuration: time.Hour,
		MinimumBidCount: 2,
	}
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	f := &serviceFixture{
		repo: repository.NewMemoryRepo(),
		reg:  registry.NewMemoryRegistry(),
		led:  ledger.NewMemoryLedger("marketplace"),
		rec:  events.NewRecorder(),
	}
	f.svc = NewMarketplaceService(f.repo, f.reg, f.led, f.rec, testConfig())

	start := time.Date(2026, time.January, 2, 12, 0, 0, 0, time.UTC)
	f.now = &start
	f.svc.now = func() time.Time { return *f.now }
	return f
}

// advance moves the fixture clock forward
func (f *serviceFixture) advance(d time.Duration) {
	*f.now = f.now.Add(d)
}

// fund credits and authorizes an account on the in-memory ledger
func (f *serviceFixture) fund(account string, amount int64) {
	f.led.Credit(account, decimal.NewFromInt(amount))
	f.led.Authorize(account, decimal.NewFromInt(amount))
}

// mint funds the owner for the mint fee and mints a fresh item
func (f *serviceFixture) mint(t *testing.T, owner string) uint64 {
	t.Helper()
	f.fund(owner, 10)
	item, err := f.svc.Mint(owner, "ipfs://test")
	require.NoError(t, err)
	return item.AssetID
}

// lastEvent returns the most recently recorded event of the given type
func (f *serviceFixture) lastEvent(t *testing.T, typ events.Type) events.Event {
	t.Helper()
	recorded := f.rec.Events()
	for i := len(recorded) - 1; i >= 0; i-- {
		if recorded[i].Type == typ {
			return recorded[i]
		}
	}
	t.Fatalf("no %s event recorded", typ)
	return events.Event{}
}

func TestMarketplaceService_Mint(t *testing.T) {
	t.Parallel()

	t.Run("valid_mint", func(t *testing.T) {
		t.Parallel()

		f := newServiceFixture(t)
		f.fund("alice", 100)

		item, err := f.svc.Mint("alice", "ipfs://one")
		require.NoError(t, err)
		require.Equal(t, uint64(1), item.AssetID)
		require.Equal(t, model.ItemActive, item.Status)

		owner, err := f.reg.OwnerOf(item.AssetID)
		require.NoError(t, err)
		require.Equal(t, "alice", owner)

		// mint fee moved into the marketplace account
		require.True(t, f.led.BalanceOf("alice").Equal(decimal.NewFromInt(90)))
		require.True(t, f.led.BalanceOf("marketplace").Equal(decimal.NewFromInt(10)))
		require.Equal(t, uint64(1), f.svc.ActiveItems())

		event := f.lastEvent(t, events.ItemCreated)
		require.Equal(t, item.AssetID, event.AssetID)
		require.Equal(t, "alice", event.Buyer)
	})

	t.Run("sequence_increments_per_mint", func(t *testing.T) {
		t.Parallel()

		f := newServiceFixture(t)
		first := f.mint(t, "alice")
		second := f.mint(t, "alice")
		require.Equal(t, first+1, second)
	})

	t.Run("unfunded_caller", func(t *testing.T) {
		t.Parallel()

		f := newServiceFixture(t)

		_, err := f.svc.Mint("alice", "ipfs://one")
		require.Error(t, err)
		require.True(t, errors.Is(err, marketerrors.ErrPaymentFailed))
		require.Equal(t, uint64(0), f.svc.ActiveItems())
	})

	t.Run("empty_caller", func(t *testing.T) {
		t.Parallel()

		f := newServiceFixture(t)

		_, err := f.svc.Mint("", "ipfs://one")
		require.Error(t, err)
		require.True(t, errors.Is(err, marketerrors.ErrInvalidOrder))
	})
}

func TestMarketplaceService_Burn(t *testing.T) {
	t.Parallel()

	t.Run("owner_burns_active_item", func(t *testing.T) {
		t.Parallel()

		f := newServiceFixture(t)
		id := f.mint(t, "alice")

		require.NoError(t, f.svc.Burn("alice", id))

		status, err := f.svc.ItemStatus(id)
		require.NoError(t, err)
		require.Equal(t, model.ItemBurned, status)
		require.Equal(t, uint64(0), f.svc.ActiveItems())

		_, err = f.reg.OwnerOf(id)
		require.Error(t, err)
	})

	t.Run("non_owner_cannot_burn", func(t *testing.T) {
		t.Parallel()

		f := newServiceFixture(t)
		id := f.mint(t, "alice")

		err := f.svc.Burn("bob", id)
		require.Error(t, err)
		require.True(t, errors.Is(err, marketerrors.ErrNotOwner))
	})

	t.Run("burn_is_terminal", func(t *testing.T) {
		t.Parallel()

		f := newServiceFixture(t)
		id := f.mint(t, "alice")
		require.NoError(t, f.svc.Burn("alice", id))

		err := f.svc.Burn("alice", id)
		require.Error(t, err)
		require.True(t, errors.Is(err, marketerrors.ErrInvalidState))

		_, err = f.svc.ListForSale("alice", id, decimal.NewFromInt(100))
		require.Error(t, err)
		require.True(t, errors.Is(err, marketerrors.ErrInvalidState))
	})

	t.Run("listed_item_cannot_be_burned", func(t *testing.T) {
		t.Parallel()

		f := newServiceFixture(t)
		id := f.mint(t, "alice")
		_, err := f.svc.ListForSale("alice", id, decimal.NewFromInt(100))
		require.NoError(t, err)

		err = f.svc.Burn("alice", id)
		require.Error(t, err)
		require.True(t, errors.Is(err, marketerrors.ErrInvalidState))
	})
}
