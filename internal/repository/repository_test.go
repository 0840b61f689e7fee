package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"asset-marketplace/internal/marketerrors"
	model "asset-marketplace/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Helper to create a new sale order
func newSaleOrder(id uint64, mediator, owner string, price int64, status model.SaleOrderStatus) model.SaleOrder {
	return model.SaleOrder{
		AssetID:  id,
		Mediator: mediator,
		Owner:    owner,
		Price:    decimal.NewFromInt(price),
		Status:   status,
	}
}

// Helper to create a new auction order
func newAuctionOrder(id uint64, owner string, startPrice int64, status model.AuctionStatus) model.AuctionOrder {
	return model.AuctionOrder{
		AssetID:    id,
		StartPrice: decimal.NewFromInt(startPrice),
		StartTime:  time.Now().UTC(),
		Owner:      owner,
		Mediator:   owner,
		Status:     status,
	}
}

// Test item status tracking
func TestMemoryRepo_ItemStatus(t *testing.T) {
	t.Parallel()

	t.Run("absent_item_is_an_error_not_a_default", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		_, err := repo.ItemStatus(42)
		require.Error(t, err)
		require.True(t, errors.Is(err, marketerrors.ErrItemNotFound))
	})

	t.Run("set_status_creates_the_slot", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		repo.SetItemStatus(1, model.ItemActive)

		status, err := repo.ItemStatus(1)
		require.NoError(t, err)
		require.Equal(t, model.ItemActive, status)
	})

	t.Run("set_status_preserves_item_attributes", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()
		repo.PutItem(model.Item{AssetID: 1, URI: "ipfs://item-1", Status: model.ItemActive})
		repo.SetItemStatus(1, model.ItemOnSale)

		item, err := repo.Item(1)
		require.NoError(t, err)
		require.Equal(t, "ipfs://item-1", item.URI)
		require.Equal(t, model.ItemOnSale, item.Status)
	})
}

// Test RequireItemStatus
func TestMemoryRepo_RequireItemStatus(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	repo.SetItemStatus(1, model.ItemOnSale)

	tests := []struct {
		name        string
		id          uint64
		expected    model.ItemStatus
		wantErr     error
	}{
		{name: "matching_status", id: 1, expected: model.ItemOnSale, wantErr: nil},
		{name: "mismatched_status", id: 1, expected: model.ItemActive, wantErr: marketerrors.ErrInvalidState},
		{name: "absent_item", id: 99, expected: model.ItemActive, wantErr: marketerrors.ErrItemNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := repo.RequireItemStatus(tc.id, tc.expected)
			if tc.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.wantErr), "expected error: %v, got: %v", tc.wantErr, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// Test sale order arena
func TestMemoryRepo_SaleOrders(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	_, err := repo.SaleOrder(1)
	require.Error(t, err)
	require.True(t, errors.Is(err, marketerrors.ErrOrderNotFound))

	first := newSaleOrder(1, "alice", "alice", 100, model.SaleActive)
	repo.PutSaleOrder(first)

	got, err := repo.SaleOrder(1)
	require.NoError(t, err)
	require.Equal(t, first, got)

	// a new listing overwrites the terminal order in the same slot
	first.Status = model.SaleCancelled
	repo.PutSaleOrder(first)
	relisted := newSaleOrder(1, "bob", "bob", 250, model.SaleActive)
	repo.PutSaleOrder(relisted)

	got, err = repo.SaleOrder(1)
	require.NoError(t, err)
	require.Equal(t, relisted, got)
}

// Test auction order arena
func TestMemoryRepo_AuctionOrders(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	_, err := repo.AuctionOrder(7)
	require.Error(t, err)
	require.True(t, errors.Is(err, marketerrors.ErrOrderNotFound))

	order := newAuctionOrder(7, "alice", 100, model.AuctionActive)
	repo.PutAuctionOrder(order)

	got, err := repo.AuctionOrder(7)
	require.NoError(t, err)
	require.Equal(t, order, got)
}

// Test asset id sequence and counters
func TestMemoryRepo_Counters(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()

	first, err := repo.NextAssetID()
	require.NoError(t, err)
	second, err := repo.NextAssetID()
	require.NoError(t, err)
	require.Equal(t, first+1, second)

	_, err = repo.IncActiveItems()
	require.NoError(t, err)
	require.Equal(t, uint64(1), repo.ActiveItems())

	repo.DecActiveItems()
	require.Equal(t, uint64(0), repo.ActiveItems())

	_, err = repo.IncItemsSold()
	require.NoError(t, err)
	require.Equal(t, uint64(1), repo.ItemsSold())

	// concurrency: sequence values stay unique
	t.Run("concurrent_sequence", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepo()

		var wg sync.WaitGroup
		var mu sync.Mutex
		seen := make(map[uint64]bool)
		concurrentCount := 100

		for i := 0; i < concurrentCount; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id, err := repo.NextAssetID()
				require.NoError(t, err)
				mu.Lock()
				defer mu.Unlock()
				require.False(t, seen[id], fmt.Sprintf("duplicate asset id %d", id))
				seen[id] = true
			}()
		}

		wg.Wait()
		require.Len(t, seen, concurrentCount)
	})
}
