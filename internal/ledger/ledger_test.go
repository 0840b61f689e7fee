package ledger

import (
	"errors"
	"testing"

	"asset-marketplace/internal/marketerrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newFundedLedger(t *testing.T) *MemoryLedger {
	t.Helper()
	led := NewMemoryLedger("marketplace")
	led.Credit("alice", decimal.NewFromInt(500))
	led.Authorize("alice", decimal.NewFromInt(300))
	return led
}

func TestMemoryLedger_TransferFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payer   string
		amount  int64
		wantErr bool
	}{
		{name: "within_balance_and_authorization", payer: "alice", amount: 200, wantErr: false},
		{name: "exceeds_authorization", payer: "alice", amount: 400, wantErr: true},
		{name: "unknown_payer", payer: "mallory", amount: 10, wantErr: true},
		{name: "negative_amount", payer: "alice", amount: -5, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			led := newFundedLedger(t)
			err := led.TransferFrom(tc.payer, "marketplace", decimal.NewFromInt(tc.amount))
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, marketerrors.ErrPaymentFailed))
			} else {
				require.NoError(t, err)
				require.True(t, led.BalanceOf("marketplace").Equal(decimal.NewFromInt(tc.amount)))
			}
		})
	}
}

func TestMemoryLedger_TransferFromConsumesAuthorization(t *testing.T) {
	t.Parallel()

	led := newFundedLedger(t)

	require.NoError(t, led.TransferFrom("alice", "marketplace", decimal.NewFromInt(200)))

	// 100 of the 300 authorization remains; pulling 200 more must fail even
	// though the balance covers it
	err := led.TransferFrom("alice", "marketplace", decimal.NewFromInt(200))
	require.Error(t, err)
	require.True(t, errors.Is(err, marketerrors.ErrPaymentFailed))

	require.NoError(t, led.TransferFrom("alice", "marketplace", decimal.NewFromInt(100)))
	require.True(t, led.BalanceOf("alice").Equal(decimal.NewFromInt(200)))
}

func TestMemoryLedger_Transfer(t *testing.T) {
	t.Parallel()

	led := newFundedLedger(t)
	require.NoError(t, led.TransferFrom("alice", "marketplace", decimal.NewFromInt(300)))

	require.NoError(t, led.Transfer("bob", decimal.NewFromInt(120)))
	require.True(t, led.BalanceOf("bob").Equal(decimal.NewFromInt(120)))
	require.True(t, led.BalanceOf("marketplace").Equal(decimal.NewFromInt(180)))

	// pool cannot go negative
	err := led.Transfer("bob", decimal.NewFromInt(500))
	require.Error(t, err)
	require.True(t, errors.Is(err, marketerrors.ErrPaymentFailed))
}
