package ledger

import (
	"asset-marketplace/internal/marketerrors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Ledger defines the external collaborator performing fungible value
// transfers. TransferFrom pulls from a payer's authorized balance;
// Transfer pays out of the marketplace's own holdings.
type Ledger interface {
	TransferFrom(payer, payee string, amount decimal.Decimal) error
	Transfer(payee string, amount decimal.Decimal) error
}

// MemoryLedger is a concurrency-safe in-memory implementation of Ledger.
// Each account may authorize the marketplace to pull up to a ceiling;
// TransferFrom decrements the remaining authorization.
type MemoryLedger struct {
	mu         sync.RWMutex
	pool       string                     // marketplace holding account
	balances   map[string]decimal.Decimal // key: account -> value: balance
	authorized map[string]decimal.Decimal // key: payer -> value: remaining pull authorization
}

// NewMemoryLedger creates a new in-memory ledger. The pool account is the
// marketplace holding account that Transfer pays out of.
func NewMemoryLedger(pool string) *MemoryLedger {
	return &MemoryLedger{
		pool:       pool,
		balances:   make(map[string]decimal.Decimal),
		authorized: make(map[string]decimal.Decimal),
	}
}

// Credit adds funds to an account's balance
func (l *MemoryLedger) Credit(account string, amount decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[account] = l.balances[account].Add(amount)
}

// Authorize raises the amount the marketplace may pull from the payer
func (l *MemoryLedger) Authorize(payer string, amount decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.authorized[payer] = l.authorized[payer].Add(amount)
}

// BalanceOf returns an account's current balance
func (l *MemoryLedger) BalanceOf(account string) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[account]
}

// TransferFrom moves funds from the payer to the payee, consuming the
// payer's authorization. Fails if the payer's balance or remaining
// authorization does not cover the amount.
func (l *MemoryLedger) TransferFrom(payer, payee string, amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount.IsNegative() {
		return fmt.Errorf("transfer from %s: %w: negative amount", payer, marketerrors.ErrPaymentFailed)
	}
	if l.balances[payer].LessThan(amount) {
		return fmt.Errorf("transfer from %s: %w: insufficient balance", payer, marketerrors.ErrPaymentFailed)
	}
	if l.authorized[payer].LessThan(amount) {
		return fmt.Errorf("transfer from %s: %w: insufficient authorization", payer, marketerrors.ErrPaymentFailed)
	}

	l.balances[payer] = l.balances[payer].Sub(amount)
	l.authorized[payer] = l.authorized[payer].Sub(amount)
	l.balances[payee] = l.balances[payee].Add(amount)
	return nil
}

// Transfer pays the payee out of the marketplace holding account
func (l *MemoryLedger) Transfer(payee string, amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount.IsNegative() {
		return fmt.Errorf("transfer to %s: %w: negative amount", payee, marketerrors.ErrPaymentFailed)
	}
	if l.balances[l.pool].LessThan(amount) {
		return fmt.Errorf("transfer to %s: %w: insufficient pool balance", payee, marketerrors.ErrPaymentFailed)
	}

	l.balances[l.pool] = l.balances[l.pool].Sub(amount)
	l.balances[payee] = l.balances[payee].Add(amount)
	return nil
}
