package keeper

import (
	"context"
	"fmt"
	"sync"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// MockBankKeeper is an in-memory coin ledger satisfying the bank interfaces
// the marketplace keepers expect. Module accounts are addressed by their
// derived module address. FailTransfersTo injects a transfer failure for a
// specific recipient, keyed by bech32 address for accounts and by module name
// for module accounts.
type MockBankKeeper struct {
	mu       sync.Mutex
	balances map[string]sdk.Coins

	FailTransfersTo map[string]bool
}

// NewMockBankKeeper creates an empty mock ledger
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{
		balances:        make(map[string]sdk.Coins),
		FailTransfersTo: make(map[string]bool),
	}
}

// FundAccount credits an account with coins out of thin air
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, amt sdk.Coins) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[addr.String()] = m.balances[addr.String()].Add(amt...)
}

// Balance returns an account's current balance
func (m *MockBankKeeper) Balance(addr sdk.AccAddress) sdk.Coins {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[addr.String()]
}

// ModuleBalance returns a module account's current balance
func (m *MockBankKeeper) ModuleBalance(moduleName string) sdk.Coins {
	return m.Balance(authtypes.NewModuleAddress(moduleName))
}

func (m *MockBankKeeper) transfer(from, to, failKey string, amt sdk.Coins) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailTransfersTo[failKey] {
		return fmt.Errorf("injected transfer failure to %s", failKey)
	}

	bal := m.balances[from]
	if !amt.IsAllLTE(bal) {
		return fmt.Errorf("insufficient funds: %s has %s, wants to send %s", from, bal, amt)
	}
	m.balances[from] = bal.Sub(amt...)
	m.balances[to] = m.balances[to].Add(amt...)
	return nil
}

// SendCoinsFromAccountToModule implements the expected bank interface
func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.transfer(senderAddr.String(), authtypes.NewModuleAddress(recipientModule).String(), recipientModule, amt)
}

// SendCoinsFromModuleToAccount implements the expected bank interface
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.transfer(authtypes.NewModuleAddress(senderModule).String(), recipientAddr.String(), recipientAddr.String(), amt)
}

// SendCoinsFromModuleToModule implements the expected bank interface
func (m *MockBankKeeper) SendCoinsFromModuleToModule(_ context.Context, senderModule, recipientModule string, amt sdk.Coins) error {
	return m.transfer(authtypes.NewModuleAddress(senderModule).String(), authtypes.NewModuleAddress(recipientModule).String(), recipientModule, amt)
}

// GetAllBalances implements the expected bank interface
func (m *MockBankKeeper) GetAllBalances(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.Balance(addr)
}
