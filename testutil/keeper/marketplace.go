// Package keeper provides test fixtures wiring the marketplace keepers
// against an in-memory multistore and a mock bank ledger.
package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	paymentskeeper "github.com/shepherdvovkes/AIVectorMP/x/payments/keeper"
	paymentstypes "github.com/shepherdvovkes/AIVectorMP/x/payments/types"
	registrykeeper "github.com/shepherdvovkes/AIVectorMP/x/registry/keeper"
	registrytypes "github.com/shepherdvovkes/AIVectorMP/x/registry/types"
	zkverifykeeper "github.com/shepherdvovkes/AIVectorMP/x/zkverify/keeper"
	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
	"github.com/shepherdvovkes/AIVectorMP/x/zkverify/verifier"
)

// GenesisTime is the deterministic block time test contexts start at
var GenesisTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// Fixture bundles the three marketplace keepers wired the way the app wires
// them: payments resolves prices through registry, zkverify settles through
// payments under the zkverify module identity.
type Fixture struct {
	Ctx       sdk.Context
	Bank      *MockBankKeeper
	Registry  *registrykeeper.Keeper
	Payments  *paymentskeeper.Keeper
	Zkverify  *zkverifykeeper.Keeper
	Authority string
}

// MarketplaceKeepers creates a fully wired keeper fixture backed by an
// in-memory commit multistore
func MarketplaceKeepers(t testing.TB) *Fixture {
	registryStoreKey := storetypes.NewKVStoreKey(registrytypes.StoreKey)
	paymentsStoreKey := storetypes.NewKVStoreKey(paymentstypes.StoreKey)
	zkverifyStoreKey := storetypes.NewKVStoreKey(zkverifytypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(registryStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(paymentsStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(zkverifyStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()
	bank := NewMockBankKeeper()

	registryKeeper := registrykeeper.NewKeeper(cdc, registryStoreKey, bank, authority)

	proofRegistryAddr := authtypes.NewModuleAddress(zkverifytypes.ModuleName).String()
	paymentsKeeper := paymentskeeper.NewKeeper(
		cdc, paymentsStoreKey, bank, registryKeeper, authority, proofRegistryAddr)

	verifiers := map[string]zkverifytypes.Verifier{
		zkverifytypes.CircuitTypeGroth16BN254: verifier.NewGroth16BN254(),
		zkverifytypes.CircuitTypeStructural:   verifier.NewStructural(zkverifytypes.MaxProofSize),
	}
	zkverifyKeeper := zkverifykeeper.NewKeeper(
		cdc, zkverifyStoreKey, bank, paymentsKeeper, authority, verifiers)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Height: 1, Time: GenesisTime}, false, log.NewNopLogger())

	return &Fixture{
		Ctx:       ctx,
		Bank:      bank,
		Registry:  registryKeeper,
		Payments:  paymentsKeeper,
		Zkverify:  zkverifyKeeper,
		Authority: authority,
	}
}

// WithBlockTime returns a context advanced to the given block time
func (f *Fixture) WithBlockTime(t time.Time) sdk.Context {
	return f.Ctx.WithBlockTime(t)
}

// FundedAddress creates a deterministic test address funded with amt
func (f *Fixture) FundedAddress(seed byte, amt sdk.Coins) sdk.AccAddress {
	addr := sdk.AccAddress([]byte{seed, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13})
	f.Bank.FundAccount(addr, amt)
	return addr
}
