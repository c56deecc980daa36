package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	sharedkeeper "github.com/shepherdvovkes/AIVectorMP/x/shared/keeper"
	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

// Keeper of the zkverify store. Verifiers are registered per circuit type at
// construction; moduleAddr is the identity this keeper presents to the
// payments module when completing or force-refunding a payment.
type Keeper struct {
	storeKey       storetypes.StoreKey
	cdc            codec.BinaryCodec
	bankKeeper     zkverifytypes.BankKeeper
	paymentsKeeper sharedkeeper.PaymentsKeeperV1
	authority      string
	moduleAddr     string
	verifiers      map[string]zkverifytypes.Verifier

	metrics *ZkverifyMetrics
}

type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new zkverify Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper zkverifytypes.BankKeeper,
	paymentsKeeper sharedkeeper.PaymentsKeeperV1,
	authority string,
	verifiers map[string]zkverifytypes.Verifier,
) *Keeper {
	return &Keeper{
		storeKey:       key,
		cdc:            cdc,
		bankKeeper:     bankKeeper,
		paymentsKeeper: paymentsKeeper,
		authority:      authority,
		moduleAddr:     authtypes.NewModuleAddress(zkverifytypes.ModuleName).String(),
		verifiers:      verifiers,
		metrics:        NewZkverifyMetrics(),
	}
}

// GetAuthority returns the zkverify module's authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// ModuleAddress returns the bech32 address of the zkverify module account
func (k Keeper) ModuleAddress() string {
	return k.moduleAddr
}

// HasVerifier reports whether a verifier is registered for a circuit type
func (k Keeper) HasVerifier(circuitType string) bool {
	_, ok := k.verifiers[circuitType]
	return ok
}

// getStore returns the KVStore for the zkverify module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}
