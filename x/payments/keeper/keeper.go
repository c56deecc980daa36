package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	paymentstypes "github.com/shepherdvovkes/AIVectorMP/x/payments/types"
	sharedkeeper "github.com/shepherdvovkes/AIVectorMP/x/shared/keeper"
)

// Keeper of the payments store. The proofRegistryAddr identifies the zkverify
// module account; it is the only caller allowed to complete payments and to
// force a completed payment back to refunded on challenge acceptance.
type Keeper struct {
	storeKey          storetypes.StoreKey
	cdc               codec.BinaryCodec
	bankKeeper        paymentstypes.BankKeeper
	registryKeeper    sharedkeeper.RegistryKeeperV1
	authority         string
	proofRegistryAddr string

	metrics *PaymentsMetrics
}

type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new payments Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper paymentstypes.BankKeeper,
	registryKeeper sharedkeeper.RegistryKeeperV1,
	authority string,
	proofRegistryAddr string,
) *Keeper {
	return &Keeper{
		storeKey:          key,
		cdc:               cdc,
		bankKeeper:        bankKeeper,
		registryKeeper:    registryKeeper,
		authority:         authority,
		proofRegistryAddr: proofRegistryAddr,
		metrics:           NewPaymentsMetrics(),
	}
}

// GetAuthority returns the payments module's authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// getStore returns the KVStore for the payments module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}
