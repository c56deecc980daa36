package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	registrytypes "github.com/shepherdvovkes/AIVectorMP/x/registry/types"
)

// Keeper of the registry store
type Keeper struct {
	storeKey   storetypes.StoreKey
	cdc        codec.BinaryCodec
	bankKeeper registrytypes.BankKeeper
	authority  string
}

type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new registry Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper registrytypes.BankKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:   key,
		cdc:        cdc,
		bankKeeper: bankKeeper,
		authority:  authority,
	}
}

// GetAuthority returns the registry module's authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// getStore returns the KVStore for the registry module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}
