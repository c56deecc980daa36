package keeper

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	registrytypes "github.com/shepherdvovkes/AIVectorMP/x/registry/types"
)

// GetParams returns the current registry module parameters, falling back to
// defaults when none have been stored.
func (k Keeper) GetParams(ctx sdk.Context) registrytypes.Params {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return registrytypes.DefaultParams()
	}

	var params registrytypes.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return registrytypes.DefaultParams()
	}
	return params
}

// SetParams validates and stores the registry module parameters
func (k Keeper) SetParams(ctx sdk.Context, params registrytypes.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(params)
	if err != nil {
		return err
	}

	store := k.getStore(ctx)
	store.Set(ParamsKey, bz)
	return nil
}
