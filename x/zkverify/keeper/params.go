package keeper

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

// GetParams returns the current zkverify module parameters, falling back to
// defaults when none have been stored.
func (k Keeper) GetParams(ctx sdk.Context) zkverifytypes.Params {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return zkverifytypes.DefaultParams()
	}

	var params zkverifytypes.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return zkverifytypes.DefaultParams()
	}
	return params
}

// SetParams validates and stores the zkverify module parameters
func (k Keeper) SetParams(ctx sdk.Context, params zkverifytypes.Params) error {
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
