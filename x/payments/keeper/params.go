package keeper

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	paymentstypes "github.com/shepherdvovkes/AIVectorMP/x/payments/types"
)

// GetParams returns the current payments module parameters, falling back to
// defaults when none have been stored.
func (k Keeper) GetParams(ctx sdk.Context) paymentstypes.Params {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return paymentstypes.DefaultParams()
	}

	var params paymentstypes.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return paymentstypes.DefaultParams()
	}
	return params
}

// SetParams validates and stores the payments module parameters
func (k Keeper) SetParams(ctx sdk.Context, params paymentstypes.Params) error {
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
