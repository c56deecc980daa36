package keeper

import (
	sdkerrors "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

// AddValidator adds an address to the proof-verification allow-list
func (k Keeper) AddValidator(ctx sdk.Context, validator sdk.AccAddress) error {
	store := k.getStore(ctx)
	key := ValidatorKey(validator)
	if store.Has(key) {
		return sdkerrors.Wrapf(zkverifytypes.ErrValidatorExists, "%s", validator)
	}
	store.Set(key, []byte{1})

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			zkverifytypes.EventTypeValidatorAdded,
			sdk.NewAttribute(zkverifytypes.AttributeKeyValidator, validator.String()),
		),
	)
	return nil
}

// RemoveValidator removes an address from the allow-list
func (k Keeper) RemoveValidator(ctx sdk.Context, validator sdk.AccAddress) error {
	store := k.getStore(ctx)
	key := ValidatorKey(validator)
	if !store.Has(key) {
		return sdkerrors.Wrapf(zkverifytypes.ErrValidatorNotFound, "%s", validator)
	}
	store.Delete(key)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			zkverifytypes.EventTypeValidatorRemoved,
			sdk.NewAttribute(zkverifytypes.AttributeKeyValidator, validator.String()),
		),
	)
	return nil
}

// IsValidator reports whether an address is on the allow-list
func (k Keeper) IsValidator(ctx sdk.Context, validator sdk.AccAddress) bool {
	store := k.getStore(ctx)
	return store.Has(ValidatorKey(validator))
}

// GetAllValidators returns the allow-list, used for genesis export
func (k Keeper) GetAllValidators(ctx sdk.Context) []string {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ValidatorKeyPrefix)
	defer iterator.Close()

	var validators []string
	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		addr := sdk.AccAddress(key[len(ValidatorKeyPrefix):])
		validators = append(validators, addr.String())
	}
	return validators
}
