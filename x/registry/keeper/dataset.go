package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	registrytypes "github.com/shepherdvovkes/AIVectorMP/x/registry/types"
)

// GetNextDatasetID returns the next dataset ID and increments the counter
func (k Keeper) GetNextDatasetID(ctx sdk.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(NextDatasetIDKey)

	var id uint64 = 1
	if bz != nil {
		id = GetDatasetIDFromBytes(bz)
	}

	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, id+1)
	store.Set(NextDatasetIDKey, idBz)

	return id
}

// SetNextDatasetID sets the dataset ID counter, used during genesis import
func (k Keeper) SetNextDatasetID(ctx sdk.Context, id uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	store.Set(NextDatasetIDKey, bz)
}

// SetDataset persists a dataset and maintains the owner index
func (k Keeper) SetDataset(ctx sdk.Context, dataset registrytypes.Dataset) error {
	store := k.getStore(ctx)

	bz, err := json.Marshal(dataset)
	if err != nil {
		return fmt.Errorf("failed to marshal dataset %d: %w", dataset.Id, err)
	}
	store.Set(DatasetKey(dataset.Id), bz)

	owner, err := sdk.AccAddressFromBech32(dataset.Owner)
	if err != nil {
		return sdkerrors.Wrapf(registrytypes.ErrInvalidAddress, "dataset owner: %s", err)
	}
	store.Set(DatasetByOwnerKey(owner, dataset.Id), []byte{1})

	return nil
}

// GetDataset retrieves a dataset by ID
func (k Keeper) GetDataset(ctx sdk.Context, datasetID uint64) (registrytypes.Dataset, bool) {
	store := k.getStore(ctx)
	bz := store.Get(DatasetKey(datasetID))
	if bz == nil {
		return registrytypes.Dataset{}, false
	}

	var dataset registrytypes.Dataset
	if err := json.Unmarshal(bz, &dataset); err != nil {
		return registrytypes.Dataset{}, false
	}
	return dataset, true
}

// GetAllDatasets returns every dataset in the store, used for genesis export
// and invariant checks.
func (k Keeper) GetAllDatasets(ctx sdk.Context) []registrytypes.Dataset {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, DatasetKeyPrefix)
	defer iterator.Close()

	var datasets []registrytypes.Dataset
	for ; iterator.Valid(); iterator.Next() {
		var dataset registrytypes.Dataset
		if err := json.Unmarshal(iterator.Value(), &dataset); err != nil {
			continue
		}
		datasets = append(datasets, dataset)
	}
	return datasets
}

// GetDatasetsByOwner returns the IDs of all datasets registered by an owner
func (k Keeper) GetDatasetsByOwner(ctx sdk.Context, owner sdk.AccAddress) []uint64 {
	store := k.getStore(ctx)
	prefix := append(DatasetsByOwnerPrefix, owner.Bytes()...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var ids []uint64
	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		ids = append(ids, GetDatasetIDFromBytes(key[len(key)-8:]))
	}
	return ids
}

// RegisterDataset registers a new dataset, charging the registration fee to
// the creator. The fee is forwarded to the fee collector.
func (k Keeper) RegisterDataset(
	ctx sdk.Context,
	creator sdk.AccAddress,
	name, description string,
	embeddingRoot, metadataHash []byte,
	pricePerQuery, paidFee math.Int,
) (uint64, error) {
	params := k.GetParams(ctx)

	if paidFee.LT(params.RegistrationFee) {
		return 0, sdkerrors.Wrapf(registrytypes.ErrInsufficientFee,
			"paid %s, registration fee is %s", paidFee, params.RegistrationFee)
	}

	if params.RegistrationFee.IsPositive() {
		fee := sdk.NewCoins(sdk.NewCoin(params.Denom, params.RegistrationFee))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, creator, authtypes.FeeCollectorName, fee); err != nil {
			return 0, sdkerrors.Wrapf(registrytypes.ErrTransferFailed, "registration fee: %s", err)
		}
	}

	datasetID := k.GetNextDatasetID(ctx)
	dataset := registrytypes.Dataset{
		Id:            datasetID,
		Owner:         creator.String(),
		Name:          name,
		Description:   description,
		EmbeddingRoot: embeddingRoot,
		MetadataHash:  metadataHash,
		PricePerQuery: pricePerQuery,
		Active:        true,
		CreatedAt:     ctx.BlockTime(),
		TotalQueries:  0,
		Validators:    []string{},
	}

	if err := k.SetDataset(ctx, dataset); err != nil {
		return 0, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			registrytypes.EventTypeDatasetRegistered,
			sdk.NewAttribute(registrytypes.AttributeKeyDatasetID, fmt.Sprintf("%d", datasetID)),
			sdk.NewAttribute(registrytypes.AttributeKeyOwner, creator.String()),
			sdk.NewAttribute(registrytypes.AttributeKeyPricePerQuery, pricePerQuery.String()),
		),
	)

	return datasetID, nil
}

// UpdateDataset updates the query price and/or active flag of a dataset.
// Only the dataset owner may update it.
func (k Keeper) UpdateDataset(
	ctx sdk.Context,
	caller sdk.AccAddress,
	datasetID uint64,
	pricePerQuery *math.Int,
	active *bool,
) error {
	dataset, found := k.GetDataset(ctx, datasetID)
	if !found {
		return sdkerrors.Wrapf(registrytypes.ErrDatasetNotFound, "dataset %d", datasetID)
	}
	if dataset.Owner != caller.String() {
		return sdkerrors.Wrapf(registrytypes.ErrNotOwner, "caller %s does not own dataset %d", caller, datasetID)
	}

	if pricePerQuery != nil {
		if !pricePerQuery.IsPositive() {
			return sdkerrors.Wrap(registrytypes.ErrInvalidParameters, "price per query must be positive")
		}
		dataset.PricePerQuery = *pricePerQuery
	}
	if active != nil {
		dataset.Active = *active
	}

	if err := k.SetDataset(ctx, dataset); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			registrytypes.EventTypeDatasetUpdated,
			sdk.NewAttribute(registrytypes.AttributeKeyDatasetID, fmt.Sprintf("%d", datasetID)),
			sdk.NewAttribute(registrytypes.AttributeKeyPricePerQuery, dataset.PricePerQuery.String()),
			sdk.NewAttribute(registrytypes.AttributeKeyActive, fmt.Sprintf("%t", dataset.Active)),
		),
	)

	return nil
}

// AddValidator appends a validator node to a dataset's validator list.
// Only the dataset owner may add validators.
func (k Keeper) AddValidator(ctx sdk.Context, caller sdk.AccAddress, datasetID uint64, validator string) error {
	dataset, found := k.GetDataset(ctx, datasetID)
	if !found {
		return sdkerrors.Wrapf(registrytypes.ErrDatasetNotFound, "dataset %d", datasetID)
	}
	if dataset.Owner != caller.String() {
		return sdkerrors.Wrapf(registrytypes.ErrNotOwner, "caller %s does not own dataset %d", caller, datasetID)
	}
	if dataset.HasValidator(validator) {
		return sdkerrors.Wrapf(registrytypes.ErrValidatorAlreadyExists, "validator %s on dataset %d", validator, datasetID)
	}

	dataset.Validators = append(dataset.Validators, validator)
	if err := k.SetDataset(ctx, dataset); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			registrytypes.EventTypeValidatorAdded,
			sdk.NewAttribute(registrytypes.AttributeKeyDatasetID, fmt.Sprintf("%d", datasetID)),
			sdk.NewAttribute(registrytypes.AttributeKeyValidator, validator),
		),
	)

	return nil
}

// GetQueryPrice returns the per-query price of an active dataset
func (k Keeper) GetQueryPrice(goCtx context.Context, datasetID uint64) (math.Int, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	dataset, found := k.GetDataset(ctx, datasetID)
	if !found {
		return math.Int{}, sdkerrors.Wrapf(registrytypes.ErrDatasetNotFound, "dataset %d", datasetID)
	}
	if !dataset.Active {
		return math.Int{}, sdkerrors.Wrapf(registrytypes.ErrDatasetInactive, "dataset %d", datasetID)
	}
	return dataset.PricePerQuery, nil
}

// GetOwner returns the owner address of a dataset
func (k Keeper) GetOwner(goCtx context.Context, datasetID uint64) (sdk.AccAddress, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	dataset, found := k.GetDataset(ctx, datasetID)
	if !found {
		return nil, sdkerrors.Wrapf(registrytypes.ErrDatasetNotFound, "dataset %d", datasetID)
	}
	owner, err := sdk.AccAddressFromBech32(dataset.Owner)
	if err != nil {
		return nil, sdkerrors.Wrapf(registrytypes.ErrInvalidAddress, "dataset %d owner: %s", datasetID, err)
	}
	return owner, nil
}

// IsActive reports whether a dataset exists and accepts queries
func (k Keeper) IsActive(goCtx context.Context, datasetID uint64) bool {
	ctx := sdk.UnwrapSDKContext(goCtx)
	dataset, found := k.GetDataset(ctx, datasetID)
	return found && dataset.Active
}

// GetValidators returns the validator list of a dataset
func (k Keeper) GetValidators(goCtx context.Context, datasetID uint64) ([]string, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	dataset, found := k.GetDataset(ctx, datasetID)
	if !found {
		return nil, sdkerrors.Wrapf(registrytypes.ErrDatasetNotFound, "dataset %d", datasetID)
	}
	return dataset.Validators, nil
}

// IncrementQueryCount bumps a dataset's served-query counter. Called by the
// payments module when a query payment is created.
func (k Keeper) IncrementQueryCount(goCtx context.Context, datasetID uint64) error {
	ctx := sdk.UnwrapSDKContext(goCtx)
	dataset, found := k.GetDataset(ctx, datasetID)
	if !found {
		return sdkerrors.Wrapf(registrytypes.ErrDatasetNotFound, "dataset %d", datasetID)
	}

	dataset.TotalQueries++
	if err := k.SetDataset(ctx, dataset); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			registrytypes.EventTypeQueryCounted,
			sdk.NewAttribute(registrytypes.AttributeKeyDatasetID, fmt.Sprintf("%d", datasetID)),
			sdk.NewAttribute(registrytypes.AttributeKeyTotalQueries, fmt.Sprintf("%d", dataset.TotalQueries)),
		),
	)

	return nil
}
