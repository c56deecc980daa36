package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	registrytypes "github.com/shepherdvovkes/AIVectorMP/x/registry/types"
)

// InitGenesis initializes the registry module state from genesis
func (k Keeper) InitGenesis(ctx sdk.Context, genState registrytypes.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid registry genesis state: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	for _, dataset := range genState.Datasets {
		if err := k.SetDataset(ctx, dataset); err != nil {
			return err
		}
	}
	k.SetNextDatasetID(ctx, genState.NextDatasetId)
	return nil
}

// ExportGenesis exports the registry module state for genesis
func (k Keeper) ExportGenesis(ctx sdk.Context) *registrytypes.GenesisState {
	store := k.getStore(ctx)

	nextID := uint64(1)
	if bz := store.Get(NextDatasetIDKey); bz != nil {
		nextID = GetDatasetIDFromBytes(bz)
	}

	return &registrytypes.GenesisState{
		Params:        k.GetParams(ctx),
		Datasets:      k.GetAllDatasets(ctx),
		NextDatasetId: nextID,
	}
}
