package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	paymentstypes "github.com/shepherdvovkes/AIVectorMP/x/payments/types"
)

// InitGenesis initializes the payments module state from genesis
func (k Keeper) InitGenesis(ctx sdk.Context, genState paymentstypes.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid payments genesis state: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	for _, payment := range genState.Payments {
		if err := k.SetPayment(ctx, payment); err != nil {
			return err
		}
	}
	for _, escrow := range genState.Escrows {
		if err := k.SetEscrow(ctx, escrow); err != nil {
			return err
		}
	}
	k.SetNextQueryID(ctx, genState.NextQueryId)
	return nil
}

// ExportGenesis exports the payments module state for genesis
func (k Keeper) ExportGenesis(ctx sdk.Context) *paymentstypes.GenesisState {
	store := k.getStore(ctx)

	nextID := uint64(1)
	if bz := store.Get(NextQueryIDKey); bz != nil {
		nextID = GetQueryIDFromBytes(bz)
	}

	return &paymentstypes.GenesisState{
		Params:      k.GetParams(ctx),
		Payments:    k.GetAllPayments(ctx),
		Escrows:     k.GetAllEscrows(ctx),
		NextQueryId: nextID,
	}
}
