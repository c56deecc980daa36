package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

// InitGenesis initializes the zkverify module state from genesis
func (k Keeper) InitGenesis(ctx sdk.Context, genState zkverifytypes.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid zkverify genesis state: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	for _, vkey := range genState.VerificationKeys {
		if err := k.SetVerificationKey(ctx, vkey); err != nil {
			return err
		}
	}
	for _, proof := range genState.Proofs {
		if err := k.SetProof(ctx, proof); err != nil {
			return err
		}
	}
	for _, challenge := range genState.Challenges {
		if err := k.SetChallenge(ctx, challenge); err != nil {
			return err
		}
	}
	for _, validator := range genState.Validators {
		addr, err := sdk.AccAddressFromBech32(validator)
		if err != nil {
			return err
		}
		store := k.getStore(ctx)
		store.Set(ValidatorKey(addr), []byte{1})
	}
	k.SetNextProofID(ctx, genState.NextProofId)
	k.SetNextChallengeID(ctx, genState.NextChallengeId)
	return nil
}

// ExportGenesis exports the zkverify module state for genesis
func (k Keeper) ExportGenesis(ctx sdk.Context) *zkverifytypes.GenesisState {
	store := k.getStore(ctx)

	nextProofID := uint64(1)
	if bz := store.Get(NextProofIDKey); bz != nil {
		nextProofID = GetIDFromBytes(bz)
	}
	nextChallengeID := uint64(1)
	if bz := store.Get(NextChallengeIDKey); bz != nil {
		nextChallengeID = GetIDFromBytes(bz)
	}

	return &zkverifytypes.GenesisState{
		Params:           k.GetParams(ctx),
		VerificationKeys: k.GetAllVerificationKeys(ctx),
		Proofs:           k.GetAllProofs(ctx),
		Challenges:       k.GetAllChallenges(ctx),
		Validators:       k.GetAllValidators(ctx),
		NextProofId:      nextProofID,
		NextChallengeId:  nextChallengeID,
	}
}
