package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

// RegisterInvariants registers all zkverify module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(zkverifytypes.ModuleName, "stake-backing",
		StakeBackingInvariant(k))
	ir.RegisterRoute(zkverifytypes.ModuleName, "challenge-proof-match",
		ChallengeProofMatchInvariant(k))
}

// AllInvariants runs all invariants of the zkverify module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := StakeBackingInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ChallengeProofMatchInvariant(k)(ctx)
	}
}

// StakeBackingInvariant checks that the module account holds at least the sum
// of all active challenge stakes. Resolved and dismissed challenges have
// already paid their stake out.
func StakeBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params := k.GetParams(ctx)

		totalStaked := sdk.NewCoins()
		for _, challenge := range k.GetAllChallenges(ctx) {
			if challenge.Status != zkverifytypes.ChallengeStatusActive {
				continue
			}
			totalStaked = totalStaked.Add(sdk.NewCoin(params.Denom, challenge.Stake))
		}

		moduleAddr := authtypes.NewModuleAddress(zkverifytypes.ModuleName)
		balance := k.bankKeeper.GetAllBalances(ctx, moduleAddr)

		if !balance.IsAllGTE(totalStaked) {
			return sdk.FormatInvariant(
				zkverifytypes.ModuleName, "stake-backing",
				fmt.Sprintf("module balance %s below total staked %s", balance, totalStaked),
			), true
		}
		return sdk.FormatInvariant(
			zkverifytypes.ModuleName, "stake-backing",
			fmt.Sprintf("module balance %s covers total staked %s", balance, totalStaked),
		), false
	}
}

// ChallengeProofMatchInvariant checks that every active challenge points at a
// proof in Challenged status, and the other way round: a Challenged proof with
// no active challenge is stuck.
func ChallengeProofMatchInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		activeByProof := make(map[uint64]bool)
		for _, challenge := range k.GetAllChallenges(ctx) {
			if challenge.Status != zkverifytypes.ChallengeStatusActive {
				continue
			}
			proof, found := k.GetProof(ctx, challenge.ProofId)
			if !found {
				return sdk.FormatInvariant(
					zkverifytypes.ModuleName, "challenge-proof-match",
					fmt.Sprintf("active challenge %d has no proof %d", challenge.ChallengeId, challenge.ProofId),
				), true
			}
			if proof.Status != zkverifytypes.ProofStatusChallenged {
				return sdk.FormatInvariant(
					zkverifytypes.ModuleName, "challenge-proof-match",
					fmt.Sprintf("active challenge %d against %s proof %d", challenge.ChallengeId, proof.Status, proof.ProofId),
				), true
			}
			activeByProof[challenge.ProofId] = true
		}

		for _, proof := range k.GetAllProofs(ctx) {
			if proof.Status == zkverifytypes.ProofStatusChallenged && !activeByProof[proof.ProofId] {
				return sdk.FormatInvariant(
					zkverifytypes.ModuleName, "challenge-proof-match",
					fmt.Sprintf("proof %d challenged with no active challenge", proof.ProofId),
				), true
			}
		}

		return sdk.FormatInvariant(
			zkverifytypes.ModuleName, "challenge-proof-match",
			"all active challenges match challenged proofs",
		), false
	}
}
