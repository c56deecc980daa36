package keeper

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

// GetNextChallengeID returns the next challenge ID and increments the counter
func (k Keeper) GetNextChallengeID(ctx sdk.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(NextChallengeIDKey)

	var id uint64 = 1
	if bz != nil {
		id = GetIDFromBytes(bz)
	}

	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, id+1)
	store.Set(NextChallengeIDKey, idBz)

	return id
}

// SetNextChallengeID sets the challenge ID counter, used during genesis import
func (k Keeper) SetNextChallengeID(ctx sdk.Context, id uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	store.Set(NextChallengeIDKey, bz)
}

// SetChallenge persists a challenge and maintains the proof index
func (k Keeper) SetChallenge(ctx sdk.Context, challenge zkverifytypes.Challenge) error {
	store := k.getStore(ctx)

	bz, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge %d: %w", challenge.ChallengeId, err)
	}
	store.Set(ChallengeKey(challenge.ChallengeId), bz)
	store.Set(ChallengeByProofKey(challenge.ProofId, challenge.ChallengeId), []byte{1})

	return nil
}

// GetChallenge retrieves a challenge by ID
func (k Keeper) GetChallenge(ctx sdk.Context, challengeID uint64) (zkverifytypes.Challenge, bool) {
	store := k.getStore(ctx)
	bz := store.Get(ChallengeKey(challengeID))
	if bz == nil {
		return zkverifytypes.Challenge{}, false
	}

	var challenge zkverifytypes.Challenge
	if err := json.Unmarshal(bz, &challenge); err != nil {
		return zkverifytypes.Challenge{}, false
	}
	return challenge, true
}

// GetAllChallenges returns every challenge in the store
func (k Keeper) GetAllChallenges(ctx sdk.Context) []zkverifytypes.Challenge {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ChallengeKeyPrefix)
	defer iterator.Close()

	var challenges []zkverifytypes.Challenge
	for ; iterator.Valid(); iterator.Next() {
		var challenge zkverifytypes.Challenge
		if err := json.Unmarshal(iterator.Value(), &challenge); err != nil {
			continue
		}
		challenges = append(challenges, challenge)
	}
	return challenges
}

// GetProofChallenges returns the IDs of all challenges raised against a proof
func (k Keeper) GetProofChallenges(ctx sdk.Context, proofID uint64) []uint64 {
	store := k.getStore(ctx)
	prefixBz := make([]byte, 8)
	binary.BigEndian.PutUint64(prefixBz, proofID)
	prefix := append(ChallengesByProofPrefix, prefixBz...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var ids []uint64
	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		ids = append(ids, GetIDFromBytes(key[len(key)-8:]))
	}
	return ids
}

// ChallengeProof raises a stake-backed dispute against a verified proof
// inside its challenge window. Requiring Verified status also forbids a
// second challenge while one is active: the proof is Challenged until the
// first is resolved.
func (k Keeper) ChallengeProof(
	ctx sdk.Context,
	challenger sdk.AccAddress,
	proofID uint64,
	reason string,
	stake math.Int,
) (uint64, error) {
	params := k.GetParams(ctx)

	if stake.LT(params.MinChallengeStake) {
		return 0, sdkerrors.Wrapf(zkverifytypes.ErrInsufficientStake,
			"staked %s, minimum is %s", stake, params.MinChallengeStake)
	}

	proof, found := k.GetProof(ctx, proofID)
	if !found {
		return 0, sdkerrors.Wrapf(zkverifytypes.ErrProofNotFound, "proof %d", proofID)
	}

	now := ctx.BlockTime()
	window := time.Duration(params.ChallengePeriodSeconds) * time.Second
	if now.After(proof.CreatedAt.Add(window)) {
		return 0, sdkerrors.Wrapf(zkverifytypes.ErrChallengePeriodExpired,
			"proof %d window closed at %s", proofID, proof.CreatedAt.Add(window))
	}

	if proof.Status != zkverifytypes.ProofStatusVerified {
		return 0, sdkerrors.Wrapf(zkverifytypes.ErrInvalidChallenge,
			"proof %d is %s, only verified proofs can be challenged", proofID, proof.Status)
	}

	coins := sdk.NewCoins(sdk.NewCoin(params.Denom, stake))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, challenger, zkverifytypes.ModuleName, coins); err != nil {
		return 0, sdkerrors.Wrapf(zkverifytypes.ErrTransferFailed, "stake deposit: %s", err)
	}

	challengeID := k.GetNextChallengeID(ctx)
	challenge := zkverifytypes.Challenge{
		ChallengeId:        challengeID,
		ProofId:            proofID,
		Challenger:         challenger.String(),
		Stake:              stake,
		Reason:             reason,
		CreatedAt:          now,
		ResolutionDeadline: now.Add(window),
		Status:             zkverifytypes.ChallengeStatusActive,
	}
	if err := k.SetChallenge(ctx, challenge); err != nil {
		return 0, err
	}

	proof.Status = zkverifytypes.ProofStatusChallenged
	if err := k.SetProof(ctx, proof); err != nil {
		return 0, err
	}

	k.metrics.ChallengesRaised.Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			zkverifytypes.EventTypeProofChallenged,
			sdk.NewAttribute(zkverifytypes.AttributeKeyChallengeID, fmt.Sprintf("%d", challengeID)),
			sdk.NewAttribute(zkverifytypes.AttributeKeyProofID, fmt.Sprintf("%d", proofID)),
			sdk.NewAttribute(zkverifytypes.AttributeKeyChallenger, challenger.String()),
			sdk.NewAttribute(zkverifytypes.AttributeKeyStake, stake.String()),
			sdk.NewAttribute(zkverifytypes.AttributeKeyReason, reason),
		),
	)

	return challengeID, nil
}

// ResolveChallenge adjudicates an active challenge. Accepting it rejects the
// proof terminally, returns the challenger's stake, and forces the payment
// refund (the single sanctioned Completed to Refunded transition). Dismissing
// it reopens the proof to Verified and forfeits the stake to the fee
// collector.
func (k Keeper) ResolveChallenge(ctx sdk.Context, challengeID uint64, accept bool) error {
	challenge, found := k.GetChallenge(ctx, challengeID)
	if !found {
		return sdkerrors.Wrapf(zkverifytypes.ErrChallengeNotFound, "challenge %d", challengeID)
	}
	if challenge.Status != zkverifytypes.ChallengeStatusActive {
		return sdkerrors.Wrapf(zkverifytypes.ErrInvalidChallenge,
			"challenge %d is %s", challengeID, challenge.Status)
	}

	proof, found := k.GetProof(ctx, challenge.ProofId)
	if !found {
		return sdkerrors.Wrapf(zkverifytypes.ErrProofNotFound, "proof %d", challenge.ProofId)
	}

	challenger, err := sdk.AccAddressFromBech32(challenge.Challenger)
	if err != nil {
		return sdkerrors.Wrapf(zkverifytypes.ErrInvalidAddress, "challenger: %s", err)
	}

	params := k.GetParams(ctx)
	stake := sdk.NewCoins(sdk.NewCoin(params.Denom, challenge.Stake))

	if accept {
		challenge.Status = zkverifytypes.ChallengeStatusResolved
		if err := k.SetChallenge(ctx, challenge); err != nil {
			return err
		}

		proof.Status = zkverifytypes.ProofStatusRejected
		proof.RejectReason = fmt.Sprintf("challenge %d accepted: %s", challengeID, challenge.Reason)
		if err := k.SetProof(ctx, proof); err != nil {
			return err
		}

		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, zkverifytypes.ModuleName, challenger, stake); err != nil {
			return sdkerrors.Wrapf(zkverifytypes.ErrTransferFailed, "stake return: %s", err)
		}

		if err := k.paymentsKeeper.RefundPayment(ctx, proof.QueryId, k.moduleAddr); err != nil {
			return sdkerrors.Wrapf(err, "refunding payment for query %d", proof.QueryId)
		}

		k.metrics.ChallengesAccepted.Inc()

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				zkverifytypes.EventTypeChallengeResolved,
				sdk.NewAttribute(zkverifytypes.AttributeKeyChallengeID, fmt.Sprintf("%d", challengeID)),
				sdk.NewAttribute(zkverifytypes.AttributeKeyProofID, fmt.Sprintf("%d", challenge.ProofId)),
				sdk.NewAttribute(zkverifytypes.AttributeKeyQueryID, fmt.Sprintf("%d", proof.QueryId)),
			),
		)
		return nil
	}

	challenge.Status = zkverifytypes.ChallengeStatusDismissed
	if err := k.SetChallenge(ctx, challenge); err != nil {
		return err
	}

	proof.Status = zkverifytypes.ProofStatusVerified
	if err := k.SetProof(ctx, proof); err != nil {
		return err
	}

	if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, zkverifytypes.ModuleName, authtypes.FeeCollectorName, stake); err != nil {
		return sdkerrors.Wrapf(zkverifytypes.ErrTransferFailed, "stake forfeiture: %s", err)
	}

	k.metrics.ChallengesDismissed.Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			zkverifytypes.EventTypeChallengeDismissed,
			sdk.NewAttribute(zkverifytypes.AttributeKeyChallengeID, fmt.Sprintf("%d", challengeID)),
			sdk.NewAttribute(zkverifytypes.AttributeKeyProofID, fmt.Sprintf("%d", challenge.ProofId)),
			sdk.NewAttribute(zkverifytypes.AttributeKeyStake, challenge.Stake.String()),
		),
	)
	return nil
}
