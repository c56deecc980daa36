package keeper

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

// GetNextProofID returns the next proof ID and increments the counter
func (k Keeper) GetNextProofID(ctx sdk.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(NextProofIDKey)

	var id uint64 = 1
	if bz != nil {
		id = GetIDFromBytes(bz)
	}

	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, id+1)
	store.Set(NextProofIDKey, idBz)

	return id
}

// SetNextProofID sets the proof ID counter, used during genesis import
func (k Keeper) SetNextProofID(ctx sdk.Context, id uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	store.Set(NextProofIDKey, bz)
}

// SetProof persists a proof and maintains the query index
func (k Keeper) SetProof(ctx sdk.Context, proof zkverifytypes.ZKProof) error {
	store := k.getStore(ctx)

	bz, err := json.Marshal(proof)
	if err != nil {
		return fmt.Errorf("failed to marshal proof %d: %w", proof.ProofId, err)
	}
	store.Set(ProofKey(proof.ProofId), bz)

	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, proof.ProofId)
	store.Set(ProofByQueryKey(proof.QueryId), idBz)

	return nil
}

// GetProof retrieves a proof by ID
func (k Keeper) GetProof(ctx sdk.Context, proofID uint64) (zkverifytypes.ZKProof, bool) {
	store := k.getStore(ctx)
	bz := store.Get(ProofKey(proofID))
	if bz == nil {
		return zkverifytypes.ZKProof{}, false
	}

	var proof zkverifytypes.ZKProof
	if err := json.Unmarshal(bz, &proof); err != nil {
		return zkverifytypes.ZKProof{}, false
	}
	return proof, true
}

// GetProofByQuery retrieves the proof bound to a query id, if any
func (k Keeper) GetProofByQuery(ctx sdk.Context, queryID uint64) (zkverifytypes.ZKProof, bool) {
	store := k.getStore(ctx)
	bz := store.Get(ProofByQueryKey(queryID))
	if bz == nil {
		return zkverifytypes.ZKProof{}, false
	}
	return k.GetProof(ctx, GetIDFromBytes(bz))
}

// GetAllProofs returns every proof in the store
func (k Keeper) GetAllProofs(ctx sdk.Context) []zkverifytypes.ZKProof {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ProofKeyPrefix)
	defer iterator.Close()

	var proofs []zkverifytypes.ZKProof
	for ; iterator.Valid(); iterator.Next() {
		var proof zkverifytypes.ZKProof
		if err := json.Unmarshal(iterator.Value(), &proof); err != nil {
			continue
		}
		proofs = append(proofs, proof)
	}
	return proofs
}

// SubmitProof records an execution proof for a paid query. One submission per
// query id, full stop: a second submission fails regardless of the first
// proof's verification outcome.
func (k Keeper) SubmitProof(
	ctx sdk.Context,
	prover sdk.AccAddress,
	queryID, datasetID uint64,
	proofData, publicInputs, vkeyHash, challengeHash []byte,
) (uint64, error) {
	if _, found := k.GetVerificationKey(ctx, vkeyHash); !found {
		return 0, sdkerrors.Wrapf(zkverifytypes.ErrVerificationKeyNotFound,
			"hash %s", hex.EncodeToString(vkeyHash))
	}

	if _, exists := k.GetProofByQuery(ctx, queryID); exists {
		return 0, sdkerrors.Wrapf(zkverifytypes.ErrProofAlreadyVerified,
			"query %d already has a proof", queryID)
	}

	proofID := k.GetNextProofID(ctx)
	proof := zkverifytypes.ZKProof{
		ProofId:       proofID,
		QueryId:       queryID,
		DatasetId:     datasetID,
		Prover:        prover.String(),
		ProofData:     proofData,
		PublicInputs:  publicInputs,
		VkeyHash:      vkeyHash,
		ChallengeHash: challengeHash,
		CreatedAt:     ctx.BlockTime(),
		Status:        zkverifytypes.ProofStatusPending,
	}
	if err := k.SetProof(ctx, proof); err != nil {
		return 0, err
	}

	k.metrics.ProofsSubmitted.Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			zkverifytypes.EventTypeProofSubmitted,
			sdk.NewAttribute(zkverifytypes.AttributeKeyProofID, fmt.Sprintf("%d", proofID)),
			sdk.NewAttribute(zkverifytypes.AttributeKeyQueryID, fmt.Sprintf("%d", queryID)),
			sdk.NewAttribute(zkverifytypes.AttributeKeyDatasetID, fmt.Sprintf("%d", datasetID)),
			sdk.NewAttribute(zkverifytypes.AttributeKeyProver, prover.String()),
		),
	)

	return proofID, nil
}

// VerifyProof dispatches a pending proof to the verifier bound to its key's
// circuit type. A valid proof becomes Verified and synchronously completes
// the payment; a downstream completion failure aborts the whole operation so
// a Verified proof never exists without a completed payment. An invalid or
// malformed proof becomes Rejected with the reason recorded; the payment
// stays pending for the authority to settle.
func (k Keeper) VerifyProof(ctx sdk.Context, caller sdk.AccAddress, proofID uint64) (bool, error) {
	if !k.IsValidator(ctx, caller) && caller.String() != k.authority {
		return false, sdkerrors.Wrapf(zkverifytypes.ErrNotAuthorized,
			"%s is neither an allow-listed validator nor the authority", caller)
	}

	proof, found := k.GetProof(ctx, proofID)
	if !found {
		return false, sdkerrors.Wrapf(zkverifytypes.ErrProofNotFound, "proof %d", proofID)
	}
	if proof.Status != zkverifytypes.ProofStatusPending {
		return false, sdkerrors.Wrapf(zkverifytypes.ErrProofAlreadyVerified,
			"proof %d is %s", proofID, proof.Status)
	}

	vkey, found := k.GetVerificationKey(ctx, proof.VkeyHash)
	if !found {
		return false, sdkerrors.Wrapf(zkverifytypes.ErrVerificationKeyNotFound,
			"hash %s", hex.EncodeToString(proof.VkeyHash))
	}

	verifier, ok := k.verifiers[vkey.CircuitType]
	if !ok {
		return false, sdkerrors.Wrapf(zkverifytypes.ErrUnsupportedCircuitType, "%q", vkey.CircuitType)
	}

	valid, verr := verifier.Verify(proof.ProofData, proof.PublicInputs, vkey.KeyData)

	if valid && verr == nil {
		proof.Status = zkverifytypes.ProofStatusVerified
		if err := k.SetProof(ctx, proof); err != nil {
			return false, err
		}

		proofHash := ProofSettlementHash(proof.ProofData, proof.PublicInputs)
		if err := k.paymentsKeeper.CompletePayment(ctx, proof.QueryId, proofHash, k.moduleAddr); err != nil {
			return false, sdkerrors.Wrapf(err, "completing payment for query %d", proof.QueryId)
		}

		k.metrics.ProofsVerified.WithLabelValues(vkey.CircuitType).Inc()

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				zkverifytypes.EventTypeProofVerified,
				sdk.NewAttribute(zkverifytypes.AttributeKeyProofID, fmt.Sprintf("%d", proofID)),
				sdk.NewAttribute(zkverifytypes.AttributeKeyQueryID, fmt.Sprintf("%d", proof.QueryId)),
				sdk.NewAttribute(zkverifytypes.AttributeKeyProofHash, hex.EncodeToString(proofHash)),
			),
		)
		return true, nil
	}

	reason := "proof verification failed"
	if verr != nil {
		reason = verr.Error()
	}
	proof.Status = zkverifytypes.ProofStatusRejected
	proof.RejectReason = reason
	if err := k.SetProof(ctx, proof); err != nil {
		return false, err
	}

	k.metrics.ProofsRejected.WithLabelValues(vkey.CircuitType).Inc()

	ctx.Logger().Info("proof rejected",
		"proof_id", proofID, "query_id", proof.QueryId, "reason", reason)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			zkverifytypes.EventTypeProofRejected,
			sdk.NewAttribute(zkverifytypes.AttributeKeyProofID, fmt.Sprintf("%d", proofID)),
			sdk.NewAttribute(zkverifytypes.AttributeKeyQueryID, fmt.Sprintf("%d", proof.QueryId)),
			sdk.NewAttribute(zkverifytypes.AttributeKeyReason, reason),
		),
	)
	return false, nil
}

// ProofSettlementHash derives the digest stored on the completed payment,
// binding it to the exact proof bytes and public inputs that settled it.
func ProofSettlementHash(proofData, publicInputs []byte) []byte {
	hasher := sha256.New()
	hasher.Write(proofData)
	hasher.Write(publicInputs)
	return hasher.Sum(nil)
}
