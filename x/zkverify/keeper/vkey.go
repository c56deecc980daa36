package keeper

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

// RegisterVerificationKey stores an immutable verifying key addressed by the
// sha256 of its data. Registering the same key twice is rejected, as is a
// circuit type with no verifier bound at keeper construction.
func (k Keeper) RegisterVerificationKey(
	ctx sdk.Context,
	owner sdk.AccAddress,
	keyData []byte,
	circuitType string,
) ([]byte, error) {
	if !k.HasVerifier(circuitType) {
		return nil, sdkerrors.Wrapf(zkverifytypes.ErrUnsupportedCircuitType, "%q", circuitType)
	}

	sum := sha256.Sum256(keyData)
	keyHash := sum[:]

	store := k.getStore(ctx)
	if store.Has(VerificationKeyKey(keyHash)) {
		return nil, sdkerrors.Wrapf(zkverifytypes.ErrDuplicateVerificationKey,
			"hash %s", hex.EncodeToString(keyHash))
	}

	vkey := zkverifytypes.VerificationKey{
		KeyHash:     keyHash,
		KeyData:     keyData,
		CircuitType: circuitType,
		Owner:       owner.String(),
		Active:      true,
		CreatedAt:   ctx.BlockTime(),
	}
	if err := k.SetVerificationKey(ctx, vkey); err != nil {
		return nil, err
	}

	k.metrics.KeysRegistered.WithLabelValues(circuitType).Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			zkverifytypes.EventTypeKeyRegistered,
			sdk.NewAttribute(zkverifytypes.AttributeKeyKeyHash, hex.EncodeToString(keyHash)),
			sdk.NewAttribute(zkverifytypes.AttributeKeyCircuitType, circuitType),
		),
	)

	return keyHash, nil
}

// SetVerificationKey persists a verification key record
func (k Keeper) SetVerificationKey(ctx sdk.Context, vkey zkverifytypes.VerificationKey) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(vkey)
	if err != nil {
		return fmt.Errorf("failed to marshal verification key: %w", err)
	}
	store.Set(VerificationKeyKey(vkey.KeyHash), bz)
	return nil
}

// GetVerificationKey retrieves a verification key by content hash
func (k Keeper) GetVerificationKey(ctx sdk.Context, keyHash []byte) (zkverifytypes.VerificationKey, bool) {
	store := k.getStore(ctx)
	bz := store.Get(VerificationKeyKey(keyHash))
	if bz == nil {
		return zkverifytypes.VerificationKey{}, false
	}

	var vkey zkverifytypes.VerificationKey
	if err := json.Unmarshal(bz, &vkey); err != nil {
		return zkverifytypes.VerificationKey{}, false
	}
	return vkey, true
}

// GetAllVerificationKeys returns every verification key in the store
func (k Keeper) GetAllVerificationKeys(ctx sdk.Context) []zkverifytypes.VerificationKey {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, VerificationKeyPrefix)
	defer iterator.Close()

	var vkeys []zkverifytypes.VerificationKey
	for ; iterator.Valid(); iterator.Next() {
		var vkey zkverifytypes.VerificationKey
		if err := json.Unmarshal(iterator.Value(), &vkey); err != nil {
			continue
		}
		vkeys = append(vkeys, vkey)
	}
	return vkeys
}
