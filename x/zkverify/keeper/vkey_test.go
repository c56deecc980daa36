package keeper_test

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/shepherdvovkes/AIVectorMP/testutil/keeper"
	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

func TestRegisterVerificationKey(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(0))

	keyData := []byte("structural-key-v1")
	keyHash, err := f.Zkverify.RegisterVerificationKey(f.Ctx, owner, keyData, zkverifytypes.CircuitTypeStructural)
	require.NoError(t, err)

	sum := sha256.Sum256(keyData)
	require.Equal(t, sum[:], keyHash)

	vkey, found := f.Zkverify.GetVerificationKey(f.Ctx, keyHash)
	require.True(t, found)
	require.Equal(t, keyData, vkey.KeyData)
	require.Equal(t, zkverifytypes.CircuitTypeStructural, vkey.CircuitType)
	require.Equal(t, owner.String(), vkey.Owner)
	require.True(t, vkey.Active)
}

func TestRegisterVerificationKeyDuplicate(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(0))

	keyData := []byte("structural-key-v1")
	_, err := f.Zkverify.RegisterVerificationKey(f.Ctx, owner, keyData, zkverifytypes.CircuitTypeStructural)
	require.NoError(t, err)

	// same content, same address: keys are immutable
	_, err = f.Zkverify.RegisterVerificationKey(f.Ctx, owner, keyData, zkverifytypes.CircuitTypeStructural)
	require.ErrorIs(t, err, zkverifytypes.ErrDuplicateVerificationKey)

	// different content is a different key
	_, err = f.Zkverify.RegisterVerificationKey(f.Ctx, owner, []byte("structural-key-v2"), zkverifytypes.CircuitTypeStructural)
	require.NoError(t, err)
	require.Len(t, f.Zkverify.GetAllVerificationKeys(f.Ctx), 2)
}

func TestRegisterVerificationKeyUnsupportedCircuit(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(0))

	_, err := f.Zkverify.RegisterVerificationKey(f.Ctx, owner, []byte("key"), "plonk-bls12-381")
	require.ErrorIs(t, err, zkverifytypes.ErrUnsupportedCircuitType)
}
