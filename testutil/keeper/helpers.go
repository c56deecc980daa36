package keeper

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	registrytypes "github.com/shepherdvovkes/AIVectorMP/x/registry/types"
	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

// HashBytes returns a 32-byte slice filled with b, used where tests need a
// well-formed content hash
func HashBytes(b byte) []byte {
	return bytes.Repeat([]byte{b}, 32)
}

// Coins is shorthand for a single-denom coin amount in the marketplace denom
func Coins(amount int64) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(registrytypes.DefaultDenom, math.NewInt(amount)))
}

// RegisterDataset registers an active dataset for owner at the given query
// price, funding the owner with the registration fee first
func (f *Fixture) RegisterDataset(t testing.TB, owner sdk.AccAddress, price math.Int) uint64 {
	params := registrytypes.DefaultParams()
	f.Bank.FundAccount(owner, sdk.NewCoins(sdk.NewCoin(params.Denom, params.RegistrationFee)))

	id, err := f.Registry.RegisterDataset(f.Ctx, owner,
		"embeddings-wiki-en", "wikipedia sentence embeddings",
		HashBytes(0xaa), HashBytes(0xbb), price, params.RegistrationFee)
	require.NoError(t, err)
	return id
}

// CreatePaidQuery funds the consumer and creates a payment for one query
// against the dataset, returning the assigned query id
func (f *Fixture) CreatePaidQuery(t testing.TB, consumer sdk.AccAddress, datasetID uint64, paid math.Int) uint64 {
	f.Bank.FundAccount(consumer, sdk.NewCoins(sdk.NewCoin(registrytypes.DefaultDenom, paid)))

	queryID, _, err := f.Payments.CreatePayment(f.Ctx, consumer, datasetID, paid)
	require.NoError(t, err)
	return queryID
}

// RegisterStructuralKey registers a structural-circuit verification key and
// returns its content hash
func (f *Fixture) RegisterStructuralKey(t testing.TB, owner sdk.AccAddress) []byte {
	keyHash, err := f.Zkverify.RegisterVerificationKey(f.Ctx, owner,
		[]byte("structural-key-v1"), zkverifytypes.CircuitTypeStructural)
	require.NoError(t, err)
	return keyHash
}

// SubmitStructuralProof submits a well-formed proof for the query under the
// given key and returns the proof id
func (f *Fixture) SubmitStructuralProof(t testing.TB, prover sdk.AccAddress, queryID, datasetID uint64, keyHash []byte) uint64 {
	proofID, err := f.Zkverify.SubmitProof(f.Ctx, prover, queryID, datasetID,
		[]byte("execution-trace-proof"), []byte("public-inputs"), keyHash, nil)
	require.NoError(t, err)
	return proofID
}

// VerifiedStructuralProof runs the whole happy path up to a verified proof:
// dataset, payment, key, submission, verification by the authority. It returns
// the proof and query ids.
func (f *Fixture) VerifiedStructuralProof(t testing.TB, owner, consumer, prover sdk.AccAddress, price math.Int) (proofID, queryID uint64) {
	datasetID := f.RegisterDataset(t, owner, price)
	queryID = f.CreatePaidQuery(t, consumer, datasetID, price)
	keyHash := f.RegisterStructuralKey(t, owner)
	proofID = f.SubmitStructuralProof(t, prover, queryID, datasetID, keyHash)

	authority, err := sdk.AccAddressFromBech32(f.Authority)
	require.NoError(t, err)
	valid, err := f.Zkverify.VerifyProof(f.Ctx, authority, proofID)
	require.NoError(t, err)
	require.True(t, valid)
	return proofID, queryID
}
