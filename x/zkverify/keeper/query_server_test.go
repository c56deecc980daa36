package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	keepertest "github.com/shepherdvovkes/AIVectorMP/testutil/keeper"
	zkverifykeeper "github.com/shepherdvovkes/AIVectorMP/x/zkverify/keeper"
	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

func requireStatusCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok, "expected a grpc status error, got %v", err)
	require.Equal(t, want, st.Code())
}

func TestQueryServerProofLookups(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	qs := zkverifykeeper.NewQueryServerImpl(f.Zkverify)

	owner := f.FundedAddress(0x01, keepertest.Coins(0))
	consumer := f.FundedAddress(0x02, keepertest.Coins(0))
	prover := f.FundedAddress(0x03, keepertest.Coins(0))
	proofID, queryID := f.VerifiedStructuralProof(t, owner, consumer, prover, math.NewInt(50000))

	byID, err := qs.Proof(f.Ctx, &zkverifytypes.QueryProofRequest{ProofId: proofID})
	require.NoError(t, err)
	require.Equal(t, zkverifytypes.ProofStatusVerified, byID.Proof.Status)

	byQuery, err := qs.ProofByQuery(f.Ctx, &zkverifytypes.QueryProofByQueryRequest{QueryId: queryID})
	require.NoError(t, err)
	require.Equal(t, byID.Proof.ProofId, byQuery.Proof.ProofId)

	keyResp, err := qs.VerificationKey(f.Ctx, &zkverifytypes.QueryVerificationKeyRequest{
		KeyHash: byID.Proof.VkeyHash,
	})
	require.NoError(t, err)
	require.Equal(t, zkverifytypes.CircuitTypeStructural, keyResp.VerificationKey.CircuitType)

	params, err := qs.Params(f.Ctx, &zkverifytypes.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, f.Zkverify.GetParams(f.Ctx), params.Params)
}

func TestQueryServerRejections(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	qs := zkverifykeeper.NewQueryServerImpl(f.Zkverify)

	_, err := qs.Proof(f.Ctx, nil)
	requireStatusCode(t, err, codes.InvalidArgument)

	_, err = qs.Proof(f.Ctx, &zkverifytypes.QueryProofRequest{ProofId: 0})
	requireStatusCode(t, err, codes.InvalidArgument)

	_, err = qs.Proof(f.Ctx, &zkverifytypes.QueryProofRequest{ProofId: 99})
	requireStatusCode(t, err, codes.NotFound)

	_, err = qs.VerificationKey(f.Ctx, &zkverifytypes.QueryVerificationKeyRequest{KeyHash: []byte{0x01}})
	requireStatusCode(t, err, codes.InvalidArgument)

	_, err = qs.VerificationKey(f.Ctx, &zkverifytypes.QueryVerificationKeyRequest{KeyHash: keepertest.HashBytes(0xff)})
	requireStatusCode(t, err, codes.NotFound)

	_, err = qs.Challenge(f.Ctx, &zkverifytypes.QueryChallengeRequest{ChallengeId: 7})
	requireStatusCode(t, err, codes.NotFound)
}

func TestQueryServerChallengesAndValidators(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	qs := zkverifykeeper.NewQueryServerImpl(f.Zkverify)

	owner := f.FundedAddress(0x01, keepertest.Coins(0))
	consumer := f.FundedAddress(0x02, keepertest.Coins(0))
	prover := f.FundedAddress(0x03, keepertest.Coins(0))
	challenger := f.FundedAddress(0x04, keepertest.Coins(10000000))
	proofID, _ := f.VerifiedStructuralProof(t, owner, consumer, prover, math.NewInt(50000))

	challengeID, err := f.Zkverify.ChallengeProof(f.Ctx, challenger, proofID, "inputs do not match", math.NewInt(10000000))
	require.NoError(t, err)

	resp, err := qs.Challenge(f.Ctx, &zkverifytypes.QueryChallengeRequest{ChallengeId: challengeID})
	require.NoError(t, err)
	require.Equal(t, zkverifytypes.ChallengeStatusActive, resp.Challenge.Status)
	require.Equal(t, proofID, resp.Challenge.ProofId)

	list, err := qs.ProofChallenges(f.Ctx, &zkverifytypes.QueryProofChallengesRequest{ProofId: proofID})
	require.NoError(t, err)
	require.Equal(t, []uint64{challengeID}, list.ChallengeIds)

	require.NoError(t, f.Zkverify.AddValidator(f.Ctx, challenger))
	validators, err := qs.Validators(f.Ctx, &zkverifytypes.QueryValidatorsRequest{})
	require.NoError(t, err)
	require.Equal(t, []string{challenger.String()}, validators.Validators)
}
