package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/shepherdvovkes/AIVectorMP/testutil/keeper"
	zkverifykeeper "github.com/shepherdvovkes/AIVectorMP/x/zkverify/keeper"
	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

func TestMsgServerProofFlow(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	srv := zkverifykeeper.NewMsgServerImpl(f.Zkverify)

	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))
	consumer := f.FundedAddress(0x02, keepertest.Coins(0))
	prover := f.FundedAddress(0x03, keepertest.Coins(0))

	datasetID := f.RegisterDataset(t, owner, math.NewInt(50000))
	queryID := f.CreatePaidQuery(t, consumer, datasetID, math.NewInt(50000))

	keyResp, err := srv.RegisterVerificationKey(f.Ctx, &zkverifytypes.MsgRegisterVerificationKey{
		Creator:     owner.String(),
		KeyData:     []byte("structural-key-v1"),
		CircuitType: zkverifytypes.CircuitTypeStructural,
	})
	require.NoError(t, err)

	submitResp, err := srv.SubmitProof(f.Ctx, &zkverifytypes.MsgSubmitProof{
		Creator:   prover.String(),
		QueryId:   queryID,
		DatasetId: datasetID,
		ProofData: []byte("execution-trace-proof"),
		VkeyHash:  keyResp.KeyHash,
	})
	require.NoError(t, err)

	verifyResp, err := srv.VerifyProof(f.Ctx, &zkverifytypes.MsgVerifyProof{
		Creator: f.Authority,
		ProofId: submitResp.ProofId,
	})
	require.NoError(t, err)
	require.True(t, verifyResp.Valid)
}

func TestMsgServerAuthorityGating(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	srv := zkverifykeeper.NewMsgServerImpl(f.Zkverify)
	stranger := f.FundedAddress(0x05, keepertest.Coins(0))

	_, err := srv.ResolveChallenge(f.Ctx, &zkverifytypes.MsgResolveChallenge{
		Authority:   stranger.String(),
		ChallengeId: 1,
		Accept:      true,
	})
	require.ErrorIs(t, err, govtypes.ErrInvalidSigner)

	_, err = srv.AddValidator(f.Ctx, &zkverifytypes.MsgAddValidator{
		Authority: stranger.String(),
		Validator: stranger.String(),
	})
	require.ErrorIs(t, err, govtypes.ErrInvalidSigner)

	_, err = srv.UpdateParams(f.Ctx, &zkverifytypes.MsgUpdateParams{
		Authority: stranger.String(),
		Params:    zkverifytypes.DefaultParams(),
	})
	require.ErrorIs(t, err, govtypes.ErrInvalidSigner)

	// the real authority passes the gate
	_, err = srv.AddValidator(f.Ctx, &zkverifytypes.MsgAddValidator{
		Authority: f.Authority,
		Validator: stranger.String(),
	})
	require.NoError(t, err)

	newParams := zkverifytypes.DefaultParams()
	newParams.MinChallengeStake = math.NewInt(5000000)
	_, err = srv.UpdateParams(f.Ctx, &zkverifytypes.MsgUpdateParams{
		Authority: f.Authority,
		Params:    newParams,
	})
	require.NoError(t, err)
	require.Equal(t, newParams, f.Zkverify.GetParams(f.Ctx))
}
