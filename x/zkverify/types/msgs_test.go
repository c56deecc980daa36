package types_test

import (
	"bytes"
	"strings"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

var testAddr = sdk.AccAddress(bytes.Repeat([]byte{0x01}, 20)).String()

func validSubmitProof() zkverifytypes.MsgSubmitProof {
	return zkverifytypes.MsgSubmitProof{
		Creator:      testAddr,
		QueryId:      1,
		DatasetId:    1,
		ProofData:    []byte("execution-trace-proof"),
		PublicInputs: []byte("public-inputs"),
		VkeyHash:     bytes.Repeat([]byte{0xaa}, 32),
	}
}

func TestMsgSubmitProofValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*zkverifytypes.MsgSubmitProof)
		wantErr bool
	}{
		{"valid", func(m *zkverifytypes.MsgSubmitProof) {}, false},
		{"empty public inputs allowed", func(m *zkverifytypes.MsgSubmitProof) { m.PublicInputs = nil }, false},
		{"challenge hash optional", func(m *zkverifytypes.MsgSubmitProof) { m.ChallengeHash = bytes.Repeat([]byte{0xcc}, 32) }, false},
		{"bad creator", func(m *zkverifytypes.MsgSubmitProof) { m.Creator = "nope" }, true},
		{"zero query id", func(m *zkverifytypes.MsgSubmitProof) { m.QueryId = 0 }, true},
		{"zero dataset id", func(m *zkverifytypes.MsgSubmitProof) { m.DatasetId = 0 }, true},
		{"empty proof", func(m *zkverifytypes.MsgSubmitProof) { m.ProofData = nil }, true},
		{"oversized proof", func(m *zkverifytypes.MsgSubmitProof) { m.ProofData = make([]byte, 16*1024+1) }, true},
		{"oversized inputs", func(m *zkverifytypes.MsgSubmitProof) { m.PublicInputs = make([]byte, 16*1024+1) }, true},
		{"short vkey hash", func(m *zkverifytypes.MsgSubmitProof) { m.VkeyHash = []byte{0x01} }, true},
		{"short challenge hash", func(m *zkverifytypes.MsgSubmitProof) { m.ChallengeHash = []byte{0x01} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validSubmitProof()
			tt.mutate(&msg)
			err := msg.ValidateBasic()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgRegisterVerificationKeyValidateBasic(t *testing.T) {
	valid := zkverifytypes.MsgRegisterVerificationKey{
		Creator:     testAddr,
		KeyData:     []byte("key-data"),
		CircuitType: zkverifytypes.CircuitTypeGroth16BN254,
	}
	require.NoError(t, valid.ValidateBasic())

	bad := valid
	bad.KeyData = nil
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.CircuitType = ""
	require.Error(t, bad.ValidateBasic())

	bad = valid
	bad.Creator = "nope"
	require.Error(t, bad.ValidateBasic())
}

func TestMsgChallengeProofValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     zkverifytypes.MsgChallengeProof
		wantErr bool
	}{
		{"valid", zkverifytypes.MsgChallengeProof{Creator: testAddr, ProofId: 1, Reason: "bad inputs", Stake: math.NewInt(10000000)}, false},
		{"zero proof id", zkverifytypes.MsgChallengeProof{Creator: testAddr, Reason: "r", Stake: math.NewInt(1)}, true},
		{"empty reason", zkverifytypes.MsgChallengeProof{Creator: testAddr, ProofId: 1, Stake: math.NewInt(1)}, true},
		{"reason too long", zkverifytypes.MsgChallengeProof{Creator: testAddr, ProofId: 1, Reason: strings.Repeat("x", 513), Stake: math.NewInt(1)}, true},
		{"zero stake", zkverifytypes.MsgChallengeProof{Creator: testAddr, ProofId: 1, Reason: "r", Stake: math.ZeroInt()}, true},
		{"nil stake", zkverifytypes.MsgChallengeProof{Creator: testAddr, ProofId: 1, Reason: "r"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAuthorityMsgsValidateBasic(t *testing.T) {
	require.NoError(t, zkverifytypes.MsgVerifyProof{Creator: testAddr, ProofId: 1}.ValidateBasic())
	require.Error(t, zkverifytypes.MsgVerifyProof{Creator: testAddr}.ValidateBasic())

	require.NoError(t, zkverifytypes.MsgResolveChallenge{Authority: testAddr, ChallengeId: 1, Accept: true}.ValidateBasic())
	require.Error(t, zkverifytypes.MsgResolveChallenge{Authority: testAddr}.ValidateBasic())

	require.NoError(t, zkverifytypes.MsgAddValidator{Authority: testAddr, Validator: testAddr}.ValidateBasic())
	require.Error(t, zkverifytypes.MsgAddValidator{Authority: testAddr, Validator: "nope"}.ValidateBasic())

	require.NoError(t, zkverifytypes.MsgRemoveValidator{Authority: testAddr, Validator: testAddr}.ValidateBasic())
	require.Error(t, zkverifytypes.MsgRemoveValidator{Authority: "nope", Validator: testAddr}.ValidateBasic())

	require.NoError(t, zkverifytypes.MsgUpdateParams{Authority: testAddr, Params: zkverifytypes.DefaultParams()}.ValidateBasic())
	badParams := zkverifytypes.DefaultParams()
	badParams.ChallengePeriodSeconds = 0
	require.Error(t, zkverifytypes.MsgUpdateParams{Authority: testAddr, Params: badParams}.ValidateBasic())
}
