package types_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	paymentstypes "github.com/shepherdvovkes/AIVectorMP/x/payments/types"
)

var testAddr = sdk.AccAddress(bytes.Repeat([]byte{0x01}, 20)).String()

func TestMsgCreatePaymentValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     paymentstypes.MsgCreatePayment
		wantErr bool
	}{
		{"valid", paymentstypes.MsgCreatePayment{Creator: testAddr, DatasetId: 1, PaidAmount: math.NewInt(50000)}, false},
		{"bad creator", paymentstypes.MsgCreatePayment{Creator: "nope", DatasetId: 1, PaidAmount: math.NewInt(50000)}, true},
		{"zero dataset id", paymentstypes.MsgCreatePayment{Creator: testAddr, PaidAmount: math.NewInt(50000)}, true},
		{"zero amount", paymentstypes.MsgCreatePayment{Creator: testAddr, DatasetId: 1, PaidAmount: math.ZeroInt()}, true},
		{"nil amount", paymentstypes.MsgCreatePayment{Creator: testAddr, DatasetId: 1}, true},
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

func TestMsgReleaseEscrowValidateBasic(t *testing.T) {
	require.NoError(t, paymentstypes.MsgReleaseEscrow{Creator: testAddr, QueryId: 1}.ValidateBasic())
	require.Error(t, paymentstypes.MsgReleaseEscrow{Creator: testAddr}.ValidateBasic())
	require.Error(t, paymentstypes.MsgReleaseEscrow{Creator: "nope", QueryId: 1}.ValidateBasic())
}

func TestMsgRefundPaymentValidateBasic(t *testing.T) {
	require.NoError(t, paymentstypes.MsgRefundPayment{Authority: testAddr, QueryId: 1}.ValidateBasic())
	require.Error(t, paymentstypes.MsgRefundPayment{Authority: testAddr}.ValidateBasic())
	require.Error(t, paymentstypes.MsgRefundPayment{Authority: "nope", QueryId: 1}.ValidateBasic())
}

func TestMsgUpdateParamsValidateBasic(t *testing.T) {
	require.NoError(t, paymentstypes.MsgUpdateParams{Authority: testAddr, Params: paymentstypes.DefaultParams()}.ValidateBasic())

	bad := paymentstypes.DefaultParams()
	bad.PlatformFeeBps = 10001
	require.Error(t, paymentstypes.MsgUpdateParams{Authority: testAddr, Params: bad}.ValidateBasic())

	empty := paymentstypes.DefaultParams()
	empty.Denom = ""
	require.Error(t, paymentstypes.MsgUpdateParams{Authority: testAddr, Params: empty}.ValidateBasic())
}

func TestPaymentStatusValid(t *testing.T) {
	require.True(t, paymentstypes.PaymentStatusPending.Valid())
	require.True(t, paymentstypes.PaymentStatusCompleted.Valid())
	require.True(t, paymentstypes.PaymentStatusDisputed.Valid())
	require.True(t, paymentstypes.PaymentStatusRefunded.Valid())
	require.False(t, paymentstypes.PaymentStatus("settled").Valid())
}
