package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterCodec registers the payments module's concrete message types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePayment{}, "payments/MsgCreatePayment", nil)
	cdc.RegisterConcrete(&MsgReleaseEscrow{}, "payments/MsgReleaseEscrow", nil)
	cdc.RegisterConcrete(&MsgRefundPayment{}, "payments/MsgRefundPayment", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "payments/MsgUpdateParams", nil)
}

// ModuleCdc is the module-level amino codec used for sign bytes
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
