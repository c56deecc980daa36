package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterCodec registers the registry module's concrete message types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRegisterDataset{}, "registry/MsgRegisterDataset", nil)
	cdc.RegisterConcrete(&MsgUpdateDataset{}, "registry/MsgUpdateDataset", nil)
	cdc.RegisterConcrete(&MsgAddValidator{}, "registry/MsgAddValidator", nil)
	cdc.RegisterConcrete(&MsgSetRegistrationFee{}, "registry/MsgSetRegistrationFee", nil)
}

// ModuleCdc is the module-level amino codec used for sign bytes
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
