package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterCodec registers the zkverify module's concrete message types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRegisterVerificationKey{}, "zkverify/MsgRegisterVerificationKey", nil)
	cdc.RegisterConcrete(&MsgSubmitProof{}, "zkverify/MsgSubmitProof", nil)
	cdc.RegisterConcrete(&MsgVerifyProof{}, "zkverify/MsgVerifyProof", nil)
	cdc.RegisterConcrete(&MsgChallengeProof{}, "zkverify/MsgChallengeProof", nil)
	cdc.RegisterConcrete(&MsgResolveChallenge{}, "zkverify/MsgResolveChallenge", nil)
	cdc.RegisterConcrete(&MsgAddValidator{}, "zkverify/MsgAddValidator", nil)
	cdc.RegisterConcrete(&MsgRemoveValidator{}, "zkverify/MsgRemoveValidator", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "zkverify/MsgUpdateParams", nil)
}

// ModuleCdc is the module-level amino codec used for sign bytes
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
