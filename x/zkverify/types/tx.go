package types

import (
	"context"
)

// MsgServer defines the zkverify message server interface
type MsgServer interface {
	RegisterVerificationKey(context.Context, *MsgRegisterVerificationKey) (*MsgRegisterVerificationKeyResponse, error)
	SubmitProof(context.Context, *MsgSubmitProof) (*MsgSubmitProofResponse, error)
	VerifyProof(context.Context, *MsgVerifyProof) (*MsgVerifyProofResponse, error)
	ChallengeProof(context.Context, *MsgChallengeProof) (*MsgChallengeProofResponse, error)
	ResolveChallenge(context.Context, *MsgResolveChallenge) (*MsgResolveChallengeResponse, error)
	AddValidator(context.Context, *MsgAddValidator) (*MsgAddValidatorResponse, error)
	RemoveValidator(context.Context, *MsgRemoveValidator) (*MsgRemoveValidatorResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// MsgRegisterVerificationKeyResponse returns the content-address of the key
type MsgRegisterVerificationKeyResponse struct {
	KeyHash []byte `json:"key_hash"`
}

// MsgSubmitProofResponse returns the id assigned to the submitted proof
type MsgSubmitProofResponse struct {
	ProofId uint64 `json:"proof_id"`
}

// MsgVerifyProofResponse reports the verification outcome
type MsgVerifyProofResponse struct {
	Valid bool `json:"valid"`
}

// MsgChallengeProofResponse returns the id of the new challenge
type MsgChallengeProofResponse struct {
	ChallengeId uint64 `json:"challenge_id"`
}

// MsgResolveChallengeResponse defines the response for ResolveChallenge
type MsgResolveChallengeResponse struct{}

// MsgAddValidatorResponse defines the response for AddValidator
type MsgAddValidatorResponse struct{}

// MsgRemoveValidatorResponse defines the response for RemoveValidator
type MsgRemoveValidatorResponse struct{}

// MsgUpdateParamsResponse defines the response for UpdateParams
type MsgUpdateParamsResponse struct{}
