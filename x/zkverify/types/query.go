package types

import (
	"context"
)

// QueryServer defines the zkverify query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	VerificationKey(context.Context, *QueryVerificationKeyRequest) (*QueryVerificationKeyResponse, error)
	Proof(context.Context, *QueryProofRequest) (*QueryProofResponse, error)
	ProofByQuery(context.Context, *QueryProofByQueryRequest) (*QueryProofByQueryResponse, error)
	Challenge(context.Context, *QueryChallengeRequest) (*QueryChallengeResponse, error)
	ProofChallenges(context.Context, *QueryProofChallengesRequest) (*QueryProofChallengesResponse, error)
	Validators(context.Context, *QueryValidatorsRequest) (*QueryValidatorsResponse, error)
}

// QueryParamsRequest requests the zkverify module parameters
type QueryParamsRequest struct{}

// QueryParamsResponse returns the zkverify module parameters
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryVerificationKeyRequest requests a verification key by content hash
type QueryVerificationKeyRequest struct {
	KeyHash []byte `json:"key_hash"`
}

// QueryVerificationKeyResponse returns a single verification key
type QueryVerificationKeyResponse struct {
	VerificationKey VerificationKey `json:"verification_key"`
}

// QueryProofRequest requests a proof by id
type QueryProofRequest struct {
	ProofId uint64 `json:"proof_id"`
}

// QueryProofResponse returns a single proof
type QueryProofResponse struct {
	Proof ZKProof `json:"proof"`
}

// QueryProofByQueryRequest requests the proof bound to a query id
type QueryProofByQueryRequest struct {
	QueryId uint64 `json:"query_id"`
}

// QueryProofByQueryResponse returns the proof bound to a query
type QueryProofByQueryResponse struct {
	Proof ZKProof `json:"proof"`
}

// QueryChallengeRequest requests a challenge by id
type QueryChallengeRequest struct {
	ChallengeId uint64 `json:"challenge_id"`
}

// QueryChallengeResponse returns a single challenge
type QueryChallengeResponse struct {
	Challenge Challenge `json:"challenge"`
}

// QueryProofChallengesRequest requests the challenge ids raised against a proof
type QueryProofChallengesRequest struct {
	ProofId uint64 `json:"proof_id"`
}

// QueryProofChallengesResponse returns the challenge ids for a proof
type QueryProofChallengesResponse struct {
	ChallengeIds []uint64 `json:"challenge_ids"`
}

// QueryValidatorsRequest requests the global validator allow-list
type QueryValidatorsRequest struct{}

// QueryValidatorsResponse returns the global validator allow-list
type QueryValidatorsResponse struct {
	Validators []string `json:"validators"`
}
