package keeper

import (
	"context"
	"encoding/hex"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

var _ zkverifytypes.QueryServer = queryServer{}

type queryServer struct {
	Keeper *Keeper
}

// NewQueryServerImpl returns an implementation of the zkverify QueryServer interface
func NewQueryServerImpl(keeper *Keeper) zkverifytypes.QueryServer {
	return queryServer{Keeper: keeper}
}

// Params returns the zkverify module parameters
func (qs queryServer) Params(goCtx context.Context, req *zkverifytypes.QueryParamsRequest) (*zkverifytypes.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &zkverifytypes.QueryParamsResponse{Params: qs.Keeper.GetParams(ctx)}, nil
}

// VerificationKey returns a verification key by its content hash
func (qs queryServer) VerificationKey(goCtx context.Context, req *zkverifytypes.QueryVerificationKeyRequest) (*zkverifytypes.QueryVerificationKeyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if len(req.KeyHash) != zkverifytypes.HashLength {
		return nil, status.Error(codes.InvalidArgument,
			fmt.Sprintf("key hash must be %d bytes", zkverifytypes.HashLength))
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	vkey, found := qs.Keeper.GetVerificationKey(ctx, req.KeyHash)
	if !found {
		return nil, status.Error(codes.NotFound,
			fmt.Sprintf("verification key %s not found", hex.EncodeToString(req.KeyHash)))
	}

	return &zkverifytypes.QueryVerificationKeyResponse{VerificationKey: vkey}, nil
}

// Proof returns a proof by id
func (qs queryServer) Proof(goCtx context.Context, req *zkverifytypes.QueryProofRequest) (*zkverifytypes.QueryProofResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.ProofId == 0 {
		return nil, status.Error(codes.InvalidArgument, "proof id cannot be zero")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	proof, found := qs.Keeper.GetProof(ctx, req.ProofId)
	if !found {
		return nil, status.Error(codes.NotFound, fmt.Sprintf("proof %d not found", req.ProofId))
	}

	return &zkverifytypes.QueryProofResponse{Proof: proof}, nil
}

// ProofByQuery returns the proof bound to a query id
func (qs queryServer) ProofByQuery(goCtx context.Context, req *zkverifytypes.QueryProofByQueryRequest) (*zkverifytypes.QueryProofByQueryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.QueryId == 0 {
		return nil, status.Error(codes.InvalidArgument, "query id cannot be zero")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	proof, found := qs.Keeper.GetProofByQuery(ctx, req.QueryId)
	if !found {
		return nil, status.Error(codes.NotFound, fmt.Sprintf("no proof for query %d", req.QueryId))
	}

	return &zkverifytypes.QueryProofByQueryResponse{Proof: proof}, nil
}

// Challenge returns a challenge by id
func (qs queryServer) Challenge(goCtx context.Context, req *zkverifytypes.QueryChallengeRequest) (*zkverifytypes.QueryChallengeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.ChallengeId == 0 {
		return nil, status.Error(codes.InvalidArgument, "challenge id cannot be zero")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	challenge, found := qs.Keeper.GetChallenge(ctx, req.ChallengeId)
	if !found {
		return nil, status.Error(codes.NotFound, fmt.Sprintf("challenge %d not found", req.ChallengeId))
	}

	return &zkverifytypes.QueryChallengeResponse{Challenge: challenge}, nil
}

// ProofChallenges returns the challenge ids raised against a proof
func (qs queryServer) ProofChallenges(goCtx context.Context, req *zkverifytypes.QueryProofChallengesRequest) (*zkverifytypes.QueryProofChallengesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.ProofId == 0 {
		return nil, status.Error(codes.InvalidArgument, "proof id cannot be zero")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &zkverifytypes.QueryProofChallengesResponse{
		ChallengeIds: qs.Keeper.GetProofChallenges(ctx, req.ProofId),
	}, nil
}

// Validators returns the global validator allow-list
func (qs queryServer) Validators(goCtx context.Context, req *zkverifytypes.QueryValidatorsRequest) (*zkverifytypes.QueryValidatorsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &zkverifytypes.QueryValidatorsResponse{
		Validators: qs.Keeper.GetAllValidators(ctx),
	}, nil
}
