package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	paymentstypes "github.com/shepherdvovkes/AIVectorMP/x/payments/types"
)

var _ paymentstypes.QueryServer = queryServer{}

type queryServer struct {
	Keeper *Keeper
}

// NewQueryServerImpl returns an implementation of the payments QueryServer interface
func NewQueryServerImpl(keeper *Keeper) paymentstypes.QueryServer {
	return queryServer{Keeper: keeper}
}

// Params returns the payments module parameters
func (qs queryServer) Params(goCtx context.Context, req *paymentstypes.QueryParamsRequest) (*paymentstypes.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &paymentstypes.QueryParamsResponse{Params: qs.Keeper.GetParams(ctx)}, nil
}

// Payment returns the payment record for a query id
func (qs queryServer) Payment(goCtx context.Context, req *paymentstypes.QueryPaymentRequest) (*paymentstypes.QueryPaymentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.QueryId == 0 {
		return nil, status.Error(codes.InvalidArgument, "query id cannot be zero")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	payment, found := qs.Keeper.GetPayment(ctx, req.QueryId)
	if !found {
		return nil, status.Error(codes.NotFound, fmt.Sprintf("payment for query %d not found", req.QueryId))
	}

	return &paymentstypes.QueryPaymentResponse{Payment: payment}, nil
}

// Escrow returns the escrow record for a query id
func (qs queryServer) Escrow(goCtx context.Context, req *paymentstypes.QueryEscrowRequest) (*paymentstypes.QueryEscrowResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.QueryId == 0 {
		return nil, status.Error(codes.InvalidArgument, "query id cannot be zero")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	escrow, found := qs.Keeper.GetEscrow(ctx, req.QueryId)
	if !found {
		return nil, status.Error(codes.NotFound, fmt.Sprintf("escrow for query %d not found", req.QueryId))
	}

	return &paymentstypes.QueryEscrowResponse{Escrow: escrow}, nil
}

// PaymentsByConsumer returns the query ids paid by a consumer
func (qs queryServer) PaymentsByConsumer(goCtx context.Context, req *paymentstypes.QueryPaymentsByConsumerRequest) (*paymentstypes.QueryPaymentsByConsumerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	consumer, err := sdk.AccAddressFromBech32(req.Consumer)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid consumer address: %s", err))
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &paymentstypes.QueryPaymentsByConsumerResponse{
		QueryIds: qs.Keeper.GetPaymentsByConsumer(ctx, consumer),
	}, nil
}
