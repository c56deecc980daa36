package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	registrytypes "github.com/shepherdvovkes/AIVectorMP/x/registry/types"
)

var _ registrytypes.QueryServer = queryServer{}

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

type queryServer struct {
	Keeper *Keeper
}

// NewQueryServerImpl returns an implementation of the registry QueryServer interface
func NewQueryServerImpl(keeper *Keeper) registrytypes.QueryServer {
	return queryServer{Keeper: keeper}
}

// sanitizeLimit enforces default and max page sizes to prevent unbounded queries.
func sanitizeLimit(limit uint64) uint64 {
	if limit == 0 {
		return defaultPaginationLimit
	}
	if limit > maxPaginationLimit {
		return maxPaginationLimit
	}
	return limit
}

// Params returns the registry module parameters
func (qs queryServer) Params(goCtx context.Context, req *registrytypes.QueryParamsRequest) (*registrytypes.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &registrytypes.QueryParamsResponse{Params: qs.Keeper.GetParams(ctx)}, nil
}

// Dataset returns a single dataset by id
func (qs queryServer) Dataset(goCtx context.Context, req *registrytypes.QueryDatasetRequest) (*registrytypes.QueryDatasetResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.DatasetId == 0 {
		return nil, status.Error(codes.InvalidArgument, "dataset id cannot be zero")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	dataset, found := qs.Keeper.GetDataset(ctx, req.DatasetId)
	if !found {
		return nil, status.Error(codes.NotFound, fmt.Sprintf("dataset %d not found", req.DatasetId))
	}

	return &registrytypes.QueryDatasetResponse{Dataset: dataset}, nil
}

// Datasets returns a page of all registered datasets
func (qs queryServer) Datasets(goCtx context.Context, req *registrytypes.QueryDatasetsRequest) (*registrytypes.QueryDatasetsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	all := qs.Keeper.GetAllDatasets(ctx)
	total := uint64(len(all))

	limit := sanitizeLimit(req.Limit)
	if req.Offset >= total {
		return &registrytypes.QueryDatasetsResponse{Datasets: []registrytypes.Dataset{}, Total: total}, nil
	}

	end := req.Offset + limit
	if end > total {
		end = total
	}

	return &registrytypes.QueryDatasetsResponse{Datasets: all[req.Offset:end], Total: total}, nil
}

// DatasetsByOwner returns the dataset ids registered by an owner
func (qs queryServer) DatasetsByOwner(goCtx context.Context, req *registrytypes.QueryDatasetsByOwnerRequest) (*registrytypes.QueryDatasetsByOwnerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	owner, err := sdk.AccAddressFromBech32(req.Owner)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid owner address: %s", err))
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &registrytypes.QueryDatasetsByOwnerResponse{
		DatasetIds: qs.Keeper.GetDatasetsByOwner(ctx, owner),
	}, nil
}
