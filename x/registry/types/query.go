package types

import (
	"context"
)

// QueryServer defines the registry query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Dataset(context.Context, *QueryDatasetRequest) (*QueryDatasetResponse, error)
	Datasets(context.Context, *QueryDatasetsRequest) (*QueryDatasetsResponse, error)
	DatasetsByOwner(context.Context, *QueryDatasetsByOwnerRequest) (*QueryDatasetsByOwnerResponse, error)
}

// QueryParamsRequest requests the registry module parameters
type QueryParamsRequest struct{}

// QueryParamsResponse returns the registry module parameters
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryDatasetRequest requests a single dataset by id
type QueryDatasetRequest struct {
	DatasetId uint64 `json:"dataset_id"`
}

// QueryDatasetResponse returns a single dataset
type QueryDatasetResponse struct {
	Dataset Dataset `json:"dataset"`
}

// QueryDatasetsRequest requests the dataset list. Limit and Offset bound the
// page; a zero limit falls back to the server default.
type QueryDatasetsRequest struct {
	Offset uint64 `json:"offset,omitempty"`
	Limit  uint64 `json:"limit,omitempty"`
}

// QueryDatasetsResponse returns a page of datasets
type QueryDatasetsResponse struct {
	Datasets []Dataset `json:"datasets"`
	Total    uint64    `json:"total"`
}

// QueryDatasetsByOwnerRequest requests the dataset ids registered by an owner
type QueryDatasetsByOwnerRequest struct {
	Owner string `json:"owner"`
}

// QueryDatasetsByOwnerResponse returns the dataset ids owned by an address
type QueryDatasetsByOwnerResponse struct {
	DatasetIds []uint64 `json:"dataset_ids"`
}
