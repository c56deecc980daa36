package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	keepertest "github.com/shepherdvovkes/AIVectorMP/testutil/keeper"
	registrykeeper "github.com/shepherdvovkes/AIVectorMP/x/registry/keeper"
	registrytypes "github.com/shepherdvovkes/AIVectorMP/x/registry/types"
)

func TestQueryServerDatasets(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	qs := registrykeeper.NewQueryServerImpl(f.Registry)

	owner := f.FundedAddress(0x01, keepertest.Coins(0))
	var first uint64
	for i := 0; i < 3; i++ {
		id := f.RegisterDataset(t, owner, math.NewInt(50000))
		if i == 0 {
			first = id
		}
	}

	single, err := qs.Dataset(f.Ctx, &registrytypes.QueryDatasetRequest{DatasetId: first})
	require.NoError(t, err)
	require.Equal(t, owner.String(), single.Dataset.Owner)

	page, err := qs.Datasets(f.Ctx, &registrytypes.QueryDatasetsRequest{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Datasets, 2)
	require.Equal(t, uint64(3), page.Total)

	rest, err := qs.Datasets(f.Ctx, &registrytypes.QueryDatasetsRequest{Offset: 2})
	require.NoError(t, err)
	require.Len(t, rest.Datasets, 1)

	past, err := qs.Datasets(f.Ctx, &registrytypes.QueryDatasetsRequest{Offset: 10})
	require.NoError(t, err)
	require.Empty(t, past.Datasets)

	byOwner, err := qs.DatasetsByOwner(f.Ctx, &registrytypes.QueryDatasetsByOwnerRequest{Owner: owner.String()})
	require.NoError(t, err)
	require.Len(t, byOwner.DatasetIds, 3)

	_, err = qs.Dataset(f.Ctx, &registrytypes.QueryDatasetRequest{DatasetId: 99})
	st, ok := status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.NotFound, st.Code())

	_, err = qs.DatasetsByOwner(f.Ctx, &registrytypes.QueryDatasetsByOwnerRequest{Owner: "nope"})
	st, ok = status.FromError(err)
	require.True(t, ok)
	require.Equal(t, codes.InvalidArgument, st.Code())
}
