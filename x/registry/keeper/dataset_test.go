package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/shepherdvovkes/AIVectorMP/testutil/keeper"
	registrytypes "github.com/shepherdvovkes/AIVectorMP/x/registry/types"
)

func TestRegisterDataset(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))

	id, err := f.Registry.RegisterDataset(f.Ctx, owner,
		"embeddings-wiki-en", "wikipedia sentence embeddings",
		keepertest.HashBytes(0xaa), keepertest.HashBytes(0xbb),
		math.NewInt(50000), math.NewInt(1000000))
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	dataset, found := f.Registry.GetDataset(f.Ctx, id)
	require.True(t, found)
	require.Equal(t, owner.String(), dataset.Owner)
	require.True(t, dataset.Active)
	require.Equal(t, uint64(0), dataset.TotalQueries)
	require.Equal(t, math.NewInt(50000), dataset.PricePerQuery)

	// registration fee moved to the fee collector
	require.Equal(t, keepertest.Coins(1000000), f.Bank.ModuleBalance("fee_collector"))
	require.Equal(t, keepertest.Coins(1000000), f.Bank.Balance(owner))

	// ids are sequential
	f.Bank.FundAccount(owner, keepertest.Coins(1000000))
	id2, err := f.Registry.RegisterDataset(f.Ctx, owner,
		"embeddings-news", "news embeddings",
		keepertest.HashBytes(0xcc), keepertest.HashBytes(0xdd),
		math.NewInt(10000), math.NewInt(1000000))
	require.NoError(t, err)
	require.Equal(t, uint64(2), id2)
}

func TestRegisterDatasetInsufficientFee(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))

	_, err := f.Registry.RegisterDataset(f.Ctx, owner,
		"embeddings-wiki-en", "",
		keepertest.HashBytes(0xaa), keepertest.HashBytes(0xbb),
		math.NewInt(50000), math.NewInt(999999))
	require.ErrorIs(t, err, registrytypes.ErrInsufficientFee)
}

func TestUpdateDataset(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))
	stranger := f.FundedAddress(0x02, keepertest.Coins(0))
	id := f.RegisterDataset(t, owner, math.NewInt(50000))

	newPrice := math.NewInt(75000)
	inactive := false
	require.NoError(t, f.Registry.UpdateDataset(f.Ctx, owner, id, &newPrice, &inactive))

	dataset, found := f.Registry.GetDataset(f.Ctx, id)
	require.True(t, found)
	require.Equal(t, newPrice, dataset.PricePerQuery)
	require.False(t, dataset.Active)

	// nil fields leave values unchanged
	require.NoError(t, f.Registry.UpdateDataset(f.Ctx, owner, id, nil, nil))
	dataset, _ = f.Registry.GetDataset(f.Ctx, id)
	require.Equal(t, newPrice, dataset.PricePerQuery)
	require.False(t, dataset.Active)

	// only the owner may update
	err := f.Registry.UpdateDataset(f.Ctx, stranger, id, &newPrice, nil)
	require.ErrorIs(t, err, registrytypes.ErrNotOwner)

	// zero price rejected
	zero := math.ZeroInt()
	err = f.Registry.UpdateDataset(f.Ctx, owner, id, &zero, nil)
	require.ErrorIs(t, err, registrytypes.ErrInvalidParameters)

	// unknown dataset
	err = f.Registry.UpdateDataset(f.Ctx, owner, 99, &newPrice, nil)
	require.ErrorIs(t, err, registrytypes.ErrDatasetNotFound)
}

func TestDatasetValidators(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))
	stranger := f.FundedAddress(0x02, keepertest.Coins(0))
	id := f.RegisterDataset(t, owner, math.NewInt(50000))

	validator := sdk.AccAddress(keepertest.HashBytes(0x05)[:20]).String()
	require.NoError(t, f.Registry.AddValidator(f.Ctx, owner, id, validator))

	validators, err := f.Registry.GetValidators(f.Ctx, id)
	require.NoError(t, err)
	require.Equal(t, []string{validator}, validators)

	// duplicates rejected
	err = f.Registry.AddValidator(f.Ctx, owner, id, validator)
	require.ErrorIs(t, err, registrytypes.ErrValidatorAlreadyExists)

	// owner-gated
	err = f.Registry.AddValidator(f.Ctx, stranger, id, validator)
	require.ErrorIs(t, err, registrytypes.ErrNotOwner)
}

func TestQueryPriceAndActivity(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))
	id := f.RegisterDataset(t, owner, math.NewInt(50000))

	price, err := f.Registry.GetQueryPrice(f.Ctx, id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50000), price)
	require.True(t, f.Registry.IsActive(f.Ctx, id))

	inactive := false
	require.NoError(t, f.Registry.UpdateDataset(f.Ctx, owner, id, nil, &inactive))

	_, err = f.Registry.GetQueryPrice(f.Ctx, id)
	require.ErrorIs(t, err, registrytypes.ErrDatasetInactive)
	require.False(t, f.Registry.IsActive(f.Ctx, id))

	_, err = f.Registry.GetQueryPrice(f.Ctx, 99)
	require.ErrorIs(t, err, registrytypes.ErrDatasetNotFound)
	require.False(t, f.Registry.IsActive(f.Ctx, 99))
}

func TestIncrementQueryCount(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))
	id := f.RegisterDataset(t, owner, math.NewInt(50000))

	require.NoError(t, f.Registry.IncrementQueryCount(f.Ctx, id))
	require.NoError(t, f.Registry.IncrementQueryCount(f.Ctx, id))

	dataset, _ := f.Registry.GetDataset(f.Ctx, id)
	require.Equal(t, uint64(2), dataset.TotalQueries)

	require.ErrorIs(t, f.Registry.IncrementQueryCount(f.Ctx, 99), registrytypes.ErrDatasetNotFound)
}

func TestDatasetsByOwnerIndex(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(4000000))
	other := f.FundedAddress(0x02, keepertest.Coins(2000000))

	first := f.RegisterDataset(t, owner, math.NewInt(50000))
	second := f.RegisterDataset(t, owner, math.NewInt(60000))
	f.RegisterDataset(t, other, math.NewInt(70000))

	require.Equal(t, []uint64{first, second}, f.Registry.GetDatasetsByOwner(f.Ctx, owner))
	require.Len(t, f.Registry.GetAllDatasets(f.Ctx), 3)
}
