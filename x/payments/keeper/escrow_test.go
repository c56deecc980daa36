package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/shepherdvovkes/AIVectorMP/testutil/keeper"
	paymentskeeper "github.com/shepherdvovkes/AIVectorMP/x/payments/keeper"
	paymentstypes "github.com/shepherdvovkes/AIVectorMP/x/payments/types"
	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

const escrowPeriod = 7 * 24 * time.Hour

func TestReleaseEscrow(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))
	consumer := f.FundedAddress(0x02, keepertest.Coins(0))
	datasetID := f.RegisterDataset(t, owner, math.NewInt(50000))
	queryID := f.CreatePaidQuery(t, consumer, datasetID, math.NewInt(50000))

	zkverifyAddr := authtypes.NewModuleAddress(zkverifytypes.ModuleName).String()
	require.NoError(t, f.Payments.CompletePayment(f.Ctx, queryID, keepertest.HashBytes(0x33), zkverifyAddr))

	ownerBefore := f.Bank.Balance(owner)
	feesBefore := f.Bank.ModuleBalance(authtypes.FeeCollectorName)

	matured := f.WithBlockTime(keepertest.GenesisTime.Add(escrowPeriod))
	require.NoError(t, f.Payments.ReleaseEscrow(matured, queryID))

	// 2.5% platform fee, remainder to the provider
	require.Equal(t, ownerBefore.Add(keepertest.Coins(48750)...), f.Bank.Balance(owner))
	require.Equal(t, feesBefore.Add(keepertest.Coins(1250)...), f.Bank.ModuleBalance(authtypes.FeeCollectorName))

	// escrow gone, second release reports not found
	_, found := f.Payments.GetEscrow(matured, queryID)
	require.False(t, found)
	err := f.Payments.ReleaseEscrow(matured, queryID)
	require.ErrorIs(t, err, paymentstypes.ErrEscrowNotFound)

	// payment record stays completed
	payment, _ := f.Payments.GetPayment(matured, queryID)
	require.Equal(t, paymentstypes.PaymentStatusCompleted, payment.Status)
}

func TestReleaseEscrowGating(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))
	consumer := f.FundedAddress(0x02, keepertest.Coins(0))
	datasetID := f.RegisterDataset(t, owner, math.NewInt(50000))
	queryID := f.CreatePaidQuery(t, consumer, datasetID, math.NewInt(50000))

	matured := f.WithBlockTime(keepertest.GenesisTime.Add(escrowPeriod))

	// pending payment blocks release even after the hold period
	err := f.Payments.ReleaseEscrow(matured, queryID)
	require.ErrorIs(t, err, paymentstypes.ErrEscrowNotReady)

	zkverifyAddr := authtypes.NewModuleAddress(zkverifytypes.ModuleName).String()
	require.NoError(t, f.Payments.CompletePayment(f.Ctx, queryID, keepertest.HashBytes(0x33), zkverifyAddr))

	// completed payment still blocks release before the hold period ends
	early := f.WithBlockTime(keepertest.GenesisTime.Add(escrowPeriod - time.Second))
	err = f.Payments.ReleaseEscrow(early, queryID)
	require.ErrorIs(t, err, paymentstypes.ErrEscrowNotReady)

	// release at exactly the release time is allowed
	require.NoError(t, f.Payments.ReleaseEscrow(matured, queryID))
}

func TestReleaseEscrowProviderTransferFailure(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))
	consumer := f.FundedAddress(0x02, keepertest.Coins(0))
	datasetID := f.RegisterDataset(t, owner, math.NewInt(50000))
	queryID := f.CreatePaidQuery(t, consumer, datasetID, math.NewInt(50000))

	zkverifyAddr := authtypes.NewModuleAddress(zkverifytypes.ModuleName).String()
	require.NoError(t, f.Payments.CompletePayment(f.Ctx, queryID, keepertest.HashBytes(0x33), zkverifyAddr))

	f.Bank.FailTransfersTo[owner.String()] = true

	matured := f.WithBlockTime(keepertest.GenesisTime.Add(escrowPeriod))
	err := f.Payments.ReleaseEscrow(matured, queryID)
	require.ErrorIs(t, err, paymentstypes.ErrTransferFailed)

	// escrow intact, release retryable once transfers recover
	_, found := f.Payments.GetEscrow(matured, queryID)
	require.True(t, found)

	delete(f.Bank.FailTransfersTo, owner.String())
	require.NoError(t, f.Payments.ReleaseEscrow(matured, queryID))
}

func TestEscrowInvariants(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))
	consumer := f.FundedAddress(0x02, keepertest.Coins(0))
	datasetID := f.RegisterDataset(t, owner, math.NewInt(50000))
	f.CreatePaidQuery(t, consumer, datasetID, math.NewInt(50000))
	f.CreatePaidQuery(t, consumer, datasetID, math.NewInt(50000))

	_, broken := paymentskeeper.AllInvariants(*f.Payments)(f.Ctx)
	require.False(t, broken)
}
