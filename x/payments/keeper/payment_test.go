package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/shepherdvovkes/AIVectorMP/testutil/keeper"
	paymentstypes "github.com/shepherdvovkes/AIVectorMP/x/payments/types"
	registrytypes "github.com/shepherdvovkes/AIVectorMP/x/registry/types"
	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

func TestCreatePayment(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))
	consumer := f.FundedAddress(0x02, keepertest.Coins(100000))
	datasetID := f.RegisterDataset(t, owner, math.NewInt(50000))

	queryID, excessRefunded, err := f.Payments.CreatePayment(f.Ctx, consumer, datasetID, math.NewInt(50000))
	require.NoError(t, err)
	require.Equal(t, uint64(1), queryID)
	require.True(t, excessRefunded)

	payment, found := f.Payments.GetPayment(f.Ctx, queryID)
	require.True(t, found)
	require.Equal(t, paymentstypes.PaymentStatusPending, payment.Status)
	require.Equal(t, math.NewInt(50000), payment.Amount)
	require.Equal(t, consumer.String(), payment.Consumer)

	escrow, found := f.Payments.GetEscrow(f.Ctx, queryID)
	require.True(t, found)
	require.Equal(t, owner.String(), escrow.Provider)
	require.Equal(t, math.NewInt(50000), escrow.Amount)
	require.Equal(t, keepertest.GenesisTime.Add(7*24*time.Hour), escrow.ReleaseTime)

	// price moved into the module account, query counted
	require.Equal(t, keepertest.Coins(50000), f.Bank.ModuleBalance(paymentstypes.ModuleName))
	require.Equal(t, keepertest.Coins(50000), f.Bank.Balance(consumer))
	dataset, _ := f.Registry.GetDataset(f.Ctx, datasetID)
	require.Equal(t, uint64(1), dataset.TotalQueries)
}

func TestCreatePaymentExcessRefund(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))
	consumer := f.FundedAddress(0x02, keepertest.Coins(80000))
	datasetID := f.RegisterDataset(t, owner, math.NewInt(50000))

	queryID, excessRefunded, err := f.Payments.CreatePayment(f.Ctx, consumer, datasetID, math.NewInt(80000))
	require.NoError(t, err)
	require.True(t, excessRefunded)

	// escrow holds exactly the price, the excess came straight back
	payment, _ := f.Payments.GetPayment(f.Ctx, queryID)
	require.Equal(t, math.NewInt(50000), payment.Amount)
	require.Equal(t, keepertest.Coins(30000), f.Bank.Balance(consumer))
	require.Equal(t, keepertest.Coins(50000), f.Bank.ModuleBalance(paymentstypes.ModuleName))
}

func TestCreatePaymentExcessRefundFailure(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))
	consumer := f.FundedAddress(0x02, keepertest.Coins(80000))
	datasetID := f.RegisterDataset(t, owner, math.NewInt(50000))

	f.Bank.FailTransfersTo[consumer.String()] = true

	queryID, excessRefunded, err := f.Payments.CreatePayment(f.Ctx, consumer, datasetID, math.NewInt(80000))
	require.NoError(t, err)
	require.False(t, excessRefunded)

	// payment survives the failed excess refund; the excess stays with the module
	payment, found := f.Payments.GetPayment(f.Ctx, queryID)
	require.True(t, found)
	require.Equal(t, paymentstypes.PaymentStatusPending, payment.Status)
	require.Equal(t, keepertest.Coins(80000), f.Bank.ModuleBalance(paymentstypes.ModuleName))
}

func TestCreatePaymentRejections(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))
	consumer := f.FundedAddress(0x02, keepertest.Coins(100000))
	datasetID := f.RegisterDataset(t, owner, math.NewInt(50000))

	// underpayment
	_, _, err := f.Payments.CreatePayment(f.Ctx, consumer, datasetID, math.NewInt(49999))
	require.ErrorIs(t, err, paymentstypes.ErrInsufficientPayment)

	// unknown dataset
	_, _, err = f.Payments.CreatePayment(f.Ctx, consumer, 99, math.NewInt(50000))
	require.ErrorIs(t, err, registrytypes.ErrDatasetNotFound)

	// inactive dataset
	inactive := false
	require.NoError(t, f.Registry.UpdateDataset(f.Ctx, owner, datasetID, nil, &inactive))
	_, _, err = f.Payments.CreatePayment(f.Ctx, consumer, datasetID, math.NewInt(50000))
	require.ErrorIs(t, err, registrytypes.ErrDatasetInactive)
}

func TestCompletePaymentRestrictedToProofRegistry(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))
	consumer := f.FundedAddress(0x02, keepertest.Coins(100000))
	datasetID := f.RegisterDataset(t, owner, math.NewInt(50000))
	queryID := f.CreatePaidQuery(t, consumer, datasetID, math.NewInt(50000))

	proofHash := keepertest.HashBytes(0x33)
	zkverifyAddr := authtypes.NewModuleAddress(zkverifytypes.ModuleName).String()

	// neither the consumer nor the authority may complete
	err := f.Payments.CompletePayment(f.Ctx, queryID, proofHash, consumer.String())
	require.ErrorIs(t, err, paymentstypes.ErrNotAuthorized)
	err = f.Payments.CompletePayment(f.Ctx, queryID, proofHash, f.Authority)
	require.ErrorIs(t, err, paymentstypes.ErrNotAuthorized)

	require.NoError(t, f.Payments.CompletePayment(f.Ctx, queryID, proofHash, zkverifyAddr))

	payment, _ := f.Payments.GetPayment(f.Ctx, queryID)
	require.Equal(t, paymentstypes.PaymentStatusCompleted, payment.Status)
	require.Equal(t, proofHash, payment.ProofHash)

	// completion is single-shot
	err = f.Payments.CompletePayment(f.Ctx, queryID, proofHash, zkverifyAddr)
	require.ErrorIs(t, err, paymentstypes.ErrPaymentAlreadyCompleted)

	// unknown query
	err = f.Payments.CompletePayment(f.Ctx, 99, proofHash, zkverifyAddr)
	require.ErrorIs(t, err, paymentstypes.ErrPaymentNotFound)
}

func TestRefundPayment(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))
	consumer := f.FundedAddress(0x02, keepertest.Coins(0))
	datasetID := f.RegisterDataset(t, owner, math.NewInt(50000))
	queryID := f.CreatePaidQuery(t, consumer, datasetID, math.NewInt(50000))

	// a random account may not refund
	err := f.Payments.RefundPayment(f.Ctx, queryID, consumer.String())
	require.ErrorIs(t, err, paymentstypes.ErrNotAuthorized)

	require.NoError(t, f.Payments.RefundPayment(f.Ctx, queryID, f.Authority))

	payment, _ := f.Payments.GetPayment(f.Ctx, queryID)
	require.Equal(t, paymentstypes.PaymentStatusRefunded, payment.Status)
	require.Equal(t, keepertest.Coins(50000), f.Bank.Balance(consumer))

	_, found := f.Payments.GetEscrow(f.Ctx, queryID)
	require.False(t, found)

	// refunds are single-shot
	err = f.Payments.RefundPayment(f.Ctx, queryID, f.Authority)
	require.ErrorIs(t, err, paymentstypes.ErrPaymentAlreadyRefunded)
}

func TestRefundCompletedPaymentRequiresProofRegistry(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))
	consumer := f.FundedAddress(0x02, keepertest.Coins(0))
	datasetID := f.RegisterDataset(t, owner, math.NewInt(50000))
	queryID := f.CreatePaidQuery(t, consumer, datasetID, math.NewInt(50000))

	zkverifyAddr := authtypes.NewModuleAddress(zkverifytypes.ModuleName).String()
	require.NoError(t, f.Payments.CompletePayment(f.Ctx, queryID, keepertest.HashBytes(0x33), zkverifyAddr))

	// the authority cannot unwind a settled payment
	err := f.Payments.RefundPayment(f.Ctx, queryID, f.Authority)
	require.ErrorIs(t, err, paymentstypes.ErrPaymentAlreadyCompleted)

	// the proof registry can (challenge acceptance path)
	require.NoError(t, f.Payments.RefundPayment(f.Ctx, queryID, zkverifyAddr))
	payment, _ := f.Payments.GetPayment(f.Ctx, queryID)
	require.Equal(t, paymentstypes.PaymentStatusRefunded, payment.Status)
	require.Equal(t, keepertest.Coins(50000), f.Bank.Balance(consumer))
}

func TestPaymentsByConsumerIndex(t *testing.T) {
	f := keepertest.MarketplaceKeepers(t)
	owner := f.FundedAddress(0x01, keepertest.Coins(2000000))
	consumer := f.FundedAddress(0x02, keepertest.Coins(0))
	other := f.FundedAddress(0x03, keepertest.Coins(0))
	datasetID := f.RegisterDataset(t, owner, math.NewInt(50000))

	first := f.CreatePaidQuery(t, consumer, datasetID, math.NewInt(50000))
	second := f.CreatePaidQuery(t, consumer, datasetID, math.NewInt(50000))
	f.CreatePaidQuery(t, other, datasetID, math.NewInt(50000))

	require.Equal(t, []uint64{first, second}, f.Payments.GetPaymentsByConsumer(f.Ctx, consumer))
	require.Len(t, f.Payments.GetAllPayments(f.Ctx), 3)
}
