package keeper

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	paymentstypes "github.com/shepherdvovkes/AIVectorMP/x/payments/types"
)

// GetNextQueryID returns the next query ID and increments the counter
func (k Keeper) GetNextQueryID(ctx sdk.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(NextQueryIDKey)

	var id uint64 = 1
	if bz != nil {
		id = GetQueryIDFromBytes(bz)
	}

	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, id+1)
	store.Set(NextQueryIDKey, idBz)

	return id
}

// SetNextQueryID sets the query ID counter, used during genesis import
func (k Keeper) SetNextQueryID(ctx sdk.Context, id uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	store.Set(NextQueryIDKey, bz)
}

// SetPayment persists a payment and maintains the consumer index
func (k Keeper) SetPayment(ctx sdk.Context, payment paymentstypes.Payment) error {
	store := k.getStore(ctx)

	bz, err := json.Marshal(payment)
	if err != nil {
		return fmt.Errorf("failed to marshal payment %d: %w", payment.QueryId, err)
	}
	store.Set(PaymentKey(payment.QueryId), bz)

	consumer, err := sdk.AccAddressFromBech32(payment.Consumer)
	if err != nil {
		return sdkerrors.Wrapf(paymentstypes.ErrInvalidAddress, "payment consumer: %s", err)
	}
	store.Set(PaymentByConsumerKey(consumer, payment.QueryId), []byte{1})

	return nil
}

// GetPayment retrieves a payment by query ID
func (k Keeper) GetPayment(ctx sdk.Context, queryID uint64) (paymentstypes.Payment, bool) {
	store := k.getStore(ctx)
	bz := store.Get(PaymentKey(queryID))
	if bz == nil {
		return paymentstypes.Payment{}, false
	}

	var payment paymentstypes.Payment
	if err := json.Unmarshal(bz, &payment); err != nil {
		return paymentstypes.Payment{}, false
	}
	return payment, true
}

// GetAllPayments returns every payment in the store, used for genesis export
// and invariant checks.
func (k Keeper) GetAllPayments(ctx sdk.Context) []paymentstypes.Payment {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PaymentKeyPrefix)
	defer iterator.Close()

	var payments []paymentstypes.Payment
	for ; iterator.Valid(); iterator.Next() {
		var payment paymentstypes.Payment
		if err := json.Unmarshal(iterator.Value(), &payment); err != nil {
			continue
		}
		payments = append(payments, payment)
	}
	return payments
}

// GetPaymentsByConsumer returns the query IDs of all payments made by a consumer
func (k Keeper) GetPaymentsByConsumer(ctx sdk.Context, consumer sdk.AccAddress) []uint64 {
	store := k.getStore(ctx)
	prefix := append(PaymentsByConsumerPrefix, consumer.Bytes()...)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var ids []uint64
	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		ids = append(ids, GetQueryIDFromBytes(key[len(key)-8:]))
	}
	return ids
}

// SetEscrow persists an escrow record
func (k Keeper) SetEscrow(ctx sdk.Context, escrow paymentstypes.Escrow) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(escrow)
	if err != nil {
		return fmt.Errorf("failed to marshal escrow %d: %w", escrow.QueryId, err)
	}
	store.Set(EscrowKey(escrow.QueryId), bz)
	return nil
}

// GetEscrow retrieves an escrow by query ID
func (k Keeper) GetEscrow(ctx sdk.Context, queryID uint64) (paymentstypes.Escrow, bool) {
	store := k.getStore(ctx)
	bz := store.Get(EscrowKey(queryID))
	if bz == nil {
		return paymentstypes.Escrow{}, false
	}

	var escrow paymentstypes.Escrow
	if err := json.Unmarshal(bz, &escrow); err != nil {
		return paymentstypes.Escrow{}, false
	}
	return escrow, true
}

// GetAllEscrows returns every escrow in the store
func (k Keeper) GetAllEscrows(ctx sdk.Context) []paymentstypes.Escrow {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, EscrowKeyPrefix)
	defer iterator.Close()

	var escrows []paymentstypes.Escrow
	for ; iterator.Valid(); iterator.Next() {
		var escrow paymentstypes.Escrow
		if err := json.Unmarshal(iterator.Value(), &escrow); err != nil {
			continue
		}
		escrows = append(escrows, escrow)
	}
	return escrows
}

func (k Keeper) deleteEscrow(ctx sdk.Context, queryID uint64) {
	store := k.getStore(ctx)
	store.Delete(EscrowKey(queryID))
}

// CreatePayment charges a consumer for one dataset query. The full paid
// amount moves into the module account; the escrow holds exactly the dataset
// price and any excess is returned to the consumer in the same operation.
//
// An excess-refund transfer failure is reported through the returned
// excessRefunded flag and an event, but does not roll back payment creation:
// the consumer's principal is already safely escrowed and the excess stays
// recoverable in the module account.
func (k Keeper) CreatePayment(
	ctx sdk.Context,
	consumer sdk.AccAddress,
	datasetID uint64,
	paid math.Int,
) (queryID uint64, excessRefunded bool, err error) {
	price, err := k.registryKeeper.GetQueryPrice(ctx, datasetID)
	if err != nil {
		return 0, false, err
	}
	if paid.LT(price) {
		return 0, false, sdkerrors.Wrapf(paymentstypes.ErrInsufficientPayment,
			"paid %s, dataset %d price is %s", paid, datasetID, price)
	}

	provider, err := k.registryKeeper.GetOwner(ctx, datasetID)
	if err != nil {
		return 0, false, err
	}

	params := k.GetParams(ctx)
	coins := sdk.NewCoins(sdk.NewCoin(params.Denom, paid))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, consumer, paymentstypes.ModuleName, coins); err != nil {
		return 0, false, sdkerrors.Wrapf(paymentstypes.ErrTransferFailed, "escrow funding: %s", err)
	}

	now := ctx.BlockTime()
	queryID = k.GetNextQueryID(ctx)

	payment := paymentstypes.Payment{
		QueryId:   queryID,
		DatasetId: datasetID,
		Consumer:  consumer.String(),
		Amount:    price,
		CreatedAt: now,
		Status:    paymentstypes.PaymentStatusPending,
	}
	if err := k.SetPayment(ctx, payment); err != nil {
		return 0, false, err
	}

	escrow := paymentstypes.Escrow{
		QueryId:     queryID,
		Consumer:    consumer.String(),
		Provider:    provider.String(),
		Amount:      price,
		CreatedAt:   now,
		ReleaseTime: now.Add(time.Duration(params.EscrowPeriodSeconds) * time.Second),
	}
	if err := k.SetEscrow(ctx, escrow); err != nil {
		return 0, false, err
	}

	if err := k.registryKeeper.IncrementQueryCount(ctx, datasetID); err != nil {
		return 0, false, err
	}

	// Return any excess over the price inside the same operation. Failure is
	// reported, not fatal: the principal payment must survive.
	excess := paid.Sub(price)
	excessRefunded = true
	if excess.IsPositive() {
		refund := sdk.NewCoins(sdk.NewCoin(params.Denom, excess))
		if refundErr := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, paymentstypes.ModuleName, consumer, refund); refundErr != nil {
			excessRefunded = false
			ctx.Logger().Error("excess refund transfer failed",
				"query_id", queryID, "consumer", consumer.String(),
				"excess", excess.String(), "error", refundErr)
			ctx.EventManager().EmitEvent(
				sdk.NewEvent(
					paymentstypes.EventTypeExcessRefundFailed,
					sdk.NewAttribute(paymentstypes.AttributeKeyQueryID, fmt.Sprintf("%d", queryID)),
					sdk.NewAttribute(paymentstypes.AttributeKeyExcess, excess.String()),
					sdk.NewAttribute(paymentstypes.AttributeKeyError, refundErr.Error()),
				),
			)
		}
	}

	k.metrics.PaymentsCreated.WithLabelValues(params.Denom).Inc()
	k.metrics.EscrowLocked.WithLabelValues(params.Denom).Add(floatAmount(price))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			paymentstypes.EventTypePaymentCreated,
			sdk.NewAttribute(paymentstypes.AttributeKeyQueryID, fmt.Sprintf("%d", queryID)),
			sdk.NewAttribute(paymentstypes.AttributeKeyDatasetID, fmt.Sprintf("%d", datasetID)),
			sdk.NewAttribute(paymentstypes.AttributeKeyConsumer, consumer.String()),
			sdk.NewAttribute(paymentstypes.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(paymentstypes.AttributeKeyAmount, price.String()),
		),
	)

	return queryID, excessRefunded, nil
}

// CompletePayment marks a pending payment as completed with its proof hash.
// Restricted to the zkverify module identity; invoked synchronously from
// proof verification, so a returned error aborts the verification too.
func (k Keeper) CompletePayment(goCtx context.Context, queryID uint64, proofHash []byte, caller string) error {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if caller != k.proofRegistryAddr {
		return sdkerrors.Wrapf(paymentstypes.ErrNotAuthorized,
			"complete payment restricted to the proof registry, got %s", caller)
	}

	payment, found := k.GetPayment(ctx, queryID)
	if !found {
		return sdkerrors.Wrapf(paymentstypes.ErrPaymentNotFound, "query %d", queryID)
	}
	if payment.Status != paymentstypes.PaymentStatusPending {
		return sdkerrors.Wrapf(paymentstypes.ErrPaymentAlreadyCompleted,
			"query %d is %s", queryID, payment.Status)
	}

	payment.Status = paymentstypes.PaymentStatusCompleted
	payment.ProofHash = proofHash
	if err := k.SetPayment(ctx, payment); err != nil {
		return err
	}

	k.metrics.PaymentsCompleted.Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			paymentstypes.EventTypePaymentCompleted,
			sdk.NewAttribute(paymentstypes.AttributeKeyQueryID, fmt.Sprintf("%d", queryID)),
			sdk.NewAttribute(paymentstypes.AttributeKeyProofHash, hex.EncodeToString(proofHash)),
		),
	)

	return nil
}

// RefundPayment returns the escrowed amount to the consumer and deletes the
// escrow. The authority may refund any payment that has not completed; the
// zkverify module identity may additionally force a completed payment back to
// refunded, which is the single sanctioned Completed to Refunded transition
// (challenge acceptance).
func (k Keeper) RefundPayment(goCtx context.Context, queryID uint64, caller string) error {
	ctx := sdk.UnwrapSDKContext(goCtx)

	forced := caller == k.proofRegistryAddr
	if !forced && caller != k.authority {
		return sdkerrors.Wrapf(paymentstypes.ErrNotAuthorized,
			"refund restricted to the authority or the proof registry, got %s", caller)
	}

	payment, found := k.GetPayment(ctx, queryID)
	if !found {
		return sdkerrors.Wrapf(paymentstypes.ErrPaymentNotFound, "query %d", queryID)
	}
	if payment.Status == paymentstypes.PaymentStatusRefunded {
		return sdkerrors.Wrapf(paymentstypes.ErrPaymentAlreadyRefunded, "query %d", queryID)
	}
	if payment.Status == paymentstypes.PaymentStatusCompleted && !forced {
		return sdkerrors.Wrapf(paymentstypes.ErrPaymentAlreadyCompleted,
			"query %d already settled, refund requires challenge acceptance", queryID)
	}

	escrow, found := k.GetEscrow(ctx, queryID)
	if !found {
		return sdkerrors.Wrapf(paymentstypes.ErrEscrowNotFound, "query %d", queryID)
	}

	consumer, err := sdk.AccAddressFromBech32(escrow.Consumer)
	if err != nil {
		return sdkerrors.Wrapf(paymentstypes.ErrInvalidAddress, "escrow consumer: %s", err)
	}

	params := k.GetParams(ctx)
	refund := sdk.NewCoins(sdk.NewCoin(params.Denom, escrow.Amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, paymentstypes.ModuleName, consumer, refund); err != nil {
		return sdkerrors.Wrapf(paymentstypes.ErrTransferFailed, "refund: %s", err)
	}

	k.deleteEscrow(ctx, queryID)

	payment.Status = paymentstypes.PaymentStatusRefunded
	if err := k.SetPayment(ctx, payment); err != nil {
		return err
	}

	k.metrics.PaymentsRefunded.Inc()
	k.metrics.EscrowLocked.WithLabelValues(params.Denom).Sub(floatAmount(escrow.Amount))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			paymentstypes.EventTypePaymentRefunded,
			sdk.NewAttribute(paymentstypes.AttributeKeyQueryID, fmt.Sprintf("%d", queryID)),
			sdk.NewAttribute(paymentstypes.AttributeKeyConsumer, escrow.Consumer),
			sdk.NewAttribute(paymentstypes.AttributeKeyAmount, escrow.Amount.String()),
		),
	)

	return nil
}
