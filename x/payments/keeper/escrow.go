package keeper

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	paymentstypes "github.com/shepherdvovkes/AIVectorMP/x/payments/types"
)

// ReleaseEscrow settles a matured escrow: the platform fee goes to the fee
// collector and the remainder to the provider, then the escrow record is
// deleted. Anyone may trigger the release; the gate is payment status and
// release time. A failed provider transfer aborts the operation with the
// escrow intact so the release can be retried.
func (k Keeper) ReleaseEscrow(ctx sdk.Context, queryID uint64) error {
	escrow, found := k.GetEscrow(ctx, queryID)
	if !found {
		return sdkerrors.Wrapf(paymentstypes.ErrEscrowNotFound, "query %d", queryID)
	}

	payment, found := k.GetPayment(ctx, queryID)
	if !found {
		return sdkerrors.Wrapf(paymentstypes.ErrPaymentNotFound, "query %d", queryID)
	}

	now := ctx.BlockTime()
	if payment.Status != paymentstypes.PaymentStatusCompleted {
		return sdkerrors.Wrapf(paymentstypes.ErrEscrowNotReady,
			"query %d payment is %s, release requires completed", queryID, payment.Status)
	}
	if now.Before(escrow.ReleaseTime) {
		return sdkerrors.Wrapf(paymentstypes.ErrEscrowNotReady,
			"query %d releasable at %s, now %s", queryID, escrow.ReleaseTime, now)
	}

	provider, err := sdk.AccAddressFromBech32(escrow.Provider)
	if err != nil {
		return sdkerrors.Wrapf(paymentstypes.ErrInvalidAddress, "escrow provider: %s", err)
	}

	params := k.GetParams(ctx)
	providerAmount, platformFee := SplitFee(escrow.Amount, params.PlatformFeeBps)

	if providerAmount.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(params.Denom, providerAmount))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, paymentstypes.ModuleName, provider, coins); err != nil {
			return sdkerrors.Wrapf(paymentstypes.ErrTransferFailed, "provider payout: %s", err)
		}
	}
	if platformFee.IsPositive() {
		fee := sdk.NewCoins(sdk.NewCoin(params.Denom, platformFee))
		if err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, paymentstypes.ModuleName, authtypes.FeeCollectorName, fee); err != nil {
			return sdkerrors.Wrapf(paymentstypes.ErrTransferFailed, "platform fee: %s", err)
		}
	}

	k.deleteEscrow(ctx, queryID)

	k.metrics.EscrowsReleased.WithLabelValues(params.Denom).Inc()
	k.metrics.PlatformFees.WithLabelValues(params.Denom).Add(floatAmount(platformFee))
	k.metrics.EscrowLocked.WithLabelValues(params.Denom).Sub(floatAmount(escrow.Amount))

	ctx.Logger().Info("escrow released",
		"query_id", queryID, "provider", escrow.Provider,
		"provider_amount", providerAmount.String(), "platform_fee", platformFee.String())

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			paymentstypes.EventTypeEscrowReleased,
			sdk.NewAttribute(paymentstypes.AttributeKeyQueryID, fmt.Sprintf("%d", queryID)),
			sdk.NewAttribute(paymentstypes.AttributeKeyProvider, escrow.Provider),
			sdk.NewAttribute(paymentstypes.AttributeKeyProviderAmount, providerAmount.String()),
			sdk.NewAttribute(paymentstypes.AttributeKeyPlatformFee, platformFee.String()),
		),
	)

	return nil
}
