package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	paymentstypes "github.com/shepherdvovkes/AIVectorMP/x/payments/types"
)

// RegisterInvariants registers all payments module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(paymentstypes.ModuleName, "escrow-backing",
		EscrowBackingInvariant(k))
	ir.RegisterRoute(paymentstypes.ModuleName, "escrow-payment-match",
		EscrowPaymentMatchInvariant(k))
}

// AllInvariants runs all invariants of the payments module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := EscrowBackingInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return EscrowPaymentMatchInvariant(k)(ctx)
	}
}

// EscrowBackingInvariant checks that the module account holds at least the
// sum of all live escrow amounts. The balance may exceed the sum when an
// excess refund transfer failed and the excess stayed in the module account.
func EscrowBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params := k.GetParams(ctx)

		totalEscrow := sdk.NewCoins()
		for _, escrow := range k.GetAllEscrows(ctx) {
			totalEscrow = totalEscrow.Add(sdk.NewCoin(params.Denom, escrow.Amount))
		}

		moduleAddr := authtypes.NewModuleAddress(paymentstypes.ModuleName)
		balance := k.bankKeeper.GetAllBalances(ctx, moduleAddr)

		if !balance.IsAllGTE(totalEscrow) {
			return sdk.FormatInvariant(
				paymentstypes.ModuleName, "escrow-backing",
				fmt.Sprintf("module balance %s below total escrowed %s", balance, totalEscrow),
			), true
		}
		return sdk.FormatInvariant(
			paymentstypes.ModuleName, "escrow-backing",
			fmt.Sprintf("module balance %s covers total escrowed %s", balance, totalEscrow),
		), false
	}
}

// EscrowPaymentMatchInvariant checks that every escrow has a matching
// unsettled payment: a refunded payment with a live escrow means funds were
// returned without releasing the hold.
func EscrowPaymentMatchInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, escrow := range k.GetAllEscrows(ctx) {
			payment, found := k.GetPayment(ctx, escrow.QueryId)
			if !found {
				return sdk.FormatInvariant(
					paymentstypes.ModuleName, "escrow-payment-match",
					fmt.Sprintf("escrow %d has no payment", escrow.QueryId),
				), true
			}
			if payment.Status == paymentstypes.PaymentStatusRefunded {
				return sdk.FormatInvariant(
					paymentstypes.ModuleName, "escrow-payment-match",
					fmt.Sprintf("escrow %d still live but payment refunded", escrow.QueryId),
				), true
			}
			if !escrow.Amount.Equal(payment.Amount) {
				return sdk.FormatInvariant(
					paymentstypes.ModuleName, "escrow-payment-match",
					fmt.Sprintf("escrow %d amount %s != payment amount %s",
						escrow.QueryId, escrow.Amount, payment.Amount),
				), true
			}
		}
		return sdk.FormatInvariant(
			paymentstypes.ModuleName, "escrow-payment-match",
			"all escrows match unsettled payments",
		), false
	}
}
