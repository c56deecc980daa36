package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Payments module sentinel errors
var (
	ErrInsufficientPayment     = sdkerrors.Register(ModuleName, 2, "paid amount below query price")
	ErrPaymentNotFound         = sdkerrors.Register(ModuleName, 3, "payment not found")
	ErrPaymentAlreadyCompleted = sdkerrors.Register(ModuleName, 4, "payment not in pending status")
	ErrNotAuthorized           = sdkerrors.Register(ModuleName, 5, "caller not authorized")
	ErrEscrowNotFound          = sdkerrors.Register(ModuleName, 6, "escrow not found")
	ErrEscrowNotReady          = sdkerrors.Register(ModuleName, 7, "escrow not ready for release")
	ErrTransferFailed          = sdkerrors.Register(ModuleName, 8, "value transfer failed")
	ErrInvalidAddress          = sdkerrors.Register(ModuleName, 9, "invalid address")
	ErrInvalidParameters       = sdkerrors.Register(ModuleName, 10, "invalid parameters")
	ErrPaymentAlreadyRefunded  = sdkerrors.Register(ModuleName, 11, "payment already refunded")
)
