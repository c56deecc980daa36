package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Registry module sentinel errors
var (
	ErrDatasetNotFound        = sdkerrors.Register(ModuleName, 2, "dataset not found")
	ErrNotOwner               = sdkerrors.Register(ModuleName, 3, "caller is not the dataset owner")
	ErrNotAuthorized          = sdkerrors.Register(ModuleName, 4, "caller not authorized")
	ErrInsufficientFee        = sdkerrors.Register(ModuleName, 5, "insufficient registration fee")
	ErrDatasetInactive        = sdkerrors.Register(ModuleName, 6, "dataset is not active")
	ErrValidatorAlreadyExists = sdkerrors.Register(ModuleName, 7, "validator already registered for dataset")
	ErrInvalidParameters      = sdkerrors.Register(ModuleName, 8, "invalid dataset parameters")
	ErrInvalidAddress         = sdkerrors.Register(ModuleName, 9, "invalid address")
	ErrTransferFailed         = sdkerrors.Register(ModuleName, 10, "fee transfer failed")
)
