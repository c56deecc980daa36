package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Zkverify module sentinel errors
var (
	ErrProofNotFound            = sdkerrors.Register(ModuleName, 2, "proof not found")
	ErrProofAlreadyVerified     = sdkerrors.Register(ModuleName, 3, "proof already submitted or processed")
	ErrVerificationKeyNotFound  = sdkerrors.Register(ModuleName, 4, "verification key not found")
	ErrDuplicateVerificationKey = sdkerrors.Register(ModuleName, 5, "verification key already registered")
	ErrUnsupportedCircuitType   = sdkerrors.Register(ModuleName, 6, "no verifier for circuit type")
	ErrInsufficientStake        = sdkerrors.Register(ModuleName, 7, "challenge stake below minimum")
	ErrChallengeNotFound        = sdkerrors.Register(ModuleName, 8, "challenge not found")
	ErrChallengePeriodExpired   = sdkerrors.Register(ModuleName, 9, "challenge period expired")
	ErrInvalidChallenge         = sdkerrors.Register(ModuleName, 10, "challenge not valid for proof state")
	ErrNotAuthorized            = sdkerrors.Register(ModuleName, 11, "caller not authorized")
	ErrTransferFailed           = sdkerrors.Register(ModuleName, 12, "value transfer failed")
	ErrInvalidAddress           = sdkerrors.Register(ModuleName, 13, "invalid address")
	ErrInvalidParameters        = sdkerrors.Register(ModuleName, 14, "invalid parameters")
	ErrValidatorExists          = sdkerrors.Register(ModuleName, 15, "validator already allow-listed")
	ErrValidatorNotFound        = sdkerrors.Register(ModuleName, 16, "validator not allow-listed")
)
