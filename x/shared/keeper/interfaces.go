// Package keeper provides shared keeper interfaces for cross-module communication.
// Versioned interfaces keep stable API contracts between modules and avoid
// circular imports between the registry, payments and zkverify modules.
package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// =============================================================================
// Registry Keeper Interfaces (Versioned)
// =============================================================================

// RegistryKeeperV1 defines the minimal dataset directory interface consumed by
// the payments module at payment creation.
// Version 1.0 - Initial release for testnet
type RegistryKeeperV1 interface {
	// GetQueryPrice returns the per-query price of an active dataset.
	GetQueryPrice(ctx context.Context, datasetID uint64) (sdkmath.Int, error)

	// GetOwner returns the dataset owner address.
	GetOwner(ctx context.Context, datasetID uint64) (sdk.AccAddress, error)

	// IsActive reports whether the dataset exists and is active.
	IsActive(ctx context.Context, datasetID uint64) bool

	// IncrementQueryCount bumps the dataset's served-query counter.
	IncrementQueryCount(ctx context.Context, datasetID uint64) error
}

// RegistryKeeperV1Extended extends V1 with validator set queries used by
// verification tooling.
type RegistryKeeperV1Extended interface {
	RegistryKeeperV1

	// GetValidators returns the dataset's validator allow-list.
	GetValidators(ctx context.Context, datasetID uint64) ([]string, error)
}

// =============================================================================
// Payments Keeper Interfaces (Versioned)
// =============================================================================

// PaymentsKeeperV1 defines the escrow ledger surface exposed to the zkverify
// module. Both calls are synchronous and run inside the caller's transaction;
// a returned error must abort the caller's whole operation.
// Version 1.0 - Initial release for testnet
type PaymentsKeeperV1 interface {
	// CompletePayment marks the payment for queryID as completed with the
	// given proof hash. Restricted to the zkverify module identity.
	CompletePayment(ctx context.Context, queryID uint64, proofHash []byte, caller string) error

	// RefundPayment returns the escrowed amount to the consumer. When called
	// with the zkverify module identity it is allowed to force a completed
	// payment back to refunded (challenge acceptance), which no other caller
	// may do.
	RefundPayment(ctx context.Context, queryID uint64, caller string) error
}
