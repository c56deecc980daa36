package types

import (
	"time"

	"cosmossdk.io/math"
)

const (
	// ModuleName defines the payments module name
	ModuleName = "payments"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// PaymentStatus enumerates the payment lifecycle states
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusDisputed  PaymentStatus = "disputed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Valid reports whether the status is one of the defined lifecycle states
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusDisputed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Payment records a consumer's payment for a single dataset query. The amount
// is fixed to the dataset price at creation time. Status only moves forward,
// except the challenge-accept path which forces Completed back to Refunded.
type Payment struct {
	QueryId   uint64        `json:"query_id"`
	DatasetId uint64        `json:"dataset_id"`
	Consumer  string        `json:"consumer"`
	Amount    math.Int      `json:"amount"`
	CreatedAt time.Time     `json:"created_at"`
	Status    PaymentStatus `json:"status"`
	ProofHash []byte        `json:"proof_hash,omitempty"`
}

// Escrow holds the consumer's funds for a query until the proof settles.
// The record's existence is the "funds are held" invariant: it is deleted
// when the escrow is released to the provider or refunded to the consumer.
type Escrow struct {
	QueryId     uint64    `json:"query_id"`
	Consumer    string    `json:"consumer"`
	Provider    string    `json:"provider"`
	Amount      math.Int  `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	ReleaseTime time.Time `json:"release_time"`
}
