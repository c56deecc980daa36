package types

import (
	"time"

	"cosmossdk.io/math"
)

const (
	// ModuleName defines the zkverify module name
	ModuleName = "zkverify"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// Circuit type tags dispatching to registered verifiers
const (
	CircuitTypeGroth16BN254 = "groth16-bn254"
	CircuitTypeStructural   = "structural"
)

// ProofStatus enumerates the proof lifecycle states
type ProofStatus string

const (
	ProofStatusPending    ProofStatus = "pending"
	ProofStatusVerified   ProofStatus = "verified"
	ProofStatusRejected   ProofStatus = "rejected"
	ProofStatusChallenged ProofStatus = "challenged"
)

// Valid reports whether the status is one of the defined lifecycle states
func (s ProofStatus) Valid() bool {
	switch s {
	case ProofStatusPending, ProofStatusVerified, ProofStatusRejected, ProofStatusChallenged:
		return true
	}
	return false
}

// ChallengeStatus enumerates the challenge lifecycle states
type ChallengeStatus string

const (
	ChallengeStatusActive    ChallengeStatus = "active"
	ChallengeStatusResolved  ChallengeStatus = "resolved"
	ChallengeStatusDismissed ChallengeStatus = "dismissed"
)

// Valid reports whether the status is one of the defined lifecycle states
func (s ChallengeStatus) Valid() bool {
	switch s {
	case ChallengeStatusActive, ChallengeStatusResolved, ChallengeStatusDismissed:
		return true
	}
	return false
}

// ZKProof records a submitted execution proof bound 1:1 to a query. Status is
// advanced only by verification and challenge resolution: Pending goes to
// Verified or Rejected, Verified toggles with Challenged, and Rejected is
// terminal.
type ZKProof struct {
	ProofId       uint64      `json:"proof_id"`
	QueryId       uint64      `json:"query_id"`
	DatasetId     uint64      `json:"dataset_id"`
	Prover        string      `json:"prover"`
	ProofData     []byte      `json:"proof_data"`
	PublicInputs  []byte      `json:"public_inputs"`
	VkeyHash      []byte      `json:"vkey_hash"`
	ChallengeHash []byte      `json:"challenge_hash,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	Status        ProofStatus `json:"status"`
	RejectReason  string      `json:"reject_reason,omitempty"`
}

// VerificationKey is a content-addressed, immutable verifying key. KeyHash is
// the sha256 of KeyData; registering the same data twice is rejected.
type VerificationKey struct {
	KeyHash     []byte    `json:"key_hash"`
	KeyData     []byte    `json:"key_data"`
	CircuitType string    `json:"circuit_type"`
	Owner       string    `json:"owner"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Challenge is a stake-backed dispute against a verified proof. Resolution
// either accepts it (proof rejected, payment refunded, stake returned) or
// dismisses it (proof reopened, stake forfeited).
type Challenge struct {
	ChallengeId        uint64          `json:"challenge_id"`
	ProofId            uint64          `json:"proof_id"`
	Challenger         string          `json:"challenger"`
	Stake              math.Int        `json:"stake"`
	Reason             string          `json:"reason"`
	CreatedAt          time.Time       `json:"created_at"`
	ResolutionDeadline time.Time       `json:"resolution_deadline"`
	Status             ChallengeStatus `json:"status"`
}

// Verifier is the pluggable proof-verification capability, selected by the
// verification key's circuit type. Implementations must be pure: same inputs,
// same answer, no state reads.
type Verifier interface {
	// Verify checks proof against publicInputs under keyData. A false return
	// with nil error is a definite rejection; an error is a malformed input
	// (also treated as rejection by the caller, with the error as reason).
	Verify(proof, publicInputs, keyData []byte) (bool, error)
}
