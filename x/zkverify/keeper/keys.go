package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// ProofKeyPrefix is the prefix for proof storage
	ProofKeyPrefix = []byte{0x02}

	// ProofByQueryPrefix is the unique index query id -> proof id
	ProofByQueryPrefix = []byte{0x03}

	// VerificationKeyPrefix is the prefix for verification key storage
	VerificationKeyPrefix = []byte{0x04}

	// ChallengeKeyPrefix is the prefix for challenge storage
	ChallengeKeyPrefix = []byte{0x05}

	// ChallengesByProofPrefix is the prefix for indexing challenges by proof
	ChallengesByProofPrefix = []byte{0x06}

	// ValidatorKeyPrefix is the prefix for the verification allow-list
	ValidatorKeyPrefix = []byte{0x07}

	// NextProofIDKey is the key for the next proof ID counter
	NextProofIDKey = []byte{0x08}

	// NextChallengeIDKey is the key for the next challenge ID counter
	NextChallengeIDKey = []byte{0x09}
)

// ProofKey returns the store key for a proof
func ProofKey(proofID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, proofID)
	return append(ProofKeyPrefix, bz...)
}

// ProofByQueryKey returns the unique index key for a query's proof
func ProofByQueryKey(queryID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, queryID)
	return append(ProofByQueryPrefix, bz...)
}

// VerificationKeyKey returns the store key for a verification key
func VerificationKeyKey(keyHash []byte) []byte {
	return append(VerificationKeyPrefix, keyHash...)
}

// ChallengeKey returns the store key for a challenge
func ChallengeKey(challengeID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, challengeID)
	return append(ChallengeKeyPrefix, bz...)
}

// ChallengeByProofKey returns the index key for challenges by proof
func ChallengeByProofKey(proofID, challengeID uint64) []byte {
	proofBz := make([]byte, 8)
	binary.BigEndian.PutUint64(proofBz, proofID)
	challengeBz := make([]byte, 8)
	binary.BigEndian.PutUint64(challengeBz, challengeID)
	return append(append(ChallengesByProofPrefix, proofBz...), challengeBz...)
}

// ValidatorKey returns the allow-list key for a validator
func ValidatorKey(validator sdk.AccAddress) []byte {
	return append(ValidatorKeyPrefix, validator.Bytes()...)
}

// GetIDFromBytes converts bytes to a numeric ID
func GetIDFromBytes(bz []byte) uint64 {
	return binary.BigEndian.Uint64(bz)
}
