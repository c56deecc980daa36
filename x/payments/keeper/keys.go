package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// PaymentKeyPrefix is the prefix for payment storage
	PaymentKeyPrefix = []byte{0x02}

	// EscrowKeyPrefix is the prefix for escrow storage
	EscrowKeyPrefix = []byte{0x03}

	// NextQueryIDKey is the key for the next query ID counter
	NextQueryIDKey = []byte{0x04}

	// PaymentsByConsumerPrefix is the prefix for indexing payments by consumer
	PaymentsByConsumerPrefix = []byte{0x05}
)

// PaymentKey returns the store key for a payment
func PaymentKey(queryID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, queryID)
	return append(PaymentKeyPrefix, bz...)
}

// EscrowKey returns the store key for an escrow
func EscrowKey(queryID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, queryID)
	return append(EscrowKeyPrefix, bz...)
}

// PaymentByConsumerKey returns the index key for payments by consumer
func PaymentByConsumerKey(consumer sdk.AccAddress, queryID uint64) []byte {
	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, queryID)
	return append(append(PaymentsByConsumerPrefix, consumer.Bytes()...), idBz...)
}

// GetQueryIDFromBytes converts bytes to query ID
func GetQueryIDFromBytes(bz []byte) uint64 {
	return binary.BigEndian.Uint64(bz)
}
