package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x01}

	// DatasetKeyPrefix is the prefix for dataset storage
	DatasetKeyPrefix = []byte{0x02}

	// NextDatasetIDKey is the key for the next dataset ID counter
	NextDatasetIDKey = []byte{0x03}

	// DatasetsByOwnerPrefix is the prefix for indexing datasets by owner
	DatasetsByOwnerPrefix = []byte{0x04}
)

// DatasetKey returns the store key for a dataset
func DatasetKey(datasetID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, datasetID)
	return append(DatasetKeyPrefix, bz...)
}

// DatasetByOwnerKey returns the index key for datasets by owner
func DatasetByOwnerKey(owner sdk.AccAddress, datasetID uint64) []byte {
	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, datasetID)
	return append(append(DatasetsByOwnerPrefix, owner.Bytes()...), idBz...)
}

// GetDatasetIDFromBytes converts bytes to dataset ID
func GetDatasetIDFromBytes(bz []byte) uint64 {
	return binary.BigEndian.Uint64(bz)
}
