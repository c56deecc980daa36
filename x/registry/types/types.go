package types

import (
	"time"

	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "registry"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the registry module
	RouterKey = ModuleName

	// MaxNameLength bounds dataset names to keep state entries small
	MaxNameLength = 128

	// MaxDescriptionLength bounds dataset descriptions
	MaxDescriptionLength = 1024

	// HashLength is the required length of embedding roots and metadata hashes
	HashLength = 32
)

// Dataset holds the directory record for a registered vector dataset. The
// payments module reads price and owner from it at payment creation; the
// record itself is mutated only by its owner and never deleted.
type Dataset struct {
	Id            uint64    `json:"id"`
	Owner         string    `json:"owner"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	EmbeddingRoot []byte    `json:"embedding_root"`
	MetadataHash  []byte    `json:"metadata_hash"`
	PricePerQuery math.Int  `json:"price_per_query"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	TotalQueries  uint64    `json:"total_queries"`
	Validators    []string  `json:"validators,omitempty"`
}

// HasValidator reports whether addr is in the dataset's validator list.
func (d Dataset) HasValidator(addr string) bool {
	for _, v := range d.Validators {
		if v == addr {
			return true
		}
	}
	return false
}
