package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState holds the registry module genesis data
type GenesisState struct {
	Params        Params    `json:"params"`
	Datasets      []Dataset `json:"datasets"`
	NextDatasetId uint64    `json:"next_dataset_id"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:        DefaultParams(),
		Datasets:      []Dataset{},
		NextDatasetId: 1,
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seen := make(map[uint64]bool)
	for i, ds := range gs.Datasets {
		if ds.Id == 0 {
			return fmt.Errorf("dataset %d: id cannot be zero", i)
		}
		if seen[ds.Id] {
			return fmt.Errorf("dataset %d: duplicate dataset id %d", i, ds.Id)
		}
		seen[ds.Id] = true

		if ds.Id >= gs.NextDatasetId {
			return fmt.Errorf("dataset %d: id %d not below next dataset id %d", i, ds.Id, gs.NextDatasetId)
		}
		if _, err := sdk.AccAddressFromBech32(ds.Owner); err != nil {
			return fmt.Errorf("dataset %d (id=%d): invalid owner address %s: %w", i, ds.Id, ds.Owner, err)
		}
		if ds.Name == "" {
			return fmt.Errorf("dataset %d (id=%d): name cannot be empty", i, ds.Id)
		}
		if ds.PricePerQuery.IsNil() || !ds.PricePerQuery.IsPositive() {
			return fmt.Errorf("dataset %d (id=%d): price per query must be positive", i, ds.Id)
		}
		for _, v := range ds.Validators {
			if _, err := sdk.AccAddressFromBech32(v); err != nil {
				return fmt.Errorf("dataset %d (id=%d): invalid validator address %s: %w", i, ds.Id, v, err)
			}
		}
	}

	if gs.NextDatasetId == 0 {
		return fmt.Errorf("next dataset id cannot be zero")
	}
	return nil
}
