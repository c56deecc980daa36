package types_test

import (
	"bytes"
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	registrytypes "github.com/shepherdvovkes/AIVectorMP/x/registry/types"
)

func validRegistryGenesis() registrytypes.GenesisState {
	return registrytypes.GenesisState{
		Params: registrytypes.DefaultParams(),
		Datasets: []registrytypes.Dataset{{
			Id:            1,
			Owner:         testAddr,
			Name:          "embeddings-wiki-en",
			EmbeddingRoot: bytes.Repeat([]byte{0xaa}, 32),
			MetadataHash:  bytes.Repeat([]byte{0xbb}, 32),
			PricePerQuery: math.NewInt(50000),
			Active:        true,
			CreatedAt:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Validators:    []string{testAddr},
		}},
		NextDatasetId: 2,
	}
}

func TestRegistryGenesisValidate(t *testing.T) {
	require.NoError(t, validRegistryGenesis().Validate())
	require.NoError(t, registrytypes.DefaultGenesis().Validate())
}

func TestRegistryGenesisValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*registrytypes.GenesisState)
	}{
		{"zero dataset id", func(gs *registrytypes.GenesisState) { gs.Datasets[0].Id = 0 }},
		{"duplicate dataset id", func(gs *registrytypes.GenesisState) { gs.Datasets = append(gs.Datasets, gs.Datasets[0]) }},
		{"id above counter", func(gs *registrytypes.GenesisState) { gs.NextDatasetId = 1 }},
		{"bad owner", func(gs *registrytypes.GenesisState) { gs.Datasets[0].Owner = "nope" }},
		{"empty name", func(gs *registrytypes.GenesisState) { gs.Datasets[0].Name = "" }},
		{"nil price", func(gs *registrytypes.GenesisState) { gs.Datasets[0].PricePerQuery = math.Int{} }},
		{"non-positive price", func(gs *registrytypes.GenesisState) { gs.Datasets[0].PricePerQuery = math.ZeroInt() }},
		{"bad validator", func(gs *registrytypes.GenesisState) { gs.Datasets[0].Validators = []string{"nope"} }},
		{"bad params", func(gs *registrytypes.GenesisState) { gs.Params.Denom = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := validRegistryGenesis()
			tt.mutate(&gs)
			require.Error(t, gs.Validate())
		})
	}
}
