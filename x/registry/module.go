package registry

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/core/appmodule"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/shepherdvovkes/AIVectorMP/x/registry/keeper"
	registrytypes "github.com/shepherdvovkes/AIVectorMP/x/registry/types"
)

var _ appmodule.AppModule = AppModule{}

// AppModule implements the application module for the registry module.
type AppModule struct {
	keeper *keeper.Keeper
}

// NewAppModule creates a new AppModule object
func NewAppModule(keeper *keeper.Keeper) AppModule {
	return AppModule{keeper: keeper}
}

// Name returns the registry module's name.
func (AppModule) Name() string { return registrytypes.ModuleName }

// IsAppModule implements the appmodule.AppModule interface.
func (AppModule) IsAppModule() {}

// IsOnePerModuleType implements the appmodule.AppModule interface.
func (AppModule) IsOnePerModuleType() {}

// RegisterLegacyAminoCodec registers the registry module's types on the LegacyAmino codec.
func (AppModule) RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	registrytypes.RegisterCodec(cdc)
}

// DefaultGenesis returns the registry module's default genesis state.
func (AppModule) DefaultGenesis() json.RawMessage {
	bz, err := json.Marshal(registrytypes.DefaultGenesis())
	if err != nil {
		panic(err)
	}
	return bz
}

// ValidateGenesis performs genesis state validation for the registry module.
func (AppModule) ValidateGenesis(bz json.RawMessage) error {
	var genState registrytypes.GenesisState
	if err := json.Unmarshal(bz, &genState); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", registrytypes.ModuleName, err)
	}
	return genState.Validate()
}

// InitGenesis performs the registry module's genesis initialization.
func (am AppModule) InitGenesis(ctx sdk.Context, bz json.RawMessage) error {
	var genState registrytypes.GenesisState
	if err := json.Unmarshal(bz, &genState); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", registrytypes.ModuleName, err)
	}
	return am.keeper.InitGenesis(ctx, genState)
}

// ExportGenesis returns the registry module's exported genesis state.
func (am AppModule) ExportGenesis(ctx sdk.Context) (json.RawMessage, error) {
	return json.Marshal(am.keeper.ExportGenesis(ctx))
}

// ConsensusVersion implements AppModule/ConsensusVersion.
func (AppModule) ConsensusVersion() uint64 { return 1 }
