package zkverify

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/core/appmodule"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/shepherdvovkes/AIVectorMP/x/zkverify/keeper"
	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

var _ appmodule.AppModule = AppModule{}

// AppModule implements the application module for the zkverify module.
type AppModule struct {
	keeper *keeper.Keeper
}

// NewAppModule creates a new AppModule object
func NewAppModule(keeper *keeper.Keeper) AppModule {
	return AppModule{keeper: keeper}
}

// Name returns the zkverify module's name.
func (AppModule) Name() string { return zkverifytypes.ModuleName }

// IsAppModule implements the appmodule.AppModule interface.
func (AppModule) IsAppModule() {}

// IsOnePerModuleType implements the appmodule.AppModule interface.
func (AppModule) IsOnePerModuleType() {}

// RegisterLegacyAminoCodec registers the zkverify module's types on the LegacyAmino codec.
func (AppModule) RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	zkverifytypes.RegisterCodec(cdc)
}

// RegisterInvariants registers the zkverify module's invariants.
func (am AppModule) RegisterInvariants(ir sdk.InvariantRegistry) {
	keeper.RegisterInvariants(ir, *am.keeper)
}

// DefaultGenesis returns the zkverify module's default genesis state.
func (AppModule) DefaultGenesis() json.RawMessage {
	bz, err := json.Marshal(zkverifytypes.DefaultGenesis())
	if err != nil {
		panic(err)
	}
	return bz
}

// ValidateGenesis performs genesis state validation for the zkverify module.
func (AppModule) ValidateGenesis(bz json.RawMessage) error {
	var genState zkverifytypes.GenesisState
	if err := json.Unmarshal(bz, &genState); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", zkverifytypes.ModuleName, err)
	}
	return genState.Validate()
}

// InitGenesis performs the zkverify module's genesis initialization.
func (am AppModule) InitGenesis(ctx sdk.Context, bz json.RawMessage) error {
	var genState zkverifytypes.GenesisState
	if err := json.Unmarshal(bz, &genState); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", zkverifytypes.ModuleName, err)
	}
	return am.keeper.InitGenesis(ctx, genState)
}

// ExportGenesis returns the zkverify module's exported genesis state.
func (am AppModule) ExportGenesis(ctx sdk.Context) (json.RawMessage, error) {
	return json.Marshal(am.keeper.ExportGenesis(ctx))
}

// ConsensusVersion implements AppModule/ConsensusVersion.
func (AppModule) ConsensusVersion() uint64 { return 1 }
