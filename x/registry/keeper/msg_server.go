package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	registrytypes "github.com/shepherdvovkes/AIVectorMP/x/registry/types"
	sharedkeeper "github.com/shepherdvovkes/AIVectorMP/x/shared/keeper"
)

type msgServer struct {
	Keeper *Keeper
}

// NewMsgServerImpl returns an implementation of the registry MsgServer interface
func NewMsgServerImpl(keeper *Keeper) registrytypes.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ registrytypes.MsgServer = msgServer{}

// RegisterDataset handles dataset registration
func (m msgServer) RegisterDataset(goCtx context.Context, msg *registrytypes.MsgRegisterDataset) (*registrytypes.MsgRegisterDatasetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, sdkerrors.Wrapf(registrytypes.ErrInvalidAddress, "creator: %s", err)
	}

	datasetID, err := m.Keeper.RegisterDataset(ctx, creator, msg.Name, msg.Description,
		msg.EmbeddingRoot, msg.MetadataHash, msg.PricePerQuery, msg.PaidFee)
	if err != nil {
		return nil, err
	}

	return &registrytypes.MsgRegisterDatasetResponse{DatasetId: datasetID}, nil
}

// UpdateDataset handles dataset price/active updates
func (m msgServer) UpdateDataset(goCtx context.Context, msg *registrytypes.MsgUpdateDataset) (*registrytypes.MsgUpdateDatasetResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, sdkerrors.Wrapf(registrytypes.ErrInvalidAddress, "creator: %s", err)
	}

	if err := m.Keeper.UpdateDataset(ctx, creator, msg.DatasetId, msg.PricePerQuery, msg.Active); err != nil {
		return nil, err
	}

	return &registrytypes.MsgUpdateDatasetResponse{}, nil
}

// AddValidator handles adding a validator node to a dataset
func (m msgServer) AddValidator(goCtx context.Context, msg *registrytypes.MsgAddValidator) (*registrytypes.MsgAddValidatorResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, sdkerrors.Wrapf(registrytypes.ErrInvalidAddress, "creator: %s", err)
	}

	if err := m.Keeper.AddValidator(ctx, creator, msg.DatasetId, msg.Validator); err != nil {
		return nil, err
	}

	return &registrytypes.MsgAddValidatorResponse{}, nil
}

// SetRegistrationFee handles registration fee updates from the authority
func (m msgServer) SetRegistrationFee(goCtx context.Context, msg *registrytypes.MsgSetRegistrationFee) (*registrytypes.MsgSetRegistrationFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := sharedkeeper.ValidateAuthority(m.Keeper.GetAuthority(), msg.Authority); err != nil {
		return nil, err
	}

	params := m.Keeper.GetParams(ctx)
	params.RegistrationFee = msg.Fee
	if err := m.Keeper.SetParams(ctx, params); err != nil {
		return nil, err
	}

	return &registrytypes.MsgSetRegistrationFeeResponse{}, nil
}
