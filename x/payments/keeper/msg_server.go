package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	paymentstypes "github.com/shepherdvovkes/AIVectorMP/x/payments/types"
	sharedkeeper "github.com/shepherdvovkes/AIVectorMP/x/shared/keeper"
)

type msgServer struct {
	Keeper *Keeper
}

// NewMsgServerImpl returns an implementation of the payments MsgServer interface
func NewMsgServerImpl(keeper *Keeper) paymentstypes.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ paymentstypes.MsgServer = msgServer{}

// CreatePayment handles query payment creation
func (m msgServer) CreatePayment(goCtx context.Context, msg *paymentstypes.MsgCreatePayment) (*paymentstypes.MsgCreatePaymentResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	consumer, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, sdkerrors.Wrapf(paymentstypes.ErrInvalidAddress, "creator: %s", err)
	}

	queryID, excessRefunded, err := m.Keeper.CreatePayment(ctx, consumer, msg.DatasetId, msg.PaidAmount)
	if err != nil {
		return nil, err
	}

	return &paymentstypes.MsgCreatePaymentResponse{
		QueryId:        queryID,
		ExcessRefunded: excessRefunded,
	}, nil
}

// ReleaseEscrow handles escrow release after the hold period
func (m msgServer) ReleaseEscrow(goCtx context.Context, msg *paymentstypes.MsgReleaseEscrow) (*paymentstypes.MsgReleaseEscrowResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := m.Keeper.ReleaseEscrow(ctx, msg.QueryId); err != nil {
		return nil, err
	}

	return &paymentstypes.MsgReleaseEscrowResponse{}, nil
}

// RefundPayment handles authority-initiated refunds
func (m msgServer) RefundPayment(goCtx context.Context, msg *paymentstypes.MsgRefundPayment) (*paymentstypes.MsgRefundPaymentResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := sharedkeeper.ValidateAuthority(m.Keeper.GetAuthority(), msg.Authority); err != nil {
		return nil, err
	}

	if err := m.Keeper.RefundPayment(ctx, msg.QueryId, msg.Authority); err != nil {
		return nil, err
	}

	return &paymentstypes.MsgRefundPaymentResponse{}, nil
}

// UpdateParams handles parameter updates from the authority
func (m msgServer) UpdateParams(goCtx context.Context, msg *paymentstypes.MsgUpdateParams) (*paymentstypes.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := sharedkeeper.ValidateAuthority(m.Keeper.GetAuthority(), msg.Authority); err != nil {
		return nil, err
	}

	if err := m.Keeper.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(paymentstypes.EventTypeParamsUpdated))

	return &paymentstypes.MsgUpdateParamsResponse{}, nil
}
