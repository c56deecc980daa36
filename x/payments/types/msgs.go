package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type identifiers
const (
	TypeMsgCreatePayment = "create_payment"
	TypeMsgReleaseEscrow = "release_escrow"
	TypeMsgRefundPayment = "refund_payment"
	TypeMsgUpdateParams  = "update_params"
)

// MsgCreatePayment pays for one dataset query. PaidAmount is moved into the
// module account; any excess over the dataset price is returned to the
// consumer within the same operation.
type MsgCreatePayment struct {
	Creator    string   `json:"creator"`
	DatasetId  uint64   `json:"dataset_id"`
	PaidAmount math.Int `json:"paid_amount"`
}

// NewMsgCreatePayment creates a new MsgCreatePayment instance
func NewMsgCreatePayment(creator string, datasetID uint64, paidAmount math.Int) *MsgCreatePayment {
	return &MsgCreatePayment{
		Creator:    creator,
		DatasetId:  datasetID,
		PaidAmount: paidAmount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreatePayment) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCreatePayment) Type() string { return TypeMsgCreatePayment }

// GetSigners implements the sdk.Msg interface
func (msg MsgCreatePayment) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreatePayment) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreatePayment) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if msg.DatasetId == 0 {
		return sdkerrors.Wrap(ErrInvalidParameters, "dataset id cannot be zero")
	}
	if msg.PaidAmount.IsNil() || !msg.PaidAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidParameters, "paid amount must be positive")
	}
	return nil
}

// MsgReleaseEscrow releases a matured escrow to the provider. Anyone may call
// it; the gating is on payment status and release time, not on identity.
type MsgReleaseEscrow struct {
	Creator string `json:"creator"`
	QueryId uint64 `json:"query_id"`
}

// Route implements the sdk.Msg interface
func (msg MsgReleaseEscrow) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgReleaseEscrow) Type() string { return TypeMsgReleaseEscrow }

// GetSigners implements the sdk.Msg interface
func (msg MsgReleaseEscrow) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgReleaseEscrow) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgReleaseEscrow) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if msg.QueryId == 0 {
		return sdkerrors.Wrap(ErrInvalidParameters, "query id cannot be zero")
	}
	return nil
}

// MsgRefundPayment refunds a non-completed payment to the consumer.
// Restricted to the module authority; the challenge-accept path uses the
// keeper capability directly instead of this message.
type MsgRefundPayment struct {
	Authority string `json:"authority"`
	QueryId   uint64 `json:"query_id"`
}

// Route implements the sdk.Msg interface
func (msg MsgRefundPayment) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRefundPayment) Type() string { return TypeMsgRefundPayment }

// GetSigners implements the sdk.Msg interface
func (msg MsgRefundPayment) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRefundPayment) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRefundPayment) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if msg.QueryId == 0 {
		return sdkerrors.Wrap(ErrInvalidParameters, "query id cannot be zero")
	}
	return nil
}

// MsgUpdateParams replaces the payments module parameters (authority only)
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// Route implements the sdk.Msg interface
func (msg MsgUpdateParams) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgUpdateParams) Type() string { return TypeMsgUpdateParams }

// GetSigners implements the sdk.Msg interface
func (msg MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgUpdateParams) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if err := msg.Params.Validate(); err != nil {
		return sdkerrors.Wrapf(ErrInvalidParameters, "%s", err)
	}
	return nil
}
