package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type identifiers
const (
	TypeMsgRegisterDataset    = "register_dataset"
	TypeMsgUpdateDataset      = "update_dataset"
	TypeMsgAddValidator       = "add_validator"
	TypeMsgSetRegistrationFee = "set_registration_fee"
)

// MsgRegisterDataset registers a new dataset in the directory. PaidFee is the
// value attached to the message; it must cover the registration fee.
type MsgRegisterDataset struct {
	Creator       string   `json:"creator"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	EmbeddingRoot []byte   `json:"embedding_root"`
	MetadataHash  []byte   `json:"metadata_hash"`
	PricePerQuery math.Int `json:"price_per_query"`
	PaidFee       math.Int `json:"paid_fee"`
}

// NewMsgRegisterDataset creates a new MsgRegisterDataset instance
func NewMsgRegisterDataset(creator, name, description string, embeddingRoot, metadataHash []byte, price, paidFee math.Int) *MsgRegisterDataset {
	return &MsgRegisterDataset{
		Creator:       creator,
		Name:          name,
		Description:   description,
		EmbeddingRoot: embeddingRoot,
		MetadataHash:  metadataHash,
		PricePerQuery: price,
		PaidFee:       paidFee,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRegisterDataset) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRegisterDataset) Type() string { return TypeMsgRegisterDataset }

// GetSigners implements the sdk.Msg interface
func (msg MsgRegisterDataset) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRegisterDataset) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRegisterDataset) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if msg.Name == "" {
		return sdkerrors.Wrap(ErrInvalidParameters, "name cannot be empty")
	}
	if len(msg.Name) > MaxNameLength {
		return sdkerrors.Wrapf(ErrInvalidParameters, "name exceeds %d characters", MaxNameLength)
	}
	if len(msg.Description) > MaxDescriptionLength {
		return sdkerrors.Wrapf(ErrInvalidParameters, "description exceeds %d characters", MaxDescriptionLength)
	}
	if len(msg.EmbeddingRoot) != HashLength {
		return sdkerrors.Wrapf(ErrInvalidParameters, "embedding root must be %d bytes", HashLength)
	}
	if len(msg.MetadataHash) != HashLength {
		return sdkerrors.Wrapf(ErrInvalidParameters, "metadata hash must be %d bytes", HashLength)
	}
	if msg.PricePerQuery.IsNil() || !msg.PricePerQuery.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidParameters, "price per query must be positive")
	}
	if msg.PaidFee.IsNil() || msg.PaidFee.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidParameters, "paid fee must be non-negative")
	}
	return nil
}

// MsgUpdateDataset updates the price and/or active flag of a dataset. A nil
// PricePerQuery or Active pointer leaves the field unchanged.
type MsgUpdateDataset struct {
	Creator       string    `json:"creator"`
	DatasetId     uint64    `json:"dataset_id"`
	PricePerQuery *math.Int `json:"price_per_query,omitempty"`
	Active        *bool     `json:"active,omitempty"`
}

// Route implements the sdk.Msg interface
func (msg MsgUpdateDataset) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgUpdateDataset) Type() string { return TypeMsgUpdateDataset }

// GetSigners implements the sdk.Msg interface
func (msg MsgUpdateDataset) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgUpdateDataset) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgUpdateDataset) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if msg.DatasetId == 0 {
		return sdkerrors.Wrap(ErrInvalidParameters, "dataset id cannot be zero")
	}
	if msg.PricePerQuery == nil && msg.Active == nil {
		return sdkerrors.Wrap(ErrInvalidParameters, "nothing to update")
	}
	if msg.PricePerQuery != nil && !msg.PricePerQuery.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidParameters, "price per query must be positive")
	}
	return nil
}

// MsgAddValidator adds a validator node to a dataset's validator list.
type MsgAddValidator struct {
	Creator   string `json:"creator"`
	DatasetId uint64 `json:"dataset_id"`
	Validator string `json:"validator"`
}

// Route implements the sdk.Msg interface
func (msg MsgAddValidator) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgAddValidator) Type() string { return TypeMsgAddValidator }

// GetSigners implements the sdk.Msg interface
func (msg MsgAddValidator) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddValidator) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddValidator) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if msg.DatasetId == 0 {
		return sdkerrors.Wrap(ErrInvalidParameters, "dataset id cannot be zero")
	}
	if _, err := sdk.AccAddressFromBech32(msg.Validator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid validator address: %s", err)
	}
	return nil
}

// MsgSetRegistrationFee updates the dataset registration fee (authority only).
type MsgSetRegistrationFee struct {
	Authority string   `json:"authority"`
	Fee       math.Int `json:"fee"`
}

// Route implements the sdk.Msg interface
func (msg MsgSetRegistrationFee) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetRegistrationFee) Type() string { return TypeMsgSetRegistrationFee }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetRegistrationFee) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetRegistrationFee) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetRegistrationFee) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if msg.Fee.IsNil() || msg.Fee.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidParameters, "fee must be non-negative")
	}
	return nil
}
