package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type identifiers
const (
	TypeMsgRegisterVerificationKey = "register_verification_key"
	TypeMsgSubmitProof             = "submit_proof"
	TypeMsgVerifyProof             = "verify_proof"
	TypeMsgChallengeProof          = "challenge_proof"
	TypeMsgResolveChallenge        = "resolve_challenge"
	TypeMsgAddValidator            = "add_validator"
	TypeMsgRemoveValidator         = "remove_validator"
	TypeMsgUpdateParams            = "update_params"
)

// MaxProofSize bounds submitted proof blobs
const MaxProofSize = 16 * 1024

// MaxPublicInputsSize bounds submitted public-input blobs
const MaxPublicInputsSize = 16 * 1024

// MaxReasonLength bounds challenge reason text
const MaxReasonLength = 512

// HashLength is the byte length of content-address hashes
const HashLength = 32

// MsgRegisterVerificationKey registers an immutable, content-addressed
// verifying key for a circuit type.
type MsgRegisterVerificationKey struct {
	Creator     string `json:"creator"`
	KeyData     []byte `json:"key_data"`
	CircuitType string `json:"circuit_type"`
}

// Route implements the sdk.Msg interface
func (msg MsgRegisterVerificationKey) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRegisterVerificationKey) Type() string { return TypeMsgRegisterVerificationKey }

// GetSigners implements the sdk.Msg interface
func (msg MsgRegisterVerificationKey) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRegisterVerificationKey) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRegisterVerificationKey) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if len(msg.KeyData) == 0 {
		return sdkerrors.Wrap(ErrInvalidParameters, "key data cannot be empty")
	}
	if msg.CircuitType == "" {
		return sdkerrors.Wrap(ErrInvalidParameters, "circuit type cannot be empty")
	}
	return nil
}

// MsgSubmitProof submits an execution proof for a paid query. At most one
// proof may ever be submitted per query id.
type MsgSubmitProof struct {
	Creator       string `json:"creator"`
	QueryId       uint64 `json:"query_id"`
	DatasetId     uint64 `json:"dataset_id"`
	ProofData     []byte `json:"proof_data"`
	PublicInputs  []byte `json:"public_inputs"`
	VkeyHash      []byte `json:"vkey_hash"`
	ChallengeHash []byte `json:"challenge_hash,omitempty"`
}

// Route implements the sdk.Msg interface
func (msg MsgSubmitProof) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSubmitProof) Type() string { return TypeMsgSubmitProof }

// GetSigners implements the sdk.Msg interface
func (msg MsgSubmitProof) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSubmitProof) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSubmitProof) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if msg.QueryId == 0 {
		return sdkerrors.Wrap(ErrInvalidParameters, "query id cannot be zero")
	}
	if msg.DatasetId == 0 {
		return sdkerrors.Wrap(ErrInvalidParameters, "dataset id cannot be zero")
	}
	if len(msg.ProofData) == 0 {
		return sdkerrors.Wrap(ErrInvalidParameters, "proof data cannot be empty")
	}
	if len(msg.ProofData) > MaxProofSize {
		return sdkerrors.Wrapf(ErrInvalidParameters, "proof data exceeds %d bytes", MaxProofSize)
	}
	if len(msg.PublicInputs) > MaxPublicInputsSize {
		return sdkerrors.Wrapf(ErrInvalidParameters, "public inputs exceed %d bytes", MaxPublicInputsSize)
	}
	if len(msg.VkeyHash) != HashLength {
		return sdkerrors.Wrapf(ErrInvalidParameters, "vkey hash must be %d bytes", HashLength)
	}
	if len(msg.ChallengeHash) != 0 && len(msg.ChallengeHash) != HashLength {
		return sdkerrors.Wrapf(ErrInvalidParameters, "challenge hash must be empty or %d bytes", HashLength)
	}
	return nil
}

// MsgVerifyProof runs the verifier capability against a pending proof.
// Restricted to allow-listed validators and the authority.
type MsgVerifyProof struct {
	Creator string `json:"creator"`
	ProofId uint64 `json:"proof_id"`
}

// Route implements the sdk.Msg interface
func (msg MsgVerifyProof) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgVerifyProof) Type() string { return TypeMsgVerifyProof }

// GetSigners implements the sdk.Msg interface
func (msg MsgVerifyProof) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgVerifyProof) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgVerifyProof) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if msg.ProofId == 0 {
		return sdkerrors.Wrap(ErrInvalidParameters, "proof id cannot be zero")
	}
	return nil
}

// MsgChallengeProof raises a stake-backed dispute against a verified proof
type MsgChallengeProof struct {
	Creator string   `json:"creator"`
	ProofId uint64   `json:"proof_id"`
	Reason  string   `json:"reason"`
	Stake   math.Int `json:"stake"`
}

// Route implements the sdk.Msg interface
func (msg MsgChallengeProof) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgChallengeProof) Type() string { return TypeMsgChallengeProof }

// GetSigners implements the sdk.Msg interface
func (msg MsgChallengeProof) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgChallengeProof) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgChallengeProof) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid creator address: %s", err)
	}
	if msg.ProofId == 0 {
		return sdkerrors.Wrap(ErrInvalidParameters, "proof id cannot be zero")
	}
	if msg.Reason == "" {
		return sdkerrors.Wrap(ErrInvalidParameters, "reason cannot be empty")
	}
	if len(msg.Reason) > MaxReasonLength {
		return sdkerrors.Wrapf(ErrInvalidParameters, "reason exceeds %d characters", MaxReasonLength)
	}
	if msg.Stake.IsNil() || !msg.Stake.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidParameters, "stake must be positive")
	}
	return nil
}

// MsgResolveChallenge adjudicates an active challenge (authority only)
type MsgResolveChallenge struct {
	Authority   string `json:"authority"`
	ChallengeId uint64 `json:"challenge_id"`
	Accept      bool   `json:"accept"`
}

// Route implements the sdk.Msg interface
func (msg MsgResolveChallenge) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgResolveChallenge) Type() string { return TypeMsgResolveChallenge }

// GetSigners implements the sdk.Msg interface
func (msg MsgResolveChallenge) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgResolveChallenge) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgResolveChallenge) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if msg.ChallengeId == 0 {
		return sdkerrors.Wrap(ErrInvalidParameters, "challenge id cannot be zero")
	}
	return nil
}

// MsgAddValidator adds an address to the proof-verification allow-list
type MsgAddValidator struct {
	Authority string `json:"authority"`
	Validator string `json:"validator"`
}

// Route implements the sdk.Msg interface
func (msg MsgAddValidator) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgAddValidator) Type() string { return TypeMsgAddValidator }

// GetSigners implements the sdk.Msg interface
func (msg MsgAddValidator) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddValidator) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddValidator) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Validator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid validator address: %s", err)
	}
	return nil
}

// MsgRemoveValidator removes an address from the allow-list
type MsgRemoveValidator struct {
	Authority string `json:"authority"`
	Validator string `json:"validator"`
}

// Route implements the sdk.Msg interface
func (msg MsgRemoveValidator) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRemoveValidator) Type() string { return TypeMsgRemoveValidator }

// GetSigners implements the sdk.Msg interface
func (msg MsgRemoveValidator) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRemoveValidator) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRemoveValidator) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Validator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid validator address: %s", err)
	}
	return nil
}

// MsgUpdateParams replaces the zkverify module parameters (authority only)
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
