package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/shepherdvovkes/AIVectorMP/x/shared/keeper"
	zkverifytypes "github.com/shepherdvovkes/AIVectorMP/x/zkverify/types"
)

type msgServer struct {
	Keeper *Keeper
}

// NewMsgServerImpl returns an implementation of the zkverify MsgServer interface
func NewMsgServerImpl(keeper *Keeper) zkverifytypes.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ zkverifytypes.MsgServer = msgServer{}

// RegisterVerificationKey handles verification key registration
func (m msgServer) RegisterVerificationKey(goCtx context.Context, msg *zkverifytypes.MsgRegisterVerificationKey) (*zkverifytypes.MsgRegisterVerificationKeyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	owner, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, sdkerrors.Wrapf(zkverifytypes.ErrInvalidAddress, "creator: %s", err)
	}

	keyHash, err := m.Keeper.RegisterVerificationKey(ctx, owner, msg.KeyData, msg.CircuitType)
	if err != nil {
		return nil, err
	}

	return &zkverifytypes.MsgRegisterVerificationKeyResponse{KeyHash: keyHash}, nil
}

// SubmitProof handles execution proof submission
func (m msgServer) SubmitProof(goCtx context.Context, msg *zkverifytypes.MsgSubmitProof) (*zkverifytypes.MsgSubmitProofResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	prover, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, sdkerrors.Wrapf(zkverifytypes.ErrInvalidAddress, "creator: %s", err)
	}

	proofID, err := m.Keeper.SubmitProof(ctx, prover, msg.QueryId, msg.DatasetId,
		msg.ProofData, msg.PublicInputs, msg.VkeyHash, msg.ChallengeHash)
	if err != nil {
		return nil, err
	}

	return &zkverifytypes.MsgSubmitProofResponse{ProofId: proofID}, nil
}

// VerifyProof handles proof verification by validators or the authority
func (m msgServer) VerifyProof(goCtx context.Context, msg *zkverifytypes.MsgVerifyProof) (*zkverifytypes.MsgVerifyProofResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	caller, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, sdkerrors.Wrapf(zkverifytypes.ErrInvalidAddress, "creator: %s", err)
	}

	valid, err := m.Keeper.VerifyProof(ctx, caller, msg.ProofId)
	if err != nil {
		return nil, err
	}

	return &zkverifytypes.MsgVerifyProofResponse{Valid: valid}, nil
}

// ChallengeProof handles stake-backed proof challenges
func (m msgServer) ChallengeProof(goCtx context.Context, msg *zkverifytypes.MsgChallengeProof) (*zkverifytypes.MsgChallengeProofResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	challenger, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, sdkerrors.Wrapf(zkverifytypes.ErrInvalidAddress, "creator: %s", err)
	}

	challengeID, err := m.Keeper.ChallengeProof(ctx, challenger, msg.ProofId, msg.Reason, msg.Stake)
	if err != nil {
		return nil, err
	}

	return &zkverifytypes.MsgChallengeProofResponse{ChallengeId: challengeID}, nil
}

// ResolveChallenge handles challenge adjudication by the authority
func (m msgServer) ResolveChallenge(goCtx context.Context, msg *zkverifytypes.MsgResolveChallenge) (*zkverifytypes.MsgResolveChallengeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := sharedkeeper.ValidateAuthority(m.Keeper.GetAuthority(), msg.Authority); err != nil {
		return nil, err
	}

	if err := m.Keeper.ResolveChallenge(ctx, msg.ChallengeId, msg.Accept); err != nil {
		return nil, err
	}

	return &zkverifytypes.MsgResolveChallengeResponse{}, nil
}

// AddValidator handles allow-list additions by the authority
func (m msgServer) AddValidator(goCtx context.Context, msg *zkverifytypes.MsgAddValidator) (*zkverifytypes.MsgAddValidatorResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := sharedkeeper.ValidateAuthority(m.Keeper.GetAuthority(), msg.Authority); err != nil {
		return nil, err
	}

	validator, err := sdk.AccAddressFromBech32(msg.Validator)
	if err != nil {
		return nil, sdkerrors.Wrapf(zkverifytypes.ErrInvalidAddress, "validator: %s", err)
	}

	if err := m.Keeper.AddValidator(ctx, validator); err != nil {
		return nil, err
	}

	return &zkverifytypes.MsgAddValidatorResponse{}, nil
}

// RemoveValidator handles allow-list removals by the authority
func (m msgServer) RemoveValidator(goCtx context.Context, msg *zkverifytypes.MsgRemoveValidator) (*zkverifytypes.MsgRemoveValidatorResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := sharedkeeper.ValidateAuthority(m.Keeper.GetAuthority(), msg.Authority); err != nil {
		return nil, err
	}

	validator, err := sdk.AccAddressFromBech32(msg.Validator)
	if err != nil {
		return nil, sdkerrors.Wrapf(zkverifytypes.ErrInvalidAddress, "validator: %s", err)
	}

	if err := m.Keeper.RemoveValidator(ctx, validator); err != nil {
		return nil, err
	}

	return &zkverifytypes.MsgRemoveValidatorResponse{}, nil
}

// UpdateParams handles parameter updates from the authority
func (m msgServer) UpdateParams(goCtx context.Context, msg *zkverifytypes.MsgUpdateParams) (*zkverifytypes.MsgUpdateParamsResponse, error) {
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

	ctx.EventManager().EmitEvent(sdk.NewEvent(zkverifytypes.EventTypeParamsUpdated))

	return &zkverifytypes.MsgUpdateParamsResponse{}, nil
}
