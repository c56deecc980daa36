package types

import (
	"context"
)

// MsgServer defines the registry message server interface
type MsgServer interface {
	RegisterDataset(context.Context, *MsgRegisterDataset) (*MsgRegisterDatasetResponse, error)
	UpdateDataset(context.Context, *MsgUpdateDataset) (*MsgUpdateDatasetResponse, error)
	AddValidator(context.Context, *MsgAddValidator) (*MsgAddValidatorResponse, error)
	SetRegistrationFee(context.Context, *MsgSetRegistrationFee) (*MsgSetRegistrationFeeResponse, error)
}

// MsgRegisterDatasetResponse returns the id assigned to the new dataset
type MsgRegisterDatasetResponse struct {
	DatasetId uint64 `json:"dataset_id"`
}

// MsgUpdateDatasetResponse defines the response for UpdateDataset
type MsgUpdateDatasetResponse struct{}

// MsgAddValidatorResponse defines the response for AddValidator
type MsgAddValidatorResponse struct{}

// MsgSetRegistrationFeeResponse defines the response for SetRegistrationFee
type MsgSetRegistrationFeeResponse struct{}
