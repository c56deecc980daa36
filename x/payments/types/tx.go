package types

import (
	"context"
)

// MsgServer defines the payments message server interface
type MsgServer interface {
	CreatePayment(context.Context, *MsgCreatePayment) (*MsgCreatePaymentResponse, error)
	ReleaseEscrow(context.Context, *MsgReleaseEscrow) (*MsgReleaseEscrowResponse, error)
	RefundPayment(context.Context, *MsgRefundPayment) (*MsgRefundPaymentResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// MsgCreatePaymentResponse returns the query id of the new payment.
// ExcessRefunded reports whether an excess over the dataset price was
// successfully returned to the consumer; a false value with a non-zero excess
// means the refund transfer failed and the excess stayed in the module
// account (the payment itself is still created).
type MsgCreatePaymentResponse struct {
	QueryId        uint64 `json:"query_id"`
	ExcessRefunded bool   `json:"excess_refunded"`
}

// MsgReleaseEscrowResponse defines the response for ReleaseEscrow
type MsgReleaseEscrowResponse struct{}

// MsgRefundPaymentResponse defines the response for RefundPayment
type MsgRefundPaymentResponse struct{}

// MsgUpdateParamsResponse defines the response for UpdateParams
type MsgUpdateParamsResponse struct{}
