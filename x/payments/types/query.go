package types

import (
	"context"
)

// QueryServer defines the payments query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Payment(context.Context, *QueryPaymentRequest) (*QueryPaymentResponse, error)
	Escrow(context.Context, *QueryEscrowRequest) (*QueryEscrowResponse, error)
	PaymentsByConsumer(context.Context, *QueryPaymentsByConsumerRequest) (*QueryPaymentsByConsumerResponse, error)
}

// QueryParamsRequest requests the payments module parameters
type QueryParamsRequest struct{}

// QueryParamsResponse returns the payments module parameters
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryPaymentRequest requests a payment record by query id
type QueryPaymentRequest struct {
	QueryId uint64 `json:"query_id"`
}

// QueryPaymentResponse returns a single payment record
type QueryPaymentResponse struct {
	Payment Payment `json:"payment"`
}

// QueryEscrowRequest requests an escrow record by query id
type QueryEscrowRequest struct {
	QueryId uint64 `json:"query_id"`
}

// QueryEscrowResponse returns a single escrow record
type QueryEscrowResponse struct {
	Escrow Escrow `json:"escrow"`
}

// QueryPaymentsByConsumerRequest requests the query ids paid by a consumer
type QueryPaymentsByConsumerRequest struct {
	Consumer string `json:"consumer"`
}

// QueryPaymentsByConsumerResponse returns the query ids paid by an address
type QueryPaymentsByConsumerResponse struct {
	QueryIds []uint64 `json:"query_ids"`
}
