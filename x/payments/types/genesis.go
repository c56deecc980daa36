package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState holds the payments module genesis data
type GenesisState struct {
	Params      Params    `json:"params"`
	Payments    []Payment `json:"payments"`
	Escrows     []Escrow  `json:"escrows"`
	NextQueryId uint64    `json:"next_query_id"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:      DefaultParams(),
		Payments:    []Payment{},
		Escrows:     []Escrow{},
		NextQueryId: 1,
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure. Every escrow must reference an unsettled payment.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if gs.NextQueryId == 0 {
		return fmt.Errorf("next query id cannot be zero")
	}

	payments := make(map[uint64]Payment)
	for i, p := range gs.Payments {
		if p.QueryId == 0 {
			return fmt.Errorf("payment %d: query id cannot be zero", i)
		}
		if _, dup := payments[p.QueryId]; dup {
			return fmt.Errorf("payment %d: duplicate query id %d", i, p.QueryId)
		}
		if p.QueryId >= gs.NextQueryId {
			return fmt.Errorf("payment %d: query id %d not below next query id %d", i, p.QueryId, gs.NextQueryId)
		}
		if _, err := sdk.AccAddressFromBech32(p.Consumer); err != nil {
			return fmt.Errorf("payment %d (query=%d): invalid consumer address: %w", i, p.QueryId, err)
		}
		if p.Amount.IsNil() || p.Amount.IsNegative() {
			return fmt.Errorf("payment %d (query=%d): amount must be non-negative", i, p.QueryId)
		}
		if !p.Status.Valid() {
			return fmt.Errorf("payment %d (query=%d): unknown status %q", i, p.QueryId, p.Status)
		}
		payments[p.QueryId] = p
	}

	seenEscrows := make(map[uint64]bool)
	for i, e := range gs.Escrows {
		if seenEscrows[e.QueryId] {
			return fmt.Errorf("escrow %d: duplicate query id %d", i, e.QueryId)
		}
		seenEscrows[e.QueryId] = true

		p, ok := payments[e.QueryId]
		if !ok {
			return fmt.Errorf("escrow %d: no payment for query id %d", i, e.QueryId)
		}
		if p.Status == PaymentStatusRefunded {
			return fmt.Errorf("escrow %d: payment %d already refunded", i, e.QueryId)
		}
		if _, err := sdk.AccAddressFromBech32(e.Provider); err != nil {
			return fmt.Errorf("escrow %d (query=%d): invalid provider address: %w", i, e.QueryId, err)
		}
		if e.Amount.IsNil() || !e.Amount.IsPositive() {
			return fmt.Errorf("escrow %d (query=%d): amount must be positive", i, e.QueryId)
		}
	}

	return nil
}
