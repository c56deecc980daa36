package types

import (
	"fmt"
)

// DefaultDenom is the fee denomination used across the marketplace modules.
const DefaultDenom = "uavmp"

// MaxFeeBps is the basis-point ceiling (100%)
const MaxFeeBps = 10000

// Params holds the payments module parameters. PlatformFeeBps is the platform
// cut taken from each released escrow; EscrowPeriodSeconds is the delay
// between payment creation and escrow releasability.
type Params struct {
	PlatformFeeBps      uint32 `json:"platform_fee_bps"`
	EscrowPeriodSeconds int64  `json:"escrow_period_seconds"`
	Denom               string `json:"denom"`
}

// DefaultParams returns default payments parameters
func DefaultParams() Params {
	return Params{
		PlatformFeeBps:      250, // 2.5%
		EscrowPeriodSeconds: 7 * 24 * 3600,
		Denom:               DefaultDenom,
	}
}

// Validate performs basic validation of payments parameters
func (p Params) Validate() error {
	if p.PlatformFeeBps > MaxFeeBps {
		return fmt.Errorf("platform fee bps %d exceeds %d", p.PlatformFeeBps, MaxFeeBps)
	}
	if p.EscrowPeriodSeconds < 0 {
		return fmt.Errorf("escrow period cannot be negative")
	}
	if p.Denom == "" {
		return fmt.Errorf("denom cannot be empty")
	}
	return nil
}
