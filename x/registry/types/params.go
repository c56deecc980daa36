package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// DefaultDenom is the fee denomination used across the marketplace modules.
const DefaultDenom = "uavmp"

// Params holds the registry module parameters. RegistrationFee is charged on
// dataset registration and forwarded to the fee collector.
type Params struct {
	RegistrationFee math.Int `json:"registration_fee"`
	Denom           string   `json:"denom"`
}

// DefaultParams returns default registry parameters
func DefaultParams() Params {
	return Params{
		RegistrationFee: math.NewInt(1000000), // 1 token with 6 decimals
		Denom:           DefaultDenom,
	}
}

// Validate performs basic validation of registry parameters
func (p Params) Validate() error {
	if p.RegistrationFee.IsNil() || p.RegistrationFee.IsNegative() {
		return fmt.Errorf("registration fee must be non-negative")
	}
	if p.Denom == "" {
		return fmt.Errorf("denom cannot be empty")
	}
	return nil
}
