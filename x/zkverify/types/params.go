package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// DefaultDenom is the fee denomination used across the marketplace modules.
const DefaultDenom = "uavmp"

// Params holds the zkverify module parameters. MinChallengeStake is the
// smallest stake accepted with a challenge; ChallengePeriodSeconds bounds
// both how long after verification a proof can be challenged and how long the
// authority has to resolve a challenge.
type Params struct {
	MinChallengeStake      math.Int `json:"min_challenge_stake"`
	ChallengePeriodSeconds int64    `json:"challenge_period_seconds"`
	Denom                  string   `json:"denom"`
}

// DefaultParams returns default zkverify parameters
func DefaultParams() Params {
	return Params{
		MinChallengeStake:      math.NewInt(10000000), // 10 tokens with 6 decimals
		ChallengePeriodSeconds: 3 * 24 * 3600,
		Denom:                  DefaultDenom,
	}
}

// Validate performs basic validation of zkverify parameters
func (p Params) Validate() error {
	if p.MinChallengeStake.IsNil() || p.MinChallengeStake.IsNegative() {
		return fmt.Errorf("minimum challenge stake must be non-negative")
	}
	if p.ChallengePeriodSeconds <= 0 {
		return fmt.Errorf("challenge period must be positive")
	}
	if p.Denom == "" {
		return fmt.Errorf("denom cannot be empty")
	}
	return nil
}
