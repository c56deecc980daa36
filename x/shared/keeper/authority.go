package keeper

import (
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

// ValidateAuthority checks that the provided authority matches the expected
// authority. Used by every admin-only operation (param updates, validator
// allow-listing, refunds, challenge resolution).
//
// Returns govtypes.ErrInvalidSigner on mismatch so callers surface a uniform
// unauthorized error for governance paths.
func ValidateAuthority(expected, actual string) error {
	if expected != actual {
		return govtypes.ErrInvalidSigner.Wrapf(
			"invalid authority; expected %s, got %s",
			expected,
			actual,
		)
	}
	return nil
}
