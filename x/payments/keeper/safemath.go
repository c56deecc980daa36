package keeper

import (
	"cosmossdk.io/math"

	paymentstypes "github.com/shepherdvovkes/AIVectorMP/x/payments/types"
)

// SplitFee divides an escrow amount between the provider and the platform.
// The platform fee is floor(amount * feeBps / 10000); the floor remainder
// stays in the provider's share, so the two always sum to the amount.
func SplitFee(amount math.Int, feeBps uint32) (providerAmount, platformFee math.Int) {
	if feeBps > paymentstypes.MaxFeeBps {
		feeBps = paymentstypes.MaxFeeBps
	}
	platformFee = amount.MulRaw(int64(feeBps)).QuoRaw(paymentstypes.MaxFeeBps)
	providerAmount = amount.Sub(platformFee)
	return providerAmount, platformFee
}
