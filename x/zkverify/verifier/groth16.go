// Package verifier provides the pluggable proof-verification strategies
// dispatched by circuit type.
package verifier

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
)

// Groth16BN254 verifies Groth16 proofs over the BN254 curve. The proof and
// verifying key use gnark's binary serialization; public inputs use gnark's
// witness binary encoding (public part only).
type Groth16BN254 struct{}

// NewGroth16BN254 returns a Groth16/BN254 verifier
func NewGroth16BN254() *Groth16BN254 {
	return &Groth16BN254{}
}

// Verify implements the Verifier capability. Malformed inputs return an
// error; a cryptographically failing proof returns (false, nil).
func (v *Groth16BN254) Verify(proof, publicInputs, keyData []byte) (bool, error) {
	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(bytes.NewReader(keyData)); err != nil {
		return false, fmt.Errorf("failed to deserialize verifying key: %w", err)
	}

	p := groth16.NewProof(ecc.BN254)
	if _, err := p.ReadFrom(bytes.NewReader(proof)); err != nil {
		return false, fmt.Errorf("failed to deserialize proof: %w", err)
	}

	publicWitness, err := witness.New(ecc.BN254.ScalarField())
	if err != nil {
		return false, fmt.Errorf("failed to create witness: %w", err)
	}
	if err := publicWitness.UnmarshalBinary(publicInputs); err != nil {
		return false, fmt.Errorf("failed to deserialize public inputs: %w", err)
	}

	if err := groth16.Verify(p, vk, publicWitness); err != nil {
		return false, nil
	}
	return true, nil
}
