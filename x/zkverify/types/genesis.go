package types

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState holds the zkverify module genesis data
type GenesisState struct {
	Params           Params            `json:"params"`
	VerificationKeys []VerificationKey `json:"verification_keys"`
	Proofs           []ZKProof         `json:"proofs"`
	Challenges       []Challenge       `json:"challenges"`
	Validators       []string          `json:"validators"`
	NextProofId      uint64            `json:"next_proof_id"`
	NextChallengeId  uint64            `json:"next_challenge_id"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:           DefaultParams(),
		VerificationKeys: []VerificationKey{},
		Proofs:           []ZKProof{},
		Challenges:       []Challenge{},
		Validators:       []string{},
		NextProofId:      1,
		NextChallengeId:  1,
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure. Verification keys must match their content address; proofs must
// reference registered keys and bind distinct query ids.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if gs.NextProofId == 0 {
		return fmt.Errorf("next proof id cannot be zero")
	}
	if gs.NextChallengeId == 0 {
		return fmt.Errorf("next challenge id cannot be zero")
	}

	keys := make(map[string]bool)
	for i, vk := range gs.VerificationKeys {
		sum := sha256.Sum256(vk.KeyData)
		if !bytes.Equal(sum[:], vk.KeyHash) {
			return fmt.Errorf("verification key %d: hash does not match key data", i)
		}
		h := hex.EncodeToString(vk.KeyHash)
		if keys[h] {
			return fmt.Errorf("verification key %d: duplicate hash %s", i, h)
		}
		keys[h] = true
		if _, err := sdk.AccAddressFromBech32(vk.Owner); err != nil {
			return fmt.Errorf("verification key %d: invalid owner address: %w", i, err)
		}
		if vk.CircuitType == "" {
			return fmt.Errorf("verification key %d: circuit type cannot be empty", i)
		}
	}

	proofs := make(map[uint64]ZKProof)
	queries := make(map[uint64]bool)
	for i, p := range gs.Proofs {
		if p.ProofId == 0 {
			return fmt.Errorf("proof %d: proof id cannot be zero", i)
		}
		if _, dup := proofs[p.ProofId]; dup {
			return fmt.Errorf("proof %d: duplicate proof id %d", i, p.ProofId)
		}
		if p.ProofId >= gs.NextProofId {
			return fmt.Errorf("proof %d: id %d not below next proof id %d", i, p.ProofId, gs.NextProofId)
		}
		if queries[p.QueryId] {
			return fmt.Errorf("proof %d: second proof for query id %d", i, p.QueryId)
		}
		queries[p.QueryId] = true
		if !keys[hex.EncodeToString(p.VkeyHash)] {
			return fmt.Errorf("proof %d: unregistered verification key", i)
		}
		if _, err := sdk.AccAddressFromBech32(p.Prover); err != nil {
			return fmt.Errorf("proof %d: invalid prover address: %w", i, err)
		}
		if !p.Status.Valid() {
			return fmt.Errorf("proof %d: unknown status %q", i, p.Status)
		}
		proofs[p.ProofId] = p
	}

	seenChallenges := make(map[uint64]bool)
	for i, c := range gs.Challenges {
		if c.ChallengeId == 0 {
			return fmt.Errorf("challenge %d: challenge id cannot be zero", i)
		}
		if seenChallenges[c.ChallengeId] {
			return fmt.Errorf("challenge %d: duplicate challenge id %d", i, c.ChallengeId)
		}
		seenChallenges[c.ChallengeId] = true
		if c.ChallengeId >= gs.NextChallengeId {
			return fmt.Errorf("challenge %d: id %d not below next challenge id %d", i, c.ChallengeId, gs.NextChallengeId)
		}
		proof, ok := proofs[c.ProofId]
		if !ok {
			return fmt.Errorf("challenge %d: no proof with id %d", i, c.ProofId)
		}
		if c.Status == ChallengeStatusActive && proof.Status != ProofStatusChallenged {
			return fmt.Errorf("challenge %d: active challenge against %s proof %d", i, proof.Status, c.ProofId)
		}
		if _, err := sdk.AccAddressFromBech32(c.Challenger); err != nil {
			return fmt.Errorf("challenge %d: invalid challenger address: %w", i, err)
		}
		if c.Stake.IsNil() || !c.Stake.IsPositive() {
			return fmt.Errorf("challenge %d: stake must be positive", i)
		}
		if !c.Status.Valid() {
			return fmt.Errorf("challenge %d: unknown status %q", i, c.Status)
		}
	}

	for i, v := range gs.Validators {
		if _, err := sdk.AccAddressFromBech32(v); err != nil {
			return fmt.Errorf("validator %d: invalid address %s: %w", i, v, err)
		}
	}

	return nil
}
