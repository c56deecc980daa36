package types

// Event types for the zkverify module.
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypeKeyRegistered      = "zkverify_key_registered"
	EventTypeProofSubmitted     = "zkverify_proof_submitted"
	EventTypeProofVerified      = "zkverify_proof_verified"
	EventTypeProofRejected      = "zkverify_proof_rejected"
	EventTypeProofChallenged    = "zkverify_proof_challenged"
	EventTypeChallengeResolved  = "zkverify_challenge_resolved"
	EventTypeChallengeDismissed = "zkverify_challenge_dismissed"
	EventTypeValidatorAdded     = "zkverify_validator_added"
	EventTypeValidatorRemoved   = "zkverify_validator_removed"
	EventTypeParamsUpdated      = "zkverify_params_updated"
)

// Event attribute keys for the zkverify module
const (
	AttributeKeyProofID     = "proof_id"
	AttributeKeyQueryID     = "query_id"
	AttributeKeyDatasetID   = "dataset_id"
	AttributeKeyProver      = "prover"
	AttributeKeyKeyHash     = "key_hash"
	AttributeKeyCircuitType = "circuit_type"
	AttributeKeyChallengeID = "challenge_id"
	AttributeKeyChallenger  = "challenger"
	AttributeKeyStake       = "stake"
	AttributeKeyReason      = "reason"
	AttributeKeyValidator   = "validator"
	AttributeKeyProofHash   = "proof_hash"
)
