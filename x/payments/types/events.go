package types

// Event types for the payments module.
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypePaymentCreated     = "payments_payment_created"
	EventTypePaymentCompleted   = "payments_payment_completed"
	EventTypePaymentRefunded    = "payments_payment_refunded"
	EventTypeEscrowReleased     = "payments_escrow_released"
	EventTypeExcessRefundFailed = "payments_excess_refund_failed"
	EventTypeParamsUpdated      = "payments_params_updated"
)

// Event attribute keys for the payments module
const (
	AttributeKeyQueryID        = "query_id"
	AttributeKeyDatasetID      = "dataset_id"
	AttributeKeyConsumer       = "consumer"
	AttributeKeyProvider       = "provider"
	AttributeKeyAmount         = "amount"
	AttributeKeyExcess         = "excess"
	AttributeKeyPlatformFee    = "platform_fee"
	AttributeKeyProviderAmount = "provider_amount"
	AttributeKeyProofHash      = "proof_hash"
	AttributeKeyReleaseTime    = "release_time"
	AttributeKeyError          = "error"
)
