package types

// Event types for the registry module.
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypeDatasetRegistered = "registry_dataset_registered"
	EventTypeDatasetUpdated    = "registry_dataset_updated"
	EventTypeValidatorAdded    = "registry_validator_added"
	EventTypeQueryCounted      = "registry_query_counted"
)

// Event attribute keys for the registry module
const (
	AttributeKeyDatasetID     = "dataset_id"
	AttributeKeyOwner         = "owner"
	AttributeKeyName          = "name"
	AttributeKeyPricePerQuery = "price_per_query"
	AttributeKeyActive        = "active"
	AttributeKeyValidator     = "validator"
	AttributeKeyTotalQueries  = "total_queries"
)
