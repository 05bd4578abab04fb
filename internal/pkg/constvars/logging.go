package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingErrorTypeKey    = "error_type"
	LoggingRoleKey         = "role"
	LoggingMedicalIDKey    = "medical_id"
	LoggingStateKey        = "state"
	LoggingFromStateKey    = "from_state"
	LoggingGasEstimateKey  = "gas_estimate"
	LoggingGasLimitKey     = "gas_limit"
	LoggingTxHashKey       = "tx_hash"
	LoggingBlockNumberKey  = "block_number"
	LoggingEmailTypeKey    = "email_type"
	LoggingRecipientKey    = "recipient"
	LoggingQueueKey        = "queue"
	LoggingRedisKey        = "redis_key"
	LoggingLockValueKey    = "lock_value"
	LoggingCountKey        = "count"
	LoggingIndexKey        = "index"
	LoggingIDCountKey      = "id_count"
	LoggingContractKey     = "contract_address"
	LoggingContractDriver  = "contract_driver"
	LoggingArtifactSource  = "artifact_source"
	LoggingCollectionKey   = "collection"
	LoggingDeliveryTagKey  = "delivery_tag"
	LoggingSMTPHostKey     = "smtp_host"
	LoggingChainIDKey      = "chain_id"
	LoggingIdentityKey     = "identity"
	LoggingRowsRenderedKey = "rows_rendered"
	LoggingOperationKey    = "operation"
	LoggingRetryAfterKey   = "retry_after"
	LoggingLockExpiration  = "lock_expiration"
	LoggingLockStoredValue = "lock_stored_value"
	LoggingLockExpected    = "lock_expected_value"
)
