package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingDataKey        = "data"
	LoggingPatientIDKey   = "patient_id"
	LoggingUserIDKey      = "user_id"
	LoggingSequenceKey    = "sequence"
	LoggingManualKey      = "manual"
	LoggingPatientsKey    = "patients"
	LoggingStorageKeyKey  = "storage_key"
	LoggingEndpointKey    = "endpoint"
	LoggingStatusCodeKey  = "status_code"
	LoggingSessionRoleKey = "session_role"
)
