package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	SessionStorageKey = "vitalsync_session"

	SessionStorageDriverFile   = "file"
	SessionStorageDriverRedis  = "redis"
	SessionStorageDriverMemory = "memory"

	// The persisted session mirror must never outlive a week, regardless
	// of what the token's exp claim says.
	SessionMaxAgeInDays = 7
)

const (
	EndpointAuthLogin  = "/auth/login"
	EndpointAuthLogout = "/auth/logout"
	EndpointAuthCheck  = "/auth/check"
	EndpointPatients   = "/patients"
)

const (
	RoleDoctor = "doctor"
	RoleAdmin  = "admin"
)

const (
	MultipartFieldName      = "name"
	MultipartFieldAge       = "age"
	MultipartFieldCondition = "condition"
	MultipartFieldPhoto     = "photo"
)
