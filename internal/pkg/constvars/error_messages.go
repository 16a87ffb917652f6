package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of [%s]",
}

// Error messages for clients
const (
	ErrClientInvalidUsernameOrPassword     = "invalid email or password"
	ErrClientNotLoggedIn                   = "your session has expired, please log in again"
	ErrClientCannotProcessRequest          = "cannot process your request"
	ErrClientSomethingWrongWithApplication = "something is wrong with the application"
	ErrClientServerUnreachable             = "cannot reach the server, please check your connection"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientPatientNotFound               = "patient not found"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "request validation failed"
	ErrDevInvalidCredentials         = "server rejected the supplied credentials"
	ErrDevMalformedAuthResponse      = "auth response is missing the user payload"
	ErrDevAuthTokenInvalidOrExpired  = "server returned 401, session token invalid or expired"
	ErrDevBuildRequest               = "failed to build HTTP request"
	ErrDevSendRequest                = "failed to send HTTP request"
	ErrDevRequestTimeout             = "HTTP request deadline exceeded"
	ErrDevDecodeResponse             = "failed to decode %s response body"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevUnexpectedStatusCode       = "unexpected status code %d from %s"
	ErrDevSessionStorageRead         = "failed to read persisted session"
	ErrDevSessionStorageWrite        = "failed to write persisted session"
	ErrDevSessionStorageClear        = "failed to clear persisted session"
	ErrDevRedisSet                   = "redis SET failed"
	ErrDevRedisGet                   = "redis GET failed"
	ErrDevRedisDelete                = "redis DEL failed"
	ErrDevSchedulerAlreadyStarted    = "scheduler already started"
	ErrDevSchedulerFetchFailed       = "patient fetch failed"
	ErrDevPersistedSessionCorrupted  = "persisted session cannot be decoded, discarding it"
	ErrDevPersistedSessionExpired    = "persisted session is past its expiry, discarding it"
	ErrDevServerProvidedErrorMessage = "server responded with an error message"
)
