package exceptions

import (
	"fmt"

	"vitalsync-client/internal/pkg/constvars"
)

var (
	// Input validation
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}

	// Auth
	ErrInvalidUsernameOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuth, constvars.StatusUnauthorized, constvars.ErrClientInvalidUsernameOrPassword, constvars.ErrDevInvalidCredentials)
	}
	// ErrLoginRejected keeps the server's own rejection message when one
	// was provided; callers see it verbatim.
	ErrLoginRejected = func(statusCode int, clientMessage string) *CustomError {
		if clientMessage == "" {
			clientMessage = constvars.ErrClientInvalidUsernameOrPassword
		}
		return BuildNewCustomError(nil, KindAuth, statusCode, clientMessage, constvars.ErrDevInvalidCredentials)
	}
	ErrMalformedAuthResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuth, constvars.StatusUnauthorized, constvars.ErrClientInvalidUsernameOrPassword, constvars.ErrDevMalformedAuthResponse)
	}
	ErrSessionExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, KindSessionExpired, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}

	// HTTP transport
	ErrBuildHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBuildRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusServiceUnavailable, constvars.ErrClientServerUnreachable, constvars.ErrDevSendRequest)
	}
	ErrRequestTimeout = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevRequestTimeout)
	}
	ErrDecodeResponse = func(err error, source string) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDecodeResponse, source))
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	// ErrServerMessage carries a server-provided error message verbatim to
	// the caller, per-request failures such as a rejected patient payload.
	ErrServerMessage = func(statusCode int, clientMessage, endpoint string) *CustomError {
		return BuildNewCustomError(nil, KindValidation, statusCode, clientMessage, fmt.Sprintf(constvars.ErrDevUnexpectedStatusCode, statusCode, endpoint))
	}
	ErrUnexpectedStatusCode = func(statusCode int, endpoint string) *CustomError {
		return BuildNewCustomError(nil, KindInternal, statusCode, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnexpectedStatusCode, statusCode, endpoint))
	}

	// Session storage
	ErrSessionStorageRead = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionStorageRead)
	}
	ErrSessionStorageWrite = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionStorageWrite)
	}
	ErrSessionStorageClear = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSessionStorageClear)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
)
