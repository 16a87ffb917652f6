package exceptions

import (
	"errors"
	"fmt"
	"runtime"

	"vitalsync-client/internal/pkg/constvars"
)

// Kind buckets a CustomError into the client-facing failure taxonomy.
type Kind string

const (
	KindAuth           Kind = "auth"
	KindSessionExpired Kind = "session_expired"
	KindNetwork        Kind = "network"
	KindValidation     Kind = "validation"
	KindInternal       Kind = "internal"
)

type CustomError struct {
	Kind          Kind     `json:"-"`
	StatusCode    int      `json:"status_code"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func BuildNewCustomError(err error, kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		Kind:          kind,
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         "unknown",
			Line:         0,
			FunctionName: "unknown",
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}

func kindOf(err error) Kind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return ""
}

// IsAuthError reports whether err is an invalid-credentials or
// malformed-auth-response failure.
func IsAuthError(err error) bool {
	return kindOf(err) == KindAuth
}

// IsSessionExpired reports whether err came from a 401 on an
// authenticated request.
func IsSessionExpired(err error) bool {
	return kindOf(err) == KindSessionExpired
}

// IsNetworkError reports whether err is a timeout or connection failure,
// as opposed to an authoritative server answer.
func IsNetworkError(err error) bool {
	return kindOf(err) == KindNetwork
}

func IsValidationError(err error) bool {
	return kindOf(err) == KindValidation
}

// ClientMessage extracts the user-facing message from err, falling back
// to a generic one for errors that did not come through this package.
func ClientMessage(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}
