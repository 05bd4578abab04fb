package exceptions

import (
	"errors"
	"fmt"
	"lifeledger-service/internal/pkg/constvars"
	"runtime"
)

// Kind groups errors by how the caller is expected to recover from them.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindDuplicate    Kind = "duplicate"
	KindConnectivity Kind = "connectivity"
	KindTransaction  Kind = "transaction"
	KindNotFound     Kind = "not_found"
	KindNotification Kind = "notification"
	KindInternal     Kind = "internal"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	Kind          Kind       `json:"kind,omitempty"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	cause         error
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	loc := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, loc.File, loc.Line, loc.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

// BuildNewCustomError wraps err (which may be nil) with the status, client message,
// and the caller location. Wrapping another CustomError keeps its locations as a trail.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	return buildCustomError(err, KindInternal, statusCode, clientMessage, devMessage)
}

func buildCustomError(err error, kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		Kind:          kind,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(3)},
		cause:         err,
	}

	if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
		var inner *CustomError
		if errors.As(err, &inner) {
			customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, inner.DevMessage)
			customErr.Locations = append(customErr.Locations, inner.Locations...)
		}
	}
	return customErr
}

// IsKind reports whether err, or any error it wraps, is a CustomError of the given kind.
func IsKind(err error, kind Kind) bool {
	var customErr *CustomError
	if !errors.As(err, &customErr) {
		return false
	}
	return customErr.Kind == kind
}

// KindOf returns the kind of err, or KindInternal for errors this package did not build.
func KindOf(err error) Kind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return KindInternal
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
