package errork

import (
	"github.com/joomcode/errorx"
)

var (
	keboolaErrors = errorx.NewNamespace("keboola")

	// RequestFailedError is raised whenever the platform responds with a status
	// code outside the expected success set for an operation
	RequestFailedError = keboolaErrors.NewType("request_failed")

	// APIInfo attaches request context to RequestFailedError instances
	APIInfo = errorx.RegisterPrintableProperty("api_info")
)

// Decorate adds a message over an existing error without changing its type
func Decorate(err error, message string, args ...any) *errorx.Error {
	return errorx.Decorate(err, message, args...)
}

// IsRequestFailed reports whether err (or any of its causes) is a RequestFailedError
func IsRequestFailed(err error) bool {
	return errorx.IsOfType(err, RequestFailedError)
}

// Payload extracts the ErrorPayload attached to err via APIInfo, if any
func Payload(err error) *ErrorPayload {
	ex := errorx.Cast(err)
	if ex == nil {
		return nil
	}
	value, ok := ex.Property(APIInfo)
	if !ok {
		return nil
	}
	payload, _ := value.(*ErrorPayload)
	return payload
}
