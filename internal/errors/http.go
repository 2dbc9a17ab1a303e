package errors

import "net/http"

// FromHTTPStatus converts an HTTP response status into an error with the
// closest matching code. A 2xx status returns nil.
func FromHTTPStatus(status int, message string) *Error {
	if status >= 200 && status < 300 {
		return nil
	}
	return New(httpStatusToCode(status), message)
}

// FromHTTPStatusf converts an HTTP response status with a formatted message
func FromHTTPStatusf(status int, format string, args ...interface{}) *Error {
	if status >= 200 && status < 300 {
		return nil
	}
	return Newf(httpStatusToCode(status), format, args...)
}

// httpStatusToCode converts an HTTP status code to our error code
func httpStatusToCode(status int) Code {
	switch status {
	case http.StatusBadRequest:
		return CodeInvalidArgument
	case http.StatusRequestTimeout:
		return CodeCanceled
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeAlreadyExists
	case http.StatusPreconditionFailed:
		return CodeFailedPrecondition
	case http.StatusNotImplemented:
		return CodeUnimplemented
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return CodeUnavailable
	case http.StatusGatewayTimeout:
		return CodeDeadlineExceeded
	default:
		if status >= 500 {
			return CodeInternal
		}
		return CodeInvalidArgument
	}
}
