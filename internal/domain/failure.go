package domain

import (
	"fmt"
	"strconv"
)

// FailureKind is the closed taxonomy of I/O failures.
type FailureKind int

const (
	// FailureInvalidRequest is an HTTP 400 from the upstream.
	FailureInvalidRequest FailureKind = iota + 1
	// FailureNotFound is an HTTP 404 from the upstream.
	FailureNotFound
	// FailureServerError is any HTTP 5xx from the upstream.
	FailureServerError
	// FailureRequestFailed is any other non-success status; Status carries it.
	FailureRequestFailed
	// FailureNoConnectivity is a transport fault: DNS, refused connection,
	// timeout, reset.
	FailureNoConnectivity
	// FailureMalformedResponse means the response body could not be decoded.
	FailureMalformedResponse
	// FailureUnknown is everything without a recognisable cause.
	FailureUnknown
)

func (k FailureKind) String() string {
	switch k {
	case FailureInvalidRequest:
		return "invalid_request"
	case FailureNotFound:
		return "not_found"
	case FailureServerError:
		return "server_error"
	case FailureRequestFailed:
		return "request_failed"
	case FailureNoConnectivity:
		return "no_connectivity"
	case FailureMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// Failure is a classified I/O failure. It implements error so it can travel
// through (T, error) returns; errors.As recovers it unchanged.
type Failure struct {
	Kind FailureKind
	// Status is the HTTP status code, zero when no response was received.
	Status int
	Detail string
	// Cause is the underlying error, if any. It is logged, never shown.
	Cause error
}

func (f *Failure) Error() string {
	msg := f.Kind.String()
	if f.Status != 0 {
		msg += " (" + strconv.Itoa(f.Status) + ")"
	}
	if f.Detail != "" {
		msg += ": " + f.Detail
	}
	if f.Cause != nil {
		msg += ": " + f.Cause.Error()
	}
	return msg
}

func (f *Failure) Unwrap() error { return f.Cause }

// NewFailure builds a Failure with a formatted detail.
func NewFailure(kind FailureKind, status int, cause error, format string, args ...any) *Failure {
	return &Failure{
		Kind:   kind,
		Status: status,
		Detail: fmt.Sprintf(format, args...),
		Cause:  cause,
	}
}
