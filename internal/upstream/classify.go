package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/android-4dsoft/yettel/internal/domain"
)

// classifyStatus maps a non-2xx response to a Failure. body is the (possibly
// truncated) error body, used as detail.
func classifyStatus(code int, body string) *domain.Failure {
	detail := strings.TrimSpace(body)
	if detail == "" {
		detail = http.StatusText(code)
	}
	switch {
	case code == http.StatusBadRequest:
		return domain.NewFailure(domain.FailureInvalidRequest, code, nil, "invalid request: %s", detail)
	case code == http.StatusNotFound:
		return domain.NewFailure(domain.FailureNotFound, code, nil, "resource not found: %s", detail)
	case code >= 500 && code <= 599:
		return domain.NewFailure(domain.FailureServerError, code, nil, "server error: %s", detail)
	default:
		return domain.NewFailure(domain.FailureRequestFailed, code, nil, "%s", detail)
	}
}

// classifyTransport maps an error returned by http.Client.Do. Any transport
// fault is a connectivity failure; a cancelled context is not.
func classifyTransport(err error) *domain.Failure {
	if errors.Is(err, context.Canceled) {
		return &domain.Failure{Kind: domain.FailureUnknown, Detail: "request cancelled", Cause: err}
	}
	var (
		urlErr *url.Error
		netErr net.Error
	)
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return &domain.Failure{Kind: domain.FailureNoConnectivity, Detail: "upstream unreachable", Cause: err}
	}
	return &domain.Failure{Kind: domain.FailureUnknown, Detail: "transport error", Cause: err}
}

// classifyDecode maps a failure to decode a 2xx body. An empty body counts as
// malformed.
func classifyDecode(code int, err error) *domain.Failure {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF),
		errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return &domain.Failure{Kind: domain.FailureMalformedResponse, Status: code, Detail: "failed to parse response", Cause: err}
	default:
		// A read error mid-body is a transport fault.
		return classifyTransport(err)
	}
}
