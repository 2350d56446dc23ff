package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/android-4dsoft/yettel/internal/domain"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// ErrorResponse wraps ErrorDetail as {"error":{...}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

const retryMessage = "Something went wrong. Please try again."

// sentinelStatus maps the domain sentinels to their HTTP status and code.
var sentinelStatus = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrValidation, http.StatusUnprocessableEntity, "validation_error"},
	{domain.ErrNoMatchingTier, http.StatusUnprocessableEntity, "no_matching_tier"},
	{domain.ErrEmptySelection, http.StatusUnprocessableEntity, "empty_selection"},
	{domain.ErrNotAdjacent, http.StatusConflict, "not_adjacent"},
	{domain.ErrNotPurchasable, http.StatusConflict, "not_purchasable"},
}

// writeError maps err onto the error envelope. Upstream failures become 502,
// or 503 when the upstream could not be reached; Unknown failures and
// unmapped errors are logged with their cause and answered generically.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var f *domain.Failure
	if errors.As(err, &f) {
		status, detail := failureResponse(f)
		if f.Kind == domain.FailureUnknown {
			s.log.ErrorContext(r.Context(), "unclassified upstream failure", "path", r.URL.Path, "error", err)
		}
		writeJSON(w, status, ErrorResponse{Error: detail})
		return
	}

	for _, m := range sentinelStatus {
		if errors.Is(err, m.err) {
			writeJSON(w, m.status, ErrorResponse{Error: ErrorDetail{Code: m.code, Message: unwrapMessage(err, m.err)}})
			return
		}
	}

	s.log.ErrorContext(r.Context(), "unhandled error", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{Code: "internal", Message: retryMessage}})
}

func failureResponse(f *domain.Failure) (int, ErrorDetail) {
	d := ErrorDetail{Code: f.Kind.String(), Retryable: true}
	switch f.Kind {
	case domain.FailureNoConnectivity:
		d.Message = "The vignette service cannot be reached. Check the connection and try again."
		return http.StatusServiceUnavailable, d
	case domain.FailureUnknown:
		d.Message = retryMessage
		return http.StatusBadGateway, d
	case domain.FailureMalformedResponse:
		d.Message = "The vignette service sent an unreadable response."
		return http.StatusBadGateway, d
	default:
		d.Message = "The vignette service rejected the request"
		if f.Detail != "" {
			d.Message += ": " + f.Detail
		}
		return http.StatusBadGateway, d
	}
}

// requestError answers a request rejected before reaching the service, such
// as a malformed path parameter or body.
func requestError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{Code: "bad_request", Message: message}})
}

// unwrapMessage returns the text following the sentinel in a wrapped error:
// "service.X.Op: validation error: tier is required" gives "tier is required".
func unwrapMessage(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error()
	if i := strings.Index(msg, prefix); i >= 0 {
		if rest := strings.TrimPrefix(msg[i+len(prefix):], ": "); rest != "" {
			return rest
		}
	}
	return prefix
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
