package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/android-4dsoft/yettel/internal/domain"
	"github.com/android-4dsoft/yettel/internal/wire"
)

// GetSelection handles GET /sessions/{sessionID}/selection.
func (s *Server) GetSelection(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	sel, err := s.svc.Selection(sid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSelectionResponse(sel))
}

// ClearSelection handles DELETE /sessions/{sessionID}/selection.
func (s *Server) ClearSelection(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	if err := s.svc.ClearSelection(sid); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SelectPass handles PUT /sessions/{sessionID}/selection/pass with a body of
// {"tier":"WEEK"}.
func (s *Server) SelectPass(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}

	var body selectPassRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: ErrorDetail{Code: "body_too_large", Message: "request body is too large"}})
			return
		}
		requestError(w, "request body must be a JSON object with a tier")
		return
	}
	if body.Tier == "" {
		s.writeError(w, r, fmt.Errorf("%w: tier is required", domain.ErrValidation))
		return
	}
	kind, err := wire.ParseTierKind(body.Tier)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("%w: unknown tier %q", domain.ErrValidation, body.Tier))
		return
	}

	sel, err := s.svc.SelectPass(r.Context(), sid, kind)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSelectionResponse(sel))
}

// ToggleRegion handles POST /sessions/{sessionID}/selection/regions/{regionID}.
// A rejected toggle answers 409 and leaves the selection unchanged.
func (s *Server) ToggleRegion(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	id, err := pathString(r, "regionID")
	if err != nil {
		requestError(w, err.Error())
		return
	}

	sel, err := s.svc.SelectRegion(r.Context(), sid, domain.RegionID(id))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSelectionResponse(sel))
}
