package handler

import "net/http"

// CreateSession handles POST /sessions.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := s.svc.CreateSession()
	w.Header().Set("Location", "/sessions/"+sess.ID.String())
	writeJSON(w, http.StatusCreated, sessionResponse{ID: sess.ID, CreatedAt: sess.CreatedAt})
}

// DeleteSession handles DELETE /sessions/{sessionID}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	if err := s.svc.DeleteSession(sid); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetVehicle handles GET /sessions/{sessionID}/vehicle.
func (s *Server) GetVehicle(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	v, err := s.svc.Vehicle(r.Context(), sid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toVehicleResponse(v))
}

// GetPasses handles GET /sessions/{sessionID}/passes.
func (s *Server) GetPasses(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	offer, err := s.svc.Passes(r.Context(), sid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPassesResponse(offer))
}

// GetRegions handles GET /sessions/{sessionID}/regions.
func (s *Server) GetRegions(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	regions, err := s.svc.Regions(r.Context(), sid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRegionsResponse(regions))
}
