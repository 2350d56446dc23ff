package handler

import "net/http"

// GetCatalog handles GET /catalog. ?refresh=true forces an upstream fetch.
func (s *Server) GetCatalog(w http.ResponseWriter, r *http.Request) {
	var refresh *bool
	if err := queryParam(r, "refresh", &refresh); err != nil {
		requestError(w, err.Error())
		return
	}

	cat, err := s.svc.Catalog(r.Context(), refresh != nil && *refresh)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCatalogResponse(cat))
}
