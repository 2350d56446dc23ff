package handler

import (
	"net/http"

	"github.com/android-4dsoft/yettel/internal/domain"
)

// GetQuote handles GET /sessions/{sessionID}/quote.
func (s *Server) GetQuote(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	q, err := s.svc.Quote(r.Context(), sid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuoteResponse(q))
}

// Checkout handles POST /sessions/{sessionID}/orders.
func (s *Server) Checkout(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	receipt, err := s.svc.Checkout(r.Context(), sid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/orders/"+receipt.ID.String())
	writeJSON(w, http.StatusCreated, toOrderResponse(receipt))
}

// ListOrders handles GET /orders.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100).
func (s *Server) ListOrders(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	if err := queryParam(r, "page", &page); err != nil {
		requestError(w, err.Error())
		return
	}
	if err := queryParam(r, "limit", &limit); err != nil {
		requestError(w, err.Error())
		return
	}

	params := domain.NewPaginationParams(page, limit)
	orders, total, err := s.svc.Orders(r.Context(), params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data := make([]orderResponse, len(orders))
	for i, o := range orders {
		data[i] = toOrderResponse(o)
	}
	writeJSON(w, http.StatusOK, ordersResponse{
		Data:       data,
		Pagination: pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// GetOrder handles GET /orders/{orderID}.
func (s *Server) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "orderID")
	if err != nil {
		requestError(w, err.Error())
		return
	}
	o, err := s.svc.Order(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}
