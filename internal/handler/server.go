// Package handler implements the HTTP API of the vignette service.
// All handlers are methods on Server and share its dependencies. Routes are
// registered on a chi router by Routes; the contract is api/openapi.yaml.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/android-4dsoft/yettel/internal/domain"
	"github.com/android-4dsoft/yettel/internal/session"
)

// VignetteServicer is the business surface the handlers depend on.
// *service.VignetteService satisfies it.
type VignetteServicer interface {
	CreateSession() *session.Session
	DeleteSession(sid uuid.UUID) error

	Catalog(ctx context.Context, refresh bool) (domain.Catalog, error)
	Vehicle(ctx context.Context, sid uuid.UUID) (domain.Vehicle, error)
	Passes(ctx context.Context, sid uuid.UUID) (domain.PassOffer, error)
	Regions(ctx context.Context, sid uuid.UUID) ([]domain.RegionOption, error)

	Selection(sid uuid.UUID) (domain.Selection, error)
	SelectRegion(ctx context.Context, sid uuid.UUID, id domain.RegionID) (domain.Selection, error)
	SelectPass(ctx context.Context, sid uuid.UUID, kind domain.TierKind) (domain.Selection, error)
	ClearSelection(sid uuid.UUID) error

	Quote(ctx context.Context, sid uuid.UUID) (domain.Quote, error)
	Checkout(ctx context.Context, sid uuid.UUID) (domain.OrderReceipt, error)

	Orders(ctx context.Context, p domain.PaginationParams) ([]domain.OrderReceipt, int64, error)
	Order(ctx context.Context, id uuid.UUID) (domain.OrderReceipt, error)
}

// Server holds the handler dependencies.
type Server struct {
	svc    VignetteServicer
	export ExportServicer
	log    *slog.Logger
}

// NewServer constructs the Server. A nil logger falls back to slog.Default.
func NewServer(svc VignetteServicer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{svc: svc, log: logger}
}

// NewHealthHandler returns a Server that can only answer health checks.
func NewHealthHandler() *Server {
	return NewServer(nil, nil)
}

// Routes returns a chi router with every endpoint registered. Cross-cutting
// middleware (request ID, logging, CORS, body limits) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/catalog", s.GetCatalog)

	r.Post("/sessions", s.CreateSession)
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Delete("/", s.DeleteSession)
		r.Get("/vehicle", s.GetVehicle)
		r.Get("/passes", s.GetPasses)
		r.Get("/regions", s.GetRegions)

		r.Get("/selection", s.GetSelection)
		r.Delete("/selection", s.ClearSelection)
		r.Put("/selection/pass", s.SelectPass)
		r.Post("/selection/regions/{regionID}", s.ToggleRegion)

		r.Get("/quote", s.GetQuote)
		r.Post("/orders", s.Checkout)
	})

	r.Get("/orders", s.ListOrders)
	if s.export != nil {
		r.Get("/orders/export", s.GetExport)
	}
	r.Get("/orders/{orderID}", s.GetOrder)

	return r
}

// Handler is Routes as a plain http.Handler.
func (s *Server) Handler() http.Handler {
	return s.Routes()
}
