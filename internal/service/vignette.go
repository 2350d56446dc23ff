// Package service orchestrates the vignette flow: it reads the catalog and the
// vehicle through the upstream, drives each session's selection store, prices
// selections and submits orders. No HTTP or SQL lives here.
package service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/android-4dsoft/yettel/internal/domain"
	"github.com/android-4dsoft/yettel/internal/pricing"
	"github.com/android-4dsoft/yettel/internal/region"
	"github.com/android-4dsoft/yettel/internal/repo"
	"github.com/android-4dsoft/yettel/internal/selection"
	"github.com/android-4dsoft/yettel/internal/session"
	"github.com/android-4dsoft/yettel/internal/wire"
)

// CatalogSource is the read side of catalog.Store.
type CatalogSource interface {
	Get(ctx context.Context) domain.Result[domain.Catalog]
	Refresh(ctx context.Context) domain.Result[domain.Catalog]
}

// Upstream is the subset of upstream.Client the service calls directly.
type Upstream interface {
	FetchVehicle(ctx context.Context) domain.Result[domain.Vehicle]
	SubmitOrder(ctx context.Context, order domain.Order) domain.Result[domain.OrderConfirmation]
}

// nationwideKinds is the display order of nationwide passes.
var nationwideKinds = []domain.TierKind{domain.TierDay, domain.TierWeek, domain.TierMonth, domain.TierYear}

// VignetteService implements the vignette use cases.
type VignetteService struct {
	sessions *session.Registry
	graph    *region.Graph
	catalog  CatalogSource
	upstream Upstream
	orders   repo.OrderRepo
	log      *slog.Logger
	now      func() time.Time
}

// NewVignetteService wires the service. orders may be nil, in which case
// confirmed orders are not recorded and the ledger reads return nothing.
func NewVignetteService(
	sessions *session.Registry,
	graph *region.Graph,
	catalog CatalogSource,
	upstream Upstream,
	orders repo.OrderRepo,
	logger *slog.Logger,
) *VignetteService {
	if logger == nil {
		logger = slog.Default()
	}
	return &VignetteService{
		sessions: sessions,
		graph:    graph,
		catalog:  catalog,
		upstream: upstream,
		orders:   orders,
		log:      logger,
		now:      time.Now,
	}
}

// CreateSession starts a session with an empty selection.
func (s *VignetteService) CreateSession() *session.Session {
	return s.sessions.Create()
}

// DeleteSession drops a session and its selection.
func (s *VignetteService) DeleteSession(sid uuid.UUID) error {
	if err := s.sessions.Delete(sid); err != nil {
		return fmt.Errorf("service.VignetteService.DeleteSession: %w", err)
	}
	return nil
}

// Catalog returns the catalog snapshot, fetching it when none is loaded or
// when refresh is set. Upstream failures come back as *domain.Failure.
func (s *VignetteService) Catalog(ctx context.Context, refresh bool) (domain.Catalog, error) {
	res := s.catalog.Get
	if refresh {
		res = s.catalog.Refresh
	}
	cat, err := res(ctx).Unwrap()
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("service.VignetteService.Catalog: %w", err)
	}
	return cat, nil
}

// Vehicle returns the session's vehicle. It is fetched once per session.
func (s *VignetteService) Vehicle(ctx context.Context, sid uuid.UUID) (domain.Vehicle, error) {
	sess, err := s.sessions.Get(sid)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VignetteService.Vehicle: %w", err)
	}
	v, err := s.vehicle(ctx, sess)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VignetteService.Vehicle: %w", err)
	}
	return v, nil
}

// Passes lists the nationwide passes for the session's vehicle category.
func (s *VignetteService) Passes(ctx context.Context, sid uuid.UUID) (domain.PassOffer, error) {
	sess, err := s.sessions.Get(sid)
	if err != nil {
		return domain.PassOffer{}, fmt.Errorf("service.VignetteService.Passes: %w", err)
	}
	v, cat, err := s.vehicleAndCatalog(ctx, sess)
	if err != nil {
		return domain.PassOffer{}, fmt.Errorf("service.VignetteService.Passes: %w", err)
	}

	offer := domain.PassOffer{Options: []domain.PassOption{}}
	for _, kind := range nationwideKinds {
		tiers := cat.TiersFor(v.Category, kind)
		if len(tiers) == 0 {
			continue
		}
		t := tiers[0]
		offer.Options = append(offer.Options, domain.PassOption{
			Kind:           kind,
			Category:       t.VehicleCategory,
			Cost:           t.UnitCost,
			TransactionFee: t.TransactionFee,
			Total:          t.UnitCost.Add(t.TransactionFee),
		})
		if kind == domain.TierYear {
			offer.HasYearly = true
		}
	}
	if len(cat.TiersFor(v.Category, domain.TierRegionalYear)) > 0 {
		offer.HasRegional = true
		offer.HasYearly = true
	}
	return offer, nil
}

// Regions lists the purchasable regions the catalog sells a regional pass for,
// sorted by display name, each with the regional unit price and its selected
// and selectable state.
func (s *VignetteService) Regions(ctx context.Context, sid uuid.UUID) ([]domain.RegionOption, error) {
	sess, err := s.sessions.Get(sid)
	if err != nil {
		return nil, fmt.Errorf("service.VignetteService.Regions: %w", err)
	}
	v, cat, err := s.vehicleAndCatalog(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("service.VignetteService.Regions: %w", err)
	}
	tiers := cat.TiersFor(v.Category, domain.TierRegionalYear)
	if len(tiers) == 0 {
		return nil, fmt.Errorf("service.VignetteService.Regions: %w: no regional pass for %q", domain.ErrNoMatchingTier, v.Category)
	}
	cost := tiers[0].UnitCost
	covered := regionalCoverage(tiers)

	var selected []domain.RegionID
	sess.Do(func(st *selection.Store) { selected = st.RegionIDs() })

	out := []domain.RegionOption{}
	for _, r := range cat.Regions {
		if !s.graph.Purchasable(r.ID) || !covered[r.ID] {
			continue
		}
		out = append(out, domain.RegionOption{
			Region:     r,
			Cost:       cost,
			Selected:   slices.Contains(selected, r.ID),
			Selectable: region.IsSelectable(r.ID, selected, s.graph),
		})
	}
	slices.SortStableFunc(out, func(a, b domain.RegionOption) int {
		return cmp.Compare(a.Region.DisplayName, b.Region.DisplayName)
	})
	return out, nil
}

// SelectRegion toggles id in the session's region selection. A rejected
// toggle leaves the selection unchanged and returns ErrNotAdjacent or
// ErrNotPurchasable. Regions the catalog has no regional pass for are not
// purchasable for the vehicle's category, though one already selected can
// still be removed.
func (s *VignetteService) SelectRegion(ctx context.Context, sid uuid.UUID, id domain.RegionID) (domain.Selection, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: region id is required", domain.ErrValidation)
	}
	sess, err := s.sessions.Get(sid)
	if err != nil {
		return nil, fmt.Errorf("service.VignetteService.SelectRegion: %w", err)
	}
	v, cat, err := s.vehicleAndCatalog(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("service.VignetteService.SelectRegion: %w", err)
	}
	covered := regionalCoverage(cat.TiersFor(v.Category, domain.TierRegionalYear))

	var (
		out  selection.Outcome
		snap domain.Selection
	)
	sess.Do(func(st *selection.Store) {
		if !covered[id] && !slices.Contains(st.RegionIDs(), id) {
			out = selection.OutcomeNotPurchasable
		} else {
			out = st.SelectRegion(id)
		}
		snap = st.Snapshot()
	})

	switch out {
	case selection.OutcomeNotAdjacent:
		return snap, fmt.Errorf("service.VignetteService.SelectRegion: %w: %s", domain.ErrNotAdjacent, id)
	case selection.OutcomeNotPurchasable:
		return snap, fmt.Errorf("service.VignetteService.SelectRegion: %w: %s", domain.ErrNotPurchasable, id)
	}
	return snap, nil
}

// SelectPass replaces the session's selection with the nationwide pass of
// the given kind, priced from the catalog for the vehicle's category.
func (s *VignetteService) SelectPass(ctx context.Context, sid uuid.UUID, kind domain.TierKind) (domain.Selection, error) {
	if !kind.Nationwide() {
		return nil, fmt.Errorf("%w: %s is not a nationwide pass", domain.ErrValidation, kind)
	}
	sess, err := s.sessions.Get(sid)
	if err != nil {
		return nil, fmt.Errorf("service.VignetteService.SelectPass: %w", err)
	}
	v, cat, err := s.vehicleAndCatalog(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("service.VignetteService.SelectPass: %w", err)
	}
	tiers := cat.TiersFor(v.Category, kind)
	if len(tiers) == 0 {
		return nil, fmt.Errorf("service.VignetteService.SelectPass: %w: no %s pass for %q", domain.ErrNoMatchingTier, kind, v.Category)
	}

	var snap domain.Selection
	sess.Do(func(st *selection.Store) {
		st.SelectSinglePass(domain.NationwideCode(kind), v.Category, tiers[0].UnitCost)
		snap = st.Snapshot()
	})
	return snap, nil
}

// ClearSelection empties the session's selection.
func (s *VignetteService) ClearSelection(sid uuid.UUID) error {
	sess, err := s.sessions.Get(sid)
	if err != nil {
		return fmt.Errorf("service.VignetteService.ClearSelection: %w", err)
	}
	sess.Do(func(st *selection.Store) { st.Clear() })
	return nil
}

// Selection returns a copy of the session's selection.
func (s *VignetteService) Selection(sid uuid.UUID) (domain.Selection, error) {
	sess, err := s.sessions.Get(sid)
	if err != nil {
		return nil, fmt.Errorf("service.VignetteService.Selection: %w", err)
	}
	return sess.Snapshot(), nil
}

// Quote prices the session's current selection.
func (s *VignetteService) Quote(ctx context.Context, sid uuid.UUID) (domain.Quote, error) {
	sess, err := s.sessions.Get(sid)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("service.VignetteService.Quote: %w", err)
	}
	v, cat, err := s.vehicleAndCatalog(ctx, sess)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("service.VignetteService.Quote: %w", err)
	}

	// The snapshot is taken after the fetches so a change made while they
	// were in flight is priced.
	priced, err := pricing.Price(sess.Snapshot(), cat, v.Category)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("service.VignetteService.Quote: %w", err)
	}
	return domain.Quote{Vehicle: v, Priced: priced}, nil
}

// Checkout submits the session's current selection as an order. On success
// the selection is cleared, unless it changed while the order was in flight,
// and the receipt is recorded in the ledger. A ledger failure is logged and
// does not fail the checkout: the upstream has already accepted the order.
func (s *VignetteService) Checkout(ctx context.Context, sid uuid.UUID) (domain.OrderReceipt, error) {
	sess, err := s.sessions.Get(sid)
	if err != nil {
		return domain.OrderReceipt{}, fmt.Errorf("service.VignetteService.Checkout: %w", err)
	}
	v, cat, err := s.vehicleAndCatalog(ctx, sess)
	if err != nil {
		return domain.OrderReceipt{}, fmt.Errorf("service.VignetteService.Checkout: %w", err)
	}

	sel := sess.Snapshot()
	priced, err := pricing.Price(sel, cat, v.Category)
	if err != nil {
		return domain.OrderReceipt{}, fmt.Errorf("service.VignetteService.Checkout: %w", err)
	}
	order, err := pricing.BuildOrder(sel, priced, wire.EncodeTierCode)
	if err != nil {
		return domain.OrderReceipt{}, fmt.Errorf("service.VignetteService.Checkout: %w", err)
	}

	conf, err := s.upstream.SubmitOrder(ctx, order).Unwrap()
	if err != nil {
		return domain.OrderReceipt{}, fmt.Errorf("service.VignetteService.Checkout: %w", err)
	}

	sess.Do(func(st *selection.Store) {
		if reflect.DeepEqual(st.Snapshot(), sel) {
			st.Clear()
		}
	})

	receipt := domain.OrderReceipt{
		ID:             uuid.New(),
		SessionID:      sess.ID,
		VehiclePlate:   v.Plate,
		Category:       priced.Category,
		StatusCode:     conf.StatusCode,
		Lines:          order.Lines,
		TransactionFee: priced.TransactionFee,
		Total:          priced.Total,
		CreatedAt:      s.now().UTC(),
	}
	if conf.Message != nil {
		receipt.Message = *conf.Message
	}
	// The receipt keeps the lines that were priced and sent.
	if len(conf.AcceptedLines) > 0 && !slices.EqualFunc(order.Lines, conf.AcceptedLines, domain.OrderLine.Equal) {
		s.log.WarnContext(ctx, "accepted lines differ from submitted",
			"order_id", receipt.ID,
			"submitted", len(order.Lines),
			"accepted", len(conf.AcceptedLines),
		)
	}

	s.log.InfoContext(ctx, "order submitted",
		"order_id", receipt.ID,
		"session_id", sess.ID,
		"lines", len(order.Lines),
		"total", receipt.Total.String(),
	)

	if s.orders == nil {
		return receipt, nil
	}
	saved, err := s.orders.Create(ctx, receipt)
	if err != nil {
		s.log.ErrorContext(ctx, "record order", "order_id", receipt.ID, "error", err)
		return receipt, nil
	}
	return saved, nil
}

// Orders returns one page of recorded orders and the total count.
func (s *VignetteService) Orders(ctx context.Context, p domain.PaginationParams) ([]domain.OrderReceipt, int64, error) {
	if s.orders == nil {
		return []domain.OrderReceipt{}, 0, nil
	}
	orders, total, err := s.orders.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.VignetteService.Orders: %w", err)
	}
	return orders, total, nil
}

// Order returns one recorded order.
func (s *VignetteService) Order(ctx context.Context, id uuid.UUID) (domain.OrderReceipt, error) {
	if s.orders == nil {
		return domain.OrderReceipt{}, fmt.Errorf("service.VignetteService.Order: %w", domain.ErrNotFound)
	}
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return domain.OrderReceipt{}, fmt.Errorf("service.VignetteService.Order: %w", err)
	}
	return o, nil
}

func (s *VignetteService) vehicle(ctx context.Context, sess *session.Session) (domain.Vehicle, error) {
	if v, ok := sess.Vehicle(); ok {
		return v, nil
	}
	v, err := s.upstream.FetchVehicle(ctx).Unwrap()
	if err != nil {
		return domain.Vehicle{}, err
	}
	return sess.SetVehicle(v), nil
}

// regionalCoverage returns the regions listed by any of the regional tiers.
func regionalCoverage(tiers []domain.VignetteTier) map[domain.RegionID]bool {
	covered := make(map[domain.RegionID]bool)
	for _, t := range tiers {
		for _, c := range t.Types {
			if id, ok := c.Region(); ok {
				covered[id] = true
			}
		}
	}
	return covered
}

// vehicleAndCatalog loads both concurrently. The first failure wins.
func (s *VignetteService) vehicleAndCatalog(ctx context.Context, sess *session.Session) (domain.Vehicle, domain.Catalog, error) {
	var (
		v   domain.Vehicle
		cat domain.Catalog
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		v, err = s.vehicle(gctx, sess)
		return err
	})
	g.Go(func() error {
		var err error
		cat, err = s.catalog.Get(gctx).Unwrap()
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Vehicle{}, domain.Catalog{}, err
	}
	return v, cat, nil
}
