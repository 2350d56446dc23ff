package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/android-4dsoft/yettel/internal/domain"
)

// OrderRepo persists confirmed orders.
type OrderRepo interface {
	// Create stores the receipt and its lines in one transaction and returns
	// it with created_at set. A zero ID is replaced with a new one.
	Create(ctx context.Context, r domain.OrderReceipt) (domain.OrderReceipt, error)

	// GetByID returns domain.ErrNotFound if no order has that ID.
	GetByID(ctx context.Context, id uuid.UUID) (domain.OrderReceipt, error)

	// ListPaged returns one page of orders, newest first, and the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.OrderReceipt, int64, error)
}

type pgOrderRepo struct {
	db db
}

// NewOrderRepo constructs an OrderRepo. Pass *pgxpool.Pool in production and a
// pgx.Tx in tests.
func NewOrderRepo(db db) OrderRepo {
	return &pgOrderRepo{db: db}
}

const orderColumns = `id, session_id, vehicle_plate, category, status_code, message,
		transaction_fee::text, total::text, created_at`

func (r *pgOrderRepo) Create(ctx context.Context, rec domain.OrderReceipt) (domain.OrderReceipt, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.OrderReceipt{}, fmt.Errorf("repo.OrderRepo.Create: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const q = `
		INSERT INTO orders (id, session_id, vehicle_plate, category, status_code, message, transaction_fee, total)
		VALUES (@id, @session_id, @vehicle_plate, @category, @status_code, @message, @transaction_fee::numeric, @total::numeric)
		RETURNING ` + orderColumns

	row := tx.QueryRow(ctx, q, pgx.NamedArgs{
		"id":              rec.ID,
		"session_id":      rec.SessionID,
		"vehicle_plate":   rec.VehiclePlate,
		"category":        rec.Category,
		"status_code":     rec.StatusCode,
		"message":         rec.Message,
		"transaction_fee": rec.TransactionFee.String(),
		"total":           rec.Total.String(),
	})
	saved, err := scanOrder(row)
	if err != nil {
		return domain.OrderReceipt{}, fmt.Errorf("repo.OrderRepo.Create: %w", err)
	}

	const lq = `
		INSERT INTO order_lines (order_id, line_no, code, category, cost)
		VALUES (@order_id, @line_no, @code, @category, @cost::numeric)`

	batch := &pgx.Batch{}
	for i, l := range rec.Lines {
		batch.Queue(lq, pgx.NamedArgs{
			"order_id": saved.ID,
			"line_no":  i,
			"code":     l.Code,
			"category": l.Category,
			"cost":     l.Cost.String(),
		})
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return domain.OrderReceipt{}, fmt.Errorf("repo.OrderRepo.Create: lines: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.OrderReceipt{}, fmt.Errorf("repo.OrderRepo.Create: commit: %w", err)
	}

	saved.Lines = append([]domain.OrderLine{}, rec.Lines...)
	return saved, nil
}

func (r *pgOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.OrderReceipt, error) {
	q := `SELECT ` + orderColumns + ` FROM orders WHERE id = @id`

	rec, err := scanOrder(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.OrderReceipt{}, fmt.Errorf("repo.OrderRepo.GetByID: %w", err)
	}
	lines, err := r.linesFor(ctx, []uuid.UUID{rec.ID})
	if err != nil {
		return domain.OrderReceipt{}, fmt.Errorf("repo.OrderRepo.GetByID: %w", err)
	}
	rec.Lines = lines[rec.ID]
	if rec.Lines == nil {
		rec.Lines = []domain.OrderLine{}
	}
	return rec, nil
}

func (r *pgOrderRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.OrderReceipt, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.OrderRepo.ListPaged: count: %w", err)
	}

	q := `SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.OrderRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	orders := []domain.OrderReceipt{}
	var ids []uuid.UUID
	for rows.Next() {
		rec, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.OrderRepo.ListPaged: scan: %w", err)
		}
		orders = append(orders, rec)
		ids = append(ids, rec.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.OrderRepo.ListPaged: rows: %w", err)
	}
	if len(ids) == 0 {
		return orders, total, nil
	}

	lines, err := r.linesFor(ctx, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.OrderRepo.ListPaged: %w", err)
	}
	for i := range orders {
		orders[i].Lines = lines[orders[i].ID]
		if orders[i].Lines == nil {
			orders[i].Lines = []domain.OrderLine{}
		}
	}
	return orders, total, nil
}

// linesFor loads the lines of the given orders keyed by order ID, each in
// submission order.
func (r *pgOrderRepo) linesFor(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.OrderLine, error) {
	const q = `
		SELECT order_id, code, category, cost::text
		FROM order_lines
		WHERE order_id = ANY(@ids::uuid[])
		ORDER BY order_id, line_no`

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}
	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"ids": keys})
	if err != nil {
		return nil, fmt.Errorf("lines: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]domain.OrderLine, len(ids))
	for rows.Next() {
		var (
			orderID pgtype.UUID
			l       domain.OrderLine
			cost    string
		)
		if err := rows.Scan(&orderID, &l.Code, &l.Category, &cost); err != nil {
			return nil, fmt.Errorf("lines: scan: %w", err)
		}
		if l.Cost, err = parseMoney(cost); err != nil {
			return nil, fmt.Errorf("lines: %w", err)
		}
		id := uuid.UUID(orderID.Bytes)
		out[id] = append(out[id], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lines: rows: %w", err)
	}
	return out, nil
}

func scanOrder(s scanner) (domain.OrderReceipt, error) {
	var (
		o         domain.OrderReceipt
		id, sid   pgtype.UUID
		fee, totl string
	)
	err := s.Scan(&id, &sid, &o.VehiclePlate, &o.Category, &o.StatusCode, &o.Message, &fee, &totl, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.OrderReceipt{}, domain.ErrNotFound
		}
		return domain.OrderReceipt{}, err
	}
	o.ID = uuid.UUID(id.Bytes)
	o.SessionID = uuid.UUID(sid.Bytes)
	if o.TransactionFee, err = parseMoney(fee); err != nil {
		return domain.OrderReceipt{}, err
	}
	if o.Total, err = parseMoney(totl); err != nil {
		return domain.OrderReceipt{}, err
	}
	return o, nil
}
