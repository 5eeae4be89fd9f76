package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "sewtrack/internal/domain/errors"
	"sewtrack/internal/domain/model"
	"sewtrack/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage depends on; tests swap
// in a pgxmock pool through it.
type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type workerRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Workers() repository.WorkerRepository {
	return &workerRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS workers (
            id TEXT PRIMARY KEY,
            name TEXT UNIQUE NOT NULL,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            order_number TEXT UNIQUE NOT NULL,
            wallet_type TEXT NOT NULL,
            points INTEGER NOT NULL CHECK (points >= 0),
            status TEXT NOT NULL,
            claimed_by TEXT REFERENCES workers(id),
            claimed_at TIMESTAMPTZ,
            completed_at TIMESTAMPTZ,
            voided_at TIMESTAMPTZ,
            orderer_name TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_claimed ON orders(claimed_by, completed_at)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at DESC)`,
		`CREATE OR REPLACE FUNCTION sewtrack_notify() RETURNS trigger AS $$
         BEGIN
             PERFORM pg_notify('` + NotifyChannel + `', TG_TABLE_NAME);
             RETURN NULL;
         END;
         $$ LANGUAGE plpgsql`,
		`DROP TRIGGER IF EXISTS orders_notify ON orders`,
		`CREATE TRIGGER orders_notify AFTER INSERT OR UPDATE ON orders
         FOR EACH STATEMENT EXECUTE FUNCTION sewtrack_notify()`,
		`DROP TRIGGER IF EXISTS workers_notify ON workers`,
		`CREATE TRIGGER workers_notify AFTER INSERT OR UPDATE ON workers
         FOR EACH STATEMENT EXECUTE FUNCTION sewtrack_notify()`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const orderColumns = `id, order_number, wallet_type, points, status, claimed_by, claimed_at, completed_at, voided_at, orderer_name, created_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.WalletType, &o.Points, &o.Status,
		&o.ClaimedBy, &o.ClaimedAt, &o.CompletedAt, &o.VoidedAt, &o.OrdererName, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, orderNumber, walletType string, points int, ordererName string) (*model.Order, error) {
	const query = `INSERT INTO orders (id, order_number, wallet_type, points, status, orderer_name)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING created_at`
	order := model.Order{
		ID:          uuid.NewString(),
		OrderNumber: orderNumber,
		WalletType:  walletType,
		Points:      points,
		Status:      model.OrderStatusPending,
		OrdererName: ordererName,
	}
	err := r.storage.pool.QueryRow(ctx, query, order.ID, order.OrderNumber, order.WalletType, order.Points, order.Status, order.OrdererName).Scan(&order.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.WalletType, &o.Points, &o.Status,
			&o.ClaimedBy, &o.ClaimedAt, &o.CompletedAt, &o.VoidedAt, &o.OrdererName, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ApplyTransition performs the conditional update that serializes concurrent
// writers: the row is only touched while its status still matches what the
// caller observed. A zero-row result is disambiguated into stale vs missing.
func (r *orderRepository) ApplyTransition(ctx context.Context, id string, expected model.OrderStatus, patch model.OrderPatch) (*model.Order, error) {
	query := `UPDATE orders
              SET status=$1, claimed_by=$2, claimed_at=$3, completed_at=$4, voided_at=$5
              WHERE id=$6 AND status=$7
              RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query,
		patch.Status, patch.ClaimedBy, patch.ClaimedAt, patch.CompletedAt, patch.VoidedAt, id, expected))
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if _, probeErr := r.GetByID(ctx, id); probeErr != nil {
		return nil, probeErr
	}
	return nil, domainErrors.ErrStaleState
}

// --- WorkerRepository implementation ---

func (r *workerRepository) Create(ctx context.Context, name string) (*model.Worker, bool, error) {
	var worker model.Worker
	var created bool
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectQuery = `SELECT id, name, is_active, created_at FROM workers WHERE name=$1 FOR UPDATE`
		err := tx.QueryRow(ctx, selectQuery, name).Scan(&worker.ID, &worker.Name, &worker.IsActive, &worker.CreatedAt)
		switch {
		case err == nil:
			if worker.IsActive {
				return domainErrors.ErrAlreadyExists
			}
			// Same name restores the old identity with its history.
			if _, err := tx.Exec(ctx, `UPDATE workers SET is_active=TRUE WHERE id=$1`, worker.ID); err != nil {
				return err
			}
			worker.IsActive = true
			return nil
		case errors.Is(err, pgx.ErrNoRows):
			worker = model.Worker{ID: uuid.NewString(), Name: name, IsActive: true}
			const insertQuery = `INSERT INTO workers (id, name) VALUES ($1, $2) RETURNING created_at`
			if err := tx.QueryRow(ctx, insertQuery, worker.ID, worker.Name).Scan(&worker.CreatedAt); err != nil {
				return err
			}
			created = true
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, false, err
	}
	return &worker, created, nil
}

func (r *workerRepository) GetByID(ctx context.Context, id string) (*model.Worker, error) {
	const query = `SELECT id, name, is_active, created_at FROM workers WHERE id=$1`
	var w model.Worker
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&w.ID, &w.Name, &w.IsActive, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *workerRepository) List(ctx context.Context) ([]model.Worker, error) {
	const query = `SELECT id, name, is_active, created_at FROM workers ORDER BY name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Worker
	for rows.Next() {
		var w model.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.IsActive, &w.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *workerRepository) SetActive(ctx context.Context, id string, active bool) (*model.Worker, error) {
	const query = `UPDATE workers SET is_active=$1 WHERE id=$2 RETURNING id, name, is_active, created_at`
	var w model.Worker
	err := r.storage.pool.QueryRow(ctx, query, active, id).Scan(&w.ID, &w.Name, &w.IsActive, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
