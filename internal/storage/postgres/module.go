package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"sewtrack/internal/config"
	"sewtrack/internal/domain/repository"
)

// Module wires PostgreSQL storage, repositories and the change listener.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(newChangeListener),
	fx.Provide(
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.WorkerRepository { return s.Workers() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func newChangeListener(cfg *config.Config, logger *slog.Logger) *ChangeListener {
	return NewChangeListener(cfg.DatabaseURI, logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
