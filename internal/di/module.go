package di

import (
	"go.uber.org/fx"

	"sewtrack/internal/app"
	"sewtrack/internal/config"
	"sewtrack/internal/logger"
	"sewtrack/internal/server/http/handlers"
	"sewtrack/internal/server/http/router"
	"sewtrack/internal/storage/postgres"
	"sewtrack/internal/usecase"
	"sewtrack/internal/watch"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.WorkshopFacade) handlers.WorkshopFacade { return f }),
		fx.Provide(func(l *postgres.ChangeListener) watch.Source { return l }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
