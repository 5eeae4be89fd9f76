package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"sewtrack/internal/app"
	"sewtrack/internal/config"
	"sewtrack/internal/domain/repository"
	"sewtrack/internal/storage/postgres"
	"sewtrack/internal/test"
	"sewtrack/internal/watch"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	orderRepo := test.NewOrderStoreStub()
	workerRepo := test.NewWorkerRepositoryStub()
	source := &test.ChangeSourceStub{}

	var facade *app.WorkshopFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.WorkerRepository(workerRepo)),
			fx.Replace(watch.Source(source)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected workshop facade instance")
	}
}
