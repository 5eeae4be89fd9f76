package watch

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Source is a subscription to the order store's change feed.
type Source interface {
	Listen(ctx context.Context) error
	WaitForEvent(ctx context.Context) error
	Close(ctx context.Context) error
}

// Watcher consumes change notifications and invokes the supplied callback
// once per event. The callback is expected to be cheap: the contract is
// "mark the cached snapshot stale", never "apply a diff".
type Watcher struct {
	source     Source
	notify     func()
	logger     *slog.Logger
	retryDelay time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewWatcher constructs a watcher around a change feed source.
func NewWatcher(source Source, notify func(), logger *slog.Logger) *Watcher {
	return &Watcher{
		source:     source,
		notify:     notify,
		logger:     logger,
		retryDelay: time.Second,
	}
}

// Start subscribes and launches the background consume loop.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.source.Listen(ctx); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.wg.Add(1)
	go w.run(runCtx)
	return nil
}

// Stop terminates the consume loop and closes the subscription.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.mu.Unlock()

	w.wg.Wait()
	_ = w.source.Close(context.Background())
}

func (w *Watcher) run(ctx context.Context) {
	defer w.wg.Done()
	for {
		if ctx.Err() != nil {
			return
		}
		if err := w.source.WaitForEvent(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Error("change feed wait failed", slog.String("error", err.Error()))
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.retryDelay):
			}
			continue
		}
		w.notify()
	}
}
