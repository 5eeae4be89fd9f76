package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5"
)

// NotifyChannel is the pg_notify channel the schema triggers publish on.
const NotifyChannel = "sewtrack_events"

// ChangeListener holds a dedicated connection subscribed to the change feed.
// Notifications carry no payload contract: each one is only a cue that
// something in the ledger changed.
type ChangeListener struct {
	dsn    string
	logger *slog.Logger

	mu   sync.Mutex
	conn *pgx.Conn
}

// NewChangeListener constructs a listener for the given DSN.
func NewChangeListener(dsn string, logger *slog.Logger) *ChangeListener {
	return &ChangeListener{dsn: dsn, logger: logger}
}

// Listen opens the dedicated connection and subscribes to the channel.
func (l *ChangeListener) Listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("connect listener: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+NotifyChannel); err != nil {
		_ = conn.Close(ctx)
		return fmt.Errorf("listen %s: %w", NotifyChannel, err)
	}

	l.mu.Lock()
	l.conn = conn
	l.mu.Unlock()

	l.logger.Info("subscribed to change feed", slog.String("channel", NotifyChannel))
	return nil
}

// WaitForEvent blocks until the next notification or context cancellation.
func (l *ChangeListener) WaitForEvent(ctx context.Context) error {
	l.mu.Lock()
	conn := l.conn
	l.mu.Unlock()
	if conn == nil {
		return errors.New("listener is not subscribed")
	}
	_, err := conn.WaitForNotification(ctx)
	return err
}

// Close releases the dedicated connection.
func (l *ChangeListener) Close(ctx context.Context) error {
	l.mu.Lock()
	conn := l.conn
	l.conn = nil
	l.mu.Unlock()
	if conn == nil {
		return nil
	}
	return conn.Close(ctx)
}
