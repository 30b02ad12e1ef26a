// Package database provides PostgreSQL connection management with lifecycle coordination.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/assessor/pkg/lifecycle"
)

// System manages database connections and lifecycle coordination.
type System interface {
	// Connection returns the underlying database connection pool.
	Connection() *sql.DB
	// Start registers startup and shutdown hooks with the lifecycle coordinator.
	Start(lc *lifecycle.Coordinator) error
	// Ready reports whether the startup ping succeeded and the pool is still open.
	Ready() bool
}

// Startup makes pingAttempts pings before giving up on blocking. The first
// retry waits pingBackoff and each later one doubles, up to pingBackoffMax.
const (
	pingAttempts   = 3
	pingBackoff    = 500 * time.Millisecond
	pingBackoffMax = 30 * time.Second
)

type database struct {
	conn        *sql.DB
	logger      *slog.Logger
	connTimeout time.Duration
	ready       atomic.Bool
}

// New creates a database system with the given configuration.
// It calls sql.Open to validate the DSN and configure pool parameters,
// but does not establish a connection until Start is called.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.ConnectionURL())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:        db,
		logger:      logger.With("system", "database"),
		connTimeout: cfg.ConnTimeoutDuration(),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

func (d *database) Ready() bool {
	return d.ready.Load()
}

func (d *database) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("starting database connection")
	lc.Check("database", d)

	lc.OnStartup(func() {
		if err := d.ping(lc.Context(), pingAttempts); err != nil {
			d.logger.Error("database ping failed, retrying in background", "attempts", pingAttempts, "error", err)
			go d.ping(lc.Context(), 0)
		}
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.ready.Store(false)
		d.logger.Info("closing database connection")

		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}

		d.logger.Info("database connection closed")
	})

	return nil
}

// ping retries until the database answers, ctx ends, or attempts pings have
// failed. attempts <= 0 retries until ctx ends. Success marks the system ready.
func (d *database) ping(ctx context.Context, attempts int) error {
	wait := pingBackoff
	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, d.connTimeout)
		err := d.conn.PingContext(pingCtx)
		cancel()
		if err == nil && ctx.Err() == nil {
			d.ready.Store(true)
			d.logger.Info("database connection established", "attempt", attempt)
			return nil
		}
		if err == nil {
			return ctx.Err()
		}
		if attempt == attempts {
			return err
		}

		d.logger.Warn("database ping retry", "attempt", attempt, "wait", wait, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait = min(wait*2, pingBackoffMax)
	}
}
