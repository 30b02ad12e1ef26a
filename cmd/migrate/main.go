package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"

	"github.com/JaimeStill/assessor/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

type options struct {
	dsn      string
	up       bool
	down     bool
	steps    int
	version  bool
	force    int
	forceSet bool
}

func main() {
	var opts options
	flag.StringVar(&opts.dsn, "dsn", "", "Database connection string (postgres://...)")
	flag.BoolVar(&opts.up, "up", false, "Apply every pending migration")
	flag.BoolVar(&opts.down, "down", false, "Revert every applied migration")
	flag.IntVar(&opts.steps, "steps", 0, "Apply N migrations (negative reverts)")
	flag.BoolVar(&opts.version, "version", false, "Print the current schema version")
	flag.IntVar(&opts.force, "force", -1, "Set the schema version without running migrations")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "force" {
			opts.forceSet = true
		}
	})

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(opts, logger); err != nil {
		logger.Error("migrate failed", "error", err)
		os.Exit(1)
	}
}

func run(opts options, logger *slog.Logger) error {
	if !opts.up && !opts.down && opts.steps == 0 && !opts.version && !opts.forceSet {
		fmt.Fprintln(os.Stderr, "usage: migrate [-dsn <url>] -up | -down | -steps N | -version | -force N")
		flag.PrintDefaults()
		return nil
	}

	dsn, err := resolveDSN(opts.dsn)
	if err != nil {
		return err
	}

	src, err := newSource()
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()

	switch {
	case opts.version:
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			logger.Info("schema version", "version", "none")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read version: %w", err)
		}
		logger.Info("schema version", "version", v, "dirty", dirty)
		return nil
	case opts.forceSet:
		if err := m.Force(opts.force); err != nil {
			return fmt.Errorf("force version %d: %w", opts.force, err)
		}
		logger.Info("schema version forced", "version", opts.force)
		return nil
	case opts.up:
		return apply(logger, "up", m.Up())
	case opts.down:
		return apply(logger, "down", m.Down())
	default:
		return apply(logger, fmt.Sprintf("steps %d", opts.steps), m.Steps(opts.steps))
	}
}

// apply treats ErrNoChange as success.
func apply(logger *slog.Logger, op string, err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("schema already current", "op", op)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("migrations applied", "op", op)
	return nil
}

func newSource() (source.Driver, error) {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	return src, nil
}

// resolveDSN prefers the -dsn flag, then the database section of the service
// configuration (including ASSESSOR_DB_URL). There is no built-in fallback.
func resolveDSN(flagDSN string) (string, error) {
	if flagDSN != "" {
		return flagDSN, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("set -dsn or ASSESSOR_DB_URL, or configure the database section: %w", err)
	}
	return cfg.Database.ConnectionURL(), nil
}
