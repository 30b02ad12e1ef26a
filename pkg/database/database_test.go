package database_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/JaimeStill/assessor/pkg/database"
	"github.com/JaimeStill/assessor/pkg/lifecycle"
)

func testConfig() database.Config {
	return database.Config{
		Host:            "localhost",
		Port:            5432,
		Name:            "assessor",
		User:            "assessor",
		SSLMode:         "disable",
		MaxOpenConns:    42,
		MaxIdleConns:    7,
		ConnMaxLifetime: "10m",
		ConnTimeout:     "3s",
	}
}

func TestNewSetsPoolParams(t *testing.T) {
	cfg := testConfig()
	sys, err := database.New(&cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	conn := sys.Connection()
	defer conn.Close()

	if got := conn.Stats().MaxOpenConnections; got != 42 {
		t.Errorf("MaxOpenConnections = %d, want 42", got)
	}
	if sys.Ready() {
		t.Error("Ready() before Start")
	}
}

func TestStartRegistersReadiness(t *testing.T) {
	cfg := testConfig()
	sys, err := database.New(&cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer sys.Connection().Close()

	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if _, ok := lc.Status()["database"]; !ok {
		t.Error("database probe not registered with the lifecycle")
	}
}

func TestStartUnreachableStaysNotReady(t *testing.T) {
	cfg := testConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 1
	cfg.ConnTimeout = "200ms"

	sys, err := database.New(&cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	lc.WaitForStartup()

	if sys.Ready() {
		t.Error("Ready() = true after failed pings")
	}
	if lc.Ready() {
		t.Error("coordinator Ready() = true with database down")
	}
	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
