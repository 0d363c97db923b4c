package app

import (
	"context"
	"testing"
	"time"

	"github.com/fairwaypool/golf-pickem/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:       config.EnvDev,
		ServiceName:  "golf-pickem-api",
		HTTPAddr:     "127.0.0.1:0",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

func TestAppShutdownWithoutStart(t *testing.T) {
	a, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Sweep disabled, so StartSweepLoop must not leave a goroutine behind.
	a.StartSweepLoop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := a.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}

func TestNewRejectsEmptyAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""

	if _, err := New(cfg, nil); err == nil {
		t.Fatal("expected error for empty http addr")
	}
}
