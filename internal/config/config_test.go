package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mstephjuan/expense-tracker/internal/store"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("EXPENSE_TRACKER_DATA_DIR", "")
	t.Setenv("EXPENSE_TRACKER_BACKEND", "")
	t.Setenv("EXPENSE_TRACKER_CURRENCY", "")
	return dir
}

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	isolateConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.General.Backend != store.BackendJSON || cfg.General.Currency != "$" {
		t.Fatalf("defaults: %+v", cfg.General)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	isolateConfig(t)

	cfg := DefaultConfig()
	cfg.General.Backend = store.BackendSQLite
	cfg.General.Currency = "€"
	cfg.General.DataDir = "/tmp/expenses"
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file not reported as existing")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip: got %+v, want %+v", got, cfg)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	isolateConfig(t)
	t.Setenv("EXPENSE_TRACKER_BACKEND", store.BackendSQLite)
	t.Setenv("EXPENSE_TRACKER_DATA_DIR", "/srv/money")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.General.Backend != store.BackendSQLite {
		t.Fatalf("backend = %q, want sqlite", cfg.General.Backend)
	}
	if cfg.DataDir() != "/srv/money" {
		t.Fatalf("data dir = %q, want /srv/money", cfg.DataDir())
	}
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.Backend = "postgres"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestDataDirExpansion(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	cfg := DefaultConfig()
	if got := cfg.DataDir(); got != filepath.Join(home, ".expense_tracker") {
		t.Fatalf("default data dir = %q", got)
	}

	cfg.General.DataDir = "~/ledger"
	if got := cfg.DataDir(); got != filepath.Join(home, "ledger") {
		t.Fatalf("expanded data dir = %q", got)
	}
}
