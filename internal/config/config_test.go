package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BATCHREQ_DB_PATH", "")
	t.Setenv("BATCHREQ_PORT", "")

	cfg := Load()
	if cfg.DBPath != "./batchreq.db" {
		t.Errorf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port, got %q", cfg.Port)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BATCHREQ_DB_PATH", "/tmp/custom.db")
	t.Setenv("BATCHREQ_PORT", "9090")

	cfg := Load()
	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("expected /tmp/custom.db, got %q", cfg.DBPath)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected 9090, got %q", cfg.Port)
	}
}
