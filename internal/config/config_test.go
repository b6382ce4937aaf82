package config

import (
	"reflect"
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TRIVIA_CATALOG", "")
	t.Setenv("TRIVIA_PLAYERS", "")
	t.Setenv("TRIVIA_SEED", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.CatalogPath != "" {
		t.Errorf("Expected no catalog path, got %q", cfg.CatalogPath)
	}
	if cfg.LogFile != "trivia.log" {
		t.Errorf("Expected default log file trivia.log, got %q", cfg.LogFile)
	}
	if cfg.Seed != 0 {
		t.Errorf("Expected seed 0, got %d", cfg.Seed)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TRIVIA_CATALOG", "/tmp/questions.yaml")
	t.Setenv("TRIVIA_PLAYERS", "Ada,Grace,Linus")
	t.Setenv("TRIVIA_SEED", "42")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.CatalogPath != "/tmp/questions.yaml" {
		t.Errorf("Unexpected catalog path %q", cfg.CatalogPath)
	}
	if want := []string{"Ada", "Grace", "Linus"}; !reflect.DeepEqual(cfg.Players, want) {
		t.Errorf("Expected players %v, got %v", want, cfg.Players)
	}
	if cfg.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Seed)
	}
}

func TestLoadConfigError(t *testing.T) {
	t.Setenv("TRIVIA_SEED", "not-a-number")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("Expected parse env prefix, got %v", err)
	}
}
