package config

import (
	"log/slog"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.VWorldKey != "DEMO_KEY" {
		t.Errorf("VWorldKey = %q", cfg.VWorldKey)
	}
	if cfg.Transport != "stdio" {
		t.Errorf("Transport = %q", cfg.Transport)
	}
	if cfg.DomesticZoomMin != 6 || cfg.DomesticZoomMax != 19 {
		t.Errorf("domestic bounds = %d-%d", cfg.DomesticZoomMin, cfg.DomesticZoomMax)
	}
	if cfg.IntlZoomMin != 7 || cfg.IntlZoomMax != 8 {
		t.Errorf("international bounds = %d-%d", cfg.IntlZoomMin, cfg.IntlZoomMax)
	}
	if cfg.SessionCap != 1024 {
		t.Errorf("SessionCap = %d", cfg.SessionCap)
	}
	if cfg.GeocodeEnabled {
		t.Error("geocoding should default to off")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("VWORLD_API_KEY", "real-key")
	t.Setenv("GEOQUIZ_TRANSPORT", "http")
	t.Setenv("GEOQUIZ_SESSION_CAP", "32")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.VWorldKey != "real-key" {
		t.Errorf("VWorldKey = %q", cfg.VWorldKey)
	}
	if cfg.Transport != "http" {
		t.Errorf("Transport = %q", cfg.Transport)
	}
	if cfg.SessionCap != 32 {
		t.Errorf("SessionCap = %d", cfg.SessionCap)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("bad transport", func(t *testing.T) {
		t.Setenv("GEOQUIZ_TRANSPORT", "carrier-pigeon")
		if _, err := Load(); err == nil {
			t.Error("expected error for unknown transport")
		}
	})

	t.Run("non-positive session cap", func(t *testing.T) {
		t.Setenv("GEOQUIZ_SESSION_CAP", "0")
		if _, err := Load(); err == nil {
			t.Error("expected error for zero session cap")
		}
	})
}
