package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("port = %q", cfg.Port)
	}
	if cfg.EngineCmd != "matlab" {
		t.Fatalf("engine cmd = %q", cfg.EngineCmd)
	}
	if cfg.DemoMode || cfg.StrictEngine {
		t.Fatalf("flags should default to false: %+v", cfg)
	}
	if cfg.EngineTimeout != 600*time.Second {
		t.Fatalf("timeout = %v", cfg.EngineTimeout)
	}
}

func TestLoadFlagsAndTimeout(t *testing.T) {
	t.Setenv("DEMO_MODE", "1")
	t.Setenv("STRICT_MATLAB", "true")
	t.Setenv("MATLAB_TIMEOUT_SECONDS", "30")
	t.Setenv("MATLAB_CMD", "/opt/matlab/bin/matlab")

	cfg := Load()

	if !cfg.DemoMode {
		t.Fatalf("expected demo mode on")
	}
	if !cfg.StrictEngine {
		t.Fatalf("expected strict engine on")
	}
	if cfg.EngineTimeout != 30*time.Second {
		t.Fatalf("timeout = %v", cfg.EngineTimeout)
	}
	if cfg.EngineCmd != "/opt/matlab/bin/matlab" {
		t.Fatalf("engine cmd = %q", cfg.EngineCmd)
	}
}

func TestGetBoolInvalidFallsBack(t *testing.T) {
	t.Setenv("DEMO_MODE", "maybe")

	if getBool("DEMO_MODE", false) {
		t.Fatalf("invalid value should fall back to default")
	}
}
