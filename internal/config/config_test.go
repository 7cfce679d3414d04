package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %q", cfg.Server.Port)
	}
	if cfg.Database.Enabled {
		t.Error("persistence must default to disabled")
	}
	if cfg.Render.ColorLow != "#2166ac" || cfg.Render.ColorHigh != "#b2182b" {
		t.Errorf("default palette = %q/%q", cfg.Render.ColorLow, cfg.Render.ColorHigh)
	}
	if cfg.Render.MinEdge != 1 || cfg.Render.MaxEdge != 5 {
		t.Errorf("default edge widths = %v/%v", cfg.Render.MinEdge, cfg.Render.MaxEdge)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/residuals")
	t.Setenv("EDGE_MAX_WIDTH", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port override ignored, got %q", cfg.Server.Port)
	}
	if !cfg.Database.Enabled {
		t.Error("DATABASE_URL must enable persistence")
	}
	if cfg.Render.MaxEdge != 8 {
		t.Errorf("edge width override ignored, got %v", cfg.Render.MaxEdge)
	}
}

func TestLoadRejectsBadEdgeRange(t *testing.T) {
	t.Setenv("EDGE_MIN_WIDTH", "6")
	t.Setenv("EDGE_MAX_WIDTH", "2")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation failure for inverted edge range")
	}
}

func TestLoadIgnoresUnparsableFloat(t *testing.T) {
	t.Setenv("THEME_SIZE", "big")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Render.ThemeSize != 13 {
		t.Errorf("unparsable float must fall back to default, got %v", cfg.Render.ThemeSize)
	}
}
