package app_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"residualmap/adapters/stats"
	"residualmap/app"
	"residualmap/internal/testkit"
)

func TestRenderAllWritesBothCharts(t *testing.T) {
	set, err := stats.NewDefaultAnalyzer().ComputeResiduals(testkit.SymptomDataset(), "AgeGroup", "Symptom")
	if err != nil {
		t.Fatalf("ComputeResiduals failed: %v", err)
	}

	dir := t.TempDir()
	paths, err := app.NewRenderService("AgeGroup", "Symptom").RenderAll(context.Background(), set, dir, "svg")
	if err != nil {
		t.Fatalf("RenderAll failed: %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("expected 2 output paths, got %v", paths)
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("chart missing: %v", err)
		}
		if !strings.Contains(string(data), "<svg") {
			t.Errorf("%s is not SVG", p)
		}
	}

	names := []string{filepath.Base(paths[0]), filepath.Base(paths[1])}
	if names[0] != "heatmap.svg" || names[1] != "network.svg" {
		t.Errorf("unexpected output names %v", names)
	}
}

func TestRenderAllPNG(t *testing.T) {
	set, err := stats.NewDefaultAnalyzer().ComputeResiduals(testkit.SymptomDataset(), "AgeGroup", "Symptom")
	if err != nil {
		t.Fatalf("ComputeResiduals failed: %v", err)
	}

	dir := t.TempDir()
	paths, err := app.NewRenderService("AgeGroup", "Symptom").RenderAll(context.Background(), set, dir, "png")
	if err != nil {
		t.Fatalf("RenderAll failed: %v", err)
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("chart missing: %v", err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}
}
