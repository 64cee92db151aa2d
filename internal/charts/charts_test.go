package charts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ramonehamilton/mtg-meta-service/internal/analytics"
)

func floatPtr(v float64) *float64 { return &v }

func TestRenderMetaShareChart(t *testing.T) {
	rows := []analytics.RankingRow{
		{MainTitle: "Esper Midrange", MetaShareCurrent: 60, MetaSharePrevious: floatPtr(50)},
		{MainTitle: "Boros Aggro", MetaShareCurrent: 40},
	}

	path := filepath.Join(t.TempDir(), "share.html")
	config := DefaultChartConfig()
	config.Title = "Standard Meta Share"

	if err := RenderMetaShareChart(rows, config, path); err != nil {
		t.Fatalf("RenderMetaShareChart: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read chart file: %v", err)
	}
	html := string(content)
	if !strings.Contains(html, "Esper Midrange") {
		t.Error("chart HTML missing archetype label")
	}
	if !strings.Contains(html, "Standard Meta Share") {
		t.Error("chart HTML missing title")
	}
}

func TestRenderMatchupHeatmap(t *testing.T) {
	matrix := analytics.MatchupMatrix{
		"Esper Midrange": {
			"Boros Aggro": {WinRate: floatPtr(66.67), MatchCount: 3},
		},
		"Boros Aggro": {
			"Esper Midrange": {WinRate: nil, MatchCount: 2}, // suppressed, not drawn
		},
	}

	path := filepath.Join(t.TempDir(), "matchups.html")
	if err := RenderMatchupHeatmap(matrix, DefaultChartConfig(), path); err != nil {
		t.Fatalf("RenderMatchupHeatmap: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read chart file: %v", err)
	}
	if !strings.Contains(string(content), "Esper Midrange") {
		t.Error("heatmap HTML missing archetype label")
	}
}

func TestRenderMetaShareChartBadPath(t *testing.T) {
	err := RenderMetaShareChart(nil, DefaultChartConfig(), filepath.Join(t.TempDir(), "missing", "chart.html"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
