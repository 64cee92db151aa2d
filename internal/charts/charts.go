// Package charts renders meta analytics results as interactive HTML charts.
package charts

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ramonehamilton/mtg-meta-service/internal/analytics"
)

// ChartConfig holds configuration for charts.
type ChartConfig struct {
	Title    string // Chart title
	Subtitle string // Chart subtitle
	Width    string // Chart width (e.g., "900px")
	Height   string // Chart height (e.g., "500px")
	Theme    string // Chart theme
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:  "900px",
		Height: "500px",
		Theme:  "light",
	}
}

// RenderMetaShareChart creates a bar chart of current vs previous meta share
// per archetype (or group bucket) and writes it to outputPath as HTML. Rows
// are expected pre-sorted by current share descending, as the engine
// returns them.
func RenderMetaShareChart(rows []analytics.RankingRow, config ChartConfig, outputPath string) error {
	bar := charts.NewBar()

	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
	)

	xLabels := make([]string, len(rows))
	current := make([]opts.BarData, len(rows))
	previous := make([]opts.BarData, len(rows))
	for i, row := range rows {
		xLabels[i] = chartLabel(row)
		current[i] = opts.BarData{Value: row.MetaShareCurrent}
		if row.MetaSharePrevious != nil {
			previous[i] = opts.BarData{Value: *row.MetaSharePrevious}
		} else {
			previous[i] = opts.BarData{Value: nil}
		}
	}

	bar.SetXAxis(xLabels).
		AddSeries("Current Share", current).
		AddSeries("Previous Share", previous).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)

	return renderToFile(bar, outputPath)
}

// RenderMatchupHeatmap creates a heatmap of the matchup matrix and writes it
// to outputPath as HTML. Rows are player archetypes, columns opponents;
// cells without a reportable win rate (below the minimum sample) are left
// blank rather than drawn as 0.
func RenderMatchupHeatmap(matrix analytics.MatchupMatrix, config ChartConfig, outputPath string) error {
	heatmap := charts.NewHeatMap()

	archetypes := matrix.Archetypes()
	heatmap.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      archetypes,
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category",
			Data: archetypes,
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        100,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#c23531", "#f5f5f5", "#3ba272"},
			},
		}),
	)

	data := make([]opts.HeatMapData, 0, len(archetypes)*len(archetypes))
	for y, player := range archetypes {
		for x, opponent := range archetypes {
			cell, ok := matrix[player][opponent]
			if !ok || cell.WinRate == nil {
				continue
			}
			data = append(data, opts.HeatMapData{
				Value: [3]interface{}{x, y, *cell.WinRate},
			})
		}
	}

	heatmap.AddSeries("win rate", data)

	return renderToFile(heatmap, outputPath)
}

// renderer is the rendering surface shared by all go-echarts chart types.
type renderer interface {
	Render(w io.Writer) error
}

func renderToFile(chart renderer, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := chart.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// chartLabel picks a readable axis label for a ranking row; grouped bucket
// rows are labeled by their grouping key.
func chartLabel(row analytics.RankingRow) string {
	if row.MainTitle == "grouped" || row.MainTitle == "" {
		return row.ColorIdentity
	}
	return row.MainTitle
}
