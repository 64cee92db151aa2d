package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ramonehamilton/mtg-meta-service/internal/analytics"
	"github.com/ramonehamilton/mtg-meta-service/internal/charts"
)

var (
	chartFormat string
	chartDays   int
	chartOut    string
	chartKind   string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render an HTML chart of the meta",
	Long: `Render an interactive HTML chart for a format. The chart kind is either
"shares" (bar chart of current vs previous meta share) or "matchups"
(heatmap of pairwise win rates).`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVar(&chartFormat, "format", "", "game format (e.g. standard, modern)")
	chartCmd.Flags().IntVar(&chartDays, "days", 14, "analysis period length in days")
	chartCmd.Flags().StringVar(&chartOut, "out", "", "output HTML file path")
	chartCmd.Flags().StringVar(&chartKind, "kind", "shares", "chart kind: shares or matchups")
	_ = chartCmd.MarkFlagRequired("format")
	_ = chartCmd.MarkFlagRequired("out")
}

func runChart(cmd *cobra.Command, args []string) error {
	engine, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	config := charts.DefaultChartConfig()

	switch chartKind {
	case "shares":
		result, err := engine.Rankings(cmd.Context(), analytics.RankingsRequest{
			Format:       chartFormat,
			CurrentDays:  chartDays,
			PreviousDays: chartDays,
		})
		if err != nil {
			return err
		}
		if err := charts.RenderMetaShareChart(result.Rows, config, chartOut); err != nil {
			return err
		}
	case "matchups":
		result, err := engine.MatchupMatrix(cmd.Context(), analytics.MatchupRequest{
			Format: chartFormat,
			Days:   chartDays,
		})
		if err != nil {
			return err
		}
		if err := charts.RenderMatchupHeatmap(result.Matrix, config, chartOut); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown chart kind: %s", chartKind)
	}

	fmt.Fprintf(os.Stdout, "Chart written to %s\n", chartOut)
	return nil
}
