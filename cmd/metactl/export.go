package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ramonehamilton/mtg-meta-service/internal/analytics"
	"github.com/ramonehamilton/mtg-meta-service/internal/export"
)

var (
	exportFormat    string
	exportDays      int
	exportPrevDays  int
	exportOut       string
	exportOutFormat string
	exportPretty    bool
	exportGroupBy   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export archetype rankings to CSV or JSON",
	Long: `Compute the archetype rankings for a format and write them to a file.
The output format is inferred from --output-format (csv or json).`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "game format (e.g. standard, modern)")
	exportCmd.Flags().IntVar(&exportDays, "days", 14, "current period length in days")
	exportCmd.Flags().IntVar(&exportPrevDays, "previous-days", 0, "previous period length in days (default: same as --days)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path")
	exportCmd.Flags().StringVar(&exportOutFormat, "output-format", "json", "output format: csv or json")
	exportCmd.Flags().BoolVar(&exportPretty, "pretty", false, "indent JSON output")
	exportCmd.Flags().StringVar(&exportGroupBy, "group-by", "", "group rows by field (color_identity or strategy)")
	_ = exportCmd.MarkFlagRequired("format")
	_ = exportCmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, args []string) error {
	engine, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	prevDays := exportPrevDays
	if prevDays == 0 {
		prevDays = exportDays
	}

	result, err := engine.Rankings(cmd.Context(), analytics.RankingsRequest{
		Format:       exportFormat,
		CurrentDays:  exportDays,
		PreviousDays: prevDays,
		GroupBy:      analytics.GroupField(exportGroupBy),
	})
	if err != nil {
		return err
	}

	opts := export.Options{
		Format:     export.Format(exportOutFormat),
		PrettyJSON: exportPretty,
	}
	if err := export.ExportRankingsFile(exportOut, result, opts); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Exported %d rows to %s\n", len(result.Rows), exportOut)
	return nil
}
