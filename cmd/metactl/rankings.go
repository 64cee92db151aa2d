package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/ramonehamilton/mtg-meta-service/internal/analytics"
)

var (
	rankingsFormat   string
	rankingsDays     int
	rankingsPrevDays int
	rankingsPrevFrom int
	rankingsPrevTo   int
	rankingsColor    string
	rankingsStrategy string
	rankingsGroupBy  string
)

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Show ranked archetype meta shares and win rates",
	Long: `Display the archetype rankings for a format: meta share and win rate
over the current period compared against the previous one. Win rates
with too few matches are shown as a dash rather than a number.`,
	Args: cobra.NoArgs,
	RunE: runRankings,
}

func init() {
	rankingsCmd.Flags().StringVar(&rankingsFormat, "format", "", "game format (e.g. standard, modern)")
	rankingsCmd.Flags().IntVar(&rankingsDays, "days", 14, "current period length in days")
	rankingsCmd.Flags().IntVar(&rankingsPrevDays, "previous-days", 0, "previous period length in days (default: same as --days)")
	rankingsCmd.Flags().IntVar(&rankingsPrevFrom, "previous-start-days", 0, "previous period start, days ago")
	rankingsCmd.Flags().IntVar(&rankingsPrevTo, "previous-end-days", 0, "previous period end, days ago")
	rankingsCmd.Flags().StringVar(&rankingsColor, "color", "", "filter by color identity")
	rankingsCmd.Flags().StringVar(&rankingsStrategy, "strategy", "", "filter by strategy")
	rankingsCmd.Flags().StringVar(&rankingsGroupBy, "group-by", "", "group rows by field (color_identity or strategy)")
	_ = rankingsCmd.MarkFlagRequired("format")
}

func runRankings(cmd *cobra.Command, args []string) error {
	engine, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	prevDays := rankingsPrevDays
	if prevDays == 0 {
		prevDays = rankingsDays
	}

	result, err := engine.Rankings(cmd.Context(), analytics.RankingsRequest{
		Format:               rankingsFormat,
		CurrentDays:          rankingsDays,
		PreviousDays:         prevDays,
		PreviousStartDaysAgo: rankingsPrevFrom,
		PreviousEndDaysAgo:   rankingsPrevTo,
		ColorIdentity:        rankingsColor,
		Strategy:             rankingsStrategy,
		GroupBy:              analytics.GroupField(rankingsGroupBy),
	})
	if err != nil {
		return err
	}
	if len(result.Rows) == 0 {
		fmt.Fprintf(os.Stdout, "No tournament data for %s in the last %d days.\n", rankingsFormat, rankingsDays)
		return nil
	}

	meta := result.Metadata
	fmt.Fprintf(os.Stdout, "\n=== %s Rankings ===\n\n", rankingsFormat)
	fmt.Fprintf(os.Stdout, "  Current period  : %s → %s (%d days)\n",
		meta.CurrentPeriod.StartDate.Format("2006-01-02"),
		meta.CurrentPeriod.EndDate.Format("2006-01-02"),
		meta.CurrentPeriod.Days)
	fmt.Fprintf(os.Stdout, "  Previous period : %s → %s (%d days)\n\n",
		meta.PreviousPeriod.StartDate.Format("2006-01-02"),
		meta.PreviousPeriod.EndDate.Format("2006-01-02"),
		meta.PreviousPeriod.Days)

	t := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	t.Header("#", "ARCHETYPE", "COLORS", "STRATEGY", "SHARE%", "DECKS", "PREV SHARE%", "WIN%", "MATCHES", "PREV WIN%")
	for i, row := range result.Rows {
		t.Append(
			fmt.Sprintf("%d", i+1),
			row.MainTitle,
			row.ColorIdentity,
			row.Strategy,
			fmt.Sprintf("%.2f", row.MetaShareCurrent),
			fmt.Sprintf("%d", row.SampleSizeCurrent),
			cellFloat(row.MetaSharePrevious),
			cellFloat(row.WinRateCurrent),
			cellInt(row.MatchCountCurrent),
			cellFloat(row.WinRatePrevious),
		)
	}
	t.Render()
	return nil
}

func cellFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func cellInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}
