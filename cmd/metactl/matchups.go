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
	matchupsFormat string
	matchupsDays   int
)

var matchupsCmd = &cobra.Command{
	Use:   "matchups",
	Short: "Show the archetype matchup matrix",
	Long: `Display the pairwise win-rate matrix between archetypes for a format.
Each cell is the row archetype's win rate against the column archetype.
Cells with too few matches are shown as a dash.`,
	Args: cobra.NoArgs,
	RunE: runMatchups,
}

func init() {
	matchupsCmd.Flags().StringVar(&matchupsFormat, "format", "", "game format (e.g. standard, modern)")
	matchupsCmd.Flags().IntVar(&matchupsDays, "days", 14, "analysis period length in days")
	_ = matchupsCmd.MarkFlagRequired("format")
}

func runMatchups(cmd *cobra.Command, args []string) error {
	engine, cleanup, err := openEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := engine.MatchupMatrix(cmd.Context(), analytics.MatchupRequest{
		Format: matchupsFormat,
		Days:   matchupsDays,
	})
	if err != nil {
		return err
	}
	if len(result.Archetypes) == 0 {
		fmt.Fprintf(os.Stdout, "No match data for %s in the last %d days.\n", matchupsFormat, matchupsDays)
		return nil
	}

	fmt.Fprintf(os.Stdout, "\n=== %s Matchups (%d days) ===\n\n", matchupsFormat, matchupsDays)

	header := make([]any, 0, len(result.Archetypes)+1)
	header = append(header, "VS")
	for _, name := range result.Archetypes {
		header = append(header, name)
	}

	t := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
	t.Header(header...)
	for _, player := range result.Archetypes {
		row := make([]any, 0, len(result.Archetypes)+1)
		row = append(row, player)
		for _, opponent := range result.Archetypes {
			row = append(row, matchupCell(result.Matrix, player, opponent))
		}
		t.Append(row...)
	}
	t.Render()
	return nil
}

func matchupCell(matrix analytics.MatchupMatrix, player, opponent string) string {
	cell, ok := matrix[player][opponent]
	if !ok {
		return ""
	}
	if cell.WinRate == nil {
		return fmt.Sprintf("- (%d)", cell.MatchCount)
	}
	return fmt.Sprintf("%.1f%% (%d)", *cell.WinRate, cell.MatchCount)
}
