// Package export writes computed meta analytics to CSV and JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ramonehamilton/mtg-meta-service/internal/analytics"
)

// Format represents an export output format.
type Format string

const (
	// FormatCSV represents CSV export format.
	FormatCSV Format = "csv"
	// FormatJSON represents JSON export format.
	FormatJSON Format = "json"
)

// Options holds configuration for export operations.
type Options struct {
	Format     Format
	PrettyJSON bool
}

// WriteRankings writes a rankings result to w in the configured format.
func WriteRankings(w io.Writer, result *analytics.RankingsResult, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		if opts.PrettyJSON {
			encoder.SetIndent("", "  ")
		}
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("encode rankings: %w", err)
		}
		return nil
	case FormatCSV:
		return writeRankingsCSV(w, result)
	default:
		return fmt.Errorf("unsupported export format: %s", opts.Format)
	}
}

// ExportRankingsFile writes a rankings result to filePath, creating parent
// directories as needed.
func ExportRankingsFile(filePath string, result *analytics.RankingsResult, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	return WriteRankings(f, result, opts)
}

var rankingsHeader = []string{
	"rank", "archetype", "color_identity", "strategy",
	"meta_share_current", "sample_size_current",
	"meta_share_previous", "sample_size_previous",
	"win_rate_current", "match_count_current",
	"win_rate_previous", "match_count_previous",
}

// writeRankingsCSV writes one record per ranking row. Absent values become
// empty cells so "insufficient data" stays distinguishable from 0 in the
// output.
func writeRankingsCSV(w io.Writer, result *analytics.RankingsResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rankingsHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for i, row := range result.Rows {
		record := []string{
			strconv.Itoa(i + 1),
			row.MainTitle,
			row.ColorIdentity,
			row.Strategy,
			formatFloat(row.MetaShareCurrent),
			strconv.Itoa(row.SampleSizeCurrent),
			formatFloatPtr(row.MetaSharePrevious),
			formatIntPtr(row.SampleSizePrevious),
			formatFloatPtr(row.WinRateCurrent),
			formatIntPtr(row.MatchCountCurrent),
			formatFloatPtr(row.WinRatePrevious),
			formatIntPtr(row.MatchCountPrevious),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write CSV record %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush CSV: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
