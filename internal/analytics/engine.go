package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// RowFetcher supplies the tournament rows the engine aggregates. The concrete
// implementation (SQL, file, or test double) is irrelevant to the engine's
// contract; any fetch error propagates to the caller untouched so retry
// policy stays outside the engine.
type RowFetcher interface {
	// ArchetypeRows returns one row per decklist for a format within the
	// half-open window [start, end).
	ArchetypeRows(ctx context.Context, format string, start, end time.Time) ([]ArchetypeRow, error)

	// MatchRows returns completed matches (winner known) for a format within
	// the half-open window [start, end).
	MatchRows(ctx context.Context, format string, start, end time.Time) ([]MatchRow, error)
}

// Engine orchestrates the share, win-rate, matchup, merge and grouping
// calculators into the two public operations. It holds no mutable state;
// concurrent calls are fully independent.
type Engine struct {
	fetcher    RowFetcher
	minMatches int
	now        func() time.Time
}

// EngineConfig configures an Engine. Zero values fall back to defaults.
type EngineConfig struct {
	// MinMatches is the minimum directional observation count before a win
	// rate is reported. Default: DefaultMinMatches.
	MinMatches int

	// Now supplies the reference instant for time windows. Default:
	// time.Now in UTC. Tests pin this to a fixed time.
	Now func() time.Time
}

// NewEngine creates an engine over the given row fetcher.
func NewEngine(fetcher RowFetcher, config *EngineConfig) *Engine {
	e := &Engine{
		fetcher:    fetcher,
		minMatches: DefaultMinMatches,
		now:        func() time.Time { return time.Now().UTC() },
	}
	if config != nil {
		if config.MinMatches > 0 {
			e.minMatches = config.MinMatches
		}
		if config.Now != nil {
			e.now = config.Now
		}
	}
	return e
}

// RankingsRequest parameterizes a ranked archetype comparison.
type RankingsRequest struct {
	Format       string
	CurrentDays  int
	PreviousDays int

	// PreviousStartDaysAgo/PreviousEndDaysAgo optionally pin the previous
	// window to explicit offsets from now instead of PreviousDays. When set
	// (both non-zero), the resulting window must not overlap the current one.
	PreviousStartDaysAgo int
	PreviousEndDaysAgo   int

	ColorIdentity string
	Strategy      string
	GroupBy       GroupField
}

// Period describes one resolved analysis window in response metadata.
type Period struct {
	Days      int       `json:"days"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// RankingsMetadata describes how a rankings result was computed.
type RankingsMetadata struct {
	Format         string    `json:"format"`
	CurrentPeriod  Period    `json:"current_period"`
	PreviousPeriod Period    `json:"previous_period"`
	GeneratedAt    time.Time `json:"timestamp"`
}

// RankingsResult is the ranked archetype comparison table plus metadata.
// Rows is empty, not nil-checked as an error, when the window holds no data.
type RankingsResult struct {
	Rows     []RankingRow     `json:"data"`
	Metadata RankingsMetadata `json:"metadata"`
}

// MatchupRequest parameterizes a matchup matrix computation.
type MatchupRequest struct {
	Format string
	Days   int
}

// MatchupMetadata describes how a matchup matrix was computed.
type MatchupMetadata struct {
	Format      string    `json:"format"`
	Days        int       `json:"days"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	GeneratedAt time.Time `json:"timestamp"`
}

// MatchupResult is the pairwise matchup table plus the sorted archetype list
// and metadata.
type MatchupResult struct {
	Matrix     MatchupMatrix   `json:"matrix"`
	Archetypes []string        `json:"archetypes"`
	Metadata   MatchupMetadata `json:"metadata"`
}

// Rankings computes the ranked archetype comparison for a format: meta share
// and win rate for the current window against the previous one, optionally
// filtered by color identity or strategy and collapsed into group buckets.
// Rows are sorted by current meta share descending.
func (e *Engine) Rankings(ctx context.Context, req RankingsRequest) (*RankingsResult, error) {
	if req.Format == "" {
		return nil, validationErrorf("format is required")
	}
	if req.GroupBy != "" && req.GroupBy != GroupByColorIdentity && req.GroupBy != GroupByStrategy {
		return nil, validationErrorf("unknown group_by field %q", req.GroupBy)
	}

	var windows PeriodWindows
	var err error
	if req.PreviousStartDaysAgo != 0 || req.PreviousEndDaysAgo != 0 {
		windows, err = PeriodsFromOffsets(e.now(), req.CurrentDays, req.PreviousStartDaysAgo, req.PreviousEndDaysAgo)
	} else {
		windows, err = PeriodsFrom(e.now(), req.CurrentDays, req.PreviousDays)
	}
	if err != nil {
		return nil, err
	}

	currentArchetypes, err := e.fetcher.ArchetypeRows(ctx, req.Format, windows.Current.Start, windows.Current.End)
	if err != nil {
		return nil, fmt.Errorf("fetch current archetype rows: %w", err)
	}
	previousArchetypes, err := e.fetcher.ArchetypeRows(ctx, req.Format, windows.Previous.Start, windows.Previous.End)
	if err != nil {
		return nil, fmt.Errorf("fetch previous archetype rows: %w", err)
	}
	currentMatches, err := e.fetcher.MatchRows(ctx, req.Format, windows.Current.Start, windows.Current.End)
	if err != nil {
		return nil, fmt.Errorf("fetch current match rows: %w", err)
	}
	previousMatches, err := e.fetcher.MatchRows(ctx, req.Format, windows.Previous.Start, windows.Previous.End)
	if err != nil {
		return nil, fmt.Errorf("fetch previous match rows: %w", err)
	}

	rows := MergePeriods(
		CalculateShares(currentArchetypes),
		CalculateShares(previousArchetypes),
		CalculateWinRates(currentMatches, e.minMatches),
		CalculateWinRates(previousMatches, e.minMatches),
	)

	if req.ColorIdentity != "" {
		rows = FilterByColorIdentity(rows, req.ColorIdentity)
	}
	if req.Strategy != "" {
		rows = FilterByStrategy(rows, req.Strategy)
	}
	if req.GroupBy != "" {
		rows, err = GroupRows(rows, req.GroupBy)
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MetaShareCurrent > rows[j].MetaShareCurrent
	})

	return &RankingsResult{
		Rows: rows,
		Metadata: RankingsMetadata{
			Format: req.Format,
			CurrentPeriod: Period{
				Days:      windows.Current.Days(),
				StartDate: windows.Current.Start,
				EndDate:   windows.Current.End,
			},
			PreviousPeriod: Period{
				Days:      windows.Previous.Days(),
				StartDate: windows.Previous.Start,
				EndDate:   windows.Previous.End,
			},
			GeneratedAt: e.now(),
		},
	}, nil
}

// MatchupMatrix computes the head-to-head win-rate table for a format over a
// single trailing window. An empty matrix is a valid result; the transport
// layer decides whether that becomes a not-found response.
func (e *Engine) MatchupMatrix(ctx context.Context, req MatchupRequest) (*MatchupResult, error) {
	if req.Format == "" {
		return nil, validationErrorf("format is required")
	}
	if req.Days <= 0 {
		return nil, validationErrorf("days must be positive, got %d", req.Days)
	}

	now := e.now()
	window := Window{Start: now.AddDate(0, 0, -req.Days), End: now}

	matches, err := e.fetcher.MatchRows(ctx, req.Format, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("fetch match rows: %w", err)
	}

	matrix := CalculateMatchupMatrix(matches, e.minMatches)
	return &MatchupResult{
		Matrix:     matrix,
		Archetypes: matrix.Archetypes(),
		Metadata: MatchupMetadata{
			Format:      req.Format,
			Days:        req.Days,
			StartDate:   window.Start,
			EndDate:     window.End,
			GeneratedAt: e.now(),
		},
	}, nil
}
