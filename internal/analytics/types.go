// Package analytics computes archetype meta share, win rates and matchup
// matrices from tournament rows. It is a pure computation layer: rows come in
// through a RowFetcher, aggregates go out, and no state survives a call.
package analytics

import "time"

// ArchetypeRow is one decklist's archetype assignment within a time window.
// Multiple rows share an ArchetypeID, one per decklist. Rows are produced by
// the storage layer and never mutated here.
type ArchetypeRow struct {
	ArchetypeID    int64
	MainTitle      string
	ColorIdentity  string
	Strategy       string
	TournamentDate time.Time
}

// MatchRow is one completed 1v1 match, seen from a fixed player/opponent
// labeling. Rows with a null winner are filtered out by the storage layer;
// WinnerID always equals Player1ID or Player2ID.
type MatchRow struct {
	PlayerArchetypeID   int64
	PlayerArchetype     string
	OpponentArchetypeID int64
	OpponentArchetype   string
	Player1ID           int64
	Player2ID           int64
	WinnerID            int64
	TournamentDate      time.Time
}

// ShareResult holds one archetype's decklist count and share of the field for
// a single window.
type ShareResult struct {
	ArchetypeID   int64   `json:"archetype_id"`
	MainTitle     string  `json:"main_title"`
	ColorIdentity string  `json:"color_identity"`
	Strategy      string  `json:"strategy"`
	SampleSize    int     `json:"sample_size"`
	MetaShare     float64 `json:"meta_share"`
}

// WinRateResult holds one archetype's directional match count and win rate
// for a single window. WinRate is nil when the archetype has fewer than the
// configured minimum of matches; nil means "insufficient data" and is never
// collapsed to zero, since 0 is a legitimate win rate.
type WinRateResult struct {
	ArchetypeID int64    `json:"archetype_id"`
	MainTitle   string   `json:"main_title"`
	WinRate     *float64 `json:"win_rate"`
	MatchCount  int      `json:"match_count"`
}

// RankingRow is the merged current+previous record for one archetype, or for
// one group bucket after grouping. Previous-period and win-rate fields are
// independently nullable: an archetype seen only in the current window has no
// previous numbers, and a join miss never produces a default of zero.
type RankingRow struct {
	ArchetypeID        int64    `json:"archetype_id"`
	MainTitle          string   `json:"main_title"`
	ColorIdentity      string   `json:"color_identity"`
	Strategy           string   `json:"strategy"`
	MetaShareCurrent   float64  `json:"meta_share_current"`
	SampleSizeCurrent  int      `json:"sample_size_current"`
	MetaSharePrevious  *float64 `json:"meta_share_previous"`
	SampleSizePrevious *int     `json:"sample_size_previous"`
	WinRateCurrent     *float64 `json:"win_rate_current"`
	MatchCountCurrent  *int     `json:"match_count_current"`
	WinRatePrevious    *float64 `json:"win_rate_previous"`
	MatchCountPrevious *int     `json:"match_count_previous"`
}

// MatchupCell is the win rate and observation count for one ordered
// (player archetype, opponent archetype) pair. WinRate follows the same
// minimum-sample suppression as WinRateResult.
type MatchupCell struct {
	WinRate    *float64 `json:"win_rate"`
	MatchCount int      `json:"match_count"`
}

// MatchupMatrix maps player archetype name to opponent archetype name to the
// cell for that ordered pair. Only pairs that actually met exist.
type MatchupMatrix map[string]map[string]MatchupCell

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
