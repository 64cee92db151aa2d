// Package repository provides data access layers for tournament data.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ramonehamilton/mtg-meta-service/internal/analytics"
)

// MetaRepository fetches the already-filtered rows the analytics engine
// aggregates. It satisfies analytics.RowFetcher.
type MetaRepository interface {
	// ArchetypeRows returns one row per classified decklist for a format
	// within the half-open window [start, end).
	ArchetypeRows(ctx context.Context, format string, start, end time.Time) ([]analytics.ArchetypeRow, error)

	// MatchRows returns completed matches (winner recorded, both decklists
	// classified) for a format within the half-open window [start, end).
	MatchRows(ctx context.Context, format string, start, end time.Time) ([]analytics.MatchRow, error)
}

type metaRepository struct {
	db *sql.DB
}

// NewMetaRepository creates a new meta repository.
func NewMetaRepository(db *sql.DB) MetaRepository {
	return &metaRepository{db: db}
}

func (r *metaRepository) ArchetypeRows(ctx context.Context, format string, start, end time.Time) ([]analytics.ArchetypeRow, error) {
	query := `
		SELECT
			ag.archetype_group_id,
			ag.main_title,
			COALESCE(ag.color_identity, ''),
			COALESCE(ag.strategy, ''),
			t.start_date
		FROM decklists d
		JOIN archetype_groups ag ON d.archetype_group_id = ag.archetype_group_id
		JOIN tournaments t ON d.tournament_id = t.tournament_id
		WHERE ag.format = ?
		  AND t.start_date >= ?
		  AND t.start_date < ?
	`

	rows, err := r.db.QueryContext(ctx, query, format, start, end)
	if err != nil {
		return nil, fmt.Errorf("query archetype rows: %w", err)
	}
	defer rows.Close()

	var results []analytics.ArchetypeRow
	for rows.Next() {
		var row analytics.ArchetypeRow
		if err := rows.Scan(&row.ArchetypeID, &row.MainTitle, &row.ColorIdentity, &row.Strategy, &row.TournamentDate); err != nil {
			return nil, fmt.Errorf("scan archetype row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate archetype rows: %w", err)
	}
	return results, nil
}

func (r *metaRepository) MatchRows(ctx context.Context, format string, start, end time.Time) ([]analytics.MatchRow, error) {
	// Each player's decklist resolves to an archetype group; matches where a
	// winner was never recorded (draws, drops) are excluded here so the
	// engine only sees decided matches.
	query := `
		SELECT
			ag1.archetype_group_id,
			ag1.main_title,
			ag2.archetype_group_id,
			ag2.main_title,
			m.player1_id,
			m.player2_id,
			m.winner_id,
			t.start_date
		FROM matches m
		JOIN tournaments t ON m.tournament_id = t.tournament_id
		JOIN decklists d1 ON m.player1_id = d1.player_id AND m.tournament_id = d1.tournament_id
		JOIN decklists d2 ON m.player2_id = d2.player_id AND m.tournament_id = d2.tournament_id
		JOIN archetype_groups ag1 ON d1.archetype_group_id = ag1.archetype_group_id
		JOIN archetype_groups ag2 ON d2.archetype_group_id = ag2.archetype_group_id
		WHERE t.format = ?
		  AND t.start_date >= ?
		  AND t.start_date < ?
		  AND m.winner_id IS NOT NULL
	`

	rows, err := r.db.QueryContext(ctx, query, format, start, end)
	if err != nil {
		return nil, fmt.Errorf("query match rows: %w", err)
	}
	defer rows.Close()

	var results []analytics.MatchRow
	for rows.Next() {
		var row analytics.MatchRow
		if err := rows.Scan(
			&row.PlayerArchetypeID,
			&row.PlayerArchetype,
			&row.OpponentArchetypeID,
			&row.OpponentArchetype,
			&row.Player1ID,
			&row.Player2ID,
			&row.WinnerID,
			&row.TournamentDate,
		); err != nil {
			return nil, fmt.Errorf("scan match row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate match rows: %w", err)
	}
	return results, nil
}
