package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ramonehamilton/mtg-meta-service/internal/storage/models"
)

// TournamentRepository handles writes for tournament data. The ingestion
// pipeline is the production writer; this repository backs tests and the
// local seed path.
type TournamentRepository interface {
	// CreateTournament inserts a new tournament.
	CreateTournament(ctx context.Context, t *models.Tournament) error

	// CreateArchetypeGroup inserts a new archetype group and returns its id.
	CreateArchetypeGroup(ctx context.Context, g *models.ArchetypeGroup) (int64, error)

	// CreateDecklist inserts a player's decklist for a tournament.
	CreateDecklist(ctx context.Context, d *models.Decklist) error

	// CreateMatch inserts a match. A zero WinnerID is stored as NULL.
	CreateMatch(ctx context.Context, m *models.Match) error

	// CountDecklists returns the number of stored decklists for a format.
	CountDecklists(ctx context.Context, format string) (int, error)
}

type tournamentRepository struct {
	db *sql.DB
}

// NewTournamentRepository creates a new tournament repository.
func NewTournamentRepository(db *sql.DB) TournamentRepository {
	return &tournamentRepository{db: db}
}

func (r *tournamentRepository) CreateTournament(ctx context.Context, t *models.Tournament) error {
	query := `
		INSERT INTO tournaments (tournament_id, tournament_name, format, start_date, swiss_rounds, top_cut)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query, t.ID, t.Name, t.Format, t.StartDate, t.SwissRounds, t.TopCut)
	if err != nil {
		return fmt.Errorf("insert tournament %s: %w", t.ID, err)
	}
	return nil
}

func (r *tournamentRepository) CreateArchetypeGroup(ctx context.Context, g *models.ArchetypeGroup) (int64, error) {
	query := `
		INSERT INTO archetype_groups (format, main_title, color_identity, strategy)
		VALUES (?, ?, NULLIF(?, ''), NULLIF(?, ''))
	`
	result, err := r.db.ExecContext(ctx, query, g.Format, g.MainTitle, g.ColorIdentity, g.Strategy)
	if err != nil {
		return 0, fmt.Errorf("insert archetype group %q: %w", g.MainTitle, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("archetype group id: %w", err)
	}
	g.ID = id
	return id, nil
}

func (r *tournamentRepository) CreateDecklist(ctx context.Context, d *models.Decklist) error {
	query := `
		INSERT INTO decklists (tournament_id, player_id, archetype_group_id, decklist_text)
		VALUES (?, ?, NULLIF(?, 0), ?)
	`
	result, err := r.db.ExecContext(ctx, query, d.TournamentID, d.PlayerID, d.ArchetypeGroupID, d.DecklistText)
	if err != nil {
		return fmt.Errorf("insert decklist for player %d in %s: %w", d.PlayerID, d.TournamentID, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("decklist id: %w", err)
	}
	d.ID = id
	return nil
}

func (r *tournamentRepository) CreateMatch(ctx context.Context, m *models.Match) error {
	query := `
		INSERT INTO matches (tournament_id, round_number, match_num, player1_id, player2_id, winner_id)
		VALUES (?, ?, ?, ?, ?, NULLIF(?, 0))
	`
	result, err := r.db.ExecContext(ctx, query, m.TournamentID, m.RoundNumber, m.MatchNum, m.Player1ID, m.Player2ID, m.WinnerID)
	if err != nil {
		return fmt.Errorf("insert match in %s round %d: %w", m.TournamentID, m.RoundNumber, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("match id: %w", err)
	}
	m.ID = id
	return nil
}

func (r *tournamentRepository) CountDecklists(ctx context.Context, format string) (int, error) {
	query := `
		SELECT COUNT(1)
		FROM decklists d
		JOIN tournaments t ON d.tournament_id = t.tournament_id
		WHERE t.format = ?
	`
	var count int
	if err := r.db.QueryRowContext(ctx, query, format).Scan(&count); err != nil {
		return 0, fmt.Errorf("count decklists: %w", err)
	}
	return count, nil
}
