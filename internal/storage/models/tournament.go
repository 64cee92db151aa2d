// Package models defines the persistence structs for tournament data.
package models

import "time"

// Tournament is one recorded tournament.
type Tournament struct {
	ID          string
	Name        string
	Format      string
	StartDate   time.Time
	SwissRounds int
	TopCut      int
}

// ArchetypeGroup is a pre-classified deck strategy bucket within a format.
// Classification happens in the upstream pipeline.
type ArchetypeGroup struct {
	ID            int64
	Format        string
	MainTitle     string
	ColorIdentity string
	Strategy      string
}

// Decklist links a player's tournament entry to its archetype group.
// ArchetypeGroupID is zero while the upstream classifier has not yet
// assigned one; such decklists are invisible to analytics.
type Decklist struct {
	ID               int64
	TournamentID     string
	PlayerID         int64
	ArchetypeGroupID int64
	DecklistText     string
}

// Match is one tournament match. WinnerID is zero for unfinished or drawn
// matches; analytics queries skip those rows.
type Match struct {
	ID           int64
	TournamentID string
	RoundNumber  int
	MatchNum     int
	Player1ID    int64
	Player2ID    int64
	WinnerID     int64
}
