package analytics

import "sort"

// CalculateMatchupMatrix computes the pairwise win-rate table from match
// rows. Each row expands into two ordered matchup observations, one per seat
// with roles swapped, so for archetypes that met N times the A-side and
// B-side counts always total 2N. Cells below minMatches observations keep a
// nil win rate. Empty input yields an empty matrix, a legitimate "no data
// yet" state.
func CalculateMatchupMatrix(rows []MatchRow, minMatches int) MatchupMatrix {
	matrix := make(MatchupMatrix)
	if len(rows) == 0 {
		return matrix
	}
	if minMatches <= 0 {
		minMatches = DefaultMinMatches
	}

	type pair struct {
		player   string
		opponent string
	}
	type tally struct {
		wins  int
		count int
	}
	byPair := make(map[pair]*tally)
	for _, row := range rows {
		sides := []struct {
			key pair
			won bool
		}{
			{pair{row.PlayerArchetype, row.OpponentArchetype}, row.WinnerID == row.Player1ID},
			{pair{row.OpponentArchetype, row.PlayerArchetype}, row.WinnerID == row.Player2ID},
		}
		for _, side := range sides {
			agg, ok := byPair[side.key]
			if !ok {
				agg = &tally{}
				byPair[side.key] = agg
			}
			agg.count++
			if side.won {
				agg.wins++
			}
		}
	}

	for key, agg := range byPair {
		cell := MatchupCell{MatchCount: agg.count}
		if agg.count >= minMatches {
			cell.WinRate = floatPtr(float64(agg.wins) / float64(agg.count) * 100)
		}
		opponents, ok := matrix[key.player]
		if !ok {
			opponents = make(map[string]MatchupCell)
			matrix[key.player] = opponents
		}
		opponents[key.opponent] = cell
	}
	return matrix
}

// Archetypes returns the player-side archetype names in the matrix, sorted
// ascending.
func (m MatchupMatrix) Archetypes() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
