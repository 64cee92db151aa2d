package analytics

// DefaultMinMatches is the minimum number of directional match observations
// an archetype needs before its win rate is reported.
const DefaultMinMatches = 3

// directionalObservation is one archetype's participation record in one
// match. Every physical match expands into exactly two of these, one per
// seat, because a MatchRow encodes the match from a fixed player/opponent
// labeling while both archetypes' aggregates come from the same event.
type directionalObservation struct {
	archetypeID int64
	title       string
	won         bool
}

func expandObservations(rows []MatchRow) []directionalObservation {
	obs := make([]directionalObservation, 0, 2*len(rows))
	for _, row := range rows {
		obs = append(obs, directionalObservation{
			archetypeID: row.PlayerArchetypeID,
			title:       row.PlayerArchetype,
			won:         row.WinnerID == row.Player1ID,
		})
		obs = append(obs, directionalObservation{
			archetypeID: row.OpponentArchetypeID,
			title:       row.OpponentArchetype,
			won:         row.WinnerID == row.Player2ID,
		})
	}
	return obs
}

// CalculateWinRates computes per-archetype win rates from match rows. Each
// row contributes one observation to each side's count. WinRate stays nil
// below minMatches observations. Empty input yields an empty slice.
func CalculateWinRates(rows []MatchRow, minMatches int) []WinRateResult {
	if len(rows) == 0 {
		return nil
	}
	if minMatches <= 0 {
		minMatches = DefaultMinMatches
	}

	type tally struct {
		title string
		wins  int
		count int
	}
	byArchetype := make(map[int64]*tally)
	order := make([]int64, 0)
	for _, o := range expandObservations(rows) {
		agg, ok := byArchetype[o.archetypeID]
		if !ok {
			agg = &tally{title: o.title}
			byArchetype[o.archetypeID] = agg
			order = append(order, o.archetypeID)
		}
		agg.count++
		if o.won {
			agg.wins++
		}
	}

	results := make([]WinRateResult, 0, len(order))
	for _, id := range order {
		agg := byArchetype[id]
		result := WinRateResult{
			ArchetypeID: id,
			MainTitle:   agg.title,
			MatchCount:  agg.count,
		}
		if agg.count >= minMatches {
			result.WinRate = floatPtr(float64(agg.wins) / float64(agg.count) * 100)
		}
		results = append(results, result)
	}
	return results
}
