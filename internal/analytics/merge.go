package analytics

// MergePeriods joins current and previous share and win-rate results into one
// RankingRow per archetype. The current period's shares are the base: only
// archetypes observed in the current window are ranked. Previous shares,
// current win rates and previous win rates are left-outer-joined onto the
// base by archetype id. A join miss leaves that side's fields nil, and the
// three joins are independent so a miss in one never disturbs another.
func MergePeriods(currentShares, previousShares []ShareResult, currentWins, previousWins []WinRateResult) []RankingRow {
	prevShareByID := make(map[int64]ShareResult, len(previousShares))
	for _, s := range previousShares {
		prevShareByID[s.ArchetypeID] = s
	}
	curWinByID := make(map[int64]WinRateResult, len(currentWins))
	for _, w := range currentWins {
		curWinByID[w.ArchetypeID] = w
	}
	prevWinByID := make(map[int64]WinRateResult, len(previousWins))
	for _, w := range previousWins {
		prevWinByID[w.ArchetypeID] = w
	}

	rows := make([]RankingRow, 0, len(currentShares))
	for _, cur := range currentShares {
		row := RankingRow{
			ArchetypeID:       cur.ArchetypeID,
			MainTitle:         cur.MainTitle,
			ColorIdentity:     cur.ColorIdentity,
			Strategy:          cur.Strategy,
			MetaShareCurrent:  cur.MetaShare,
			SampleSizeCurrent: cur.SampleSize,
		}
		if prev, ok := prevShareByID[cur.ArchetypeID]; ok {
			row.MetaSharePrevious = floatPtr(prev.MetaShare)
			row.SampleSizePrevious = intPtr(prev.SampleSize)
		}
		if win, ok := curWinByID[cur.ArchetypeID]; ok {
			row.WinRateCurrent = win.WinRate
			row.MatchCountCurrent = intPtr(win.MatchCount)
		}
		if win, ok := prevWinByID[cur.ArchetypeID]; ok {
			row.WinRatePrevious = win.WinRate
			row.MatchCountPrevious = intPtr(win.MatchCount)
		}
		rows = append(rows, row)
	}
	return rows
}
