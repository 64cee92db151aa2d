package analytics

// CalculateShares groups decklist rows by archetype and computes each
// archetype's share of the field. Display fields are carried from the first
// row seen for an archetype; they are identical across rows sharing an id.
// Empty input yields an empty slice, no division is attempted.
func CalculateShares(rows []ArchetypeRow) []ShareResult {
	if len(rows) == 0 {
		return nil
	}

	byArchetype := make(map[int64]*ShareResult)
	order := make([]int64, 0)
	for _, row := range rows {
		agg, ok := byArchetype[row.ArchetypeID]
		if !ok {
			agg = &ShareResult{
				ArchetypeID:   row.ArchetypeID,
				MainTitle:     row.MainTitle,
				ColorIdentity: row.ColorIdentity,
				Strategy:      row.Strategy,
			}
			byArchetype[row.ArchetypeID] = agg
			order = append(order, row.ArchetypeID)
		}
		agg.SampleSize++
	}

	total := float64(len(rows))
	results := make([]ShareResult, 0, len(order))
	for _, id := range order {
		agg := byArchetype[id]
		agg.MetaShare = float64(agg.SampleSize) / total * 100
		results = append(results, *agg)
	}
	return results
}
