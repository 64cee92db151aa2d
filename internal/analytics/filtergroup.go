package analytics

// GroupField names a categorical RankingRow field that rows can be grouped
// by.
type GroupField string

const (
	GroupByColorIdentity GroupField = "color_identity"
	GroupByStrategy      GroupField = "strategy"
)

// groupedTitle marks bucket rows produced by GroupRows; callers use it to
// tell grouped aggregates (whose win rate is an unweighted mean) from
// per-archetype rows.
const groupedTitle = "grouped"

// FilterByColorIdentity retains rows whose color identity exactly equals the
// requested value. Case handling and allowed-value checks happen at the
// transport boundary.
func FilterByColorIdentity(rows []RankingRow, colorIdentity string) []RankingRow {
	filtered := make([]RankingRow, 0, len(rows))
	for _, row := range rows {
		if row.ColorIdentity == colorIdentity {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// FilterByStrategy retains rows whose strategy exactly equals the requested
// value.
func FilterByStrategy(rows []RankingRow, strategy string) []RankingRow {
	filtered := make([]RankingRow, 0, len(rows))
	for _, row := range rows {
		if row.Strategy == strategy {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// GroupRows collapses all rows sharing a value of the given field into one
// bucket row. Sample sizes, match counts and meta shares are summed (meta
// share is a normalized fraction of one total, so the sum stays valid); win
// rates are an unweighted mean over the member rows that have one. Nullable
// fields stay nil when no member carried a value. The bucket's main title
// becomes "grouped" and the field not grouped on is overwritten with the
// grouping key, mirroring upstream output shape.
func GroupRows(rows []RankingRow, field GroupField) ([]RankingRow, error) {
	var keyOf func(RankingRow) string
	switch field {
	case GroupByColorIdentity:
		keyOf = func(r RankingRow) string { return r.ColorIdentity }
	case GroupByStrategy:
		keyOf = func(r RankingRow) string { return r.Strategy }
	default:
		return nil, validationErrorf("unknown group_by field %q", field)
	}

	buckets := make(map[string]*groupAccumulator)
	order := make([]string, 0)
	for _, row := range rows {
		key := keyOf(row)
		acc, ok := buckets[key]
		if !ok {
			acc = &groupAccumulator{}
			buckets[key] = acc
			order = append(order, key)
		}
		acc.add(row)
	}

	grouped := make([]RankingRow, 0, len(order))
	for _, key := range order {
		row := buckets[key].row()
		row.MainTitle = groupedTitle
		row.ColorIdentity = key
		row.Strategy = key
		grouped = append(grouped, row)
	}
	return grouped, nil
}

// groupAccumulator folds member rows into one bucket. Nullable sums and
// means track whether any member contributed, so an all-nil column stays
// nil instead of degrading to zero.
type groupAccumulator struct {
	metaShareCur   float64
	sampleSizeCur  int
	metaSharePrev  float64
	hasPrevShare   bool
	sampleSizePrev int
	matchCountCur  int
	hasCurCount    bool
	matchCountPrev int
	hasPrevCount   bool
	winRateCurSum  float64
	winRateCurN    int
	winRatePrevSum float64
	winRatePrevN   int
}

func (a *groupAccumulator) add(row RankingRow) {
	a.metaShareCur += row.MetaShareCurrent
	a.sampleSizeCur += row.SampleSizeCurrent
	if row.MetaSharePrevious != nil {
		a.metaSharePrev += *row.MetaSharePrevious
		a.hasPrevShare = true
	}
	if row.SampleSizePrevious != nil {
		a.sampleSizePrev += *row.SampleSizePrevious
	}
	if row.MatchCountCurrent != nil {
		a.matchCountCur += *row.MatchCountCurrent
		a.hasCurCount = true
	}
	if row.MatchCountPrevious != nil {
		a.matchCountPrev += *row.MatchCountPrevious
		a.hasPrevCount = true
	}
	if row.WinRateCurrent != nil {
		a.winRateCurSum += *row.WinRateCurrent
		a.winRateCurN++
	}
	if row.WinRatePrevious != nil {
		a.winRatePrevSum += *row.WinRatePrevious
		a.winRatePrevN++
	}
}

func (a *groupAccumulator) row() RankingRow {
	row := RankingRow{
		MetaShareCurrent:  a.metaShareCur,
		SampleSizeCurrent: a.sampleSizeCur,
	}
	if a.hasPrevShare {
		row.MetaSharePrevious = floatPtr(a.metaSharePrev)
		row.SampleSizePrevious = intPtr(a.sampleSizePrev)
	}
	if a.hasCurCount {
		row.MatchCountCurrent = intPtr(a.matchCountCur)
	}
	if a.hasPrevCount {
		row.MatchCountPrevious = intPtr(a.matchCountPrev)
	}
	if a.winRateCurN > 0 {
		row.WinRateCurrent = floatPtr(a.winRateCurSum / float64(a.winRateCurN))
	}
	if a.winRatePrevN > 0 {
		row.WinRatePrevious = floatPtr(a.winRatePrevSum / float64(a.winRatePrevN))
	}
	return row
}
