package analytics

import "testing"

func TestMergePeriodsBaseIsCurrentShares(t *testing.T) {
	current := []ShareResult{
		{ArchetypeID: 1, MainTitle: "Esper Midrange", ColorIdentity: "esper", Strategy: "midrange", SampleSize: 3, MetaShare: 60},
	}
	// Archetype 9 only existed in the past; it must not be ranked.
	previous := []ShareResult{
		{ArchetypeID: 1, SampleSize: 2, MetaShare: 50},
		{ArchetypeID: 9, SampleSize: 2, MetaShare: 50},
	}

	rows := MergePeriods(current, previous, nil, nil)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].ArchetypeID != 1 {
		t.Errorf("row archetype = %d, want 1", rows[0].ArchetypeID)
	}
	if rows[0].MetaSharePrevious == nil || *rows[0].MetaSharePrevious != 50 {
		t.Errorf("previous share = %v, want 50", rows[0].MetaSharePrevious)
	}
	if rows[0].SampleSizePrevious == nil || *rows[0].SampleSizePrevious != 2 {
		t.Errorf("previous sample size = %v, want 2", rows[0].SampleSizePrevious)
	}
}

func TestMergePeriodsJoinMissesStayNil(t *testing.T) {
	current := []ShareResult{
		{ArchetypeID: 1, MainTitle: "Esper Midrange", SampleSize: 3, MetaShare: 100},
	}

	rows := MergePeriods(current, nil, nil, nil)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.MetaSharePrevious != nil || row.SampleSizePrevious != nil {
		t.Errorf("previous share fields = (%v, %v), want nil", row.MetaSharePrevious, row.SampleSizePrevious)
	}
	if row.WinRateCurrent != nil || row.MatchCountCurrent != nil {
		t.Errorf("current win fields = (%v, %v), want nil", row.WinRateCurrent, row.MatchCountCurrent)
	}
	if row.WinRatePrevious != nil || row.MatchCountPrevious != nil {
		t.Errorf("previous win fields = (%v, %v), want nil", row.WinRatePrevious, row.MatchCountPrevious)
	}
}

func TestMergePeriodsIndependentJoins(t *testing.T) {
	// Current win rate matches, previous win rate does not: the later miss
	// must not clobber the earlier join's fields.
	current := []ShareResult{
		{ArchetypeID: 1, MainTitle: "Esper Midrange", SampleSize: 3, MetaShare: 100},
	}
	currentWins := []WinRateResult{
		{ArchetypeID: 1, WinRate: floatPtr(55.0), MatchCount: 20},
	}
	previousWins := []WinRateResult{
		{ArchetypeID: 9, WinRate: floatPtr(40.0), MatchCount: 10},
	}

	rows := MergePeriods(current, nil, currentWins, previousWins)
	row := rows[0]
	if row.WinRateCurrent == nil || *row.WinRateCurrent != 55.0 {
		t.Errorf("current win rate = %v, want 55", row.WinRateCurrent)
	}
	if row.MatchCountCurrent == nil || *row.MatchCountCurrent != 20 {
		t.Errorf("current match count = %v, want 20", row.MatchCountCurrent)
	}
	if row.WinRatePrevious != nil {
		t.Errorf("previous win rate = %v, want nil", *row.WinRatePrevious)
	}
}

func TestMergePeriodsSuppressedWinRateStaysAbsent(t *testing.T) {
	// A joined WinRateResult with a suppressed rate still reports its match
	// count; the nil rate must survive the merge as nil.
	current := []ShareResult{
		{ArchetypeID: 1, MainTitle: "Esper Midrange", SampleSize: 1, MetaShare: 100},
	}
	currentWins := []WinRateResult{
		{ArchetypeID: 1, WinRate: nil, MatchCount: 2},
	}

	row := MergePeriods(current, nil, currentWins, nil)[0]
	if row.WinRateCurrent != nil {
		t.Errorf("win rate = %v, want nil (insufficient data)", *row.WinRateCurrent)
	}
	if row.MatchCountCurrent == nil || *row.MatchCountCurrent != 2 {
		t.Errorf("match count = %v, want 2", row.MatchCountCurrent)
	}
}
