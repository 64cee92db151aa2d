package analytics

import (
	"math"
	"testing"
)

func rankingRows() []RankingRow {
	return []RankingRow{
		{
			ArchetypeID: 1, MainTitle: "Esper Midrange", ColorIdentity: "esper", Strategy: "midrange",
			MetaShareCurrent: 40, SampleSizeCurrent: 4,
			MetaSharePrevious: floatPtr(30), SampleSizePrevious: intPtr(3),
			WinRateCurrent: floatPtr(60), MatchCountCurrent: intPtr(10),
		},
		{
			ArchetypeID: 2, MainTitle: "Esper Control", ColorIdentity: "esper", Strategy: "control",
			MetaShareCurrent: 30, SampleSizeCurrent: 3,
			WinRateCurrent: floatPtr(40), MatchCountCurrent: intPtr(6),
		},
		{
			ArchetypeID: 3, MainTitle: "Boros Aggro", ColorIdentity: "boros", Strategy: "aggro",
			MetaShareCurrent: 30, SampleSizeCurrent: 3,
			MatchCountCurrent: intPtr(2), // win rate suppressed
		},
	}
}

func TestFilterByColorIdentity(t *testing.T) {
	got := FilterByColorIdentity(rankingRows(), "esper")
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	for _, r := range got {
		if r.ColorIdentity != "esper" {
			t.Errorf("row %d color = %q, want esper", r.ArchetypeID, r.ColorIdentity)
		}
	}

	if got := FilterByColorIdentity(rankingRows(), "izzet"); len(got) != 0 {
		t.Errorf("filter with no matches = %v, want empty", got)
	}
}

func TestFilterByStrategy(t *testing.T) {
	got := FilterByStrategy(rankingRows(), "aggro")
	if len(got) != 1 || got[0].ArchetypeID != 3 {
		t.Errorf("got %v, want only Boros Aggro", got)
	}
}

func TestGroupRowsByColorIdentity(t *testing.T) {
	rows := rankingRows()
	grouped, err := GroupRows(rows, GroupByColorIdentity)
	if err != nil {
		t.Fatalf("GroupRows returned error: %v", err)
	}

	// Colors {esper, esper, boros} collapse to exactly 2 buckets.
	if len(grouped) != 2 {
		t.Fatalf("got %d buckets, want 2", len(grouped))
	}

	// Total sample size is preserved across the collapse.
	wantTotal := 0
	for _, r := range rows {
		wantTotal += r.SampleSizeCurrent
	}
	gotTotal := 0
	for _, g := range grouped {
		gotTotal += g.SampleSizeCurrent
	}
	if gotTotal != wantTotal {
		t.Errorf("summed sample size = %d, want %d", gotTotal, wantTotal)
	}

	byKey := make(map[string]RankingRow)
	for _, g := range grouped {
		byKey[g.ColorIdentity] = g
	}

	esper := byKey["esper"]
	if esper.MetaShareCurrent != 70 {
		t.Errorf("esper bucket meta share = %v, want 70", esper.MetaShareCurrent)
	}
	if esper.SampleSizeCurrent != 7 {
		t.Errorf("esper bucket sample size = %d, want 7", esper.SampleSizeCurrent)
	}
	if esper.MatchCountCurrent == nil || *esper.MatchCountCurrent != 16 {
		t.Errorf("esper bucket match count = %v, want 16", esper.MatchCountCurrent)
	}
	// Unweighted mean of 60 and 40.
	if esper.WinRateCurrent == nil || math.Abs(*esper.WinRateCurrent-50) > 0.001 {
		t.Errorf("esper bucket win rate = %v, want 50", esper.WinRateCurrent)
	}
	// Bucket rows carry the synthetic title and the grouping key in both
	// categorical slots.
	if esper.MainTitle != "grouped" {
		t.Errorf("bucket title = %q, want \"grouped\"", esper.MainTitle)
	}
	if esper.Strategy != "esper" {
		t.Errorf("bucket strategy = %q, want grouping key", esper.Strategy)
	}

	// Boros's only member had a suppressed win rate: the bucket mean must be
	// absent, not zero.
	boros := byKey["boros"]
	if boros.WinRateCurrent != nil {
		t.Errorf("boros bucket win rate = %v, want absent", *boros.WinRateCurrent)
	}
	if boros.MatchCountCurrent == nil || *boros.MatchCountCurrent != 2 {
		t.Errorf("boros bucket match count = %v, want 2", boros.MatchCountCurrent)
	}
}

func TestGroupRowsByStrategy(t *testing.T) {
	grouped, err := GroupRows(rankingRows(), GroupByStrategy)
	if err != nil {
		t.Fatalf("GroupRows returned error: %v", err)
	}
	if len(grouped) != 3 {
		t.Fatalf("got %d buckets, want 3", len(grouped))
	}
	for _, g := range grouped {
		if g.ColorIdentity != g.Strategy {
			t.Errorf("bucket color = %q, want grouping key %q", g.ColorIdentity, g.Strategy)
		}
	}
}

func TestGroupRowsNullablePreviousStaysNil(t *testing.T) {
	grouped, err := GroupRows(rankingRows(), GroupByColorIdentity)
	if err != nil {
		t.Fatalf("GroupRows returned error: %v", err)
	}
	for _, g := range grouped {
		if g.ColorIdentity == "boros" && g.MetaSharePrevious != nil {
			t.Errorf("boros previous share = %v, want nil (no member had one)", *g.MetaSharePrevious)
		}
	}
}

func TestGroupRowsUnknownField(t *testing.T) {
	_, err := GroupRows(rankingRows(), GroupField("archetype"))
	if err == nil {
		t.Fatal("expected error for unknown group field")
	}
	if !IsValidationError(err) {
		t.Errorf("expected ValidationError, got %T: %v", err, err)
	}
}
