package analytics

import (
	"reflect"
	"testing"
)

func TestCalculateMatchupMatrixEmpty(t *testing.T) {
	matrix := CalculateMatchupMatrix(nil, DefaultMinMatches)
	if len(matrix) != 0 {
		t.Errorf("matrix = %v, want empty", matrix)
	}
	if got := matrix.Archetypes(); len(got) != 0 {
		t.Errorf("archetypes = %v, want empty", got)
	}
}

func TestCalculateMatchupMatrixCountSymmetry(t *testing.T) {
	// 4 physical matches between Esper and Boros: each side's recorded
	// observation counts must total exactly 2N.
	rows := []MatchRow{
		matchRow(1, "Esper Midrange", 3, "Boros Aggro", 1),
		matchRow(1, "Esper Midrange", 3, "Boros Aggro", 2),
		matchRow(3, "Boros Aggro", 1, "Esper Midrange", 1),
		matchRow(3, "Boros Aggro", 1, "Esper Midrange", 2),
	}

	matrix := CalculateMatchupMatrix(rows, DefaultMinMatches)
	ab := matrix["Esper Midrange"]["Boros Aggro"]
	ba := matrix["Boros Aggro"]["Esper Midrange"]
	if got := ab.MatchCount + ba.MatchCount; got != 2*len(rows) {
		t.Errorf("A-side + B-side observations = %d, want %d", got, 2*len(rows))
	}
}

func TestCalculateMatchupMatrixWinRates(t *testing.T) {
	// Esper beats Boros twice from its own seat and once as the labeled
	// opponent: 3-0 from Esper's perspective, 0-3 from Boros's.
	rows := []MatchRow{
		matchRow(1, "Esper Midrange", 3, "Boros Aggro", 1),
		matchRow(1, "Esper Midrange", 3, "Boros Aggro", 1),
		matchRow(3, "Boros Aggro", 1, "Esper Midrange", 2),
	}

	matrix := CalculateMatchupMatrix(rows, DefaultMinMatches)

	esper := matrix["Esper Midrange"]["Boros Aggro"]
	if esper.MatchCount != 3 {
		t.Fatalf("esper vs boros count = %d, want 3", esper.MatchCount)
	}
	if esper.WinRate == nil || *esper.WinRate != 100.0 {
		t.Errorf("esper vs boros win rate = %v, want 100", esper.WinRate)
	}

	boros := matrix["Boros Aggro"]["Esper Midrange"]
	if boros.WinRate == nil || *boros.WinRate != 0.0 {
		t.Errorf("boros vs esper win rate = %v, want present 0", boros.WinRate)
	}
}

func TestCalculateMatchupMatrixSuppressesThinCells(t *testing.T) {
	rows := []MatchRow{
		matchRow(1, "Esper Midrange", 3, "Boros Aggro", 1),
		matchRow(1, "Esper Midrange", 3, "Boros Aggro", 2),
	}

	matrix := CalculateMatchupMatrix(rows, DefaultMinMatches)
	cell := matrix["Esper Midrange"]["Boros Aggro"]
	if cell.MatchCount != 2 {
		t.Fatalf("count = %d, want 2", cell.MatchCount)
	}
	if cell.WinRate != nil {
		t.Errorf("win rate = %v, want absent below min matches", *cell.WinRate)
	}
}

func TestCalculateMatchupMatrixOnlyObservedPairs(t *testing.T) {
	rows := []MatchRow{
		matchRow(1, "Esper Midrange", 3, "Boros Aggro", 1),
		matchRow(2, "Domain Ramp", 3, "Boros Aggro", 2),
	}

	matrix := CalculateMatchupMatrix(rows, 1)
	if _, ok := matrix["Esper Midrange"]["Domain Ramp"]; ok {
		t.Error("pair that never met must not appear in the matrix")
	}
}

func TestMatchupMatrixArchetypesSorted(t *testing.T) {
	rows := []MatchRow{
		matchRow(1, "Esper Midrange", 3, "Boros Aggro", 1),
		matchRow(2, "Domain Ramp", 1, "Esper Midrange", 2),
	}

	got := CalculateMatchupMatrix(rows, 1).Archetypes()
	want := []string{"Boros Aggro", "Domain Ramp", "Esper Midrange"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("archetypes = %v, want %v", got, want)
	}
}
