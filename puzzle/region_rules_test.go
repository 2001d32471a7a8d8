package puzzle

import "testing"

// TestCandidateExclusionNakedPair checks a naked-pair case: within a
// row, two cells whose combined candidates are exactly {1,2} force
// every other cell in that row to lose 1 and 2.
func TestCandidateExclusionNakedPair(t *testing.T) {
	g, err := BuildGrid(2, emptyGiven(4))
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	g.Cells[0].Mask = 0b0011 // candidates {1,2} at (0,0)
	g.Cells[1].Mask = 0b0011 // candidates {1,2} at (0,1)

	reg := &g.regions[0] // row 0
	tbl := subsetsForN(4)
	st := newCounters()
	bus := NewBus()

	lvl := g.regionSkim(reg, tbl, st, bus)
	if lvl < 0 {
		t.Fatalf("regionSkim reported invalid")
	}
	for _, ci := range []int{2, 3} {
		if g.Cells[ci].Mask&0b0011 != 0 {
			t.Errorf("cell %d mask %b still has a naked-pair candidate", ci, g.Cells[ci].Mask)
		}
	}
}

// TestValueExclusionHiddenPair checks the dual: two values confined
// to exactly two cells of a region clear every other candidate from
// those two cells.
func TestValueExclusionHiddenPair(t *testing.T) {
	g, err := BuildGrid(2, emptyGiven(4))
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	// Confine values 1 and 2 (bits 0,1) to cells 0 and 1 of row 0.
	g.Cells[0].Mask = 0b1011 // {1,2,4}
	g.Cells[1].Mask = 0b0111 // {1,2,3}
	g.Cells[2].Mask = 0b1100 // {3,4}
	g.Cells[3].Mask = 0b1100 // {3,4}

	reg := &g.regions[0]
	tbl := subsetsForN(4)
	st := newCounters()
	bus := NewBus()

	g.regionSkim(reg, tbl, st, bus)
	if g.Cells[0].Mask != 0b0011 || g.Cells[1].Mask != 0b0011 {
		t.Errorf("hidden pair not isolated: cell0=%b cell1=%b", g.Cells[0].Mask, g.Cells[1].Mask)
	}
}

func TestCandidateExclusionReportsInvalid(t *testing.T) {
	g, err := BuildGrid(2, emptyGiven(4))
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	// Three cells collectively restricted to a single value: Hall's
	// condition violated (3 cells need >= 3 values).
	g.Cells[0].Mask = 0b0001
	g.Cells[1].Mask = 0b0001
	g.Cells[2].Mask = 0b0001
	reg := &g.regions[0]
	tbl := subsetsForN(4)
	st := newCounters()
	bus := NewBus()
	if lvl := g.regionSkim(reg, tbl, st, bus); lvl >= 0 {
		t.Errorf("regionSkim = %d, want negative (invalid)", lvl)
	}
}
