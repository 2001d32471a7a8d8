package puzzle

import "strconv"

/*

Intersection rule engine (spec 4.5)

For a box/line intersection, a value that appears in the box's
outside cells but not the line's (or vice versa) cannot live in the
overlap's companion region, so it must live in the overlap itself —
which means it can be cleared from both outside groups.  The
symmetric difference of the two groups' candidate unions is exactly
the set of values eligible for this elimination.

*/

// intersectionSkim runs the box/line elimination once and returns
// the count of values eliminated (0 if none, -1 if a cell's mask
// reaches zero).
func (g *Grid) intersectionSkim(it *intersection, st *counters, bus *Bus) int {
	var a, b uint32
	for _, ci := range it.outer1 {
		a |= g.Cells[ci].Mask
	}
	for _, ci := range it.outer2 {
		b |= g.Cells[ci].Mask
	}
	diff := a ^ b
	if diff == 0 {
		return 0
	}
	zeroed := false
	clear := func(cells []int) {
		for _, ci := range cells {
			old := g.Cells[ci].Mask
			g.Cells[ci].Mask &^= diff
			if g.Cells[ci].Mask != old {
				g.onCellMutated(ci, st, bus)
				if g.Cells[ci].Mask == 0 {
					zeroed = true
				}
			}
		}
	}
	clear(it.outer1)
	clear(it.outer2)
	if zeroed {
		return -1
	}
	count := popcount32(diff)
	if st != nil {
		st.nbRules += count
		st.rI += count
	}
	if bus != nil && count > 0 {
		bus.fireMessage(Message{
			Text:      "intersection rule eliminated " + strconv.Itoa(count) + " candidate(s)",
			Verbosity: 2,
		})
	}
	return count
}
