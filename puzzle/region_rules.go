package puzzle

import "strconv"

/*

Region rule engine (spec 4.3)

For one region, for k = 1..N in increasing order, for every subset B
of cardinality k, two dual rules run: candidate-exclusion (direct
Hall, treating B as a set of cell positions) and value-exclusion
(dual Hall, treating B as a set of values).  Both are checked for
every subset before moving to the next; a firing at k>1 returns
immediately so the driver can re-drive from its outer loop, while a
firing at k==1 lets the depth-1 scan run to completion before
returning (this prioritizes cheap naked/hidden-single deductions).

*/

// regionSkim scans one region's subsets once, by increasing size,
// stopping after the first size at which a rule fired, and returns
// that size (0 if nothing fired, -1 if the region is contradictory).
// The region is not driven to a fixed point here; the driver rescans
// it while it keeps changing.
func (g *Grid) regionSkim(reg *region, tbl *subsetTable, st *counters, bus *Bus) int {
	stop := 0
	for depth := 1; depth <= g.N; depth++ {
		if stop != 0 {
			break
		}
		for _, bits := range tbl.ofSize(depth) {
			if lvl := g.candidateExclusion(reg, bits, tbl, st, bus); lvl != 0 {
				if lvl < 0 {
					return lvl
				}
				if lvl > 1 {
					return lvl
				}
				stop = lvl
			}
			if lvl := g.valueExclusion(reg, bits, tbl, st, bus); lvl != 0 {
				if lvl < 0 {
					return lvl
				}
				if lvl > 1 {
					return lvl
				}
				stop = lvl
			}
		}
	}
	return stop
}

// candidateExclusion ("pile exclusion"): bits names k cell positions
// within reg.  If the union of their masks has exactly k values,
// those values can be cleared from every other cell of reg.
func (g *Grid) candidateExclusion(reg *region, bits uint32, tbl *subsetTable, st *counters, bus *Bus) int {
	var values uint32
	for i := 0; i < g.N; i++ {
		if bits&(1<<uint(i)) != 0 {
			values |= g.Cells[reg.cells[i]].Mask
		}
	}
	k := tbl.popcount(bits)
	vc := popcount32(values)
	if vc < k {
		return -1
	}
	if vc != k {
		return 0
	}
	level := 0
	for i := 0; i < g.N; i++ {
		if bits&(1<<uint(i)) != 0 {
			continue
		}
		ci := reg.cells[i]
		old := g.Cells[ci].Mask
		g.Cells[ci].Mask &^= values
		if g.Cells[ci].Mask != old {
			level = k
			g.onCellMutated(ci, st, bus)
			if g.Cells[ci].Mask == 0 {
				return -1
			}
		}
	}
	if level > 0 {
		g.reportRegionRule(reg, level, st, bus)
	}
	return level
}

// valueExclusion ("chain exclusion"): bits names k values.  If
// exactly k cells of reg can hold any of those values, every other
// value can be cleared from those k cells.
func (g *Grid) valueExclusion(reg *region, bits uint32, tbl *subsetTable, st *counters, bus *Bus) int {
	var cellsMask uint32
	for i := 0; i < g.N; i++ {
		if g.Cells[reg.cells[i]].Mask&bits != 0 {
			cellsMask |= 1 << uint(i)
		}
	}
	k := tbl.popcount(bits)
	cc := popcount32(cellsMask)
	if k > cc {
		return -1
	}
	if k != cc {
		return 0
	}
	level := 0
	for i := 0; i < g.N; i++ {
		if cellsMask&(1<<uint(i)) == 0 {
			continue
		}
		ci := reg.cells[i]
		old := g.Cells[ci].Mask
		g.Cells[ci].Mask &= bits
		if g.Cells[ci].Mask != old {
			level = k
			g.onCellMutated(ci, st, bus)
			if g.Cells[ci].Mask == 0 {
				return -1
			}
		}
	}
	if level > 0 {
		g.reportRegionRule(reg, level, st, bus)
	}
	return level
}

func (g *Grid) reportRegionRule(reg *region, level int, st *counters, bus *Bus) {
	if st != nil {
		st.nbRules++
		st.rC[level]++
	}
	if bus != nil {
		bus.fireMessage(Message{
			Text:      "rule fired in " + reg.name + " at depth " + strconv.Itoa(level),
			Verbosity: 2,
		})
	}
}
