package puzzle

import "strconv"

/*

Line rule engine (spec 4.4)

For each digit v, row-locked and column-locked propagation run over
the whole grid: if v's candidate positions within some k rows are
confined to exactly k columns, v can be cleared from those columns
in every other row (and symmetrically for columns).  Same
subset-by-cardinality scan and k==1/k>1 ordering discipline as the
region rule engine.

*/

// lineSkim scans digit v's row- and column-locked rules once, by
// increasing subset size, stopping after the first k at which
// something fired.  Returns that k (0 if nothing fired, or -1 on
// contradiction).
func (g *Grid) lineSkim(v int, tbl *subsetTable, st *counters, bus *Bus) int {
	bit := uint32(1) << uint(v-1)
	stop := 0
	for depth := 1; depth <= g.N; depth++ {
		if stop != 0 {
			break
		}
		for _, bits := range tbl.ofSize(depth) {
			if lvl := g.rowExclusion(v, bit, bits, tbl, st, bus); lvl != 0 {
				if lvl < 0 {
					return lvl
				}
				if lvl > 1 {
					return lvl
				}
				stop = lvl
			}
			if lvl := g.colExclusion(v, bit, bits, tbl, st, bus); lvl != 0 {
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

// rowExclusion: bits names k row indices.  If v's candidate columns
// within those rows number exactly k, v can be cleared from those
// columns in every other row.
func (g *Grid) rowExclusion(v int, bit, bits uint32, tbl *subsetTable, st *counters, bus *Bus) int {
	n := g.N
	var columns uint32
	for row := 0; row < n; row++ {
		if bits&(1<<uint(row)) == 0 {
			continue
		}
		for col := 0; col < n; col++ {
			if g.Cells[row*n+col].Mask&bit != 0 {
				columns |= 1 << uint(col)
			}
		}
	}
	k := tbl.popcount(bits)
	cc := popcount32(columns)
	if cc < k {
		return -1
	}
	if cc != k {
		return 0
	}
	level := 0
	for row := 0; row < n; row++ {
		if bits&(1<<uint(row)) != 0 {
			continue
		}
		for col := 0; col < n; col++ {
			if columns&(1<<uint(col)) == 0 {
				continue
			}
			ci := row*n + col
			old := g.Cells[ci].Mask
			g.Cells[ci].Mask &^= bit
			if g.Cells[ci].Mask != old {
				level = k
				g.onCellMutated(ci, st, bus)
				if g.Cells[ci].Mask == 0 {
					return -1
				}
			}
		}
	}
	if level > 0 {
		g.reportLineRule(v, level, st, bus)
	}
	return level
}

// colExclusion is rowExclusion with rows and columns swapped.
func (g *Grid) colExclusion(v int, bit, bits uint32, tbl *subsetTable, st *counters, bus *Bus) int {
	n := g.N
	var rows uint32
	for col := 0; col < n; col++ {
		if bits&(1<<uint(col)) == 0 {
			continue
		}
		for row := 0; row < n; row++ {
			if g.Cells[row*n+col].Mask&bit != 0 {
				rows |= 1 << uint(row)
			}
		}
	}
	k := tbl.popcount(bits)
	rc := popcount32(rows)
	if rc < k {
		return -1
	}
	if rc != k {
		return 0
	}
	level := 0
	for col := 0; col < n; col++ {
		if bits&(1<<uint(col)) != 0 {
			continue
		}
		for row := 0; row < n; row++ {
			if rows&(1<<uint(row)) == 0 {
				continue
			}
			ci := row*n + col
			old := g.Cells[ci].Mask
			g.Cells[ci].Mask &^= bit
			if g.Cells[ci].Mask != old {
				level = k
				g.onCellMutated(ci, st, bus)
				if g.Cells[ci].Mask == 0 {
					return -1
				}
			}
		}
	}
	if level > 0 {
		g.reportLineRule(v, level, st, bus)
	}
	return level
}

func (g *Grid) reportLineRule(v, level int, st *counters, bus *Bus) {
	if st != nil {
		st.nbRules++
		st.rC[level]++
	}
	if bus != nil {
		name, _ := valueName(v)
		bus.fireMessage(Message{
			Text:      "line rule fired for value " + name + " at depth " + strconv.Itoa(level),
			Verbosity: 2,
		})
	}
}
