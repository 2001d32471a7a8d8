package puzzle

import (
	"context"

	mk "github.com/gitrdm/gokando/pkg/minikanren"
)

/*

Exact-cover encoder (spec 4.8)

Names the columns of the 4*N*N-column universe (cell[r,c], row[r,v],
col[c,v], box[b,v]); ecSubsetColumns gives the four columns that the
(r,c,v) subset covers.  These columns are computed only for the given
cells, to pre-cover them and catch an immediately contradictory input
before delegating; the full universe and the N*N*N subset list are
not built, and no Dancing Links search runs.  The actual combinatorial
search — "an external Dancing Links library" per spec 1 — is
delegated to gokando's finite-domain solver: each cell becomes an FD
variable with domain 1..N, and each region becomes an AllDifferent
constraint, which is the FD-propagation equivalent of covering the
row/col/box column families (the cell[r,c] family is enforced simply
by each cell having exactly one FD variable).
*/

// ecColumn names one column of the exact-cover universe, for the
// pre-cover consistency check.  family is one of "cell", "row",
// "col", "box".
type ecColumn struct {
	family string
	a, b   int
}

// ecSubsetColumns returns the 4 columns the (r, c, v) subset covers.
func ecSubsetColumns(s, n, r, c, v int) [4]ecColumn {
	b := (r/s)*s + c/s
	return [4]ecColumn{
		{"cell", r, c},
		{"row", r, v},
		{"col", c, v},
		{"box", b, v},
	}
}

// precoverGivens checks that the given cells' subsets don't claim
// the same column twice (two givens in the same row/column/box with
// the same value, or two givens at the same cell) — the exact-cover
// analogue of spec 4.8's "failure of a pre-cover means the grid is
// invalid."
func precoverGivens(s int, given [][]int) error {
	n := s * s
	seen := make(map[ecColumn]bool, 4*n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := given[r][c]
			if v == 0 {
				continue
			}
			for _, col := range ecSubsetColumns(s, n, r, c, v) {
				if seen[col] {
					return Error{
						Scope:     GridScope,
						Condition: DuplicateGivenCondition,
						Values:    ErrorData{v, col.family},
					}
				}
				seen[col] = true
			}
		}
	}
	return nil
}

// SolveByExactCover encodes given (n-by-n, n = s*s, 0 = empty) as an
// exact-cover problem and delegates the search to gokando.  It
// reports each solution via collect and returns the number of
// solutions found, or an error if pre-covering the givens already
// fails.
func SolveByExactCover(s int, given [][]int, mode Mode, bus *Bus, collect func([][]int)) (int, error) {
	if err := precoverGivens(s, given); err != nil {
		return 0, err
	}
	n := s * s

	model := mk.NewModel()
	vars := make([]*mk.FDVariable, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			idx := r*n + c
			v := given[r][c]
			var dom mk.Domain
			if v != 0 {
				dom = mk.NewBitSetDomainFromValues(n, []int{v})
			} else {
				dom = mk.NewBitSetDomain(n)
			}
			vars[idx] = model.NewVariable(dom)
		}
	}

	addAllDifferent := func(cells []int) error {
		group := make([]*mk.FDVariable, len(cells))
		for i, idx := range cells {
			group[i] = vars[idx]
		}
		c, err := mk.NewAllDifferent(group)
		if err != nil {
			return err
		}
		model.AddConstraint(c)
		return nil
	}

	for r := 0; r < n; r++ {
		cells := make([]int, n)
		for c := 0; c < n; c++ {
			cells[c] = r*n + c
		}
		if err := addAllDifferent(cells); err != nil {
			return 0, err
		}
	}
	for c := 0; c < n; c++ {
		cells := make([]int, n)
		for r := 0; r < n; r++ {
			cells[r] = r*n + c
		}
		if err := addAllDifferent(cells); err != nil {
			return 0, err
		}
	}
	for b := 0; b < n; b++ {
		br, bc := (b/s)*s, (b%s)*s
		cells := make([]int, 0, n)
		for dr := 0; dr < s; dr++ {
			for dc := 0; dc < s; dc++ {
				cells = append(cells, (br+dr)*n+(bc+dc))
			}
		}
		if err := addAllDifferent(cells); err != nil {
			return 0, err
		}
	}

	wantCount := 0 // ALL
	if mode == First {
		wantCount = 1
	}
	solver := mk.NewSolver(model)
	solutions, err := solver.Solve(context.Background(), wantCount)
	if err != nil {
		return 0, err
	}

	for _, sol := range solutions {
		grid := make([][]int, n)
		for r := 0; r < n; r++ {
			grid[r] = make([]int, n)
			for c := 0; c < n; c++ {
				grid[r][c] = sol[r*n+c]
			}
		}
		if bus != nil {
			bus.fireMessage(Message{Text: "exact cover found a solution", Verbosity: 1})
			if sg, err := BuildGrid(s, grid); err == nil {
				bus.fireSolved(sg)
			}
		}
		collect(grid)
	}
	return len(solutions), nil
}
