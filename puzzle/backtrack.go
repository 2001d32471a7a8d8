package puzzle

/*

Backtracking solver (spec 4.7)

A reference brute-force DFS, independent of the bitmask/candidate
machinery: it works directly off assigned values, used both as a
baseline and to validate elimination's results.  The original's
validity check mixed && and != in a way that could accept some
invalid grids past the first screen (spec 9's open question #3);
here the duplicate check is the straightforward three-condition
form.

*/

// SolveByBacktracking finds solution(s) to values (an N-by-N
// row-major grid of 0..N, 0 = empty) by plain DFS, honoring mode.
// It reports each solution via collect and returns the number of
// solutions found.
func SolveByBacktracking(s int, values [][]int, mode Mode, bus *Bus, collect func([][]int)) int {
	n := s * s
	grid := make([][]int, n)
	for i := range grid {
		grid[i] = append([]int(nil), values[i]...)
	}
	found := 0
	backtrackStep(grid, s, n, mode, bus, &found, collect)
	return found
}

func backtrackStep(grid [][]int, s, n int, mode Mode, bus *Bus, found *int, collect func([][]int)) bool {
	row, col, ok := firstEmptyCell(grid, n)
	if !ok {
		*found++
		if bus != nil {
			bus.fireMessage(Message{Text: "backtracking found a solution", Verbosity: 1})
		}
		collect(cloneGrid(grid))
		return mode == First
	}
	for v := 1; v <= n; v++ {
		if backtrackConflicts(grid, s, n, row, col, v) {
			continue
		}
		grid[row][col] = v
		stop := backtrackStep(grid, s, n, mode, bus, found, collect)
		grid[row][col] = 0
		if stop {
			return true
		}
	}
	return false
}

func firstEmptyCell(grid [][]int, n int) (int, int, bool) {
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if grid[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// backtrackConflicts reports whether placing v at (row, col) would
// duplicate a value already present in the row, column, or box —
// three independent checks, combined with ||, per spec 9's fix for
// the original's precedence bug.
func backtrackConflicts(grid [][]int, s, n, row, col, v int) bool {
	for c := 0; c < n; c++ {
		if grid[row][c] == v {
			return true
		}
	}
	for r := 0; r < n; r++ {
		if grid[r][col] == v {
			return true
		}
	}
	br, bc := (row/s)*s, (col/s)*s
	for dr := 0; dr < s; dr++ {
		for dc := 0; dc < s; dc++ {
			if grid[br+dr][bc+dc] == v {
				return true
			}
		}
	}
	return false
}

func cloneGrid(grid [][]int) [][]int {
	out := make([][]int, len(grid))
	for i, row := range grid {
		out[i] = append([]int(nil), row...)
	}
	return out
}
