// susen.go - a web-based Sudoku game and teaching tool.
// Copyright (C) 2015-2016 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package puzzle

import "strings"

/*

Text conventions (spec 6)

Parsing is case-insensitive and ignores any character outside the
recognized value/empty set, so puzzles can be pasted in with spaces,
newlines, or separators between rows.  Printing renders one row per
line, one character per value, with no separator between values.
*/

// ParseGrid reads n*n value characters (n = s*s) out of text,
// skipping anything not recognized by parseValueChar, and returns
// them as a row-major N-by-N grid.  It returns an error if text
// doesn't contain enough recognized characters.
func ParseGrid(s int, text string) ([][]int, error) {
	n := s * s
	values := make([]int, 0, n*n)
	for i := 0; i < len(text) && len(values) < n*n; i++ {
		v, ok := parseValueChar(text[i])
		if !ok {
			continue
		}
		values = append(values, v)
	}
	if len(values) != n*n {
		return nil, Error{
			Scope:     InputScope,
			Structure: AttributeValueStructure,
			Attribute: CellValueAttribute,
			Condition: WrongSizeCondition,
			Values:    ErrorData{n * n, len(values)},
		}
	}
	grid := make([][]int, n)
	for r := 0; r < n; r++ {
		grid[r] = values[r*n : (r+1)*n]
	}
	return grid, nil
}

// FormatGrid renders values (n-by-n, n = s*s) as one line per row,
// with no separator between values, using the empty code for zero
// cells.
func FormatGrid(s int, values [][]int) string {
	var sb strings.Builder
	n := s * s
	for r := 0; r < n; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < n; c++ {
			v := values[r][c]
			if v == 0 {
				sb.WriteByte(emptyCode)
				continue
			}
			name, ok := valueName(v)
			if !ok {
				sb.WriteByte('?')
				continue
			}
			sb.WriteString(name)
		}
	}
	return sb.String()
}

// Values returns g's cells as a row-major N-by-N grid of values
// (0 for an unsolved cell, 1..N for a solved one).
func (g *Grid) Values() [][]int {
	n := g.N
	out := make([][]int, n)
	for r := 0; r < n; r++ {
		out[r] = make([]int, n)
		for c := 0; c < n; c++ {
			mask := g.Cells[r*n+c].Mask
			if popcount32(mask) == 1 {
				out[r][c] = lowestBit(mask)
			}
		}
	}
	return out
}

// String renders g using FormatGrid.
func (g *Grid) String() string {
	return FormatGrid(g.S, g.Values())
}
