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

// Command susen-solve reads a puzzle from stdin (or a file) and
// solves it with the requested method, printing rule trace messages
// and the resulting grid(s).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dbrotsky/susen/internal/tablecache"
	"github.com/dbrotsky/susen/puzzle"
)

func main() {
	side := flag.Int("s", 3, "square side S (N = S*S); 2..5")
	methodName := flag.String("method", "elimination", "solver: elimination, backtracking, exactcover")
	all := flag.Bool("all", false, "find every solution instead of just the first")
	verbose := flag.Bool("v", false, "print rule-trace messages as solving proceeds")
	redisURL := flag.String("redis", "", "Redis URL for the subset-table cache (overrides SUSEN_REDIS_URL)")
	path := flag.String("f", "", "read the puzzle from this file instead of stdin")
	flag.Parse()

	if *redisURL != "" || os.Getenv("SUSEN_REDIS_URL") != "" || os.Getenv("REDISTOGO_URL") != "" {
		puzzle.TableCache = tablecache.New(*redisURL)
	}

	method, err := parseMethod(*methodName)
	if err != nil {
		log.Fatalf("susen-solve: %v", err)
	}

	text, err := readPuzzleText(*path)
	if err != nil {
		log.Fatalf("susen-solve: %v", err)
	}

	given, err := puzzle.ParseGrid(*side, text)
	if err != nil {
		log.Fatalf("susen-solve: %v", err)
	}

	bus := puzzle.NewBus()
	if *verbose {
		bus.OnMessage(func(m puzzle.Message) {
			fmt.Fprintln(os.Stderr, m.Text)
		})
	}

	mode := puzzle.First
	if *all {
		mode = puzzle.All
	}
	result := puzzle.SolveWithBus(bus, *side, given, method, mode)

	if len(result.Solutions) == 0 {
		fmt.Fprintln(os.Stderr, "no solution found")
		os.Exit(result.ExitCode())
	}
	for i, sol := range result.Solutions {
		if len(result.Solutions) > 1 {
			fmt.Printf("--- solution %d ---\n", i+1)
		}
		fmt.Println(puzzle.FormatGrid(*side, sol))
	}
	fmt.Fprintf(os.Stderr, "method: %s, rules applied: %d, hypotheses tried: %d\n",
		result.MethodUsed, result.RulesApplied(), result.HypothesisTries())
	os.Exit(result.ExitCode())
}

func parseMethod(name string) (puzzle.Method, error) {
	switch name {
	case "elimination":
		return puzzle.Elimination, nil
	case "backtracking":
		return puzzle.Backtracking, nil
	case "exactcover":
		return puzzle.ExactCover, nil
	default:
		return puzzle.None, fmt.Errorf("unknown method %q (want elimination, backtracking, or exactcover)", name)
	}
}

func readPuzzleText(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
