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

package tablecache

import "testing"

func liveCache(t *testing.T) *Cache {
	t.Helper()
	c := New("")
	conn, err := c.dial()
	if err != nil {
		t.Skipf("no Redis reachable at %s: %v", c.url, err)
	}
	conn.Close()
	return c
}

func TestPutThenGetRoundTrips(t *testing.T) {
	c := liveCache(t)
	popcnt := []int{0, 1, 1, 2}
	subsets := []uint32{0, 1, 2, 3}
	bounds := []int{0, 1, 3, 4}
	if err := c.Put(9001, popcnt, subsets, bounds); err != nil {
		t.Fatalf("Put: %v", err)
	}
	gotPop, gotSub, gotBounds, ok := c.Get(9001)
	if !ok {
		t.Fatal("Get reported a miss right after Put")
	}
	if !intsEqual(gotPop, popcnt) || !uint32sEqual(gotSub, subsets) || !intsEqual(gotBounds, bounds) {
		t.Errorf("round trip mismatch: popcnt=%v subsets=%v bounds=%v", gotPop, gotSub, gotBounds)
	}
}

func TestGetMissReportsNotOK(t *testing.T) {
	c := liveCache(t)
	_, _, _, ok := c.Get(-1)
	if ok {
		t.Error("Get on an unwritten key reported ok=true")
	}
}

func TestNewDefaultsToLocalhost(t *testing.T) {
	c := New("")
	if c.url == "" {
		t.Error("New(\"\") left url empty")
	}
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func uint32sEqual(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
