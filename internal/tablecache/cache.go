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

// Package tablecache mirrors the per-N subset/popcount tables built by
// puzzle.subsetsForN into Redis, so a long-running process (or a
// fleet of them sharing one Redis) only pays the O(N*2^N) table-build
// cost once per N rather than once per process.  It is purely a
// performance cache: a miss or a Redis outage falls back to rebuilding
// the table in-process, and nothing about solving is incorrect
// without it.
package tablecache

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gomodule/redigo/redis"
)

// Cache wraps a lazily-dialed Redis connection: every operation dials
// on demand, mirroring the throwaway connection style of the original
// table-build cache.  The zero value has an empty URL, so its dials
// fail; use New.
type Cache struct {
	url string
}

// New returns a Cache that dials url, or — if url is empty — the URL
// named by SUSEN_REDIS_URL, then REDISTOGO_URL, then
// "redis://localhost:6379/".
func New(url string) *Cache {
	if url == "" {
		url = os.Getenv("SUSEN_REDIS_URL")
	}
	if url == "" {
		url = os.Getenv("REDISTOGO_URL")
	}
	if url == "" {
		url = "redis://localhost:6379/"
	}
	return &Cache{url: url}
}

func (c *Cache) dial() (redis.Conn, error) {
	return redis.DialURL(c.url)
}

func key(n int) string {
	return fmt.Sprintf("susen:subsettable:%d", n)
}

// Put stores the popcount, subsets, and bounds slices for side n.
// Each is encoded as a comma-separated decimal list; the three lists
// are newline-joined into one Redis string value.
func (c *Cache) Put(n int, popcnt []int, subsets []uint32, bounds []int) error {
	conn, err := c.dial()
	if err != nil {
		return err
	}
	defer conn.Close()
	value := strings.Join([]string{
		joinInts(popcnt),
		joinUint32s(subsets),
		joinInts(bounds),
	}, "\n")
	_, err = conn.Do("SET", key(n), value)
	return err
}

// Get retrieves the tables stored for side n. ok is false on a cache
// miss or any Redis error, in which case the caller should rebuild.
func (c *Cache) Get(n int) (popcnt []int, subsets []uint32, bounds []int, ok bool) {
	conn, err := c.dial()
	if err != nil {
		return nil, nil, nil, false
	}
	defer conn.Close()
	value, err := redis.String(conn.Do("GET", key(n)))
	if err != nil {
		return nil, nil, nil, false
	}
	lines := strings.SplitN(value, "\n", 3)
	if len(lines) != 3 {
		return nil, nil, nil, false
	}
	popcnt, err1 := splitInts(lines[0])
	subsets, err2 := splitUint32s(lines[1])
	bounds, err3 := splitInts(lines[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, nil, nil, false
	}
	return popcnt, subsets, bounds, true
}

// ClearAll runs FLUSHALL, which deletes every key in every database
// of the Redis server, not only the keys this cache has written.
func (c *Cache) ClearAll() error {
	conn, err := c.dial()
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.Do("FLUSHALL")
	return err
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func joinUint32s(vs []uint32) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, ",")
}

func splitInts(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func splitUint32s(s string) ([]uint32, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]uint32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, err
		}
		out[i] = uint32(v)
	}
	return out, nil
}
