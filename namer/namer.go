// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package namer builds short, collision free display names from
// hierarchical signal names.
//
package namer

import (
	"strconv"
	"strings"
	"unicode"
)

// Sep is the hierarchy separator in signal names.
//
const Sep = "."

// Anonymous is the name given to signals with an empty name.
//
const Anonymous = "sig"

// Unique returns a display name for each of the given dot separated paths.
//
// Each name is the shortest suffix of its path, in whole path components,
// that no other path shares. For example, "cpu.alu.out" and "cpu.pc.out"
// become "alu.out" and "pc.out" while a lone "cpu.pc.load" becomes "load".
// Paths that remain identical in full are told apart by a numeric suffix
// ("out", "out_1", "out_2"), in order of appearance.
//
// Whitespace in paths is replaced with underscores.
//
func Unique(paths []string) []string {
	parts := make([][]string, len(paths))
	depth := make([]int, len(paths))
	for i, p := range paths {
		p = clean(p)
		parts[i] = strings.Split(p, Sep)
		depth[i] = 1
	}

	names := make([]string, len(paths))
	for {
		for i := range names {
			names[i] = suffix(parts[i], depth[i])
		}
		groups := make(map[string][]int, len(names))
		for i, n := range names {
			groups[n] = append(groups[n], i)
		}
		changed := false
		for _, g := range groups {
			if len(g) < 2 {
				continue
			}
			for _, i := range g {
				if depth[i] < len(parts[i]) {
					depth[i]++
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	// identical full paths
	used := make(map[string]bool, len(names))
	for _, n := range names {
		used[n] = true
	}
	seen := make(map[string]bool, len(names))
	for i, n := range names {
		if !seen[n] {
			seen[n] = true
			continue
		}
		for k := 1; ; k++ {
			alt := n + "_" + strconv.Itoa(k)
			if !used[alt] {
				names[i] = alt
				used[alt] = true
				seen[alt] = true
				break
			}
		}
	}
	return names
}

func suffix(parts []string, n int) string {
	return strings.Join(parts[len(parts)-n:], Sep)
}

func clean(p string) string {
	p = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, p)
	p = strings.Trim(p, Sep)
	if p == "" {
		return Anonymous
	}
	return p
}
