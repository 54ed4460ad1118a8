package main

import (
	"sort"
	"strings"
)

// fanoutPoints computes the ranked fan-out points from the store's current
// contents.
//
// Per thread, every sample in the window contributes all strict suffixes of
// its call chain — leaf alone, then last two frames, and so on, never the
// full chain — to a frequency table. The suffix holding the final maximum is
// that thread's dominant attribution; ties go to the suffix counted latest
// (samples in ascending time order, suffixes leaf-to-root within a sample),
// which keeps the outcome stable for a fixed input.
//
// Threads are then grouped by identical dominant suffix. Single-frame
// suffixes carry no fan-out information and points with only one sample
// behind them are noise; both are discarded. Remaining points are ordered by
// contributing thread count, then total count, then suffix.
func (s *frameStore) fanoutPoints() []fanoutPoint {
	type group struct {
		threads int
		count   int
	}

	// One frequency table, cleared between threads.
	hits := make(map[string]int)
	groups := make(map[string]*group)

	for _, tid := range s.tids() {
		var maxStack string
		var maxCount int

		for _, e := range s.threads[tid].window {
			at := len(e.stack)
			for {
				sep := strings.LastIndex(e.stack[:at], ";")
				if sep < 0 {
					break
				}
				at = sep
				suffix := e.stack[at+1:]
				hits[suffix]++
				if c := hits[suffix]; c >= maxCount {
					maxStack, maxCount = suffix, c
				}
			}
		}

		if maxCount > 0 {
			g := groups[maxStack]
			if g == nil {
				g = &group{}
				groups[maxStack] = g
			}
			g.threads++
			g.count += maxCount
		}
		clear(hits)
	}

	points := make([]fanoutPoint, 0, len(groups))
	for stack, g := range groups {
		if !strings.Contains(stack, ";") {
			// These threads just share a root frame.
			continue
		}
		if g.count == 1 {
			continue
		}
		points = append(points, fanoutPoint{stack: stack, threads: g.threads, count: g.count})
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].threads != points[j].threads {
			return points[i].threads > points[j].threads
		}
		if points[i].count != points[j].count {
			return points[i].count > points[j].count
		}
		return points[i].stack < points[j].stack
	})

	var maxCount int
	for _, p := range points {
		if p.count > maxCount {
			maxCount = p.count
		}
	}
	for i := range points {
		points[i].intensity = float64(points[i].count) / float64(maxCount)
	}
	return points
}
