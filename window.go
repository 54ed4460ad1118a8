package main

import (
	"sort"
	"time"
)

// entry is one retained sample within a thread's window.
type entry struct {
	time  uint64
	stack string
}

// thread holds one thread's samples, ordered by timestamp ascending.
type thread struct {
	window []entry
}

// frameStore maps thread ids to their retained sample windows. Threads are
// created on first sample and never removed; a thread that stops producing
// samples ages out to an empty window.
type frameStore struct {
	threads   map[uint64]*thread
	retention uint64 // window span in trace nanoseconds
}

func newFrameStore(retention time.Duration) *frameStore {
	return &frameStore{
		threads:   make(map[uint64]*thread),
		retention: uint64(retention.Nanoseconds()),
	}
}

// insert records one sample in its thread's window. Samples arrive in time
// order per thread, so the common case is an append; a duplicate timestamp
// overwrites, and an out-of-order sample is placed by binary search.
func (s *frameStore) insert(tid, ts uint64, stack string) {
	th := s.threads[tid]
	if th == nil {
		th = &thread{}
		s.threads[tid] = th
	}

	n := len(th.window)
	if n == 0 || ts > th.window[n-1].time {
		th.window = append(th.window, entry{time: ts, stack: stack})
		return
	}
	i := sort.Search(n, func(i int) bool { return th.window[i].time >= ts })
	if i < n && th.window[i].time == ts {
		th.window[i].stack = stack
		return
	}
	th.window = append(th.window, entry{})
	copy(th.window[i+1:], th.window[i:])
	th.window[i] = entry{time: ts, stack: stack}
}

// latest returns the maximum timestamp across all thread windows, or zero
// when no samples are held.
func (s *frameStore) latest() uint64 {
	var latest uint64
	for _, th := range s.threads {
		if n := len(th.window); n > 0 && th.window[n-1].time > latest {
			latest = th.window[n-1].time
		}
	}
	return latest
}

// evictStale drops every entry older than the retention window, measured back
// from the newest timestamp currently held. Nothing is evicted until the
// stream has run long enough for that cutoff to be positive.
func (s *frameStore) evictStale() {
	latest := s.latest()
	if latest <= s.retention {
		return
	}
	cutoff := latest - s.retention
	for _, th := range s.threads {
		i := sort.Search(len(th.window), func(i int) bool { return th.window[i].time >= cutoff })
		if i > 0 {
			th.window = append(th.window[:0], th.window[i:]...)
		}
	}
}

// tids returns the known thread ids in ascending order, for reproducible
// iteration during aggregation.
func (s *frameStore) tids() []uint64 {
	ids := make([]uint64, 0, len(s.threads))
	for tid := range s.threads {
		ids = append(ids, tid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
