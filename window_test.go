package main

import (
	"testing"
	"time"
)

func windowTimes(th *thread) []uint64 {
	out := make([]uint64, len(th.window))
	for i, e := range th.window {
		out[i] = e.time
	}
	return out
}

func TestInsertCreatesThread(t *testing.T) {
	s := newFrameStore(windowLive)
	s.insert(7, 100, "a;b")
	th := s.threads[7]
	if th == nil {
		t.Fatal("thread 7 not created on first insert")
	}
	if len(th.window) != 1 || th.window[0].stack != "a;b" {
		t.Errorf("window = %+v, want one entry with stack a;b", th.window)
	}
}

func TestInsertOrdersByTime(t *testing.T) {
	s := newFrameStore(windowLive)
	s.insert(1, 300, "c")
	s.insert(1, 100, "a")
	s.insert(1, 200, "b")

	got := windowTimes(s.threads[1])
	want := []uint64{100, 200, 300}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("window times = %v, want %v", got, want)
		}
	}
}

func TestInsertOverwritesEqualTimestamp(t *testing.T) {
	s := newFrameStore(windowLive)
	s.insert(1, 100, "old")
	s.insert(1, 100, "new")

	th := s.threads[1]
	if len(th.window) != 1 {
		t.Fatalf("len(window) = %d, want 1", len(th.window))
	}
	if got := th.window[0].stack; got != "new" {
		t.Errorf("stack = %q, want %q", got, "new")
	}
}

func TestLatestSpansThreads(t *testing.T) {
	s := newFrameStore(windowLive)
	if got := s.latest(); got != 0 {
		t.Errorf("latest() of empty store = %d, want 0", got)
	}
	s.insert(1, 500, "a")
	s.insert(2, 900, "b")
	s.insert(3, 700, "c")
	if got := s.latest(); got != 900 {
		t.Errorf("latest() = %d, want 900", got)
	}
}

func TestEvictStale(t *testing.T) {
	window := time.Second
	s := newFrameStore(window)
	span := uint64(window.Nanoseconds())

	latest := 3 * span
	s.insert(1, latest-span-1, "too old")
	s.insert(1, latest-span, "boundary") // exactly latest-WINDOW must survive
	s.insert(1, latest-1, "recent")
	s.insert(2, latest, "newest")

	s.evictStale()

	cutoff := latest - span
	for tid, th := range s.threads {
		for _, e := range th.window {
			if e.time < cutoff {
				t.Errorf("thread %d retains entry at %d, below cutoff %d", tid, e.time, cutoff)
			}
		}
	}

	got := windowTimes(s.threads[1])
	want := []uint64{latest - span, latest - 1}
	if len(got) != len(want) {
		t.Fatalf("thread 1 window times = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("thread 1 window times = %v, want %v", got, want)
		}
	}
}

func TestEvictStaleBeforeWindowFills(t *testing.T) {
	s := newFrameStore(windowLive)
	s.insert(1, 100, "a")
	s.insert(1, 200, "b")
	s.evictStale()

	// The stream has not yet run for a full window; nothing may be evicted.
	if got := len(s.threads[1].window); got != 2 {
		t.Errorf("len(window) = %d after early eviction pass, want 2", got)
	}
}

func TestEvictStaleLeavesEmptyThreads(t *testing.T) {
	window := time.Second
	s := newFrameStore(window)
	span := uint64(window.Nanoseconds())

	s.insert(1, 100, "a")
	s.insert(2, 100+2*span, "b")
	s.evictStale()

	th := s.threads[1]
	if th == nil {
		t.Fatal("thread 1 removed by eviction; thread entries must persist")
	}
	if len(th.window) != 0 {
		t.Errorf("thread 1 window = %+v, want empty", th.window)
	}
}
