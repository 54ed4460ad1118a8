package main

import (
	"strings"
	"testing"
)

func TestBuildBlocksHeaders(t *testing.T) {
	identity := func(name string) string { return name }
	points := []fanoutPoint{
		{stack: "a;b", threads: 1, count: 7, intensity: 1},
		{stack: "c;d", threads: 3, count: 5, intensity: 0.5},
	}

	blocks := buildBlocks(points, identity)
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}
	if got, want := blocks[0].header, "A thread fanned out from here 7 times"; got != want {
		t.Errorf("singular header = %q, want %q", got, want)
	}
	if got, want := blocks[1].header, "3 threads fanned out from here 5 times"; got != want {
		t.Errorf("plural header = %q, want %q", got, want)
	}
}

func TestBuildBlocksFrames(t *testing.T) {
	upper := strings.ToUpper
	points := []fanoutPoint{{stack: "root;mid;leaf", threads: 2, count: 4, intensity: 0.25}}

	blocks := buildBlocks(points, upper)
	frames := blocks[0].frames
	if len(frames) != 3 {
		t.Fatalf("len(frames) = %d, want 3", len(frames))
	}
	// Root-first order, presentation function applied to every frame, only
	// the first frame tagged as root.
	wantText := []string{"ROOT", "MID", "LEAF"}
	for i, f := range frames {
		if f.text != wantText[i] {
			t.Errorf("frames[%d].text = %q, want %q", i, f.text, wantText[i])
		}
		if f.root != (i == 0) {
			t.Errorf("frames[%d].root = %v, want %v", i, f.root, i == 0)
		}
	}
	if got := blocks[0].intensity; got != 0.25 {
		t.Errorf("intensity = %v, want 0.25", got)
	}
}

func TestBlockColor(t *testing.T) {
	if got, want := string(blockColor(1)), "#ff0000"; got != want {
		t.Errorf("blockColor(1) = %q, want %q", got, want)
	}
	if got, want := string(blockColor(0.5)), "#ff4040"; got != want {
		t.Errorf("blockColor(0.5) = %q, want %q", got, want)
	}
}

func TestVisiblePoints(t *testing.T) {
	points := []fanoutPoint{
		{stack: "a;b", threads: 3, count: 6},
		{stack: "c;d", threads: 1, count: 9},
		{stack: "e;f", threads: 2, count: 2},
	}

	if got := visiblePoints(points, false); len(got) != 3 {
		t.Errorf("len(visiblePoints(off)) = %d, want 3", len(got))
	}
	got := visiblePoints(points, true)
	if len(got) != 2 {
		t.Fatalf("len(visiblePoints(on)) = %d, want 2", len(got))
	}
	for _, p := range got {
		if p.threads < 2 {
			t.Errorf("single-thread point %+v survived the filter", p)
		}
	}
}

func TestDemangleFramePassthrough(t *testing.T) {
	// Plain symbols come back untouched.
	if got := demangleFrame("epoll_wait"); got != "epoll_wait" {
		t.Errorf("demangleFrame(epoll_wait) = %q, want passthrough", got)
	}
	// A mangled C++ symbol must come back readable.
	if got := demangleFrame("_ZN3foo3barEv"); !strings.Contains(got, "foo") {
		t.Errorf("demangleFrame(_ZN3foo3barEv) = %q, want demangled name containing foo", got)
	}
}
