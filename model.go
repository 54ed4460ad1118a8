package main

// A sample is one discrete stack capture for one thread: the trace's own
// monotonic nanosecond timestamp, the kernel thread id, and the call chain
// joined root-to-leaf with ";" separators.
type sample struct {
	tid   uint64
	time  uint64
	stack string
}

// A fanoutPoint is one ranked aggregation result: a call-chain suffix that is
// the dominant attribution of one or more threads within the current window.
// Recomputed from scratch every cycle, never persisted.
type fanoutPoint struct {
	stack     string  // suffix frames joined with ";", outermost frame first
	threads   int     // threads whose dominant attribution this suffix is
	count     int     // summed per-thread attribution counts
	intensity float64 // count relative to the cycle's largest count, in (0, 1]
}

// frameLine is one symbol within a display block. The root line is styled
// normally; the rest are dimmed.
type frameLine struct {
	text string
	root bool
}

// displayBlock is the presentation form of one fan-out point, ready for the
// panel: a summary header, the suffix frames root-first, and a color
// intensity.
type displayBlock struct {
	header    string
	frames    []frameLine
	intensity float64
}
