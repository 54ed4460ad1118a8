package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines with these prefixes are emitted by bpftrace itself rather than the
// traced program; they carry no sample data.
var diagnosticPrefixes = []string{"Error", "Attaching"}

// traceParser reconstructs discrete stack samples from the raw interleaved
// trace text, one line at a time. A record's boundary is only known once the
// next record's header (or end of stream) is seen, so completed samples are
// emitted on the line after their last frame.
type traceParser struct {
	pending bool
	time    uint64
	tid     uint64
	frames  []string
}

// feed consumes one line of trace text. It returns the completed sample, if
// this line closed one, and a fatal error for a malformed header or a stray
// frame line. There is no recovery from either: a corrupt record stream
// cannot be reattributed safely.
func (p *traceParser) feed(line string) (sample, bool, error) {
	for _, prefix := range diagnosticPrefixes {
		if strings.HasPrefix(line, prefix) {
			return sample{}, false, nil
		}
	}

	if line == "" || line[0] != ' ' {
		s, emitted := p.flush()

		if line != "" {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return sample{}, false, fmt.Errorf("record header %q: want timestamp and thread id", line)
			}
			ts, err := strconv.ParseUint(fields[0], 10, 64)
			if err != nil {
				return sample{}, false, fmt.Errorf("record header %q: bad timestamp: %w", line, err)
			}
			tid, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return sample{}, false, fmt.Errorf("record header %q: bad thread id: %w", line, err)
			}
			p.pending = true
			p.time = ts
			p.tid = tid
		}
		return s, emitted, nil
	}

	if !p.pending {
		return sample{}, false, fmt.Errorf("stack frame %q arrived outside any record", strings.TrimSpace(line))
	}
	p.frames = append(p.frames, strings.TrimSpace(line))
	return sample{}, false, nil
}

// flush closes any in-progress record, emitting it only if it accumulated at
// least one frame. Records with a header but no body are dropped silently.
// Called on every record boundary and once more at end of stream.
func (p *traceParser) flush() (sample, bool) {
	if !p.pending {
		return sample{}, false
	}
	p.pending = false
	if len(p.frames) == 0 {
		return sample{}, false
	}
	s := sample{tid: p.tid, time: p.time, stack: strings.Join(p.frames, ";")}
	p.frames = p.frames[:0]
	return s, true
}
