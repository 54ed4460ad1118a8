package main

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/process"
)

// targetWatcher reports coarse liveness of the process under trace, so that
// when the target dies the footer says so instead of the panel silently
// going stale.
type targetWatcher struct {
	proc *process.Process
}

func newTargetWatcher(pid int32) (*targetWatcher, error) {
	proc, err := process.NewProcess(pid)
	if err != nil {
		return nil, fmt.Errorf("target pid %d: %w", pid, err)
	}
	return &targetWatcher{proc: proc}, nil
}

// snapshot returns a one-line summary of the target process.
func (w *targetWatcher) snapshot() string {
	name, err := w.proc.Name()
	if err != nil {
		return fmt.Sprintf("target %d is gone", w.proc.Pid)
	}
	cpu, _ := w.proc.CPUPercent()
	threads, _ := w.proc.NumThreads()
	var rss uint64
	if mem, err := w.proc.MemoryInfo(); err == nil && mem != nil {
		rss = mem.RSS
	}
	return fmt.Sprintf("%s (pid %d) | cpu %.1f%% | %d threads | rss %d MiB",
		name, w.proc.Pid, cpu, threads, rss>>20)
}
