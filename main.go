package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

var opts struct {
	replay    bool
	input     string
	pid       int32
	window    time.Duration
	drawEvery time.Duration
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stuck",
		Short: "A live profile visualizer",
		Long: `A live profile visualizer.

Pipe the output of the appropriate bpftrace command into this program, and
enjoy. Happy profiling!`,
		Version:      "0.2.0",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			return run()
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.replay, "replay", false, "treat input as a replay of a trace and emulate time accordingly")
	f.StringVar(&opts.input, "input", "", "read the trace from this file instead of stdin")
	f.Int32Var(&opts.pid, "pid", 0, "show a status footer for this traced process")
	f.DurationVar(&opts.window, "window", 0, "sample retention window in trace time (default 10s replaying, 5s live)")
	f.DurationVar(&opts.drawEvery, "draw-every", 0, "redraw interval in trace time (default 200ms replaying, 1s live)")
	return cmd
}

func run() error {
	var in io.ReadCloser = os.Stdin
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return err
		}
		in = f
	} else if term.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "Don't type input to this program, that's silly.")
		return nil
	}
	defer in.Close()

	window := opts.window
	if window <= 0 {
		window = windowLive
		if opts.replay {
			window = windowReplay
		}
	}
	drawEvery := opts.drawEvery
	if drawEvery <= 0 {
		drawEvery = drawEveryLive
		if opts.replay {
			drawEvery = drawEveryReplay
		}
	}

	m := newModel(in, opts.replay, window, drawEvery)
	if opts.pid != 0 {
		w, err := newTargetWatcher(opts.pid)
		if err != nil {
			return err
		}
		m.target = w
	}

	// Key input comes from the TTY directly; stdin carries the trace.
	out, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInputTTY()).Run()
	if err != nil {
		return err
	}
	final := out.(*model)
	if final.err != nil {
		return final.err
	}
	if final.readErr != nil {
		slog.Warn("trace input failed before end of stream", "err", final.readErr)
	}
	return nil
}
