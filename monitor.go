package main

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// Gaps between record timestamps at or below this are not worth
	// reproducing during replay.
	pacingFloor = uint64(time.Millisecond)

	drawEveryReplay = 200 * time.Millisecond
	drawEveryLive   = time.Second
	windowReplay    = 10 * time.Second
	windowLive      = 5 * time.Second

	statusEvery = 2 * time.Second
)

// lineMsg carries one raw trace line into the update loop.
type lineMsg string

// eofMsg signals the end of the trace source. A read failure is carried
// along and reported after teardown, but still ends the session cleanly.
type eofMsg struct{ err error }

// pacedMsg resumes reading after a replay pause.
type pacedMsg struct{}

// statusMsg carries a fresh target-process snapshot.
type statusMsg string

// model is the single consumer of both event sources: trace lines arrive via
// the sequential read command chain, key presses via the TTY reader. All
// mutable state lives here and is touched only inside Update, so none of it
// needs locking.
type model struct {
	parser  *traceParser
	store   *frameStore
	scanner *bufio.Scanner

	replay    bool
	drawEvery uint64 // redraw interval in trace nanoseconds

	lastTime  uint64 // timestamp of the previous closed record
	lastPrint uint64 // timestamp of the last redraw

	points []fanoutPoint
	blocks []displayBlock
	prefs  prefs
	help   help.Model

	target *targetWatcher
	status string

	width, height int

	err     error // fatal parse or protocol error, returned after teardown
	readErr error // trace source failure, downgraded to end-of-stream
}

func newModel(in io.Reader, replay bool, window, drawEvery time.Duration) *model {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &model{
		parser:    &traceParser{},
		store:     newFrameStore(window),
		scanner:   sc,
		replay:    replay,
		drawEvery: uint64(drawEvery.Nanoseconds()),
		prefs:     loadPrefs(),
		help:      help.New(),
	}
}

func (m *model) Init() tea.Cmd {
	if m.target != nil {
		return tea.Batch(m.readLine, m.watchTarget())
	}
	return m.readLine
}

// readLine pulls the next trace line. At most one read command is ever
// outstanding, which is what keeps the store single-writer.
func (m *model) readLine() tea.Msg {
	if m.scanner.Scan() {
		return lineMsg(m.scanner.Text())
	}
	return eofMsg{err: m.scanner.Err()}
}

func (m *model) watchTarget() tea.Cmd {
	return tea.Tick(statusEvery, func(time.Time) tea.Msg {
		return statusMsg(m.target.snapshot())
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lineMsg:
		s, emitted, err := m.parser.feed(string(msg))
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		if !emitted {
			return m, m.readLine
		}
		return m.record(s)

	case pacedMsg:
		return m, m.readLine

	case eofMsg:
		m.readErr = msg.err
		if s, emitted := m.parser.flush(); emitted {
			m.store.insert(s.tid, s.time, s.stack)
		}
		m.refresh()
		return m, tea.Quit

	case statusMsg:
		m.status = string(msg)
		return m, m.watchTarget()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Singles):
			m.prefs.HideSingles = !m.prefs.HideSingles
			m.prefs.save()
			m.rebuildBlocks()
		case key.Matches(msg, keys.Raw):
			m.prefs.RawSymbols = !m.prefs.RawSymbols
			m.prefs.save()
			m.rebuildBlocks()
		}
		return m, nil
	}
	return m, nil
}

// record folds one completed sample into the store and decides what the loop
// does next: pause for replay pacing, redraw, or just keep reading.
func (m *model) record(s sample) (tea.Model, tea.Cmd) {
	m.store.insert(s.tid, s.time, s.stack)

	next := tea.Cmd(m.readLine)
	if pause := m.paceBefore(s.time); pause > 0 {
		next = tea.Tick(pause, func(time.Time) tea.Msg { return pacedMsg{} })
	}
	m.lastTime = s.time

	if s.time > m.lastPrint && s.time-m.lastPrint > m.drawEvery {
		m.refresh()
		m.lastPrint = s.time
	}
	return m, next
}

// paceBefore returns how long replay should pause after a record stamped ts.
// Zero means no pause: not replaying, first record, a cross-thread timestamp
// regression, or a gap too small to notice.
func (m *model) paceBefore(ts uint64) time.Duration {
	if !m.replay || m.lastTime == 0 || ts <= m.lastTime {
		return 0
	}
	gap := ts - m.lastTime
	if gap <= pacingFloor {
		return 0
	}
	return time.Duration(gap)
}

// refresh runs one evict+aggregate cycle and rebuilds the display blocks.
func (m *model) refresh() {
	m.store.evictStale()
	m.points = m.store.fanoutPoints()
	m.rebuildBlocks()
}

func (m *model) rebuildBlocks() {
	dem := demangleFrame
	if m.prefs.RawSymbols {
		dem = func(name string) string { return name }
	}
	m.blocks = buildBlocks(visiblePoints(m.points, m.prefs.HideSingles), dem)
}
