package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Faint(true)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

// buildBlocks converts ranked fan-out points into display blocks, applying
// the frame-name presentation function (demangling or identity) to every
// frame. The first frame of each suffix is its root and is tagged for
// distinct styling.
func buildBlocks(points []fanoutPoint, frameName func(string) string) []displayBlock {
	blocks := make([]displayBlock, 0, len(points))
	for _, p := range points {
		var header string
		if p.threads == 1 {
			header = fmt.Sprintf("A thread fanned out from here %d times", p.count)
		} else {
			header = fmt.Sprintf("%d threads fanned out from here %d times", p.threads, p.count)
		}

		frames := strings.Split(p.stack, ";")
		lines := make([]frameLine, len(frames))
		for i, f := range frames {
			lines[i] = frameLine{text: frameName(f), root: i == 0}
		}
		blocks = append(blocks, displayBlock{header: header, frames: lines, intensity: p.intensity})
	}
	return blocks
}

// blockColor maps a block's intensity to its header color: pale red for cold
// points shading to pure red for the hottest.
func blockColor(intensity float64) lipgloss.Color {
	red := int(128 * intensity)
	return lipgloss.Color(fmt.Sprintf("#ff%02x%02x", 128-red, 128-red))
}

func (m *model) View() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Common thread fan-out points"))
	b.WriteString("\n\n")
	for _, blk := range m.blocks {
		header := lipgloss.NewStyle().Bold(true).Foreground(blockColor(blk.intensity))
		b.WriteString(header.Render(blk.header))
		b.WriteByte('\n')
		for _, f := range blk.frames {
			line := "  " + f.text
			if f.root {
				b.WriteString(line)
			} else {
				b.WriteString(faintStyle.Render(line))
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	panel := panelStyle.
		Width(width - 2).
		Height(height - 3).
		MaxHeight(height - 1).
		Render(b.String())
	return lipgloss.JoinVertical(lipgloss.Left, panel, m.footer())
}
