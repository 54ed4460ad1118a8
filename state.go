package main

// visiblePoints applies the presentation-only single-thread filter. The
// aggregation itself is untouched, so hidden points reappear as soon as the
// toggle flips back.
func visiblePoints(points []fanoutPoint, hideSingles bool) []fanoutPoint {
	if !hideSingles {
		return points
	}
	out := make([]fanoutPoint, 0, len(points))
	for _, p := range points {
		if p.threads > 1 {
			out = append(out, p)
		}
	}
	return out
}

// footer builds the single status line under the panel: the target-process
// snapshot, if one is being watched, followed by key help.
func (m *model) footer() string {
	helpView := m.help.View(keys)
	if m.status == "" {
		return helpView
	}
	return statusStyle.Render(m.status) + "  " + helpView
}
