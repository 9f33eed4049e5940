package textfield

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

func (m Model) View() string {
	var sb strings.Builder
	st := m.cfg.Style
	if m.cfg.Prompt != "" {
		sb.WriteString(st.Prompt.Render(m.cfg.Prompt))
	}
	if m.buf == nil {
		return sb.String()
	}

	clusters := m.displayClusters()
	if len(clusters) == 0 {
		sb.WriteString(m.renderEmpty())
		return sb.String()
	}

	cursor := -1
	if m.focused {
		cursor = m.buf.Cursor()
	}
	sel := m.buf.Selection()

	start := m.xOffset
	if start > len(clusters) {
		start = len(clusters)
	}
	budget := m.cfg.Width
	used := 0
	for i := start; i < len(clusters); i++ {
		c := clusters[i]
		w := cellWidth(c)
		if budget > 0 && used+w > budget {
			break
		}
		used += w
		switch {
		case i == cursor:
			sb.WriteString(st.Cursor.Render(c))
		case i >= sel.Start && i < sel.End:
			sb.WriteString(st.Selection.Render(c))
		default:
			sb.WriteString(st.Text.Render(c))
		}
	}
	if cursor == len(clusters) && (budget == 0 || used < budget) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m Model) renderEmpty() string {
	st := m.cfg.Style
	ph := m.buf.Placeholder()
	if ph == "" {
		if m.focused {
			return st.Cursor.Render(" ")
		}
		return ""
	}
	if m.cfg.Width > 0 {
		ph = runewidth.Truncate(ph, m.cfg.Width, "")
	}
	if !m.focused {
		return st.Placeholder.Render(ph)
	}
	g := uniseg.NewGraphemes(ph)
	if !g.Next() {
		return st.Cursor.Render(" ")
	}
	first := g.Str()
	_, to := g.Positions()
	return st.Cursor.Render(first) + st.Placeholder.Render(ph[to:])
}

func (m Model) displayClusters() []string {
	if m.buf == nil {
		return nil
	}
	clusters := m.buf.Clusters()
	if m.cfg.Secure {
		mask := string(m.cfg.EchoMask)
		for i := range clusters {
			clusters[i] = mask
		}
	}
	return clusters
}

// visibleStart returns the first grapheme to render so that the caret, plus
// its trailing cell at the end of text, fits into cfg.Width.
func (m Model) visibleStart(clusters []string) int {
	if m.cfg.Width <= 0 || m.buf == nil {
		return 0
	}
	cursor := m.buf.Cursor()
	if cursor > len(clusters) {
		cursor = len(clusters)
	}
	start := m.xOffset
	if start < 0 {
		start = 0
	}
	if start > cursor {
		start = cursor
	}
	caretCell := 1
	if cursor < len(clusters) {
		caretCell = cellWidth(clusters[cursor])
	}
	for start < cursor && cellsBetween(clusters, start, cursor)+caretCell > m.cfg.Width {
		start++
	}
	return start
}

func cellsBetween(clusters []string, from, to int) int {
	w := 0
	for i := from; i < to; i++ {
		w += cellWidth(clusters[i])
	}
	return w
}

func cellWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w == 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w == 0 {
		return 1
	}
	return w
}
