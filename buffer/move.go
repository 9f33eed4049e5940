package buffer

import "github.com/iw2rmb/fieldedit/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome // line start
	DirEnd  // line end
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, keeps the anchor and moves the caret; if false collapses the selection
}

// Move moves the caret. Moves never consult the delegate.
func (b *Buffer) Move(m Move) {
	prev := b.sel

	if !m.Extend && m.Unit == MoveGrapheme && b.HasSelection() {
		// Collapse toward the pressed direction instead of stepping past it.
		r := b.Selection()
		switch m.Dir {
		case DirLeft:
			b.setSel(selectionState{anchor: r.Start, end: r.Start})
			return
		case DirRight:
			b.setSel(selectionState{anchor: r.End, end: r.End})
			return
		}
	}

	next := b.moveCursor(prev.end, m)
	if m.Extend {
		b.setSel(selectionState{anchor: prev.anchor, end: next})
		return
	}
	b.setSel(selectionState{anchor: next, end: next})
}

func (b *Buffer) moveCursor(col int, m Move) int {
	n := len(b.clusters)
	switch m.Dir {
	case DirHome:
		return 0
	case DirEnd:
		return n
	}

	switch m.Unit {
	case MoveGrapheme:
		if m.Dir == DirLeft && col > 0 {
			return col - 1
		}
		if m.Dir == DirRight && col < n {
			return col + 1
		}
		return col
	case MoveWord:
		if m.Dir == DirLeft {
			return prevWordBoundary(b.clusters, col)
		}
		return nextWordBoundary(b.clusters, col)
	case MoveLine:
		if m.Dir == DirLeft {
			return 0
		}
		return n
	default:
		return col
	}
}

// Word boundary rules (v0):
// - skip whitespace and punctuation, then skip word characters
func prevWordBoundary(line []string, col int) int {
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	i := col
	for i > 0 && isWordBreak(line[i-1]) {
		i--
	}
	for i > 0 && !isWordBreak(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	i := col
	for i < len(line) && isWordBreak(line[i]) {
		i++
	}
	for i < len(line) && !isWordBreak(line[i]) {
		i++
	}
	return i
}

func isWordBreak(cluster string) bool {
	return grapheme.IsSpace(cluster) || grapheme.IsPunct(cluster)
}
