package buffer

import "testing"

func TestBuffer_MoveGrapheme_Bounds(t *testing.T) {
	b := New("ab", Options{})

	b.SetCursor(0)
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.Cursor(); got != 2 {
		t.Fatalf("cursor=%d, want 2", got)
	}
}

func TestBuffer_MoveGrapheme_CollapsesSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Start: 1, End: 4})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}

	b.SetSelection(Range{Start: 4, End: 1})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.Cursor(); got != 4 {
		t.Fatalf("cursor=%d, want 4", got)
	}
}

func TestBuffer_MoveExtend_KeepsAnchor(t *testing.T) {
	b := New("hello", Options{})
	b.SetCursor(2)

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	if got, want := b.Selection(), (Range{Start: 2, End: 4}); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}

	b.Move(Move{Unit: MoveLine, Dir: DirHome, Extend: true})
	if got, want := b.Selection(), (Range{Start: 0, End: 2}); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
	if got, want := b.SelectionRaw(), (Range{Start: 2, End: 0}); got != want {
		t.Fatalf("raw=%v, want %v", got, want)
	}
}

func TestBuffer_MoveWord(t *testing.T) {
	b := New("one, two three", Options{})
	b.SetCursor(0)

	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := b.Cursor(); got != 3 {
		t.Fatalf("cursor=%d, want 3", got)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := b.Cursor(); got != 8 {
		t.Fatalf("cursor=%d, want 8", got)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got := b.Cursor(); got != 5 {
		t.Fatalf("cursor=%d, want 5", got)
	}
}

func TestBuffer_MoveLine_HomeEnd(t *testing.T) {
	b := New("hello", Options{})
	b.SetCursor(3)

	b.Move(Move{Unit: MoveLine, Dir: DirHome})
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}
	b.Move(Move{Unit: MoveLine, Dir: DirEnd})
	if got := b.Cursor(); got != 5 {
		t.Fatalf("cursor=%d, want 5", got)
	}
}

func TestBuffer_Move_DoesNotConsultDelegate(t *testing.T) {
	b := New("ab", Options{})
	d := &recordingDelegate{}
	b.SetDelegate(d)

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if len(d.proposals) != 0 {
		t.Fatalf("move consulted the delegate")
	}
}
