package grapheme

import "testing"

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
}

func TestSlice_GraphemeSafe(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	if got, want := Slice(text, 1, 3), "e\u0301"+family; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
	if got := Slice(text, 5, 6); got != "" {
		t.Fatalf("slice past end=%q, want empty", got)
	}
}

func TestByteOffsetAndIndexAt(t *testing.T) {
	text := "$5,e\u0301"
	if got, want := ByteOffset(text, 3), 3; got != want {
		t.Fatalf("ByteOffset(3)=%d, want %d", got, want)
	}
	if got, want := ByteOffset(text, 4), len(text); got != want {
		t.Fatalf("ByteOffset(4)=%d, want %d", got, want)
	}
	if got, want := ByteOffset(text, 99), len(text); got != want {
		t.Fatalf("ByteOffset(99)=%d, want %d", got, want)
	}
	// Offset 4 is inside the accented cluster, which starts at byte 3.
	if got, want := IndexAt(text, 4), 3; got != want {
		t.Fatalf("IndexAt(4)=%d, want %d", got, want)
	}
	if got, want := IndexAt(text, len(text)), 4; got != want {
		t.Fatalf("IndexAt(end)=%d, want %d", got, want)
	}
}

func TestReplace(t *testing.T) {
	got, caret := Replace("5000", 4, 4, ".")
	if got != "5000." || caret != 5 {
		t.Fatalf("Replace append: got %q caret %d", got, caret)
	}

	got, caret = Replace("0.21", 0, 1, "")
	if got != ".21" || caret != 0 {
		t.Fatalf("Replace delete: got %q caret %d", got, caret)
	}

	got, caret = Replace("hello", 1, 4, "i")
	if got != "hio" || caret != 2 {
		t.Fatalf("Replace selection: got %q caret %d", got, caret)
	}
}

func TestReplace_CombiningMarkSnapsCaret(t *testing.T) {
	got, caret := Replace("ex", 1, 1, "\u0301")
	if got != "e\u0301x" {
		t.Fatalf("text=%q", got)
	}
	if caret != 1 {
		t.Fatalf("caret=%d, want %d", caret, 1)
	}
}

func TestReplace_ClampsIndices(t *testing.T) {
	got, caret := Replace("ab", 5, 9, "c")
	if got != "abc" || caret != 3 {
		t.Fatalf("Replace clamped: got %q caret %d", got, caret)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if !IsPunct("!") {
		t.Fatalf("exclamation should be punct")
	}
	if IsPunct("a") {
		t.Fatalf("letter should not be punct")
	}
	if !IsDigit("7") || IsDigit("x") || IsDigit("77") {
		t.Fatalf("IsDigit misclassified")
	}
}
