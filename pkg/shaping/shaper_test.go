package shaping

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func fixedFont() Font {
	return Font{SizePx: 14}
}

func TestFixedShaperBoring(t *testing.T) {
	s := NewFixedShaper()

	metrics, ok := s.Boring("Hello", fixedFont())
	if !ok {
		t.Fatalf("expected Hello to be boring")
	}
	if metrics.Width != 50 {
		t.Errorf("Width = %v, want 50", metrics.Width)
	}
	if metrics.LineHeight != 16 {
		t.Errorf("LineHeight = %v, want 16", metrics.LineHeight)
	}

	if _, ok := s.Boring("a\nb", fixedFont()); ok {
		t.Errorf("expected text with newline to be complex")
	}
}

func TestFixedShaperDesiredWidth(t *testing.T) {
	s := NewFixedShaper()

	if got := s.DesiredWidth("Hello", fixedFont()); got != 50 {
		t.Errorf("DesiredWidth(Hello) = %v, want 50", got)
	}
	if got := s.DesiredWidth("ab\nwide line", fixedFont()); got != 90 {
		t.Errorf("DesiredWidth = %v, want 90 from widest paragraph", got)
	}
}

func TestFixedShaperLayoutWrapsAtSpaces(t *testing.T) {
	s := NewFixedShaper()

	layout, err := s.Layout("Hello World", fixedFont(), 60)
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if layout.LineCount() != 2 {
		t.Fatalf("LineCount = %d, want 2", layout.LineCount())
	}
	if layout.Lines[0].Text != "Hello" || layout.Lines[1].Text != "World" {
		t.Errorf("lines = %q/%q, want Hello/World", layout.Lines[0].Text, layout.Lines[1].Text)
	}
	if layout.Width != 60 {
		t.Errorf("Width = %v, want the 60 constraint", layout.Width)
	}
	if layout.Height != 32 {
		t.Errorf("Height = %v, want 32", layout.Height)
	}
}

func TestFixedShaperLayoutBreaksLongWords(t *testing.T) {
	s := NewFixedShaper()

	layout, err := s.Layout("Hello", fixedFont(), 30)
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if layout.LineCount() != 2 {
		t.Fatalf("LineCount = %d, want 2", layout.LineCount())
	}
	if layout.Lines[0].Text != "Hel" || layout.Lines[1].Text != "lo" {
		t.Errorf("lines = %q/%q, want Hel/lo", layout.Lines[0].Text, layout.Lines[1].Text)
	}
}

func TestFixedShaperLayoutForcesOneClusterPerLine(t *testing.T) {
	s := NewFixedShaper()

	layout, err := s.Layout("Hello", fixedFont(), 5)
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if layout.LineCount() != 5 {
		t.Errorf("LineCount = %d, want one cluster per line", layout.LineCount())
	}
}

func TestFixedShaperLayoutKeepsGraphemesWhole(t *testing.T) {
	s := NewFixedShaper()

	// Two regional-indicator flags are two clusters, four runes.
	layout, err := s.Layout("\U0001f1e9\U0001f1ea\U0001f1e9\U0001f1ea", fixedFont(), 10)
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if layout.LineCount() != 2 {
		t.Fatalf("LineCount = %d, want 2", layout.LineCount())
	}
	if layout.Lines[0].Text != "\U0001f1e9\U0001f1ea" {
		t.Errorf("line 0 = %q, want a whole flag cluster", layout.Lines[0].Text)
	}
}

func TestFixedShaperLayoutCollapsesBreakWhitespace(t *testing.T) {
	s := NewFixedShaper()

	layout, err := s.Layout("Hello   World", fixedFont(), 60)
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if layout.LineCount() != 2 {
		t.Fatalf("LineCount = %d, want 2", layout.LineCount())
	}
	if layout.Lines[0].Text != "Hello" || layout.Lines[1].Text != "World" {
		t.Errorf("lines = %q/%q, want trimmed Hello/World", layout.Lines[0].Text, layout.Lines[1].Text)
	}
}

func TestFixedShaperLayoutUnconstrained(t *testing.T) {
	s := NewFixedShaper()

	layout, err := s.Layout("Hello World", fixedFont(), 0)
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if layout.LineCount() != 1 {
		t.Fatalf("LineCount = %d, want 1", layout.LineCount())
	}
	if layout.Width != 110 {
		t.Errorf("Width = %v, want the widest line", layout.Width)
	}
}

func TestFixedShaperLayoutSplitsParagraphs(t *testing.T) {
	s := NewFixedShaper()

	layout, err := s.Layout("a\n\nb", fixedFont(), 0)
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if layout.LineCount() != 3 {
		t.Errorf("LineCount = %d, want 3 with the empty paragraph kept", layout.LineCount())
	}
}

func TestFixedShaperLayoutEmptyText(t *testing.T) {
	s := NewFixedShaper()

	layout, err := s.Layout("", fixedFont(), 0)
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if layout.LineCount() != 1 {
		t.Errorf("LineCount = %d, want 1 for empty text", layout.LineCount())
	}
	if layout.Height != 16 {
		t.Errorf("Height = %v, want one line height", layout.Height)
	}
}

func TestLineBottom(t *testing.T) {
	s := NewFixedShaper()

	layout, err := s.Layout("Hello", fixedFont(), 10)
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if layout.LineCount() != 5 {
		t.Fatalf("LineCount = %d, want 5", layout.LineCount())
	}
	if got := layout.LineBottom(1); got != 32 {
		t.Errorf("LineBottom(1) = %v, want 32", got)
	}
	if got := layout.LineBottom(4); got != layout.Height {
		t.Errorf("LineBottom(last) = %v, want Height %v", got, layout.Height)
	}
	if got := layout.LineBottom(99); got != layout.Height {
		t.Errorf("LineBottom out of range = %v, want Height", got)
	}
	if got := layout.LineBottom(-1); got != 0 {
		t.Errorf("LineBottom(-1) = %v, want 0", got)
	}
}

func TestSingleLine(t *testing.T) {
	layout := SingleLine("Hi", Metrics{Width: 20, Ascent: 12, Descent: 4, LineHeight: 16})

	if layout.LineCount() != 1 {
		t.Fatalf("LineCount = %d, want 1", layout.LineCount())
	}
	if layout.Width != 20 || layout.Height != 16 {
		t.Errorf("size = %v x %v, want 20 x 16", layout.Width, layout.Height)
	}
	if layout.LineBottom(0) != 16 {
		t.Errorf("LineBottom(0) = %v, want 16", layout.LineBottom(0))
	}
}

func TestGoFontShaperBoring(t *testing.T) {
	s, err := NewGoFontShaper()
	if err != nil {
		t.Fatalf("NewGoFontShaper returned error: %v", err)
	}

	metrics, ok := s.Boring("Hello", Font{SizePx: 16})
	if !ok {
		t.Fatalf("expected Hello to be boring")
	}
	if metrics.Width <= 0 {
		t.Errorf("Width = %v, want > 0", metrics.Width)
	}
	if metrics.Width != float64(int(metrics.Width)) {
		t.Errorf("Width = %v, want a whole pixel", metrics.Width)
	}
	if metrics.Ascent <= 0 || metrics.LineHeight <= 0 {
		t.Errorf("metrics = %+v, want positive ascent and line height", metrics)
	}
}

func TestGoFontShaperLayoutWraps(t *testing.T) {
	s, err := NewGoFontShaper()
	if err != nil {
		t.Fatalf("NewGoFontShaper returned error: %v", err)
	}

	desired := s.DesiredWidth("Hello World", Font{SizePx: 16})
	if desired <= 0 {
		t.Fatalf("DesiredWidth = %v, want > 0", desired)
	}

	layout, err := s.Layout("Hello World", Font{SizePx: 16}, desired/2)
	if err != nil {
		t.Fatalf("Layout returned error: %v", err)
	}
	if layout.LineCount() < 2 {
		t.Errorf("LineCount = %d, want wrapping at half the desired width", layout.LineCount())
	}
}

func TestGoFontShaperRegisterFont(t *testing.T) {
	s, err := NewGoFontShaper()
	if err != nil {
		t.Fatalf("NewGoFontShaper returned error: %v", err)
	}

	if err := s.RegisterFont("", goregular.TTF); err == nil {
		t.Errorf("expected error for empty font name")
	}
	if err := s.RegisterFont("custom", goregular.TTF); err != nil {
		t.Fatalf("RegisterFont returned error: %v", err)
	}
	if _, ok := s.Boring("Hello", Font{SizePx: 16, Family: "custom"}); !ok {
		t.Errorf("expected registered family to measure")
	}
}

func TestDefaultShaperShared(t *testing.T) {
	first := DefaultShaper()
	if first == nil {
		t.Fatalf("DefaultShaper returned nil")
	}
	if second := DefaultShaper(); second != first {
		t.Errorf("DefaultShaper returned different instances")
	}
}
