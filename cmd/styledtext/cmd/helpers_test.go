package cmd

import (
	"testing"

	"github.com/go-drift/styledtext/cmd/styledtext/internal/config"
	"github.com/go-drift/styledtext/pkg/style"
)

func TestParseWidths(t *testing.T) {
	widths, err := parseWidths("100, 50,25")
	if err != nil {
		t.Fatalf("parseWidths returned error: %v", err)
	}
	if len(widths) != 3 || widths[0] != 100 || widths[2] != 25 {
		t.Errorf("widths = %v, want [100 50 25]", widths)
	}
	if _, err := parseWidths("100,abc"); err == nil {
		t.Errorf("expected an error for a non-numeric width")
	}
	if _, err := parseWidths("-5"); err == nil {
		t.Errorf("expected an error for a negative width")
	}
}

func TestBuildFixtureTree_AppliesRootAttributes(t *testing.T) {
	lines := 2
	lineHeight := 20.0
	f := &config.Fixture{
		Text:          "Hello",
		NumberOfLines: &lines,
		LineHeight:    &lineHeight,
	}

	root, err := buildFixtureTree(f)
	if err != nil {
		t.Fatalf("buildFixtureTree returned error: %v", err)
	}
	if body, _ := root.Text(); body != "Hello" {
		t.Errorf("text = %q, want Hello", body)
	}
	if n, ok := root.NumberOfLines(); !ok || n != 2 {
		t.Errorf("numberOfLines = %d,%v, want 2", n, ok)
	}
	if lh, ok := root.LineHeightSP(); !ok || lh != 20 {
		t.Errorf("lineHeight = %v,%v, want 20", lh, ok)
	}
}

func TestBuildFixtureTree_PatchesByTag(t *testing.T) {
	f := &config.Fixture{
		Markup: "[b]Hello[/b]",
		Props: []config.PropPatch{
			{Tag: 2, Set: map[string]any{"color": "#ff0000"}},
		},
	}

	root, err := buildFixtureTree(f)
	if err != nil {
		t.Fatalf("buildFixtureTree returned error: %v", err)
	}
	node := findByTag(root, 2)
	if node == nil {
		t.Fatalf("tag 2 missing from the parsed tree")
	}
	if c, ok := node.Color(); !ok || c != style.ColorRed {
		t.Errorf("patched color = %v,%v, want red", c, ok)
	}

	f.Props[0].Tag = 99
	if _, err := buildFixtureTree(f); err == nil {
		t.Errorf("expected an error for a patch aimed at a missing tag")
	}
}

func TestPickShaper(t *testing.T) {
	if _, err := pickShaper("fixed"); err != nil {
		t.Errorf("fixed shaper: %v", err)
	}
	if _, err := pickShaper("quartz"); err == nil {
		t.Errorf("expected an error for an unknown shaper")
	}
}
