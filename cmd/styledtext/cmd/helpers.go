package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-drift/styledtext/cmd/styledtext/internal/config"
	"github.com/go-drift/styledtext/pkg/markup"
	"github.com/go-drift/styledtext/pkg/shaping"
	"github.com/go-drift/styledtext/pkg/style"
	"github.com/go-drift/styledtext/pkg/text"
)

// fixtureEnv is a loaded fixture tree plus the optional defaults file
// sitting next to it.
type fixtureEnv struct {
	root     *text.Node
	fixture  *config.Fixture
	defaults *config.Config
}

// loadFixtureEnv builds a text tree from a fixture path: yaml documents
// load through internal/config, anything else parses as raw markup.
func loadFixtureEnv(path string) (*fixtureEnv, error) {
	defaults, err := config.LoadOptional(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	// The --scale flag wins over the defaults file.
	if defaults.Scale > 0 && style.FontScale() == 1 {
		style.SetFontScale(defaults.Scale)
	}

	env := &fixtureEnv{defaults: defaults}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		fixture, err := config.LoadFixture(path)
		if err != nil {
			return nil, err
		}
		root, err := buildFixtureTree(fixture)
		if err != nil {
			return nil, err
		}
		env.fixture = fixture
		env.root = root
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read markup: %w", err)
		}
		root, err := markup.ParseString(string(data))
		if err != nil {
			return nil, err
		}
		env.fixture = &config.Fixture{}
		env.root = root
	}
	return env, nil
}

func buildFixtureTree(fixture *config.Fixture) (*text.Node, error) {
	var root *text.Node
	if fixture.Markup != "" {
		parsed, err := markup.ParseString(fixture.Markup)
		if err != nil {
			return nil, err
		}
		root = parsed
	} else {
		root = text.NewNode(1)
		root.SetText(fixture.Text)
	}

	if fixture.NumberOfLines != nil {
		root.SetNumberOfLines(*fixture.NumberOfLines)
	}
	if fixture.LineHeight != nil {
		root.SetLineHeightSP(*fixture.LineHeight)
	}
	if fixture.FontSize != nil {
		root.SetFontSizeSP(*fixture.FontSize)
	}

	for _, patch := range fixture.Props {
		node := findByTag(root, patch.Tag)
		if node == nil {
			return nil, fmt.Errorf("fixture patches tag %d, which is not in the tree", patch.Tag)
		}
		if err := node.UpdateProps(text.Props(patch.Set)); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// shaperName resolves the backend name: flag over fixture over the
// defaults file.
func (e *fixtureEnv) shaperName(flag string) string {
	switch {
	case flag != "":
		return flag
	case e.fixture.Shaper != "":
		return e.fixture.Shaper
	default:
		return e.defaults.Shaper
	}
}

// widths resolves the measure widths the same way.
func (e *fixtureEnv) widths(flag []float64) []float64 {
	switch {
	case len(flag) > 0:
		return flag
	case len(e.fixture.Widths) > 0:
		return e.fixture.Widths
	default:
		return e.defaults.Widths
	}
}

// findByTag walks the tree for the text node with the given tag.
func findByTag(node *text.Node, tag int) *text.Node {
	if node.Tag() == tag {
		return node
	}
	for i := 0; i < node.ChildCount(); i++ {
		child, ok := node.ChildAt(i).(*text.Node)
		if !ok {
			continue
		}
		if found := findByTag(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// pickShaper maps a backend name to a shaping backend. The canvas
// backend measures with the bundled Go font and needs the canvastext
// build tag.
func pickShaper(name string) (shaping.Shaper, error) {
	switch name {
	case "", "gofont":
		return shaping.DefaultShaperErr()
	case "fixed":
		return shaping.NewFixedShaper(), nil
	case "canvas":
		return shaping.NewCanvasShaper("go", goregular.TTF)
	default:
		return nil, fmt.Errorf("unknown shaper %q (use gofont, fixed, or canvas)", name)
	}
}

// parseWidths splits a comma-separated width list.
func parseWidths(value string) ([]float64, error) {
	parts := strings.Split(value, ",")
	widths := make([]float64, 0, len(parts))
	for _, part := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || w <= 0 {
			return nil, fmt.Errorf("--width needs positive numbers, got %q", part)
		}
		widths = append(widths, w)
	}
	return widths, nil
}

// parseOffsets splits a comma-separated byte offset list.
func parseOffsets(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	offsets := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 0 {
			return nil, fmt.Errorf("--at needs non-negative byte offsets, got %q", part)
		}
		offsets = append(offsets, v)
	}
	return offsets, nil
}

func formatWidth(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
