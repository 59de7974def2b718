package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/styledtext/pkg/layout"
	"github.com/go-drift/styledtext/pkg/style"
)

func init() {
	RegisterCommand(&Command{
		Name:  "measure",
		Short: "Measure a fixture under width constraints",
		Long: `Measure a styled text fixture.

Loads a yaml fixture or a raw markup file, flattens the tree, and
predicts its layout size at each requested width, plus once without a
constraint.

Flags:
  --width W[,W...]   Widths to measure at (default: fixture widths)
  --lines N          Limit the measured height to N lines
  --line-height SP   Explicit per-line height in scaled pixels
  --shaper NAME      Shaping backend: gofont, fixed, or canvas`,
		Usage: "styledtext measure <fixture> [--width W[,W...]] [--lines N] [--line-height SP] [--shaper NAME]",
		Run:   runMeasure,
	})
}

type measureOptions struct {
	widths        []float64
	lines         int
	hasLines      bool
	lineHeight    float64
	hasLineHeight bool
	shaper        string
}

func runMeasure(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("fixture path is required\n\nUsage: styledtext measure <fixture>")
	}
	path := args[0]

	opts := measureOptions{}
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--width":
			if i+1 >= len(args) {
				return fmt.Errorf("--width requires a value")
			}
			widths, err := parseWidths(args[i+1])
			if err != nil {
				return err
			}
			opts.widths = widths
			i++
		case "--lines":
			if i+1 >= len(args) {
				return fmt.Errorf("--lines requires a number")
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n < 0 {
				return fmt.Errorf("--lines needs a non-negative integer, got %q", args[i+1])
			}
			opts.lines = n
			opts.hasLines = true
			i++
		case "--line-height":
			if i+1 >= len(args) {
				return fmt.Errorf("--line-height requires a number")
			}
			v, err := strconv.ParseFloat(args[i+1], 64)
			if err != nil || v <= 0 {
				return fmt.Errorf("--line-height needs a positive number, got %q", args[i+1])
			}
			opts.lineHeight = v
			opts.hasLineHeight = true
			i++
		case "--shaper":
			if i+1 >= len(args) {
				return fmt.Errorf("--shaper requires a name")
			}
			opts.shaper = args[i+1]
			i++
		default:
			return fmt.Errorf("unknown flag %q", args[i])
		}
	}

	env, err := loadFixtureEnv(path)
	if err != nil {
		return err
	}
	shaper, err := pickShaper(env.shaperName(opts.shaper))
	if err != nil {
		return err
	}

	root := env.root
	root.SetShaper(shaper)
	if opts.hasLines {
		root.SetNumberOfLines(opts.lines)
	}
	if opts.hasLineHeight {
		root.SetLineHeightSP(opts.lineHeight)
	}
	if err := root.PrepareForLayout(); err != nil {
		return err
	}

	spanned := root.Prepared()
	fmt.Printf("Text: %q (%d bytes)\n", spanned.Text, len(spanned.Text))
	fmt.Printf("Scale: %g\n", style.FontScale())
	fmt.Println()

	fmt.Printf("  %-10s %-10s %-16s %s\n", "WIDTH", "MODE", "SIZE", "LINES")
	for _, width := range env.widths(opts.widths) {
		m, err := root.Measure(width, layout.ModeAtMost)
		if err != nil {
			return err
		}
		fmt.Printf("  %-10s %-10s %-16s %d\n",
			formatWidth(width), "at-most",
			fmt.Sprintf("%g x %g", m.Width, m.Height), m.LineCount)
	}
	m, err := root.Measure(layout.Undefined, layout.ModeUndefined)
	if err != nil {
		return err
	}
	fmt.Printf("  %-10s %-10s %-16s %d\n", "-", "unbounded",
		fmt.Sprintf("%g x %g", m.Width, m.Height), m.LineCount)
	return nil
}
