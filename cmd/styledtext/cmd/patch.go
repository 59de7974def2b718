package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-drift/styledtext/pkg/layout"
	"github.com/go-drift/styledtext/pkg/spannable"
	"github.com/go-drift/styledtext/pkg/text"
)

func init() {
	RegisterCommand(&Command{
		Name:  "patch",
		Short: "Apply a JSON prop diff and show what changes",
		Long: `Patch a node in a fixture with a JSON property diff.

Reads a props JSON object (keys absent from the object stay untouched,
explicit nulls clear), applies it to the node selected by --tag, then
re-flattens and shows the buffer, spans, and measurements before and
after.

Flags:
  --tag N            Tag of the node to patch (default: the root)
  --width W          Width to measure at (default: unconstrained)
  --shaper NAME      Shaping backend: gofont, fixed, or canvas`,
		Usage: "styledtext patch <fixture> <props.json> [--tag N] [--width W] [--shaper NAME]",
		Run:   runPatch,
	})
}

func runPatch(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("fixture and props paths are required\n\nUsage: styledtext patch <fixture> <props.json>")
	}
	fixturePath, propsPath := args[0], args[1]

	tag := 0
	width := layout.Undefined
	mode := layout.ModeUndefined
	shaperName := ""
	for i := 2; i < len(args); i++ {
		switch args[i] {
		case "--tag":
			if i+1 >= len(args) {
				return fmt.Errorf("--tag requires a number")
			}
			v, err := strconv.Atoi(args[i+1])
			if err != nil || v <= 0 {
				return fmt.Errorf("--tag needs a positive integer, got %q", args[i+1])
			}
			tag = v
			i++
		case "--width":
			if i+1 >= len(args) {
				return fmt.Errorf("--width requires a value")
			}
			v, err := strconv.ParseFloat(args[i+1], 64)
			if err != nil || v <= 0 {
				return fmt.Errorf("--width needs a positive number, got %q", args[i+1])
			}
			width = v
			mode = layout.ModeAtMost
			i++
		case "--shaper":
			if i+1 >= len(args) {
				return fmt.Errorf("--shaper requires a name")
			}
			shaperName = args[i+1]
			i++
		default:
			return fmt.Errorf("unknown flag %q", args[i])
		}
	}

	env, err := loadFixtureEnv(fixturePath)
	if err != nil {
		return err
	}
	shaper, err := pickShaper(env.shaperName(shaperName))
	if err != nil {
		return err
	}
	root := env.root
	root.SetShaper(shaper)

	data, err := os.ReadFile(propsPath)
	if err != nil {
		return fmt.Errorf("failed to read props: %w", err)
	}
	props, err := text.PropsFromJSON(data)
	if err != nil {
		return err
	}

	target := root
	if tag != 0 {
		target = findByTag(root, tag)
		if target == nil {
			return fmt.Errorf("no node with tag %d in the tree", tag)
		}
	}

	if err := root.PrepareForLayout(); err != nil {
		return err
	}
	before := root.Prepared()
	beforeSize, err := root.Measure(width, mode)
	if err != nil {
		return err
	}
	root.MarkUpdateSeen()

	if err := target.UpdateProps(props); err != nil {
		return err
	}
	if !root.Updated() {
		fmt.Println("Props made no effective change.")
		return nil
	}

	if err := root.PrepareForLayout(); err != nil {
		return err
	}
	after := root.Prepared()
	afterSize, err := root.Measure(width, mode)
	if err != nil {
		return err
	}

	fmt.Printf("Patched node %d\n", target.Tag())
	fmt.Printf("Before: %q\n", before.Text)
	fmt.Printf("After:  %q\n", after.Text)
	fmt.Println()

	fmt.Println("Spans after patch (* = changed):")
	if len(after.Spans) == 0 {
		fmt.Println("  (none)")
	}
	for _, s := range after.Spans {
		marker := " "
		if !containsSpan(before.Spans, s) {
			marker = "*"
		}
		fmt.Printf(" %s[%d,%d) %v\n", marker, s.Start, s.End, s.Attr)
	}
	fmt.Println()

	fmt.Printf("Measured: %g x %g (%d lines) -> %g x %g (%d lines)\n",
		beforeSize.Width, beforeSize.Height, beforeSize.LineCount,
		afterSize.Width, afterSize.Height, afterSize.LineCount)

	queue := text.NewUpdateQueue()
	root.CollectUpdates(queue)
	for _, update := range queue.Drain() {
		fmt.Printf("Queued update for tag %d (%d bytes)\n", update.Tag, len(update.Text.Text))
	}
	return nil
}

func containsSpan(spans []spannable.Span, want spannable.Span) bool {
	for _, s := range spans {
		if s == want {
			return true
		}
	}
	return false
}
