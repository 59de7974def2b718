package cmd

import (
	"fmt"

	"github.com/go-drift/styledtext/pkg/text"
)

func init() {
	RegisterCommand(&Command{
		Name:  "flatten",
		Short: "Dump a fixture's flattened buffer and spans",
		Long: `Flatten a styled text fixture and dump the result.

Prints the flattened text and every committed span in commit order.
Later spans win over earlier ones where ranges of the same kind
overlap, so the list reads bottom-up when two spans cover one offset.

Flags:
  --at OFFSET[,OFFSET...]   Also resolve the effective style at byte offsets`,
		Usage: "styledtext flatten <fixture> [--at OFFSET[,OFFSET...]]",
		Run:   runFlatten,
	})
}

func runFlatten(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("fixture path is required\n\nUsage: styledtext flatten <fixture>")
	}

	var offsets []int
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--at":
			if i+1 >= len(args) {
				return fmt.Errorf("--at requires offsets")
			}
			parsed, err := parseOffsets(args[i+1])
			if err != nil {
				return err
			}
			offsets = parsed
			i++
		default:
			return fmt.Errorf("unknown flag %q", args[i])
		}
	}

	env, err := loadFixtureEnv(args[0])
	if err != nil {
		return err
	}
	spanned, err := text.Flatten(env.root)
	if err != nil {
		return err
	}

	fmt.Printf("Text: %q (%d bytes)\n", spanned.Text, len(spanned.Text))
	fmt.Println()
	fmt.Println("Spans:")
	if len(spanned.Spans) == 0 {
		fmt.Println("  (none)")
	}
	for _, s := range spanned.Spans {
		fmt.Printf("  [%d,%d) %v\n", s.Start, s.End, s.Attr)
	}

	for _, offset := range offsets {
		fmt.Println()
		printResolved(spanned, offset)
	}
	return nil
}

func printResolved(spanned *text.Spanned, offset int) {
	r := spanned.StyleAt(offset)
	fmt.Printf("At byte %d:\n", offset)
	if r.HasForeground {
		fmt.Printf("  color       %s\n", r.Foreground)
	}
	if r.HasBackground {
		fmt.Printf("  background  %s\n", r.Background)
	}
	if r.HasSize {
		fmt.Printf("  size        %dpx\n", r.SizePx)
	}
	if r.HasFont {
		fmt.Printf("  font        %v\n", r.Font)
	}
	if r.HasTag {
		fmt.Printf("  tag         %d\n", r.Tag)
	}
	if !r.HasForeground && !r.HasBackground && !r.HasSize && !r.HasFont && !r.HasTag {
		fmt.Println("  (no spans cover this offset)")
	}
}
