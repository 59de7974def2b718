// Package cmd implements the styledtext CLI commands.
//
// The command structure follows standard Go CLI patterns with a root
// command that dispatches to subcommands (measure, flatten, patch).
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/styledtext/pkg/style"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "styledtext",
	Short: "styledtext - flatten and measure styled text trees",
	Long: `styledtext inspects styled text fixtures: it flattens node trees
into spannable buffers, dumps the committed spans, and predicts
layout sizes under width constraints.

Use "styledtext <command> --help" for more information about a command.`,
	Usage: "styledtext <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags and extract --scale
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Printf("styledtext version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--scale":
			if i+1 < len(args) {
				if err := setScale(args[i+1]); err != nil {
					return err
				}
				i++
			} else {
				return fmt.Errorf("--scale requires a number")
			}
		default:
			if strings.HasPrefix(arg, "--scale=") {
				if err := setScale(strings.TrimPrefix(arg, "--scale=")); err != nil {
					return err
				}
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func setScale(value string) error {
	scale, err := strconv.ParseFloat(value, 64)
	if err != nil || scale <= 0 {
		return fmt.Errorf("--scale needs a positive number, got %q", value)
	}
	style.SetFontScale(scale)
	return nil
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --scale RATIO        Scaled-pixel to pixel ratio (default: 1.0)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  styledtext measure hello.yaml --width 100,50")
	fmt.Println("  styledtext flatten banner.txt --at 0,6")
	fmt.Println("  styledtext patch hello.yaml diff.json --tag 3")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
