// Package main is the entry point for memberlint.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/donaldgifford/memberlint/internal/runner"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(execute())
}

func execute() int {
	code := runner.ExitOK
	opts := &runner.Options{}
	var colorMode string

	cmd := &cobra.Command{
		Use:   "memberlint [flags] [paths...]",
		Short: "Check that JavaScript class members follow the canonical order",
		Long: `memberlint checks that the members of every class in the given files
are declared in the style guide's canonical order, and prints a diff for
each class that is not. Directories are searched recursively. A path of
"-" reads one file from stdin.`,
		Version:       fmt.Sprintf("%s (%s) %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			useColor, err := resolveColor(colorMode)
			if err != nil {
				return err
			}
			opts.Paths = args
			opts.Color = useColor
			code = runner.Run(cmd.Context(), opts)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "path to config file")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress informational output")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log files as they are processed")
	flags.IntVarP(&opts.Jobs, "jobs", "j", 0, "files to lint in parallel (0 = GOMAXPROCS)")
	flags.StringVar(&colorMode, "color", "auto", "colorize diffs (auto|on|off)")
	flags.BoolVar(&opts.Canonical, "canonical", false, "print each class in canonical order instead of checking")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "memberlint: %v\n", err)
		return runner.ExitError
	}
	return code
}

func resolveColor(mode string) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stdout.Fd())), nil
	default:
		return false, fmt.Errorf("invalid --color %q (want auto, on or off)", mode)
	}
}
