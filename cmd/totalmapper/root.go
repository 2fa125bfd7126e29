// Command totalmapper is the CLI front-end: argument parsing, sub-command
// dispatch, and wiring of the core engine/compiler/enumerator/loop/
// supervisor packages into a runnable program. None of this is part of
// the core's correctness contract; it is the "external collaborator"
// spec.md assumes.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/quillaja/totalmapper/internal/defaultlayouts"
	"github.com/quillaja/totalmapper/internal/layout"
	"github.com/quillaja/totalmapper/internal/logging"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "totalmapper",
		Short: "Remap keyboard input devices on Linux",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logging.SetLevel(zerolog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newRemapCmd(),
		newListKeyboardsCmd(),
		newListDefaultLayoutsCmd(),
		newPrintDefaultLayoutCmd(),
		newMonitorCmd(),
		newMonitorRawCmd(),
		newMonitorTabletModeCmd(),
		newAddSystemdServiceCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadLayout resolves a layout from either a file path or the name of a
// built-in default and parses it. It does not compile the layout: compiling
// the result, and reporting any compile error, is left to the caller.
func loadLayout(layoutFile, defaultLayout string) (layout.Layout, error) {
	var text string
	switch {
	case layoutFile != "":
		data, err := os.ReadFile(layoutFile)
		if err != nil {
			return layout.Layout{}, fmt.Errorf("reading layout file %s: %w", layoutFile, err)
		}
		text = string(data)
	case defaultLayout != "":
		t, err := defaultlayouts.Load(defaultLayout)
		if err != nil {
			return layout.Layout{}, err
		}
		text = t
	default:
		return layout.Layout{}, fmt.Errorf("one of --layout-file or --default-layout is required")
	}

	l, err := layout.ParseLayout([]byte(text))
	if err != nil {
		return layout.Layout{}, fmt.Errorf("parsing layout: %w", err)
	}
	return l, nil
}
