package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quillaja/totalmapper/internal/device"
	"github.com/quillaja/totalmapper/internal/enumerate"
	"github.com/quillaja/totalmapper/internal/layout"
	"github.com/quillaja/totalmapper/internal/logging"
	"github.com/quillaja/totalmapper/internal/mapper"
	"github.com/quillaja/totalmapper/internal/remaploop"
	"github.com/quillaja/totalmapper/internal/supervisor"
)

func newRemapCmd() *cobra.Command {
	var (
		layoutFile      string
		defaultLayout   string
		devFile         string
		tabletSwitch    string
		onlyIfKeyboard  bool
		autoAttach      bool
		excludePatterns []string
	)

	cmd := &cobra.Command{
		Use:   "remap",
		Short: "Remap one device or auto-attach to every keyboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadLayout(layoutFile, defaultLayout)
			if err != nil {
				return err
			}
			compiled, err := layout.Compile(l)
			if err != nil {
				return fmt.Errorf("compiling layout: %w", err)
			}
			index, err := mapper.BuildIndex(compiled)
			if err != nil {
				return fmt.Errorf("building layout index: %w", err)
			}

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

			if devFile != "" {
				return runSingleDevice(devFile, tabletSwitch, onlyIfKeyboard, excludePatterns, index, stop)
			}
			if !autoAttach {
				return fmt.Errorf("one of --dev-file or --auto-attach is required")
			}
			return runAutoAttach(excludePatterns, index, stop)
		},
	}

	cmd.Flags().StringVar(&layoutFile, "layout-file", "", "path to a layout JSON file")
	cmd.Flags().StringVar(&defaultLayout, "default-layout", "", "name of a built-in layout")
	cmd.Flags().StringVar(&devFile, "dev-file", "", "remap a single /dev/input/eventN device")
	cmd.Flags().StringVar(&tabletSwitch, "tablet-switch-file", "", "optional tablet-mode switch device")
	cmd.Flags().BoolVar(&onlyIfKeyboard, "only-if-keyboard", false, "exit quietly if --dev-file isn't a keyboard")
	cmd.Flags().BoolVar(&autoAttach, "auto-attach", false, "watch /dev/input and remap every keyboard found")
	cmd.Flags().StringArrayVar(&excludePatterns, "exclude", nil, "glob pattern excluding matching device names (repeatable)")

	return cmd
}

// runSingleDevice implements the systemd-unit invocation shape: remap one
// named device, optionally gated on it actually classifying as a keyboard.
func runSingleDevice(devFile, tabletSwitch string, onlyIfKeyboard bool, excludePatterns []string, index *mapper.Index, stop chan os.Signal) error {
	if onlyIfKeyboard {
		keyboards, err := enumerate.List(excludePatterns)
		if err != nil {
			return fmt.Errorf("enumerating keyboards: %w", err)
		}
		found := false
		for _, kb := range keyboards {
			if kb.Path == devFile && !kb.Excluded {
				found = true
				break
			}
		}
		if !found {
			return nil
		}
	}

	l, cleanup, err := openLoop(devFile, tabletSwitch, index)
	if err != nil {
		return err
	}
	defer cleanup()

	return runLoopUntilSignal(l, stop)
}

// runAutoAttach wires the supervisor to spawn a loop per discovered
// keyboard, each running in its own goroutine.
func runAutoAttach(excludePatterns []string, index *mapper.Index, stop chan os.Signal) error {
	var sup *supervisor.Supervisor
	sup = supervisor.New(excludePatterns, func(kb enumerate.Keyboard) (func(), error) {
		l, cleanup, err := openLoop(kb.Path, "", index)
		if err != nil {
			return nil, err
		}
		workerStop := make(chan struct{})
		go func() {
			defer sup.MarkDone(kb.Path)
			defer cleanup()
			if err := l.Run(workerStop); err != nil {
				logging.Logger.Error().Err(err).Str("device", kb.Path).Msg("worker ended")
			}
		}()
		return func() { close(workerStop) }, nil
	})

	supStop := make(chan struct{})
	go func() {
		<-stop
		close(supStop)
	}()
	return sup.Run(supStop)
}

// openLoop opens the reader/writer/optional-switch triple for one device
// and wraps them in a remaploop.Loop sharing the given compiled index.
func openLoop(devFile, tabletSwitch string, index *mapper.Index) (*remaploop.Loop, func(), error) {
	reader, err := device.Open(devFile, device.WaitReleaseAndGrab, true)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", devFile, err)
	}
	writer, err := device.OpenWriter()
	if err != nil {
		reader.Close()
		return nil, nil, fmt.Errorf("opening synthetic device: %w", err)
	}

	var sw *device.SwitchReader
	if tabletSwitch != "" {
		sw, err = device.OpenSwitch(tabletSwitch)
		if err != nil {
			reader.Close()
			writer.Close()
			return nil, nil, fmt.Errorf("opening tablet switch %s: %w", tabletSwitch, err)
		}
	}

	engine := mapper.New(index)
	l := remaploop.New(devFile, reader, writer, sw, engine)
	cleanup := func() { l.Close() }
	return l, cleanup, nil
}

func runLoopUntilSignal(l *remaploop.Loop, stop chan os.Signal) error {
	done := make(chan struct{})
	runErr := make(chan error, 1)
	go func() {
		runErr <- l.Run(done)
	}()

	select {
	case <-stop:
		close(done)
		return <-runErr
	case err := <-runErr:
		return err
	}
}
