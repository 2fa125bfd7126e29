package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/quillaja/totalmapper/internal/device"
)

func newMonitorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor <dev-file>",
		Short: "Print decoded press/release events from a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := device.Open(args[0], device.NoExclusion, false)
			if err != nil {
				return err
			}
			defer r.Close()

			for {
				ev, err := r.Next()
				if err != nil {
					if errors.Is(err, device.ErrEnded) {
						return nil
					}
					return err
				}
				fmt.Println(ev)
			}
		},
	}
	return cmd
}

func newMonitorRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor-raw <dev-file>",
		Short: "Print every raw (type, code, value) kernel record from a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := device.OpenRaw(args[0])
			if err != nil {
				return err
			}
			defer r.Close()

			for {
				ev, err := r.Next()
				if err != nil {
					if errors.Is(err, device.ErrEnded) {
						return nil
					}
					return err
				}
				fmt.Printf("[%d, %d], %d, %d, %d\n", ev.Sec, ev.Usec, ev.Type, ev.Code, ev.Value)
			}
		},
	}
	return cmd
}

func newMonitorTabletModeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor-tablet-mode <dev-file>",
		Short: "Print tablet-mode switch transitions from a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := device.OpenSwitch(args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			pfd := []unix.PollFd{{Fd: int32(s.Fd()), Events: unix.POLLIN}}
			for {
				on, err := s.Next()
				if err != nil {
					if errors.Is(err, device.ErrBusy) {
						if _, pollErr := unix.Poll(pfd, -1); pollErr != nil && !errors.Is(pollErr, unix.EINTR) {
							return pollErr
						}
						continue
					}
					if errors.Is(err, device.ErrEnded) {
						return nil
					}
					return err
				}
				if on {
					fmt.Println("tablet mode: on")
				} else {
					fmt.Println("tablet mode: off")
				}
			}
		},
	}
	return cmd
}
