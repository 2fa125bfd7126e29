package main

import (
	"github.com/spf13/cobra"

	"github.com/quillaja/totalmapper/internal/systemdgen"
)

func newAddSystemdServiceCmd() *cobra.Command {
	var (
		layoutFile    string
		defaultLayout string
	)

	cmd := &cobra.Command{
		Use:   "add-systemd-service",
		Short: "Install the global layout, udev rule, and systemd template unit",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadLayout(layoutFile, defaultLayout)
			if err != nil {
				return err
			}
			return systemdgen.Install(l)
		},
	}

	cmd.Flags().StringVar(&layoutFile, "layout-file", "", "path to a layout JSON file")
	cmd.Flags().StringVar(&defaultLayout, "default-layout", "", "name of a built-in layout")

	return cmd
}
