package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillaja/totalmapper/internal/defaultlayouts"
	"github.com/quillaja/totalmapper/internal/enumerate"
)

func newListKeyboardsCmd() *cobra.Command {
	var excludePatterns []string
	cmd := &cobra.Command{
		Use:   "list-keyboards",
		Short: "List the keyboard devices discovered on this system",
		RunE: func(cmd *cobra.Command, args []string) error {
			keyboards, err := enumerate.List(excludePatterns)
			if err != nil {
				return err
			}
			for _, kb := range keyboards {
				status := ""
				if kb.Excluded {
					status = " (excluded)"
				}
				fmt.Printf("%s\t%s%s\n", kb.Path, kb.Name, status)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&excludePatterns, "exclude", nil, "glob pattern excluding matching device names (repeatable)")
	return cmd
}

func newListDefaultLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-default-layouts",
		Short: "List the layouts built into this binary",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range defaultlayouts.List() {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func newPrintDefaultLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print-default-layout <name>",
		Short: "Print one built-in layout's JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := defaultlayouts.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}
}
