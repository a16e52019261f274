package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abworrall/photostrip/pkg/compose"
	"github.com/abworrall/photostrip/pkg/filter"
	"github.com/abworrall/photostrip/pkg/layout"
	"github.com/abworrall/photostrip/pkg/sticker"
)

func layoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the strip layouts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, l := range layout.All() {
				fixed := ""
				if l.FixedOrientation != nil {
					fixed = fmt.Sprintf(" (always %s)", *l.FixedOrientation)
				}
				fmt.Fprintf(out, "%-8s %-14s %dx%d%s\n", l.ID, l.DisplayName, l.Rows, l.Cols, fixed)
			}
			return nil
		},
	}
}

func filtersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List the filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, id := range filter.All() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}

func themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the sticker themes, and border colors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, t := range sticker.Themes() {
				fmt.Fprintf(out, "%-8s %-12s %d stickers\n", t.ID, t.DisplayName, len(t.Placements))
			}
			fmt.Fprintln(out)
			for _, name := range compose.PaletteNames() {
				fmt.Fprintf(out, "%-8s %s\n", name, compose.BorderPalette[name])
			}
			return nil
		},
	}
}
