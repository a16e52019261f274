package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abworrall/photostrip/pkg/compose"
	"github.com/abworrall/photostrip/pkg/gallery"
)

func galleryCmd() *cobra.Command {
	var dir string

	c := &cobra.Command{
		Use:   "gallery",
		Short: "Manage saved strips",
	}
	c.PersistentFlags().StringVar(&dir, "gallery", "photostrip-gallery", "gallery directory")

	open := func() (*gallery.Gallery, error) { return gallery.Open(dir, compose.NewConfig()) }

	c.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved strips, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := open()
			if err != nil {
				return err
			}
			defer g.Close()

			strips, err := g.List()
			if err != nil {
				return err
			}
			if len(strips) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no strips saved)")
				return nil
			}
			for _, s := range strips {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", s.ID, s)
			}
			return nil
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "delete id...",
		Short: "Delete saved strips",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := open()
			if err != nil {
				return err
			}
			defer g.Close()

			for _, id := range args {
				if err := g.Delete(id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
			}
			return nil
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every saved strip",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := open()
			if err != nil {
				return err
			}
			defer g.Close()

			n, err := g.Clear()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d strips\n", n)
			return nil
		},
	})

	return c
}
