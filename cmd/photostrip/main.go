package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "photostrip",
		Short:        "Compose captured photos into a photo booth strip",
		SilenceUsage: true,
	}

	cmd.AddCommand(composeCmd())
	cmd.AddCommand(layoutsCmd())
	cmd.AddCommand(filtersCmd())
	cmd.AddCommand(themesCmd())
	cmd.AddCommand(galleryCmd())
	return cmd
}
