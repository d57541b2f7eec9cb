package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/wheel/cmd/wheel/cmd"
	"github.com/go-drift/wheel/cmd/wheel/internal/desktop"
)

// addDemo registers the windowed demo.
func addDemo(topLevel *cobra.Command) {
	c := &cobra.Command{
		Use:   "demo",
		Short: "open the date picker in a desktop window",
		Long: `Open a window hosting the year/month/day picker. Drag or scroll a column to
move it, use the arrow keys for the focused column, and press enter or OK to
confirm. The confirmed date is printed as YYYY-MM-DD.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, logger, err := cmd.Setup(c)
			if err != nil {
				return err
			}
			d, err := desktop.Run(cfg, logger)
			if err != nil {
				return err
			}
			if d == nil {
				return nil
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), d)
			return err
		},
	}
	topLevel.AddCommand(c)
}
