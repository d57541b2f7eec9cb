package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/wheel/cmd/wheel/internal/term"
)

func addTUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "pick a date in the terminal",
		Long: `Open the date picker on the terminal's alternate screen. Arrow keys scroll
the focused column and switch columns, enter confirms and esc cancels. The
confirmed date is printed as YYYY-MM-DD.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := Setup(cmd)
			if err != nil {
				return err
			}
			d, err := term.Run(cfg)
			if err != nil {
				return err
			}
			if d == nil {
				logger.Info("cancelled")
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), d)
			return err
		},
	}
	topLevel.AddCommand(cmd)
}
