package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/go-drift/wheel/cmd/wheel/internal/trace"
)

type traceOptions struct {
	Script  string
	Output  string
	Verbose bool
}

func addTrace(topLevel *cobra.Command) {
	o := &traceOptions{}
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "replay a gesture script against a headless wheel",
		Long: `Replay drags, flings, pointer events and index changes from a YAML script
against a wheel built from the config. Time is simulated, so the frames are
the same on every run.`,
		Example: `
wheel trace --script fling.yaml
wheel trace --config wheel.toml --script fling.yaml --output yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := Setup(cmd)
			if err != nil {
				return err
			}
			script, err := trace.Load(o.Script)
			if err != nil {
				return err
			}
			logger.Debug("replaying", "script", o.Script, "steps", len(script.Steps))

			res, err := trace.Run(cfg.NewWheel(), script)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch o.Output {
			case "table":
				if out == io.Writer(os.Stdout) {
					out = color.Output
				}
				trace.Print(out, res, o.Verbose)
				return nil
			case "yaml":
				return trace.WriteYAML(out, res)
			default:
				return fmt.Errorf("--output must be table or yaml, got %q", o.Output)
			}
		},
	}
	cmd.Flags().StringVarP(&o.Script, "script", "s", "", "gesture script (YAML)")
	cmd.Flags().StringVar(&o.Output, "output", "table", "output format: table or yaml")
	cmd.Flags().BoolVarP(&o.Verbose, "verbose", "v", false, "list every pumped frame")
	_ = cmd.MarkFlagRequired("script")

	topLevel.AddCommand(cmd)
}
