package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [goals...]",
		Short: "Build every unit up to the given lifecycle phases",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			opts, err := runOptions(cmd)
			if err != nil {
				return err
			}
			if opts.Threads, err = cmd.Flags().GetInt("threads"); err != nil {
				return err
			}
			if opts.Telemetry, err = cmd.Flags().GetString("telemetry"); err != nil {
				return err
			}
			if opts.ReportPath, err = cmd.Flags().GetString("report"); err != nil {
				return err
			}
			return c.app.Run(cmd.Context(), args, opts)
		},
	}
	cmd.Flags().IntP("threads", "T", 0, "Number of units built at once (defaults to the CPU count)")
	cmd.Flags().String("telemetry", "", "Telemetry backend: none, progrock, otel or tui")
	cmd.Flags().String("report", "", "Write a JSON build report to this path")
	return cmd
}
