package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/turbo/internal/adapters/properties" //nolint:depguard // Flags are parsed at the edge
	"go.trai.ch/turbo/internal/app"
)

// runOptions collects the flags shared by run and plan.
func runOptions(cmd *cobra.Command) (app.RunOptions, error) {
	flags := cmd.Flags()

	defines, err := flags.GetStringArray("define")
	if err != nil {
		return app.RunOptions{}, err
	}
	props, err := properties.ParseDefines(defines)
	if err != nil {
		return app.RunOptions{}, err
	}

	opts := app.RunOptions{Defines: props}
	if opts.File, err = flags.GetString("file"); err != nil {
		return app.RunOptions{}, err
	}
	if opts.Builder, err = flags.GetString("builder"); err != nil {
		return app.RunOptions{}, err
	}
	if opts.ReorderMode, err = flags.GetString("reorder-mode"); err != nil {
		return app.RunOptions{}, err
	}
	if opts.ExecutionMode, err = flags.GetString("execution-mode"); err != nil {
		return app.RunOptions{}, err
	}
	return opts, nil
}
