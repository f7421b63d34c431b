// Package commands implements the CLI commands for the turbo build orchestrator.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/turbo/internal/app"
	"go.trai.ch/turbo/internal/build"
	"go.trai.ch/turbo/internal/core/ports"
)

// logSettings is implemented by loggers whose level and format can be switched at runtime.
type logSettings interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// CLI represents the command line interface for turbo.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
	out     io.Writer
}

// New creates a new CLI instance with the given app.
func New(a *app.App, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "turbo",
		Short:         "Builds multi-unit projects, releasing dependents as soon as artifacts are packaged",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("file", "f", "", "Project file, or the directory holding turbo.yaml")
	rootCmd.PersistentFlags().StringArrayP("define", "D", nil, "Define a property (key=value)")
	rootCmd.PersistentFlags().StringP("builder", "b", "", "Builder to use (turbo or sequential)")
	rootCmd.PersistentFlags().String("reorder-mode", "", "How plans are reordered: auto, lifecycle or plan")
	rootCmd.PersistentFlags().String("execution-mode", "", "Where units signal: hooks or inline")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Log in JSON")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
		out:     os.Stdout,
	}

	rootCmd.PersistentPreRunE = c.configureLogger

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
	c.rootCmd.SetOut(w)
	c.app.WithOutput(w)
}

func (c *CLI) configureLogger(cmd *cobra.Command, _ []string) error {
	l, ok := c.logger.(logSettings)
	if !ok {
		return nil
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	jsonLogs, err := cmd.Flags().GetBool("json-logs")
	if err != nil {
		return err
	}
	l.SetVerbose(verbose)
	l.SetJSON(jsonLogs)
	return nil
}
