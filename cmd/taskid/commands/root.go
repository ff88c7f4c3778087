// Package commands implements the CLI commands for taskid.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/taskid/internal/app"
	"go.trai.ch/taskid/internal/build"
)

// CLI represents the command line interface for taskid.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "taskid",
		Short:         "Encode, parse and resolve canonical task ids",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.PersistentFlags().StringP("catalog", "c", app.DefaultCatalogPath, "Path to the task catalog file")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		path, err := cmd.Flags().GetString("catalog")
		if err != nil {
			return err
		}
		a.WithCatalogPath(path)
		return nil
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newEncodeCmd())
	rootCmd.AddCommand(c.newParseCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newTasksCmd())
	rootCmd.AddCommand(c.newFlattenCmd())
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
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
