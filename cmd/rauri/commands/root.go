// Package commands implements the CLI commands for rauri.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rauri/internal/app"
	"go.trai.ch/rauri/internal/build"
)

// skipSetup marks commands that run without a configured download directory.
const skipSetup = "rauri/skip-setup"

// CLI represents the command line interface for rauri.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	SetVerbose(verbose bool)
	Setup(ctx context.Context) error
	Install(ctx context.Context, target string) error
	Update(ctx context.Context) error
	Upgrade(ctx context.Context) error
	Remove(ctx context.Context, name string, opts app.RemoveOptions) error
	List(ctx context.Context, opts app.ListOptions) error
	Search(ctx context.Context, query string) error
	Clean(ctx context.Context) error
	SetPath(ctx context.Context, path string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rauri",
		Short:         "An AUR helper that keeps track of what it builds",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().Bool("verbose", false, "Print debug output")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.prepare

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newUpgradeCmd())
	rootCmd.AddCommand(c.newRemoveCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newSearchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newSetPathCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// prepare applies global flags and runs first-time setup before any command
// that needs the download directory.
func (c *CLI) prepare(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	c.app.SetVerbose(verbose)

	if cmd.Annotations[skipSetup] == "true" || cmd.Name() == "help" {
		return nil
	}
	return c.app.Setup(cmd.Context())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
