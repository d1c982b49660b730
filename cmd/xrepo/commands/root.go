// Package commands implements the CLI commands for the xrepo tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/xrepo/internal/app"
	"go.trai.ch/xrepo/internal/build"
	"go.trai.ch/xrepo/internal/core/domain"
)

// CLI represents the command line interface for xrepo.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	dir      string
	logLevel string
}

// Application represents the application logic interface.
type Application interface {
	Configure(overrides domain.Settings) (domain.Settings, error)
	Pin(kind domain.PinKind, name string) (domain.Pin, error)
	Unpin(kind domain.PinKind, name string) (*domain.Pin, error)
	UnpinAll() ([]domain.Pin, error)
	ListPins(kinds ...domain.PinKind) ([]domain.Pin, error)
	RegisterPackage(packageID, version, packagePath, projectPath string) (*domain.PackageRegistration, error)
	ListPackages(ctx context.Context) ([]*domain.PackageRegistration, error)
	Where(packageID string) (app.Location, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "xrepo",
		Short:         "Resolve packages and assemblies to local builds across repositories",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			_, err := c.app.Configure(domain.Settings{Root: c.dir, LogLevel: c.logLevel})
			return err
		},
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

	rootCmd.PersistentFlags().StringVarP(&c.dir, "dir", "d", "",
		"Managed directory holding the registries (overrides $XREPO_DIR)")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "",
		"Minimum log level: debug, info, warn or error")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newPinCmd())
	rootCmd.AddCommand(c.newUnpinCmd())
	rootCmd.AddCommand(c.newPinsCmd())
	rootCmd.AddCommand(c.newRegisterCmd())
	rootCmd.AddCommand(c.newPackagesCmd())
	rootCmd.AddCommand(c.newWhereCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
