package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/xrepo/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		// The version needs no managed directory.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			cmdo := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(cmdo, "xrepo version %s (commit: %s, date: %s)\n", build.Version, build.Commit, build.Date)
		},
	}
}
