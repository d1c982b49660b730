package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newWhereCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "where <package-id>",
		Short: "Show which local projects built a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := c.app.Where(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "package:     %s\n", loc.PackageID)
			_, _ = fmt.Fprintf(out, "latest:      %s (%s)\n", loc.Latest.ProjectPath, loc.Latest.PackageVersion)
			_, _ = fmt.Fprintf(out, "directory:   %s\n", loc.Latest.PackageDirectory())
			if loc.MostRecent != loc.Latest {
				_, _ = fmt.Fprintf(out, "most recent: %s (%s)\n", loc.MostRecent.ProjectPath, loc.MostRecent.PackageVersion)
			}
			return nil
		},
	}
}
