package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <package-id> <version> <package-path> <project-path>",
		Short: "Record that a local project built a package",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			registration, err := c.app.RegisterPackage(args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}
			if latest, ok := registration.LatestProject(); ok {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
					registration.PackageID, latest.PackageVersion, latest.PackagePath)
			}
			return nil
		},
	}
}
