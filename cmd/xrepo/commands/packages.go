package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPackagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "packages",
		Short: "List registered packages with the project that last built them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registrations, err := c.app.ListPackages(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range registrations {
				latest, ok := r.LatestProject()
				if !ok {
					_, _ = fmt.Fprintf(out, "%s\t-\t-\n", r.PackageID)
					continue
				}
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", r.PackageID, latest.PackageVersion, latest.ProjectPath)
			}
			return nil
		},
	}
}
