package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/xrepo/internal/core/domain"
)

func (c *CLI) newPinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pin <assembly|package|repo> <name>",
		Short: "Resolve an assembly, package or repo to local builds",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			kind, err := domain.ParsePinKind(args[0])
			if err != nil {
				return err
			}
			_, err = c.app.Pin(kind, args[1])
			return err
		},
	}
}

func (c *CLI) newUnpinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpin (<assembly|package|repo> <name> | --all)",
		Short: "Stop resolving an assembly, package or repo to local builds",
		Args: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			if all {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if all, _ := cmd.Flags().GetBool("all"); all {
				_, err := c.app.UnpinAll()
				return err
			}

			kind, err := domain.ParsePinKind(args[0])
			if err != nil {
				return err
			}
			_, err = c.app.Unpin(kind, args[1])
			return err
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Remove every pin")

	return cmd
}
