package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/xrepo/internal/core/domain"
)

func (c *CLI) newPinsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pins [assembly|package|repo]",
		Short: "List pins",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kinds []domain.PinKind
			if len(args) == 1 {
				kind, err := domain.ParsePinKind(args[0])
				if err != nil {
					return err
				}
				kinds = append(kinds, kind)
			}

			pins, err := c.app.ListPins(kinds...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, pin := range pins {
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", pin.Kind, pin.Name, pin.Description())
			}
			return nil
		},
	}
}
