package cmd

import (
	"github.com/spf13/cobra"
)

const listLongDescription = `List the known instrument layouts with their open-string tuning.

Built-in layouts can be replaced or extended with --layouts files:

  instruments:
    - name: dadgad
      strings:
        - {open: D, octave: 2, first: 1, last: 12}
        - {open: A, octave: 2, first: 1, last: 12}`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "instruments",
		Aliases: []string{"list"},
		Short:   "List instrument layouts",
		Long:    listLongDescription,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Instruments()
		},
	}

	return cmd
}
