package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// sizeCmd represents the size command.
var sizeCmd = newSizeCmd()

var sizeSource sourceFlags

func newSizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size",
		Short: "Show per-degree sizes of a mutation space",
		Long: `Compute how many mutation combinations a space contains, per degree and in
total, without generating them. Run this before 'enum' to check that the
output cardinality is feasible.

` + sourceHelp,
		RunE: func(_ *cobra.Command, _ []string) error {
			args, err := sizeSource.toArgs()
			if err != nil {
				return err
			}

			return workflow.Summarize(context.Background(), args)
		},
	}

	configureSourceFlags(cmd, &sizeSource)

	return cmd
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}
