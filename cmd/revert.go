package cmd

import (
	"github.com/spf13/cobra"

	m "mutspace.dev/pkg/mutspace/internal/model"
)

// revertCmd represents the revert command.
var revertCmd = newRevertCmd()

func newRevertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revert <mutation>...",
		Short: "Reverse mutations",
		Long: `Swap the wild-type and mutant residues of every point mutation, turning a
forward mutation into its reverse: YC17T becomes TC17Y.

` + notationHelp,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, arg := range args {
				cmd.Println(m.NewMutationFromString(arg).Revert().String())
			}
		},
	}
}

func init() {
	rootCmd.AddCommand(revertCmd)
}
