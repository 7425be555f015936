package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "mutspace.dev/pkg/mutspace/internal/model"
)

var checkStructureFlag string
var checkModelFlag int

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <mutation>...",
		Short: "Check mutation direction against a structure",
		Long: `Compare each mutation with the residue actually present in the structure.
The mutation is forward when the structure carries the declared wild type
and reversed when it carries the declared mutant; anything else is an
inconsistency and fails. Only the first point of a multi-point mutation is
checked.

` + notationHelp,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				mutation := m.NewMutationFromString(arg)

				reversed, err := checker.IsMutationReversed(mutation, m.Path(checkStructureFlag), checkModelFlag)
				if err != nil {
					return err
				}

				direction := "forward"
				if reversed {
					direction = "reversed"
				}

				cmd.Printf("%s\t%s\n", mutation.String(), direction)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&checkStructureFlag, "structure", "s", "", "PDB structure file")
	cmd.Flags().IntVar(&checkModelFlag, modelFlagName, viper.GetInt(modelConfigKey), "zero-based model index in the structure file")
	cobra.CheckErr(cmd.MarkFlagRequired("structure"))

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
