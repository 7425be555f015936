package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "mutspace.dev/pkg/mutspace/internal/model"
)

var residueStructureFlag string
var residueModelFlag int

// residueCmd represents the residue command.
var residueCmd = newResidueCmd()

func newResidueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "residue <key>...",
		Short: "Verify residue identities in a structure",
		Long: `Check whether the residues named by position keys are present in the
structure. A key has the form <residue><chain><position>, e.g. YC17 asserts
a tyrosine at position 17 of chain C. Prints "ok" or "mismatch" per key.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if len(arg) < 3 {
					return fmt.Errorf("invalid position key %q, expected e.g. YC17", arg)
				}

				// Reuse the point parser by appending a placeholder
				// mutant byte to the key.
				point, err := m.ParsePoint(arg + "X")
				if err != nil {
					return fmt.Errorf("invalid position key %q: %w", arg, err)
				}

				match, err := checker.IsResidueWildType(
					m.Path(residueStructureFlag),
					point.Chain, point.Position, point.WildType,
					residueModelFlag,
				)
				if err != nil {
					return err
				}

				verdict := "ok"
				if !match {
					verdict = "mismatch"
				}

				cmd.Printf("%s\t%s\n", arg, verdict)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&residueStructureFlag, "structure", "s", "", "PDB structure file")
	cmd.Flags().IntVar(&residueModelFlag, modelFlagName, viper.GetInt(modelConfigKey), "zero-based model index in the structure file")
	cobra.CheckErr(cmd.MarkFlagRequired("structure"))

	return cmd
}

func init() {
	rootCmd.AddCommand(residueCmd)
}
