package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutspace.dev/pkg/mutspace/internal/domain"
	m "mutspace.dev/pkg/mutspace/internal/model"
)

var enumSource sourceFlags
var enumDegreeFlag int
var enumLimitFlag int
var enumChunkSizeFlag int
var enumSaveFlag bool

// enumCmd represents the enum command.
var enumCmd = newEnumCmd()

func newEnumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enum",
		Short: "Enumerate the mutations of a space",
		Long: `Generate the mutation strings of a space. With --degree only combinations
mutating exactly that many positions are produced; otherwise the full space
is enumerated (every combination with at least one mutated position). Output
goes to the terminal, or to chunked files under --output with --save.

` + sourceHelp,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := enumSource.toArgs()
			if err != nil {
				return err
			}

			runArgs := domain.EnumerateRunArgs{
				SourceArgs: args,
				Limit:      enumLimitFlag,
				ChunkSize:  viper.GetInt(chunkSizeConfigKey),
			}

			if cmd.Flags().Changed("degree") {
				degree := enumDegreeFlag
				runArgs.Degree = &degree
			}

			if enumSaveFlag {
				runArgs.Output = m.Path(viper.GetString(outputFlagName))
			}

			return workflow.Enumerate(context.Background(), runArgs)
		},
	}

	configureSourceFlags(cmd, &enumSource)
	cmd.Flags().IntVarP(&enumDegreeFlag, "degree", "d", 0, "generate only mutations of exactly this degree")
	cmd.Flags().IntVarP(&enumLimitFlag, "limit", "n", 0, "maximum number of mutations (reserved, not implemented)")
	cmd.Flags().BoolVar(&enumSaveFlag, "save", false, "write the enumeration to the output directory instead of printing")
	cmd.Flags().IntVar(&enumChunkSizeFlag, chunkSizeFlagName, viper.GetInt(chunkSizeConfigKey), "mutations per chunk file when saving")
	bindFlagToConfig(cmd.Flags().Lookup(chunkSizeFlagName), chunkSizeConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(enumCmd)
}
