// Package cmd provides the root command and CLI setup for mutspace.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mutspace.dev/pkg/mutspace/internal/adapter"
	"mutspace.dev/pkg/mutspace/internal/controller"
	"mutspace.dev/pkg/mutspace/internal/domain"
	m "mutspace.dev/pkg/mutspace/internal/model"
)

var structureAdapter adapter.StructureAdapter
var tableAdapter adapter.TableAdapter
var mutationStore adapter.MutationStore
var spaceBuilder domain.SpaceBuilder
var checker domain.Checker
var workflow domain.Workflow
var ui controller.UI

// outputDirFlag is a root-level flag shared by commands that write files.
var outputDirFlag string

// strictFlag makes structure parsing fail on malformed records.
var strictFlag bool

// verboseFlag switches the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	structureAdapter = adapter.NewPDBAdapter(viper.GetBool(strictConfigKey))
	tableAdapter = adapter.NewFileTableAdapter()
	mutationStore = adapter.NewFileMutationStore()
	spaceBuilder = domain.NewSpaceBuilder(structureAdapter, tableAdapter)
	checker = domain.NewChecker(structureAdapter)
	workflow = domain.NewWorkflow(mutationStore, ui, spaceBuilder)
}

const notationHelp = `Point mutations use the notation <wild-type><chain><position><mutant>:
  YC17T        tyrosine at position 17 of chain C mutated to threonine
  YC17T,TA20A  a double mutation, points joined with commas`

const rootLongDescription = `Mutspace models point and multi-point protein mutations and enumerates
combinatorial mutation spaces: all single- and multi-position amino-acid
substitutions over a set of residue positions.

` + notationHelp

const sourceHelp = `The mutation space is defined either inline with repeated --position flags
(e.g. --position YC17=AG --position TA20=A) or derived from a residue
compatibility table (--table) resolved against a PDB structure (--structure).`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mutspace",
		Short: "Protein mutation-space toolkit",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(verboseFlag)

			// Rebuild the structure-dependent pieces so config and flag
			// values read at run time take effect.
			structureAdapter = adapter.NewPDBAdapter(viper.GetBool(strictConfigKey))
			spaceBuilder = domain.NewSpaceBuilder(structureAdapter, tableAdapter)
			checker = domain.NewChecker(structureAdapter)
			workflow = domain.NewWorkflow(mutationStore, ui, spaceBuilder)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for enumerated mutation lists",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&strictFlag, strictFlagName, viper.GetBool(strictConfigKey), "fail on malformed structure records instead of skipping them")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(strictFlagName), strictConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// parsePositions converts repeated KEY=CODES flag values into an ordered
// position table. The flag order fixes the slot order.
func parsePositions(pairs []string) (m.PositionTable, error) {
	table := make(m.PositionTable, 0, len(pairs))

	for _, pair := range pairs {
		key, candidates, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid position %q, expected KEY=CODES (e.g. YC17=AG)", pair)
		}

		table = append(table, m.PositionChoices{Key: key, Candidates: candidates})
	}

	return table, nil
}

// sourceFlags holds the shared space-source flag values for a command.
type sourceFlags struct {
	positions []string
	table     string
	structure string
	modelID   int
}

func configureSourceFlags(cmd *cobra.Command, flags *sourceFlags) {
	cmd.Flags().StringArrayVarP(&flags.positions, "position", "p", nil, "position and candidate codes as KEY=CODES (can be repeated)")
	cmd.Flags().StringVarP(&flags.table, "table", "t", "", "residue compatibility table file")
	cmd.Flags().StringVarP(&flags.structure, "structure", "s", "", "PDB structure file")
	cmd.Flags().IntVar(&flags.modelID, modelFlagName, viper.GetInt(modelConfigKey), "zero-based model index in the structure file")
	bindFlagToConfig(cmd.Flags().Lookup(modelFlagName), modelConfigKey)
}

func (f *sourceFlags) toArgs() (domain.SourceArgs, error) {
	positions, err := parsePositions(f.positions)
	if err != nil {
		return domain.SourceArgs{}, err
	}

	return domain.SourceArgs{
		Positions: positions,
		Table:     m.Path(f.table),
		Structure: m.Path(f.structure),
		ModelID:   f.modelID,
	}, nil
}
