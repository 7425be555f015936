package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	m "mutspace.dev/pkg/mutspace/internal/model"
)

var renameMapFlag []string

// renameCmd represents the rename command.
var renameCmd = newRenameCmd()

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <mutation>...",
		Short: "Rename mutation chains",
		Long: `Replace chain ids in mutations using one or more OLD=NEW mappings, e.g.
'rename --map C=A YC17T' prints YA17T. Every chain id appearing in a
mutation must have a mapping entry.

` + notationHelp,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mapping, err := parseChainMap(renameMapFlag)
			if err != nil {
				return err
			}

			for _, arg := range args {
				renamed, err := m.NewMutationFromString(arg).RenameChains(mapping)
				if err != nil {
					return err
				}

				cmd.Println(renamed.String())
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&renameMapFlag, "map", "m", nil, "chain rename as OLD=NEW (can be repeated)")
	cobra.CheckErr(cmd.MarkFlagRequired("map"))

	return cmd
}

func parseChainMap(pairs []string) (map[byte]byte, error) {
	mapping := make(map[byte]byte, len(pairs))

	for _, pair := range pairs {
		if len(pair) != 3 || pair[1] != '=' {
			return nil, fmt.Errorf("invalid chain mapping %q, expected OLD=NEW (e.g. C=A)", pair)
		}

		mapping[pair[0]] = pair[2]
	}

	return mapping, nil
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
