package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutspace.dev/pkg/mutspace/internal/domain"
	m "mutspace.dev/pkg/mutspace/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "View a previously saved enumeration",
		Long: `Load the mutation lists written by 'enum --save' from the output directory
and display them, paging interactively on a terminal.`,
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			outputPath := m.Path(viper.GetString(outputFlagName))
			return workflow.View(context.Background(), domain.ViewArgs{Output: outputPath})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
