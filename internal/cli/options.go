package cli

import (
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/winematch/internal/output"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the tags you can select",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := setup()
		if err != nil {
			return err
		}
		return output.Output(outputFmt, cfg.Options)
	},
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}
