package commands

import (
	"fmt"

	"github.com/partscout/backend/internal/usecase"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(classifyCmd)
}

var classifyCmd = &cobra.Command{
	Use:   "classify <input>",
	Short: "Shows how an input would be interpreted without fetching anything.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := usecase.Classify(args[0])
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "kind:  %s\n", id.Kind)
		fmt.Fprintf(out, "value: %s\n", id.Value)
		if id.ExtractedSKU != "" {
			fmt.Fprintf(out, "sku:   %s\n", id.ExtractedSKU)
		}
		return nil
	},
}
