package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose *bool
var strategyName *string
var preview *bool

var rootCmd = &cobra.Command{
	Use:   "boascrape [output.xlsx] [source-url]",
	Short: "boascrape extracts the US/Canada butterfly taxa listing into a spreadsheet.",
	Args:  cobra.MaximumNArgs(2),
	Run:   runScrape,
}

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging and request dumps.")
	strategyName = rootCmd.Flags().String("strategy", "anchor", `The extraction strategy: "anchor" matches taxa on anchor text, "title" matches on the title attribute.`)
	preview = rootCmd.Flags().Bool("preview", false, "Render the extracted rows as a table on stdout.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
