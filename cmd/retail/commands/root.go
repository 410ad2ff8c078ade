package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "retail",
	Short: "Walmart retail data pipeline",
	Long: `Batch ETL over Walmart weekly sales.

Joins the grocery_sales warehouse table with the parquet supplement
file, cleans and filters the merged rows, aggregates mean weekly sales
per month, and writes both tables as CSV.

Examples:
  go run ./cmd/retail run
  go run ./cmd/retail validate
  go run ./cmd/retail serve`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
