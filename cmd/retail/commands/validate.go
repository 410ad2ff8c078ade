package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/validate"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/pkg/config"
)

// validateCmd checks that the pipeline output files are present.
var validateCmd = &cobra.Command{
	Use:   "validate [paths...]",
	Short: "Check that output artifacts exist",
	Long: `Reports whether each given path is a regular file. Without
arguments the two configured output paths are checked.

Example:
  go run ./cmd/retail validate
  go run ./cmd/retail validate clean_data.csv agg_data.csv`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		paths = []string{cfg.Pipeline.CleanDataPath, cfg.Pipeline.AggDataPath}
	}

	missing := 0
	for _, path := range paths {
		if validate.Exists(path) {
			fmt.Printf("ok       %s\n", path)
		} else {
			fmt.Printf("missing  %s\n", path)
			missing++
		}
	}

	if missing > 0 {
		return fmt.Errorf("%d of %d artifacts missing", missing, len(paths))
	}
	return nil
}
