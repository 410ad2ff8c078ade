package main

import (
	"os"

	"github.com/RajeshShahu1/walmart-retail-data-pipeline/cmd/retail/commands"
)

// main is the entry point for the retail pipeline CLI.
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
