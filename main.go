package main

import (
	"fmt"

	"github.com/wy/pgsweep/sweeps"
)

// main entry point to all the sweeps
func main() {
	// rootCommand defines a command line argument parser (some arguments and a subcommand to run)
	rootCommand := sweeps.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}
