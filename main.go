package main

import (
	"fmt"
	"os"

	"github.com/temirov/findcommit/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the find-commit command-line application.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		if !cli.IsReported(executionError) {
			fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		}
		os.Exit(1)
	}
}
