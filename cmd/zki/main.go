// Command zki is the statement toolbox CLI: a single executable exposing
// subcommands over a workspace of .zkif files.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := run(); err != nil {
		switch {
		case errors.Is(err, errExit):
			return
		case errors.Is(err, errViolations):
			os.Exit(1)
		default:
			if verboseFlag {
				fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}
	}
}

func run() error {
	if err := parseFlags(); err != nil {
		return err
	}
	return runCommand()
}
