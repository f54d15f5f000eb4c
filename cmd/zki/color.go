package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// printViolations writes one violation per line to standard error,
// colorizing in red only when standard error is an interactive terminal
// and the caller hasn't passed --no-color.
func printViolations(violations []string) {
	red := color.New(color.FgRed)
	colorDefault := true
	if loadedConfig != nil {
		colorDefault = loadedConfig.Color
	}
	useColor := colorDefault && !noColorFlag && term.IsTerminal(int(os.Stderr.Fd()))
	for _, v := range violations {
		if useColor {
			red.Fprintln(os.Stderr, v)
		} else {
			fmt.Fprintln(os.Stderr, v)
		}
	}
}
