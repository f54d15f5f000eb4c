package main

import (
	"fmt"
	"runtime"
)

var (
	appName        = "zki"
	version string = "v0.1"
	commit  string = "dev"
)

func printVersion() {
	fmt.Printf("%s, version %s (%s)\n", appName, version, commit)
	fmt.Printf("Go version: %s\n", runtime.Version())
}
