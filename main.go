package main

import (
	"fmt"
	"os"

	"sicily/cmd"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	if err := cmd.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
