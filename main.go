// Package main is the entry point for the podium server.
package main

import (
	"fmt"
	"os"

	"podium/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
