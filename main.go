// Package main is the entry point for the golcov CLI.
package main

import "golcov.dev/pkg/golcov/cmd"

func main() {
	cmd.Execute()
}
