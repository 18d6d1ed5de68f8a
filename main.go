// Package main is the entry point for the wall CLI application.
package main

import (
	"wall/cli/cmd"
)

// main is the entry point for the wall CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
