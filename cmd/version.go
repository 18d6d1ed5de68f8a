// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Version holds the CLI version information.
	// This value is typically set at build time using -ldflags.
	Version = "0.0.0-dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show CLI version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout())
	},
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "wall %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
	if app.cfg.APIBaseURL != "" {
		fmt.Fprintf(w, "api  %s\n", app.cfg.APIBaseURL)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
