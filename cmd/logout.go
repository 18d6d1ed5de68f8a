// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"wall/cli/internal/view"

	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command for clearing the stored session.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored session",
	Long: `The logout command removes the session (user id and access token) from the
OS keyring. The wall API has no server-side logout; the token simply stops
being sent.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := authService()
		if err != nil {
			return err
		}
		if err := svc.Logout(cmd.Context()); err != nil {
			return err
		}
		view.NewRenderer(cmd.OutOrStdout()).Success("Session removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
