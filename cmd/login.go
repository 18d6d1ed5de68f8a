// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"wall/cli/internal/auth"
	"wall/cli/internal/backend"
	clierrors "wall/cli/internal/errors"
	"wall/cli/internal/terminal"
	"wall/cli/internal/view"

	"github.com/spf13/cobra"
)

var loginUsername string

// loginCmd exchanges a username and password for a token and stores the
// session in the OS keyring.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"signin"},
	Short:   "Log in with your username and password",
	Long: `The login command asks for your password (input is hidden), exchanges your
credentials for an access token and stores the session in the OS keyring.

If a stored session is still valid, it reports who you are logged in as instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := authService()
		if err != nil {
			return err
		}

		var verdict auth.Verdict
		withSpinner("Checking session", func() {
			verdict, err = svc.Gate().Current(cmd.Context())
		})
		if err == nil {
			if a, ok := verdict.(auth.Authenticated); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Already logged in as %s\n", a.User.Username)
				return nil
			}
		}

		prompt := terminal.Stdio()
		username := loginUsername
		if username == "" {
			if username, err = prompt.ReadLine("Username: "); err != nil {
				return clierrors.Wrap(clierrors.InvalidInput, "a username is required", err)
			}
		}
		password, err := prompt.ReadSecret("Password: ")
		if err != nil {
			return clierrors.Wrap(clierrors.InvalidInput, "a password is required", err)
		}

		res, _, err := runQuery(cmd, screen{action: "log in", spinner: "Logging in"},
			svc.Login, backend.Credentials{Username: username, Password: password})
		if err != nil {
			return err
		}
		view.NewRenderer(cmd.OutOrStdout()).Success(fmt.Sprintf("Logged in as %s (user %s)", username, res.Data.ID))
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username (prompted for when omitted)")
	rootCmd.AddCommand(loginCmd)
}
