package cmd

import (
	"strings"

	"wall/cli/internal/backend"
	clierrors "wall/cli/internal/errors"
	"wall/cli/internal/terminal"
	"wall/cli/internal/view"

	"github.com/spf13/cobra"
)

var (
	forgotEmail string
	resetToken  string
)

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Reset a forgotten password",
}

var passwordForgotCmd = &cobra.Command{
	Use:   "forgot",
	Short: "E-mail yourself a password reset token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.TrimSpace(forgotEmail)
		if email == "" {
			var err error
			if email, err = terminal.Stdio().ReadLine("E-mail: "); err != nil {
				return clierrors.Wrap(clierrors.InvalidInput, "an e-mail address is required", err)
			}
		}
		if _, _, err := runQuery(cmd, screen{action: "request a password reset", spinner: "Requesting reset"},
			app.be.ForgotPassword, backend.ForgotPasswordRequest{Email: email}); err != nil {
			return err
		}
		view.NewRenderer(cmd.OutOrStdout()).Success("Check your inbox for the reset token, then run 'wall password reset --token <token>'")
		return nil
	},
}

var passwordResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Set a new password with a reset token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt := terminal.Stdio()
		token := strings.TrimSpace(resetToken)
		if token == "" {
			var err error
			if token, err = prompt.ReadLine("Reset token: "); err != nil {
				return clierrors.Wrap(clierrors.InvalidInput, "a reset token is required", err)
			}
		}
		pw, err := readNewPassword(prompt)
		if err != nil {
			return err
		}
		if _, _, err := runQuery(cmd, screen{action: "reset the password", spinner: "Resetting password"},
			app.be.ResetPassword, backend.ResetPasswordRequest{Token: token, Password: pw}); err != nil {
			return err
		}
		view.NewRenderer(cmd.OutOrStdout()).Success("Password changed. Run 'wall login' with the new password.")
		return nil
	},
}

func init() {
	passwordForgotCmd.Flags().StringVar(&forgotEmail, "email", "", "Account e-mail address (prompted for when omitted)")
	passwordResetCmd.Flags().StringVar(&resetToken, "token", "", "Reset token from the e-mail (prompted for when omitted)")
	passwordCmd.AddCommand(passwordForgotCmd, passwordResetCmd)
	rootCmd.AddCommand(passwordCmd)
}
