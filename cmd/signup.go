package cmd

import (
	"fmt"
	"strings"

	"wall/cli/internal/backend"
	clierrors "wall/cli/internal/errors"
	"wall/cli/internal/terminal"
	"wall/cli/internal/view"

	"github.com/spf13/cobra"
)

var signupReq backend.SignUpRequest

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a wall account",
	Long: `The signup command creates an account. The password is asked for twice with
hidden input. Run 'wall login' afterwards to start a session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := signupReq
		prompt := terminal.Stdio()
		var err error
		if strings.TrimSpace(req.Username) == "" {
			if req.Username, err = prompt.ReadLine("Username: "); err != nil {
				return clierrors.Wrap(clierrors.InvalidInput, "a username is required", err)
			}
		}
		if strings.TrimSpace(req.Email) == "" {
			if req.Email, err = prompt.ReadLine("E-mail: "); err != nil {
				return clierrors.Wrap(clierrors.InvalidInput, "an e-mail address is required", err)
			}
		}
		if req.Password, err = readNewPassword(prompt); err != nil {
			return err
		}

		res, _, err := runQuery(cmd, screen{action: "sign up", spinner: "Creating account"},
			app.be.SignUp, req)
		if err != nil {
			return err
		}
		view.NewRenderer(cmd.OutOrStdout()).Success(fmt.Sprintf("Account %s created. Run 'wall login' to start.", res.Data.Username))
		return nil
	},
}

// readNewPassword asks for a password twice and checks both entries match.
func readNewPassword(prompt *terminal.Prompter) (string, error) {
	pw, err := prompt.ReadSecret("Password: ")
	if err != nil {
		return "", clierrors.Wrap(clierrors.InvalidInput, "a password is required", err)
	}
	again, err := prompt.ReadSecret("Repeat password: ")
	if err != nil {
		return "", clierrors.Wrap(clierrors.InvalidInput, "the password must be repeated", err)
	}
	if pw != again {
		return "", clierrors.New(clierrors.InvalidInput, "passwords do not match")
	}
	return pw, nil
}

func init() {
	signupCmd.Flags().StringVarP(&signupReq.Username, "username", "u", "", "Username (prompted for when omitted)")
	signupCmd.Flags().StringVar(&signupReq.Email, "email", "", "E-mail address (prompted for when omitted)")
	signupCmd.Flags().StringVar(&signupReq.FirstName, "first-name", "", "First name")
	signupCmd.Flags().StringVar(&signupReq.LastName, "last-name", "", "Last name")
	rootCmd.AddCommand(signupCmd)
}
