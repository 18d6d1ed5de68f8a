package cmd

import (
	"fmt"

	"wall/cli/internal/auth"
	"wall/cli/internal/view"

	"github.com/spf13/cobra"
)

// whoamiCmd validates the stored session with the server and shows its user.
// A session the server no longer accepts is removed.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := authService()
		if err != nil {
			return err
		}

		var verdict auth.Verdict
		withSpinner("Checking session", func() {
			verdict, err = svc.Gate().Current(cmd.Context())
		})
		if err != nil {
			return err
		}

		switch v := verdict.(type) {
		case auth.Authenticated:
			view.NewRenderer(cmd.OutOrStdout()).User(v.User)
			return nil
		case auth.Unauthenticated:
			out := cmd.OutOrStdout()
			switch v.Reason {
			case auth.NoToken:
				fmt.Fprintln(out, "🔒 You're not logged in yet!")
			case auth.RequestFailed:
				fmt.Fprintln(out, "🔒 Could not reach the server to check your session; it has been removed.")
			default:
				fmt.Fprintln(out, "🔒 Your session has expired.")
			}
			fmt.Fprintln(out, "   Run 'wall login' to get started.")
		}
		return errReported
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
