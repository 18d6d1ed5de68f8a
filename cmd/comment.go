package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"wall/cli/internal/backend"
	clierrors "wall/cli/internal/errors"
	"wall/cli/internal/view"

	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment <post-id> <content>",
	Short: "Comment on a post",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || postID <= 0 {
			return clierrors.New(clierrors.InvalidInput, fmt.Sprintf("%q is not a post id", args[0]))
		}
		content := strings.TrimSpace(strings.Join(args[1:], " "))
		if content == "" {
			return clierrors.New(clierrors.InvalidInput, "a comment needs some content")
		}

		svc, err := authService()
		if err != nil {
			return err
		}
		s, err := svc.SessionFor()
		if err != nil {
			return err
		}

		in := backend.Authed[backend.NewComment]{Data: backend.NewComment{Post: postID, Content: content}, Token: s.Token}
		res, _, err := runQuery(cmd, screen{action: "add the comment", spinner: "Commenting"}, app.be.AddComment, in)
		if err != nil {
			return err
		}
		view.NewRenderer(cmd.OutOrStdout()).Success(fmt.Sprintf("Commented on post %d (comment id %d)", postID, res.Data.ID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commentCmd)
}
