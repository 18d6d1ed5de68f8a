// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"wall/cli/internal/backend"
	clierrors "wall/cli/internal/errors"
	"wall/cli/internal/view"

	"github.com/spf13/cobra"
)

var (
	listPage     int
	listPageSize int
	postTitle    string
)

var postsCmd = &cobra.Command{
	Use:     "posts",
	Aliases: []string{"wall"},
	Short:   "Read and write wall posts",
}

var postsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the latest posts",
	Long:    `Shows one page of the latest posts. Reading the wall does not require a login.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listPage < 0 || listPageSize < 0 {
			return clierrors.New(clierrors.InvalidInput, "--page and --page-size must not be negative")
		}
		res, st, err := runQuery(cmd, screen{action: "list posts", spinner: "Loading posts", paginate: true},
			app.be.ListPosts, backend.PageRequest{Page: listPage, PageSize: listPageSize})
		if err != nil {
			return err
		}
		view.NewRenderer(cmd.OutOrStdout()).Posts(res.Data, st.Snapshot().Pagination)
		return nil
	},
}

var postsCreateCmd = &cobra.Command{
	Use:   "create <content>",
	Short: "Post a message on the wall",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := strings.TrimSpace(strings.Join(args, " "))
		if content == "" {
			return clierrors.New(clierrors.InvalidInput, "a post needs some content")
		}
		svc, err := authService()
		if err != nil {
			return err
		}
		s, err := svc.SessionFor()
		if err != nil {
			return err
		}

		in := backend.Authed[backend.NewPost]{Data: backend.NewPost{Title: postTitle, Content: content}, Token: s.Token}
		res, _, err := runQuery(cmd, screen{action: "create the post", spinner: "Posting"}, app.be.CreatePost, in)
		if err != nil {
			return err
		}
		view.NewRenderer(cmd.OutOrStdout()).Success(fmt.Sprintf("Posted (id %d)", res.Data.ID))
		return nil
	},
}

func init() {
	postsListCmd.Flags().IntVarP(&listPage, "page", "p", 1, "Page number")
	postsListCmd.Flags().IntVar(&listPageSize, "page-size", 0, "Posts per page (configured default when 0)")
	postsCreateCmd.Flags().StringVarP(&postTitle, "title", "t", "", "Optional post title")
	postsCmd.AddCommand(postsListCmd, postsCreateCmd)
	rootCmd.AddCommand(postsCmd)
}
