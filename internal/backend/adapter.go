// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the endpoint wrappers of the wall API.
// Each wrapper is one HTTP request that returns the decoded response envelope,
// or an error when no well-formed response could be obtained. Wrappers do not
// interpret the envelope status; that is the query executor's job.
package backend

import (
	"context"

	"wall/cli/internal/query"
	"wall/cli/internal/session"
)

// API defines backend operations the CLI depends on.
// Implementations may call the real HTTP endpoints or provide fakes for tests.
type API interface {
	// SignUp creates a new user.
	SignUp(ctx context.Context, req SignUpRequest) (*query.Envelope[User], error)
	// SignIn exchanges credentials for an access token.
	SignIn(ctx context.Context, c Credentials) (*query.Envelope[Tokens], error)
	// GetCurrentUser fetches the user the session belongs to.
	GetCurrentUser(ctx context.Context, s session.Session) (*query.Envelope[User], error)
	// CreatePost publishes a post on the wall as the token's owner.
	CreatePost(ctx context.Context, in Authed[NewPost]) (*query.Envelope[Post], error)
	// ListPosts returns one page of the latest wall posts.
	ListPosts(ctx context.Context, p PageRequest) (*query.Envelope[[]Post], error)
	// AddComment comments on a post as the token's owner.
	AddComment(ctx context.Context, in Authed[NewComment]) (*query.Envelope[Comment], error)
	// ForgotPassword asks the server to e-mail a password reset token.
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (*query.Envelope[Ack], error)
	// ResetPassword sets a new password using a reset token.
	ResetPassword(ctx context.Context, req ResetPasswordRequest) (*query.Envelope[Ack], error)
}
