// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"encoding/json"
	"time"
)

// User is a wall account as returned by the user endpoints.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Post is a message on the wall.
type Post struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title,omitempty"`
	Content   string     `json:"content"`
	Author    Author     `json:"author,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Comments  []Comment  `json:"comments,omitempty"`
}

// Author names who wrote a post or comment. Servers send it as a username,
// a numeric user id or a nested user object; all of them decode.
type Author string

func (a *Author) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*a = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Author(s)
	case b[0] == '{':
		var u map[string]any
		if err := json.Unmarshal(b, &u); err != nil {
			return err
		}
		for _, k := range []string{"username", "name", "email"} {
			if v, ok := u[k].(string); ok && v != "" {
				*a = Author(v)
				return nil
			}
		}
		*a = Author(idString(u["id"]))
	default:
		var v any
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*a = Author(idString(v))
	}
	return nil
}

// Comment is a reply to a post.
type Comment struct {
	ID        int64      `json:"id"`
	Post      int64      `json:"post"`
	Content   string     `json:"content"`
	Author    Author     `json:"author,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Tokens is the outcome of a successful sign-in.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
	UserID  string `json:"user_id,omitempty"`
}

// Ack is the body of endpoints that only acknowledge a request.
type Ack struct {
	Status string `json:"status"`
}

// SignUpRequest is the body of the signup endpoint.
type SignUpRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Password  string `json:"password"`
}

// Credentials is the body of the token endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewPost is the body of the create-post endpoint.
type NewPost struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

// NewComment is the body of the create-comment endpoint.
type NewComment struct {
	Post    int64  `json:"post"`
	Content string `json:"content"`
}

// ForgotPasswordRequest is the body of the password reset endpoint.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of the password reset confirmation endpoint.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Authed pairs a request body with the bearer token to send it with.
type Authed[T any] struct {
	Data  T
	Token string
}

// PageRequest selects one page of a list endpoint. Zero values mean
// "first page" and "default size".
type PageRequest struct {
	Page     int
	PageSize int
}
