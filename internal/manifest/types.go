// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package manifest holds the wall API endpoint table.
package manifest

import (
	"fmt"
	"strings"
)

// HTTPEndpoints contains REST API endpoint paths, relative to the base URL.
type HTTPEndpoints struct {
	SignUp        string `json:"signup,omitempty"`         // e.g., "/api/users/list/"
	Token         string `json:"token,omitempty"`          // e.g., "/api/token/"
	UserDetails   string `json:"user_details,omitempty"`   // e.g., "/api/users/details/%s/"
	Posts         string `json:"posts,omitempty"`          // e.g., "/api/wall/walls/list/"
	Comments      string `json:"comments,omitempty"`       // e.g., "/api/wall/comment/list/"
	PasswordReset string `json:"password_reset,omitempty"` // e.g., "/api/password_reset/"
	PasswordSet   string `json:"password_set,omitempty"`   // e.g., "/api/password_reset/confirm/"
}

// Default returns the endpoint table of the wall API.
func Default() HTTPEndpoints {
	return HTTPEndpoints{
		SignUp:        "/api/users/list/",
		Token:         "/api/token/",
		UserDetails:   "/api/users/details/%s/",
		Posts:         "/api/wall/walls/list/",
		Comments:      "/api/wall/comment/list/",
		PasswordReset: "/api/password_reset/",
		PasswordSet:   "/api/password_reset/confirm/",
	}
}

// Merge returns e with every empty path taken from Default.
func (e HTTPEndpoints) Merge() HTTPEndpoints {
	d := Default()
	pick := func(v, def string) string {
		if strings.TrimSpace(v) == "" {
			return def
		}
		return v
	}
	return HTTPEndpoints{
		SignUp:        pick(e.SignUp, d.SignUp),
		Token:         pick(e.Token, d.Token),
		UserDetails:   pick(e.UserDetails, d.UserDetails),
		Posts:         pick(e.Posts, d.Posts),
		Comments:      pick(e.Comments, d.Comments),
		PasswordReset: pick(e.PasswordReset, d.PasswordReset),
		PasswordSet:   pick(e.PasswordSet, d.PasswordSet),
	}
}

// Validate checks that UserDetails has exactly one %s verb for the user id.
func (e HTTPEndpoints) Validate() error {
	if strings.Count(e.UserDetails, "%s") != 1 {
		return fmt.Errorf("invalid endpoints: user_details must contain one %%s, got %q", e.UserDetails)
	}
	return nil
}

// UserDetailsPath returns the detail path for the given user id.
func (e HTTPEndpoints) UserDetailsPath(id string) string {
	return fmt.Sprintf(e.UserDetails, id)
}
