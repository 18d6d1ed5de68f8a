// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"
	"net/url"

	"wall/cli/internal/query"
	"wall/cli/internal/session"
)

// GetCurrentUser calls GET /api/users/details/{id}/ with the session's bearer token.
func (h *HTTP) GetCurrentUser(ctx context.Context, s session.Session) (*query.Envelope[User], error) {
	path := h.endpoints.UserDetailsPath(url.PathEscape(s.ID))
	return call[User](ctx, h, http.MethodGet, path, nil, s.Token)
}
