package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"wall/cli/internal/query"
)

// CreatePost posts a new wall message as the token's owner.
func (h *HTTP) CreatePost(ctx context.Context, in Authed[NewPost]) (*query.Envelope[Post], error) {
	return call[Post](ctx, h, http.MethodPost, h.endpoints.Posts, in.Data, in.Token)
}

// ListPosts fetches one page of the latest posts. No authentication required.
func (h *HTTP) ListPosts(ctx context.Context, p PageRequest) (*query.Envelope[[]Post], error) {
	p = h.normalizePage(p)
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("page_size", strconv.Itoa(p.PageSize))
	return call[[]Post](ctx, h, http.MethodGet, h.endpoints.Posts+"?"+q.Encode(), nil, "")
}

// AddComment posts a comment on a post as the token's owner.
func (h *HTTP) AddComment(ctx context.Context, in Authed[NewComment]) (*query.Envelope[Comment], error) {
	return call[Comment](ctx, h, http.MethodPost, h.endpoints.Comments, in.Data, in.Token)
}

// normalizePage applies page defaults and clamps the page size.
func (h *HTTP) normalizePage(p PageRequest) PageRequest {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = h.pageSize
	}
	if h.maxPageSize > 0 && p.PageSize > h.maxPageSize {
		p.PageSize = h.maxPageSize
	}
	if p.PageSize <= 0 {
		p.PageSize = 1
	}
	return p
}
