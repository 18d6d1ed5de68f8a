package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"wall/cli/internal/query"
)

// SignUp posts to the signup endpoint.
func (h *HTTP) SignUp(ctx context.Context, req SignUpRequest) (*query.Envelope[User], error) {
	return call[User](ctx, h, http.MethodPost, h.endpoints.SignUp, req, "")
}

// SignIn posts credentials to the token endpoint.
//
// Both an enveloped answer ({"status":"success","data":{...}}) and a bare
// token pair ({"access":"...","refresh":"..."}) are accepted. The user id is
// taken from the payload when present, otherwise from the access token's
// user_id claim.
func (h *HTTP) SignIn(ctx context.Context, c Credentials) (*query.Envelope[Tokens], error) {
	raw, code, err := h.send(ctx, http.MethodPost, h.endpoints.Token, c, "")
	if err != nil {
		return nil, err
	}
	return parseSignIn(raw, code)
}

// parseSignIn is liberal in what it accepts: the token endpoint is often a
// stock JWT view that does not wrap its answer.
func parseSignIn(raw []byte, code int) (*query.Envelope[Tokens], error) {
	base, err := decodeEnvelope[map[string]any](raw, code)
	if err != nil {
		return nil, err
	}

	out := &query.Envelope[Tokens]{
		Status:     base.Status,
		Pagination: base.Pagination,
		Message:    base.Message,
		Error:      base.Error,
	}

	var src map[string]any
	switch base.Status {
	case query.StatusSuccess:
		src = base.Data
	case "":
		if err := json.Unmarshal(raw, &src); err != nil {
			return nil, fmt.Errorf("decode token response: %w", err)
		}
	default:
		return out, nil
	}

	access := extractAccessToken(src)
	if access == "" {
		if base.Status == "" {
			var d struct {
				Detail query.Reason `json:"detail"`
			}
			_ = json.Unmarshal(raw, &d)
			if !out.Error.Truthy() {
				out.Error = d.Detail
			}
		}
		return out, nil
	}

	userID := extractUserID(src)
	if userID == "" {
		userID = userIDFromJWT(access)
	}
	out.Status = query.StatusSuccess
	out.Data = Tokens{
		Access:  access,
		Refresh: extractRefreshToken(src),
		UserID:  userID,
	}
	return out, nil
}
