package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"wall/cli/internal/query"
)

// ResetFailedMessage is reported for every rejected password reset request.
// The server's own reasons are not shown so the endpoint cannot be used to
// probe which addresses have accounts.
const ResetFailedMessage = "There is no active user associated with this e-mail address or the password can not be changed"

// ForgotPassword posts to /api/password_reset/.
func (h *HTTP) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (*query.Envelope[Ack], error) {
	raw, code, err := h.send(ctx, http.MethodPost, h.endpoints.PasswordReset, req, "")
	if err != nil {
		return nil, err
	}
	return parseAck(raw, code)
}

// ResetPassword posts to /api/password_reset/confirm/.
func (h *HTTP) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*query.Envelope[Ack], error) {
	raw, code, err := h.send(ctx, http.MethodPost, h.endpoints.PasswordSet, req, "")
	if err != nil {
		return nil, err
	}
	return parseAck(raw, code)
}

// parseAck maps the reset endpoints' {"status":"OK"} answer onto the
// envelope vocabulary.
func parseAck(raw []byte, code int) (*query.Envelope[Ack], error) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	switch strings.ToLower(strings.TrimSpace(body.Status)) {
	case "ok", string(query.StatusSuccess):
		if code < http.StatusBadRequest {
			return &query.Envelope[Ack]{Status: query.StatusSuccess, Data: Ack{Status: "OK"}}, nil
		}
	}
	return &query.Envelope[Ack]{Status: query.StatusError, Error: query.Text(ResetFailedMessage)}, nil
}
