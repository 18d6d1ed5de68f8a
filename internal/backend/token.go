// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// parseBearerToken extracts token from a value like "Bearer <token>" case-insensitively.
// Returns the token string without the "Bearer " prefix, or empty string if invalid format.
func parseBearerToken(value string) string {
	v := strings.TrimSpace(value)
	if len(v) < 7 {
		return ""
	}
	if strings.EqualFold(v[0:6], "bearer") && (v[6] == ' ' || v[6] == '\t') {
		return strings.TrimSpace(v[7:])
	}
	return ""
}

// extractAccessToken extracts the access token from the response payload.
// It tries multiple common field names to be resilient to different response formats.
func extractAccessToken(result map[string]any) string {
	for _, k := range []string{"access", "access_token", "accessToken", "token"} {
		if v, ok := result[k].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	if v, ok := result["authorization"].(string); ok {
		return parseBearerToken(v)
	}
	return ""
}

// extractRefreshToken extracts the refresh token from the response payload.
// Returns empty string if no refresh token is present.
func extractRefreshToken(result map[string]any) string {
	for _, k := range []string{"refresh", "refresh_token", "refreshToken"} {
		if v, ok := result[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// extractUserID extracts the user id from the response payload, accepting
// numbers, strings and a nested user object.
func extractUserID(result map[string]any) string {
	for _, k := range []string{"id", "user_id", "userId"} {
		if id := idString(result[k]); id != "" {
			return id
		}
	}
	if u, ok := result["user"].(map[string]any); ok {
		return idString(u["id"])
	}
	return ""
}

// userIDFromJWT reads the user_id claim of an access token without
// verifying it. The token is only ever sent back to the server that issued
// it, which does the verification.
func userIDFromJWT(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	if id := idString(claims["user_id"]); id != "" {
		return id
	}
	sub, _ := claims.GetSubject()
	return sub
}

func idString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}
