// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides structured logging for the wall CLI together with
// helpers for masking credentials and presenting failures to the user.
//
// Bearer tokens, refresh tokens and passwords travel through almost every
// request this client makes, so anything that reaches a log line or an error
// shown on screen goes through Mask first.
package logging

import (
	"regexp"
)

var (
	rePassword = regexp.MustCompile(`(?i)("?(?:new_)?password"?\s*[:=]\s*"?)([^\s",;}]+)`)
	reToken    = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reJSONTok  = regexp.MustCompile(`(?i)("(?:access|refresh|token|access_token|refresh_token)"\s*:\s*")([^"]+)(")`)
	reJWT      = regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`)
)

// Mask replaces sensitive values in the input string with "***".
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reJSONTok.ReplaceAllString(out, "$1***$3")
	out = reJWT.ReplaceAllString(out, "***")
	return out
}
