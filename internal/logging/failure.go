// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"strings"

	"github.com/pterm/pterm"
)

// FailureKind is the category a failed query is presented under.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	FailureNetwork
	FailureAuth
	FailureApplication
)

// ParseFailure categorizes a failure message shown to the user.
func ParseFailure(msg string, transport bool) FailureKind {
	if transport {
		return FailureNetwork
	}
	lower := strings.ToLower(msg)
	if strings.Contains(lower, "unauthorized") ||
		strings.Contains(lower, "not authenticated") ||
		strings.Contains(lower, "credentials") ||
		strings.Contains(lower, "token") {
		return FailureAuth
	}
	if strings.TrimSpace(msg) != "" {
		return FailureApplication
	}
	return FailureUnknown
}

// FormatFailure renders a failed query for the terminal.
func FormatFailure(action, msg string, transport bool) string {
	kind := ParseFailure(msg, transport)

	var b strings.Builder
	b.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprintf("Could not %s", action))
	b.WriteString("\n")

	if strings.TrimSpace(msg) != "" {
		b.WriteString(Mask(msg))
	} else {
		b.WriteString("The server did not say why.")
	}
	b.WriteString("\n")

	switch kind {
	case FailureNetwork:
		b.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ Check your connection and the --api-url setting, then try again"))
		b.WriteString("\n")
	case FailureAuth:
		b.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ Run 'wall login' and try again"))
		b.WriteString("\n")
	}

	return b.String()
}
