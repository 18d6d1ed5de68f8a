// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors explains transport failures of wall API calls in
// user-friendly terms.
package httperrors

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// Kind is the category a transport error falls into.
type Kind int

const (
	Generic Kind = iota
	Timeout
	DNS
	ConnectionRefused
	TLS
	Server
	BadResponse
)

// Classify detects common error types (timeout, DNS, connection refused,
// TLS, server errors, undecodable bodies).
func Classify(err error) Kind {
	switch {
	case err == nil:
		return Generic
	case isTimeoutError(err):
		return Timeout
	case isDNSError(err):
		return DNS
	case isConnectionRefusedError(err):
		return ConnectionRefused
	case isSSLError(err):
		return TLS
	case isDecodeError(err):
		if isServerError(err.Error()) {
			return Server
		}
		return BadResponse
	case isServerError(err.Error()):
		return Server
	default:
		return Generic
	}
}

// Explain writes troubleshooting help for err to w. action completes the
// sentence "... while <action>"; host names the API server.
func Explain(w io.Writer, err error, action, host string) {
	if err == nil {
		return
	}
	p := func(format string, a ...any) { fmt.Fprintf(w, format+"\n", a...) }

	switch Classify(err) {
	case Timeout:
		p("⏱️  Connection timeout while %s", action)
		p("")
		p("The server took too long to respond. This could mean:")
		p("  • Slow internet connection")
		p("  • Server is under heavy load")
		p("  • The --timeout setting is too low for your network")
	case DNS:
		p("🌐 Cannot resolve server address while %s", action)
		p("")
		p("Unable to look up %s. Please check:", host)
		p("  • Your internet connection is working")
		p("  • The --api-url setting is spelled correctly")
	case ConnectionRefused:
		p("🚫 Connection refused while %s", action)
		p("")
		p("Nothing is accepting connections at %s. This could mean:", host)
		p("  • The wall API is not running")
		p("  • Wrong server address or port")
	case TLS:
		p("🔒 Secure connection failed while %s", action)
		p("")
		p("Cannot establish a secure HTTPS connection. Try:")
		p("  • Check your system date and time")
		p("  • Verify network proxy settings")
	case Server:
		p("⚠️  Server error while %s", action)
		p("")
		p("The wall API at %s failed to handle the request.", host)
		p("This is not a problem with your setup. Please try again in a few minutes.")
	case BadResponse:
		p("❓ Unexpected response while %s", action)
		p("")
		p("%s answered with something that is not a wall API response.", host)
		p("  • Check that --api-url points at the API, not the web app")
	default:
		p("❌ Cannot reach the wall API while %s", action)
		p("")
		p("Please check:")
		p("  • Your internet connection")
		p("  • Whether %s is accessible from your network", host)
	}
	p("")

	details := err.Error()
	if len(details) > 100 {
		details = details[:100] + "..."
	}
	p("%s", pterm.NewStyle(pterm.FgGray).Sprintf("Technical details: %s", details))
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

// isSSLError checks if the error is an SSL/TLS error.
func isSSLError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate")
}

// isDecodeError checks if the body could not be decoded as an envelope.
func isDecodeError(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "decode response")
}

// isServerError checks if the error indicates a server-side problem (5xx errors).
func isServerError(errStr string) bool {
	lower := strings.ToLower(errStr)
	for _, s := range []string{
		"http 500", "http 502", "http 503", "http 504",
		"internal server error", "bad gateway", "service unavailable", "gateway timeout",
	} {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
