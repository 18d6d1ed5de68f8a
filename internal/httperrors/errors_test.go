package httperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, Generic},
		{"deadline", fmt.Errorf("GET /x: %w", context.DeadlineExceeded), Timeout},
		{"client timeout", errors.New("Client.Timeout exceeded while awaiting headers"), Timeout},
		{"dns", &net.DNSError{Err: "no such host", Name: "wall.invalid"}, DNS},
		{"refused op", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, ConnectionRefused},
		{"refused text", errors.New("dial tcp 127.0.0.1:8000: connect: connection refused"), ConnectionRefused},
		{"tls", errors.New("x509: certificate signed by unknown authority"), TLS},
		{"html 502", errors.New("decode response (HTTP 502): invalid character '<'"), Server},
		{"html 200", errors.New("decode response (HTTP 200): invalid character '<'"), BadResponse},
		{"other", errors.New("unexpected EOF"), Generic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestExplain(t *testing.T) {
	var buf bytes.Buffer
	Explain(&buf, errors.New("connect: connection refused"), "listing posts", "localhost:8000")
	out := buf.String()
	assert.Contains(t, out, "Connection refused while listing posts")
	assert.Contains(t, out, "localhost:8000")
	assert.Contains(t, out, "Technical details")

	buf.Reset()
	Explain(&buf, nil, "x", "y")
	assert.Empty(t, buf.String())
}

func TestExtractHostFromURL(t *testing.T) {
	assert.Equal(t, "api.wall.example:8443", ExtractHostFromURL("https://api.wall.example:8443/base"))
	assert.Equal(t, "server", ExtractHostFromURL("::bad"))
	assert.Equal(t, "server", ExtractHostFromURL("no-scheme"))
}
